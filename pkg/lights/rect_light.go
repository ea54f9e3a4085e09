package lights

import (
	"math"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/geometry"
)

// MinLightCosine is the smallest light cosine for which a sample is kept.
// Below it the light is edge-on and the PDF would blow up.
const MinLightCosine = 1e-6

// RectLight samples an axis-aligned rectangular emitter uniformly by area
type RectLight struct {
	Rect *geometry.AARect
}

// NewRectLight creates a light from the rectangle that renders it
func NewRectLight(rect *geometry.AARect) *RectLight {
	return &RectLight{Rect: rect}
}

// Area returns the light's surface area
func (l *RectLight) Area() float64 {
	return l.Rect.Area()
}

// Normal returns the light's plane normal
func (l *RectLight) Normal() core.Vec3 {
	return l.Rect.Normal()
}

// Sample picks a uniform point on the rectangle and converts the area
// density 1/A into solid angle: distance² / (|cos θ_light| · A)
func (l *RectLight) Sample(point core.Vec3, sample core.Vec2) LightSample {
	samplePoint := l.Rect.PointAt(sample.X, sample.Y)
	toLight := samplePoint.Subtract(point)
	distanceSquared := toLight.LengthSquared()
	direction := toLight.Normalize()
	cosine := math.Abs(direction.Dot(l.Normal()))

	result := LightSample{
		Point:     samplePoint,
		Normal:    l.Normal(),
		Direction: direction,
		Distance:  math.Sqrt(distanceSquared),
		Cosine:    cosine,
	}
	if cosine < MinLightCosine {
		return result
	}

	result.PDF = distanceSquared / (cosine * l.Area())
	return result
}

// PDF returns the density Sample assigns to direction from point
func (l *RectLight) PDF(point core.Vec3, direction core.Vec3) float64 {
	hit, ok := l.Rect.Hit(core.NewRay(point, direction), 0.001, math.Inf(1), nil)
	if !ok {
		return 0
	}

	toLight := hit.Point.Subtract(point)
	cosine := math.Abs(toLight.Normalize().Dot(l.Normal()))
	if cosine < MinLightCosine {
		return 0
	}
	return toLight.LengthSquared() / (cosine * l.Area())
}
