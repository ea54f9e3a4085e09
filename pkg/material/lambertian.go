package material

import (
	"math"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewConstantTexture(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func (l *Lambertian) isMaterial() {}

// Scatter implements the Material interface for lambertian scattering.
// The attenuation is the raw albedo; the cosine/π factor lives in ScatteringPDF.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
	scattered := core.NewRayAtTime(hit.Point, scatterDirection, rayIn.Time)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo.Value(hit.UV, hit.Point),
		PDF:         cosinePDF(hit.Normal, scatterDirection),
	}, true
}

// Emitted returns black; lambertian surfaces do not emit
func (l *Lambertian) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF returns cos(θ)/π, zero for directions behind the surface
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return cosinePDF(hit.Normal, scattered.Direction)
}

func cosinePDF(normal, direction core.Vec3) float64 {
	cosTheta := normal.Dot(direction.Normalize())
	if cosTheta <= 0 || math.IsNaN(cosTheta) {
		return 0
	}
	return cosTheta / math.Pi
}
