package material

import (
	"math"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly over the whole sphere of directions.
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewConstantTexture(albedo)}
}

func (i *Isotropic) isMaterial() {}

// Scatter picks a uniformly random direction
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := core.SampleOnUnitSphere(sampler.Get2D())
	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: i.Albedo.Value(hit.UV, hit.Point),
		PDF:         1 / (4 * math.Pi),
	}, true
}

// Emitted returns black
func (i *Isotropic) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF is the uniform sphere density 1/4π
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 1 / (4 * math.Pi)
}
