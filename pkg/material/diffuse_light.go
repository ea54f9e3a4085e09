package material

import (
	"github.com/df07/go-cornell-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emit Texture // Emitted light color/intensity
}

// NewDiffuseLight creates a new emitter with a constant color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewConstantTexture(emission)}
}

func (d *DiffuseLight) isMaterial() {}

// Scatter always fails: lights absorb every incoming ray
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emission texture at the hit point
func (d *DiffuseLight) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return d.Emit.Value(uv, point)
}

// ScatteringPDF is zero because the light never scatters
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}
