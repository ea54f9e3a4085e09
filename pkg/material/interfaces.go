package material

import (
	"github.com/df07/go-cornell-pathtracer/pkg/core"
)

// Material determines how a ray interacts with a surface. The set of
// materials is closed: only the variants in this package implement it.
type Material interface {
	// Scatter generates a scattered ray. It returns false if the material
	// absorbs the ray (pure emitters never scatter).
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the radiance emitted at the given surface point
	Emitted(uv core.Vec2, point core.Vec3) core.Vec3

	// ScatteringPDF returns the density with which Scatter would produce scattered
	ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64

	isMaterial()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Albedo at the hit point
	PDF         float64   // Density of the scattered direction
}

// HitRecord contains information about a ray-object intersection.
// Normal is the geometric normal of the primitive; it is not flipped
// toward the incoming ray, that is the job of the FlipNormals decorator.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Surface normal at intersection
	UV       core.Vec2 // Surface parameterization
	Material Material  // Material of the hit object
}
