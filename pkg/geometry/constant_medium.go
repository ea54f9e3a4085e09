package geometry

import (
	"math"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/material"
)

// mediumEpsilon separates the entry and exit intersections with the boundary
const mediumEpsilon = 0.0001

// ConstantMedium fills a closed boundary shape with a homogeneous
// participating medium. A ray crossing it scatters after an exponentially
// distributed free path, or passes through untouched.
type ConstantMedium struct {
	Boundary      Shape
	Density       float64
	PhaseFunction material.Material
}

// NewConstantMedium fills boundary with a medium of the given density and color
func NewConstantMedium(boundary Shape, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

func (m *ConstantMedium) isShape() {}

// Hit samples a scattering distance inside the boundary
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if m.Density <= 0 || sampler == nil {
		return nil, false
	}

	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+mediumEpsilon, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	t0 := math.Max(entry.T, tMin)
	t1 := math.Min(exit.T, tMax)
	if t0 >= t1 {
		return nil, false
	}
	t0 = math.Max(t0, 0)

	rayLength := ray.Direction.Length()
	distanceInside := (t1 - t0) * rayLength
	hitDistance := -math.Log(1-sampler.Get1D()) / m.Density
	if hitDistance > distanceInside {
		return nil, false
	}

	t := t0 + hitDistance/rayLength
	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(1, 0, 0), // arbitrary
		Material: m.PhaseFunction,
	}, true
}

// BoundingBox is the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
