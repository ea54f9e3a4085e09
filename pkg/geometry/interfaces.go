package geometry

import (
	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/material"
)

// Shape is anything a ray can hit. The set of shapes is closed: only the
// types in this package implement it, and decorators own the shape they wrap.
//
// The sampler is only consumed by volumetric shapes, which decide
// probabilistically where inside them a ray scatters.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)
	BoundingBox() core.AABB

	isShape()
}
