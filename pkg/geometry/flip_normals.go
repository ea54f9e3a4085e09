package geometry

import (
	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/material"
)

// FlipNormals reverses the normal reported by the wrapped shape. Walls and
// ceilings of an enclosure use it so their normals face into the room.
type FlipNormals struct {
	Shape Shape
}

// NewFlipNormals wraps shape
func NewFlipNormals(shape Shape) *FlipNormals {
	return &FlipNormals{Shape: shape}
}

func (f *FlipNormals) isShape() {}

// Hit delegates to the wrapped shape and negates the normal
func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	hit, ok := f.Shape.Hit(ray, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	hit.Normal = hit.Normal.Negate()
	return hit, true
}

// BoundingBox is the wrapped shape's box
func (f *FlipNormals) BoundingBox() core.AABB {
	return f.Shape.BoundingBox()
}
