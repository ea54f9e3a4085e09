package geometry

import (
	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/material"
	"github.com/go-gl/mathgl/mgl64"
)

// Translate moves the wrapped shape by Offset
type Translate struct {
	Shape  Shape
	Offset core.Vec3
}

// NewTranslate wraps shape, moving it by offset
func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{Shape: shape, Offset: offset}
}

func (t *Translate) isShape() {}

// Hit moves the ray into object space, delegates, and moves the hit point back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	hit, ok := t.Shape.Hit(moved, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox is the wrapped box moved by Offset
func (t *Translate) BoundingBox() core.AABB {
	return t.Shape.BoundingBox().Translate(t.Offset)
}

// RotateY rotates the wrapped shape about the world Y axis
type RotateY struct {
	Shape   Shape
	Degrees float64

	toWorld  mgl64.Mat3
	toObject mgl64.Mat3
	bbox     core.AABB
}

// NewRotateY wraps shape, rotating it by degrees about the Y axis
func NewRotateY(shape Shape, degrees float64) *RotateY {
	radians := mgl64.DegToRad(degrees)
	r := &RotateY{
		Shape:    shape,
		Degrees:  degrees,
		toWorld:  mgl64.Rotate3DY(radians),
		toObject: mgl64.Rotate3DY(-radians),
	}

	// Bound the rotated shape by rotating the corners of the object-space box
	box := shape.BoundingBox()
	if !box.IsValid() {
		r.bbox = box
		return r
	}
	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					pick(i, box.Min.X, box.Max.X),
					pick(j, box.Min.Y, box.Max.Y),
					pick(k, box.Min.Z, box.Max.Z),
				)
				corners = append(corners, apply(r.toWorld, corner))
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(corners...)
	return r
}

func (r *RotateY) isShape() {}

// Hit rotates the ray into object space, delegates, and rotates the hit back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(apply(r.toObject, ray.Origin), apply(r.toObject, ray.Direction), ray.Time)
	hit, ok := r.Shape.Hit(rotated, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}
	hit.Point = apply(r.toWorld, hit.Point)
	hit.Normal = apply(r.toWorld, hit.Normal)
	return hit, true
}

// BoundingBox returns the box of the rotated corners
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}

func apply(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}

func pick(i int, lo, hi float64) float64 {
	if i == 0 {
		return lo
	}
	return hi
}
