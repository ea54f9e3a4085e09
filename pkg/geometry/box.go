package geometry

import (
	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/material"
)

// Box is an axis-aligned rectangular prism from Min to Max made of six
// rectangles. Faces on the minimum side are flipped so every normal points out.
type Box struct {
	Min, Max core.Vec3
	faces    *HittableList
}

// NewBox creates a box spanning the corners p0 and p1
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	faces := NewHittableList(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, mat),
		NewFlipNormals(NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, mat)),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, mat),
		NewFlipNormals(NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, mat)),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, mat),
		NewFlipNormals(NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, mat)),
	)

	return &Box{Min: p0, Max: p1, faces: faces}
}

func (b *Box) isShape() {}

// Hit returns the nearest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.faces.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box's own extent
func (b *Box) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(b.Min, b.Max).Pad()
}
