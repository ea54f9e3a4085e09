package geometry

import (
	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/material"
)

// HittableList tests every member and keeps the nearest hit. It is the
// reference the BVH is checked against.
type HittableList struct {
	Shapes []Shape
}

// NewHittableList creates a list from shapes
func NewHittableList(shapes ...Shape) *HittableList {
	return &HittableList{Shapes: shapes}
}

func (l *HittableList) isShape() {}

// Add appends a shape to the list
func (l *HittableList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Hit returns the nearest hit among all members
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, ok := shape.Hit(ray, tMin, closestSoFar, sampler); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member boxes, or an empty box
func (l *HittableList) BoundingBox() core.AABB {
	box := core.EmptyAABB()
	for _, shape := range l.Shapes {
		box = box.Union(shape.BoundingBox())
	}
	return box
}
