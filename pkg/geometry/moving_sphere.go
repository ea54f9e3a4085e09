package geometry

import (
	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/material"
)

// MovingSphere is a sphere whose center travels linearly from Center0 at
// Time0 to Center1 at Time1. Rays sample its position at their own time.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a sphere in linear motion
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}
}

func (s *MovingSphere) isShape() {}

// CenterAt returns the center of the sphere at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	f := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(f))
}

// Hit tests the ray against the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitSphere(s.CenterAt(ray.Time), s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox bounds the sphere over the whole shutter interval
func (s *MovingSphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.Center0.Subtract(radius), s.Center0.Add(radius))
	box1 := core.NewAABB(s.Center1.Subtract(radius), s.Center1.Add(radius))
	return box0.Union(box1)
}
