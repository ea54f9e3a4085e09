package geometry

import (
	"math"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

func (s *Sphere) isShape() {}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

// hitSphere is the analytic ray/sphere test shared by static and moving spheres
func hitSphere(center core.Vec3, radius float64, mat material.Material, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Quadratic equation coefficients: at² + 2bt + c = 0
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(center).Divide(radius)

	return &material.HitRecord{
		T:        root,
		Point:    point,
		Normal:   normal,
		UV:       sphereUV(normal),
		Material: mat,
	}, true
}

// sphereUV maps a point on the unit sphere to (u, v) in [0,1]²
func sphereUV(p core.Vec3) core.Vec2 {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(math.Max(-1, math.Min(1, p.Y)))
	return core.NewVec2(
		1-(phi+math.Pi)/(2*math.Pi),
		(theta+math.Pi/2)/math.Pi,
	)
}
