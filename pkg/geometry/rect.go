package geometry

import (
	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/material"
)

// Plane selects the coordinate plane an axis-aligned rectangle lies in
type Plane int

const (
	PlaneXY Plane = iota // fixed z, spans x and y
	PlaneXZ              // fixed y, spans x and z
	PlaneYZ              // fixed x, spans y and z
)

// axes returns the in-plane axes (a, b) and the fixed axis k
func (p Plane) axes() (a, b, k int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	default:
		return "yz"
	}
}

// compose builds a vector from its in-plane and fixed coordinates
func (p Plane) compose(a, b, k float64) core.Vec3 {
	switch p {
	case PlaneXY:
		return core.NewVec3(a, b, k)
	case PlaneXZ:
		return core.NewVec3(a, k, b)
	default:
		return core.NewVec3(k, a, b)
	}
}

// AARect is an axis-aligned rectangle [A0,A1]×[B0,B1] on the plane where the
// fixed coordinate equals K. Its normal points along the positive fixed axis.
type AARect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
}

// NewXYRect creates a rectangle at z=k spanning [x0,x1]×[y0,y1]
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *AARect {
	return &AARect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat}
}

// NewXZRect creates a rectangle at y=k spanning [x0,x1]×[z0,z1]
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *AARect {
	return &AARect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat}
}

// NewYZRect creates a rectangle at x=k spanning [y0,y1]×[z0,z1]
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *AARect {
	return &AARect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat}
}

func (r *AARect) isShape() {}

// Normal returns the unit normal of the rectangle's plane
func (r *AARect) Normal() core.Vec3 {
	return r.Plane.compose(0, 0, 1)
}

// Area returns the surface area of the rectangle
func (r *AARect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// PointAt maps (s, t) in [0,1]² to a point on the rectangle
func (r *AARect) PointAt(s, t float64) core.Vec3 {
	return r.Plane.compose(r.A0+s*(r.A1-r.A0), r.B0+t*(r.B1-r.B0), r.K)
}

// Hit intersects the ray with the rectangle's plane and checks the bounds
func (r *AARect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	aAxis, bAxis, kAxis := r.Plane.axes()

	dk := ray.Direction.Axis(kAxis)
	if dk == 0 {
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(kAxis)) / dk
	if t < tMin || t > tMax {
		return nil, false
	}

	a := ray.Origin.Axis(aAxis) + t*ray.Direction.Axis(aAxis)
	b := ray.Origin.Axis(bAxis) + t*ray.Direction.Axis(bAxis)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   r.Normal(),
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}, true
}

// BoundingBox returns the rectangle's box, padded along the fixed axis
func (r *AARect) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(
		r.Plane.compose(r.A0, r.B0, r.K),
		r.Plane.compose(r.A1, r.B1, r.K),
	).Pad()
}
