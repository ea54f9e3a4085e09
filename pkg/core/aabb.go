package core

import "math"

// MinBoxThickness is the smallest extent an AABB is allowed to have along any
// axis. Planar primitives are padded to it so slab tests never reject them.
const MinBoxThickness = 0.0001

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns a box that contains nothing. It is the identity for Union.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB()
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis)
		max := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Handle parallel rays (direction near zero)
		if math.Abs(direction) < 1e-8 {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection

		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)

		if tMin > tMax {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Contains reports whether other lies entirely inside this box
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Min.Y <= other.Min.Y && aabb.Min.Z <= other.Min.Z &&
		aabb.Max.X >= other.Max.X && aabb.Max.Y >= other.Max.Y && aabb.Max.Z >= other.Max.Z
}

// Pad returns a copy of the box grown so that no axis is thinner than MinBoxThickness
func (aabb AABB) Pad() AABB {
	padded := aabb
	half := MinBoxThickness / 2
	if padded.Max.X-padded.Min.X < MinBoxThickness {
		c := (padded.Max.X + padded.Min.X) / 2
		padded.Min.X, padded.Max.X = c-half, c+half
	}
	if padded.Max.Y-padded.Min.Y < MinBoxThickness {
		c := (padded.Max.Y + padded.Min.Y) / 2
		padded.Min.Y, padded.Max.Y = c-half, c+half
	}
	if padded.Max.Z-padded.Min.Z < MinBoxThickness {
		c := (padded.Max.Z + padded.Min.Z) / 2
		padded.Min.Z, padded.Max.Z = c-half, c+half
	}
	return padded
}

// Translate returns the box moved by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{Min: aabb.Min.Add(offset), Max: aabb.Max.Add(offset)}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
