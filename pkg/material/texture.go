package material

import (
	"math"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns color at given UV coordinates and 3D point
	Value(uv core.Vec2, point core.Vec3) core.Vec3
}

// ConstantTexture provides uniform color
type ConstantTexture struct {
	Color core.Vec3
}

// NewConstantTexture creates a new solid color source
func NewConstantTexture(color core.Vec3) *ConstantTexture {
	return &ConstantTexture{Color: color}
}

// Value returns the solid color regardless of UV or position
func (c *ConstantTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	return c.Color
}

// CheckerTexture alternates between two textures in a 3D checker pattern
type CheckerTexture struct {
	Odd   Texture
	Even  Texture
	Scale float64 // Spatial frequency of the pattern
}

// NewCheckerTexture creates a checker pattern alternating odd and even
func NewCheckerTexture(odd, even Texture) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even, Scale: 10}
}

// Value picks odd or even by the sign of sin(sx)·sin(sy)·sin(sz)
func (c *CheckerTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd.Value(uv, point)
	}
	return c.Even.Value(uv, point)
}
