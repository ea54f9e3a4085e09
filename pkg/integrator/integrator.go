package integrator

import (
	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the linear RGB radiance arriving along ray
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Vec3
}
