package integrator

import (
	"math"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/geometry"
	"github.com/df07/go-cornell-pathtracer/pkg/lights"
	"github.com/df07/go-cornell-pathtracer/pkg/scene"
)

// RayEpsilon is the near bound for every intersection query. It keeps a
// ray leaving a surface from hitting that surface again.
const RayEpsilon = 0.001

// DefaultMaxDepth is the bounce count after which only emission is returned
const DefaultMaxDepth = 3

// PathTracingIntegrator estimates radiance with next-event estimation toward
// the scene's single rectangular light. Each bounce continues toward a point
// sampled on the light, weighted by the material's scattering PDF.
//
// Paths are cut off at MaxDepth without Russian roulette, which loses the
// energy of longer paths.
type PathTracingIntegrator struct {
	MaxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config scene.SamplingConfig) *PathTracingIntegrator {
	maxDepth := config.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor computes the radiance for a camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	return pt.Radiance(ray, s.Root(), s.Light, sampler, 0)
}

// Radiance is the recursive estimator. A ray that leaves the scene sees black.
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, world geometry.Shape, light lights.Light, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := world.Hit(ray, RayEpsilon, math.Inf(1), sampler)
	if !isHit {
		return core.Vec3{}
	}

	emitted := hit.Material.Emitted(hit.UV, hit.Point)
	if depth >= pt.MaxDepth || light == nil {
		return emitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	lightSample := light.Sample(hit.Point, sampler.Get2D())

	// The surface faces away from the sampled point on the light
	if lightSample.Direction.Dot(hit.Normal) < 0 {
		return emitted
	}
	// The light is seen edge-on
	if lightSample.PDF == 0 {
		return emitted
	}

	toLight := core.NewRayAtTime(hit.Point, lightSample.Direction, ray.Time)
	scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, toLight)
	incoming := pt.Radiance(toLight, world, light, sampler, depth+1)

	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / lightSample.PDF))
}
