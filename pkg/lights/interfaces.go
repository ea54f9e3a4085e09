package lights

import "github.com/df07/go-cornell-pathtracer/pkg/core"

// Light is an emitter that can be sampled for next-event estimation
type Light interface {
	// Sample picks a point on the light for the shading point and returns
	// the direction toward it together with its solid-angle PDF
	Sample(point core.Vec3, sample core.Vec2) LightSample

	// PDF returns the solid-angle density with which Sample would choose
	// direction from point, or zero if the direction misses the light
	PDF(point core.Vec3, direction core.Vec3) float64
}

// LightSample contains information about a sampled point on a light
type LightSample struct {
	Point     core.Vec3 // Point on the light source
	Normal    core.Vec3 // Normal at the light sample point
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to light
	Cosine    float64   // |cos| between the light normal and Direction
	PDF       float64   // Solid-angle density, zero when the light is seen edge-on
}
