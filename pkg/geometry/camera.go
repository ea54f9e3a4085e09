package geometry

import (
	"math"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually 0,1,0)
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter, 0 for a pinhole
	FocusDistance float64   // Distance to the plane in perfect focus
	Time0, Time1  float64   // Shutter open and close times
}

// Camera generates rays through a thin lens. It holds no mutable state and
// may be shared by any number of render workers.
type Camera struct {
	config          CameraConfig
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal basis
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight
	focus := config.FocusDistance

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focus)).
		Subtract(v.Multiply(halfHeight * focus)).
		Subtract(w.Multiply(focus))

	return &Camera{
		config:          config,
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focus),
		vertical:        v.Multiply(2 * halfHeight * focus),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay generates a ray for image-plane coordinates (s, t) in [0,1]², with
// (0,0) at the lower left. The lens and shutter are only sampled when the
// aperture and shutter interval are non-zero, so a pinhole camera with a
// closed shutter produces exact rays.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	time := c.config.Time0
	if c.config.Time1 != c.config.Time0 {
		time += sampler.Get1D() * (c.config.Time1 - c.config.Time0)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayAtTime(origin, direction, time)
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}
