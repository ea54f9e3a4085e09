package scene

import (
	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/geometry"
)

// NewLightPanelScene creates a single emitting rectangle that fills the
// camera's whole view. Every primary ray hits the light directly, so a
// render converges to the emission color after one sample.
func NewLightPanelScene(emission core.Vec3) *Scene {
	s := &Scene{
		Name: "light-panel",
		CameraConfig: geometry.CameraConfig{
			LookFrom:      core.NewVec3(0, 0, 0),
			LookAt:        core.NewVec3(0, 0, -1),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          40,
			AspectRatio:   1,
			FocusDistance: 1,
		},
		SamplingConfig: SamplingConfig{
			Width:           64,
			Height:          64,
			SamplesPerPixel: 1,
			MaxDepth:        3,
		},
	}

	s.AddRectLight(geometry.NewXYRect(-100, 100, -100, 100, -10, nil), emission)
	return s
}

// NewEmptyScene creates a scene with no shapes and no light. It renders black.
func NewEmptyScene() *Scene {
	return &Scene{
		Name:         "empty",
		CameraConfig: cornellCamera(),
		SamplingConfig: SamplingConfig{
			Width:           64,
			Height:          64,
			SamplesPerPixel: 4,
			MaxDepth:        3,
		},
	}
}
