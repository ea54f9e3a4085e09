package scene

import (
	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/geometry"
	"github.com/df07/go-cornell-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellCamera looks into the open side of the box
func cornellCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800), // Outside the box looking in
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   1.0, // Square aspect ratio for Cornell box
		Aperture:      0.0, // No depth of field
		FocusDistance: 10.0,
		Time0:         0.0,
		Time1:         1.0,
	}
}

func cornellSampling() SamplingConfig {
	return SamplingConfig{
		Width:           512,
		Height:          512,
		SamplesPerPixel: 100,
		MaxDepth:        3,
	}
}

type cornellMaterials struct {
	red, white, green *material.Lambertian
}

func newCornellMaterials() cornellMaterials {
	return cornellMaterials{
		red:   material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05)),
		white: material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)),
		green: material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15)),
	}
}

// newCornellRoom creates the five walls and the ceiling light. Every wall
// normal points into the room.
func newCornellRoom(name string, mats cornellMaterials) *Scene {
	s := &Scene{
		Name:           name,
		CameraConfig:   cornellCamera(),
		SamplingConfig: cornellSampling(),
	}

	s.Add(
		geometry.NewFlipNormals(geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, mats.green)), // right wall
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, mats.red),                                 // left wall
	)
	s.AddRectLight(geometry.NewXZRect(213, 343, 227, 332, 554, nil), core.NewVec3(15, 15, 15))
	s.Add(
		geometry.NewFlipNormals(geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, mats.white)), // ceiling
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, mats.white),                                // floor
		geometry.NewFlipNormals(geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, mats.white)), // back wall
	)

	return s
}

// shortBox and tallBox are the two rotated blocks standing on the floor
func shortBox(mat material.Material) geometry.Shape {
	box := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat)
	return geometry.NewTranslate(geometry.NewRotateY(box, -18), core.NewVec3(130, 0, 65))
}

func tallBox(mat material.Material) geometry.Shape {
	box := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat)
	return geometry.NewTranslate(geometry.NewRotateY(box, 15), core.NewVec3(265, 0, 295))
}

// NewCornellScene creates the classic Cornell box: colored side walls, a
// rectangular ceiling light, two rotated boxes and a white sphere
func NewCornellScene() *Scene {
	mats := newCornellMaterials()
	s := newCornellRoom("cornell", mats)

	s.Add(
		shortBox(mats.white),
		tallBox(mats.white),
		geometry.NewSphere(core.NewVec3(200, 250, 200), 50, mats.white),
	)

	return s
}

// NewCornellSmokeScene replaces the two boxes with white and black smoke
func NewCornellSmokeScene() *Scene {
	mats := newCornellMaterials()
	s := newCornellRoom("cornell-smoke", mats)

	s.Add(
		geometry.NewConstantMedium(shortBox(mats.white), 0.01, core.NewVec3(1, 1, 1)),
		geometry.NewConstantMedium(tallBox(mats.white), 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewSphere(core.NewVec3(200, 250, 200), 50, mats.white),
	)

	return s
}

// NewCornellMotionScene makes the sphere move sideways while the shutter is open
func NewCornellMotionScene() *Scene {
	mats := newCornellMaterials()
	s := newCornellRoom("cornell-motion", mats)

	s.Add(
		shortBox(mats.white),
		tallBox(mats.white),
		geometry.NewMovingSphere(core.NewVec3(200, 250, 200), core.NewVec3(260, 250, 200), 0, 1, 50, mats.white),
	)

	return s
}
