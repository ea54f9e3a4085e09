package scene

import (
	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/geometry"
	"github.com/df07/go-cornell-pathtracer/pkg/lights"
	"github.com/df07/go-cornell-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering. After Preprocess
// it is never mutated and may be read by any number of workers.
type Scene struct {
	Name           string
	Shapes         []geometry.Shape // Objects in the scene
	Light          lights.Light     // The light sampled for direct lighting, nil if the scene is dark
	CameraConfig   geometry.CameraConfig
	SamplingConfig SamplingConfig
	BVH            *geometry.BVH // Acceleration structure for ray-object intersection
}

// SamplingConfig contains the render settings a scene recommends
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// Preprocess builds the acceleration structure over the scene's shapes
func (s *Scene) Preprocess() error {
	s.BVH = geometry.NewBVH(s.Shapes)
	return nil
}

// Root returns the shape rays are traced against: the BVH once built,
// otherwise a flat list of the scene's shapes
func (s *Scene) Root() geometry.Shape {
	if s.BVH != nil {
		return s.BVH
	}
	return geometry.NewHittableList(s.Shapes...)
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddRectLight adds an emitting rectangle to the scene and makes it the
// scene's sampled light, replacing any previous one
func (s *Scene) AddRectLight(rect *geometry.AARect, emission core.Vec3) *lights.RectLight {
	rect.Material = material.NewDiffuseLight(emission)
	light := lights.NewRectLight(rect)
	s.Light = light
	s.Shapes = append(s.Shapes, rect)
	return light
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts the leaf primitives behind decorators and aggregates
func countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.FlipNormals:
		return countPrimitivesInShape(obj.Shape)
	case *geometry.Translate:
		return countPrimitivesInShape(obj.Shape)
	case *geometry.RotateY:
		return countPrimitivesInShape(obj.Shape)
	case *geometry.ConstantMedium:
		return countPrimitivesInShape(obj.Boundary)
	case *geometry.Box:
		return 6
	case *geometry.HittableList:
		count := 0
		for _, child := range obj.Shapes {
			count += countPrimitivesInShape(child)
		}
		return count
	default:
		// Regular shapes count as 1 primitive each
		return 1
	}
}
