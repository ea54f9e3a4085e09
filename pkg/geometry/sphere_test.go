package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
	"github.com/df07/go-cornell-pathtracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_OutwardNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "hit from outside",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			// The normal stays geometric even when hit from inside
			name:           "hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 3, 0),
			rayDirection:   core.NewVec3(0, -2, 0),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_RespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	// Near root at t=4 is excluded, far root at t=6 is inside
	hit, ok := sphere.Hit(ray, 4.5, 10, nil)
	if !ok || math.Abs(hit.T-6) > 1e-9 {
		t.Fatalf("Expected far root t=6, got %v %v", hit, ok)
	}

	if _, ok := sphere.Hit(ray, 0.001, 3.9, nil); ok {
		t.Error("Expected miss when both roots are beyond tMax")
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		point core.Vec3
		uv    core.Vec2
	}{
		{core.NewVec3(1, 0, 0), core.NewVec2(0.5, 0.5)},
		{core.NewVec3(0, 1, 0), core.NewVec2(0.5, 1.0)},
		{core.NewVec3(0, -1, 0), core.NewVec2(0.5, 0.0)},
		{core.NewVec3(-1, 0, 0), core.NewVec2(0.0, 0.5)},
		{core.NewVec3(0, 0, 1), core.NewVec2(0.25, 0.5)},
		{core.NewVec3(0, 0, -1), core.NewVec2(0.75, 0.5)},
	}

	for _, tt := range tests {
		uv := sphereUV(tt.point)
		if math.Abs(uv.X-tt.uv.X) > 1e-9 || math.Abs(uv.Y-tt.uv.Y) > 1e-9 {
			t.Errorf("sphereUV(%v) = %v, expected %v", tt.point, uv, tt.uv)
		}
	}
}

func TestMovingSphere(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0, 1, 0.5, mat)

	if c := sphere.CenterAt(0.5); c != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected center (0,1,0) at t=0.5, got %v", c)
	}

	// A ray along x at y=2 only hits when the sphere has arrived there
	early := core.NewRayAtTime(core.NewVec3(-5, 2, 0), core.NewVec3(1, 0, 0), 0)
	late := core.NewRayAtTime(core.NewVec3(-5, 2, 0), core.NewVec3(1, 0, 0), 1)

	if _, ok := sphere.Hit(early, 0.001, math.Inf(1), nil); ok {
		t.Error("Expected miss at shutter open")
	}
	hit, ok := sphere.Hit(late, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("Expected hit at shutter close")
	}
	if math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected t=4.5, got %f", hit.T)
	}
	if hit.Material != mat {
		t.Error("Expected hit to carry the sphere's material")
	}

	box := sphere.BoundingBox()
	expected := core.NewAABB(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 2.5, 0.5))
	if box != expected {
		t.Errorf("Expected box %v covering the whole motion, got %v", expected, box)
	}
}
