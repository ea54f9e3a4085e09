package core

import (
	"math"
	"testing"
)

func TestSampleCosineHemisphere_StaysAboveSurface(t *testing.T) {
	sampler := NewSeededSampler(42)
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(0, -1, 0),
		NewVec3(1, 0, 0),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, normal := range normals {
		for i := 0; i < 1000; i++ {
			dir := SampleCosineHemisphere(normal, sampler.Get2D())
			if dir.Dot(normal) < -1e-12 {
				t.Fatalf("Direction %v points below surface with normal %v", dir, normal)
			}
			if math.Abs(dir.Length()-1) > 1e-9 {
				t.Fatalf("Expected unit direction, got length %f", dir.Length())
			}
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 {
			t.Fatalf("Disk sample must lie in z=0 plane, got %v", p)
		}
		if p.LengthSquared() > 1+1e-12 {
			t.Fatalf("Disk sample %v lies outside the unit disk", p)
		}
	}

	if p := SamplePointInUnitDisk(NewVec2(0.5, 0.5)); p != NewVec3(0, 0, 0) {
		t.Errorf("Center sample should map to origin, got %v", p)
	}
}

func TestSampleOnUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		d := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", d.Length())
		}
	}
}

func TestSeededSamplerIsDeterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Samplers with the same seed diverged")
		}
	}
}
