package material

import (
	"testing"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
)

func TestDiffuseLight(t *testing.T) {
	tests := []struct {
		name     string
		emission core.Vec3
	}{
		{"White emission", core.NewVec3(15, 15, 15)},
		{"Red emission", core.NewVec3(1, 0, 0)},
		{"Zero emission", core.NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewDiffuseLight(tt.emission)

			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
			hit := HitRecord{
				Point:    core.NewVec3(1, 0, 0),
				Normal:   core.NewVec3(-1, 0, 0),
				T:        1.0,
				Material: light,
			}

			if _, scattered := light.Scatter(ray, hit, core.NewSeededSampler(42)); scattered {
				t.Error("Diffuse light should not scatter rays")
			}
			if got := light.Emitted(core.NewVec2(0.3, 0.7), hit.Point); got != tt.emission {
				t.Errorf("Expected emission %v, got %v", tt.emission, got)
			}
			if pdf := light.ScatteringPDF(ray, hit, ray); pdf != 0 {
				t.Errorf("Expected zero scattering PDF, got %f", pdf)
			}
		})
	}
}
