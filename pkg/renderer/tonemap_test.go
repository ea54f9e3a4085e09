package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
)

func TestToneMap(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		expected uint32
	}{
		{"black", core.NewVec3(0, 0, 0), 0xFF000000},
		{"white", core.NewVec3(1, 1, 1), 0xFFFFFFFF},
		{"gamma 2", core.NewVec3(0.25, 0.49, 0.81), 0xFF<<24 | 127<<16 | 179<<8 | 230},
		{"overexposed clamps", core.NewVec3(15, 2, 1.01), 0xFFFFFFFF},
		{"negative clamps", core.NewVec3(-1, 0, 0), 0xFF000000},
		{"NaN is black", core.NewVec3(math.NaN(), 1, 1), 0xFF00FFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToneMap(tt.color); got != tt.expected {
				t.Errorf("ToneMap(%v) = %#08x, expected %#08x", tt.color, got, tt.expected)
			}
		})
	}
}

func TestUnpack(t *testing.T) {
	r, g, b, a := Unpack(0xFF<<24 | 127<<16 | 179<<8 | 230)
	if r != 127 || g != 179 || b != 230 || a != 255 {
		t.Errorf("Unexpected channels %d %d %d %d", r, g, b, a)
	}
}

func TestSanitize(t *testing.T) {
	if c, ok := sanitize(core.NewVec3(1, 2, 3)); !ok || c != core.NewVec3(1, 2, 3) {
		t.Errorf("Finite positive sample should pass unchanged, got %v %t", c, ok)
	}
	if c, ok := sanitize(core.NewVec3(-1, 2, -0.5)); !ok || c != core.NewVec3(0, 2, 0) {
		t.Errorf("Negative components should clamp to zero, got %v %t", c, ok)
	}
	for _, bad := range []core.Vec3{
		core.NewVec3(math.NaN(), 0, 0),
		core.NewVec3(0, math.Inf(1), 0),
		core.NewVec3(0, 0, math.Inf(-1)),
	} {
		if c, ok := sanitize(bad); ok || c != (core.Vec3{}) {
			t.Errorf("Non-finite sample %v should be dropped, got %v %t", bad, c, ok)
		}
	}
}
