package renderer

import (
	"math"

	"github.com/df07/go-cornell-pathtracer/pkg/core"
)

// ToneMap converts a linear RGB value to a packed 0xAARRGGBB display pixel:
// gamma 2 (square root), then floor(255.99·v) per channel, clamped to a byte.
// Alpha is always opaque so a written pixel is never zero.
func ToneMap(color core.Vec3) uint32 {
	gamma := color.Sqrt()
	return 0xFF<<24 | quantize(gamma.X)<<16 | quantize(gamma.Y)<<8 | quantize(gamma.Z)
}

func quantize(v float64) uint32 {
	q := math.Floor(255.99 * v)
	if !(q > 0) { // also catches NaN
		return 0
	}
	if q > 255 {
		return 255
	}
	return uint32(q)
}

// Unpack splits a packed pixel into its channels
func Unpack(pixel uint32) (r, g, b, a uint8) {
	return uint8(pixel >> 16), uint8(pixel >> 8), uint8(pixel), uint8(pixel >> 24)
}

// sanitize isolates a bad sample: non-finite radiance is dropped and
// negative components are clamped to zero. ok is false if the sample was dropped.
func sanitize(color core.Vec3) (core.Vec3, bool) {
	if !color.IsFinite() {
		return core.Vec3{}, false
	}
	return core.NewVec3(math.Max(0, color.X), math.Max(0, color.Y), math.Max(0, color.Z)), true
}
