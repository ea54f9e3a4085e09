package renderer

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
)

// Config holds the settings fixed at the start of a render
type Config struct {
	// Frame dims.
	Width  int
	Height int

	// Number of samples.
	SamplesPerPixel int

	// Bounce count after which paths return emission only.
	MaxDepth int

	// Number of parallel workers; zero or less means one per physical core.
	NumWorkers int

	// Base seed. Worker i samples with Seed+i.
	Seed int64
}

// DefaultConfig returns a 512x512, 100 spp render with one worker per core
func DefaultConfig() Config {
	return Config{
		Width:           512,
		Height:          512,
		SamplesPerPixel: 100,
		MaxDepth:        3,
		NumWorkers:      DefaultNumWorkers(),
		Seed:            42,
	}
}

// Validate checks that the configuration describes a renderable frame
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerPixel)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, c.MaxDepth)
	}
	return nil
}

// DefaultNumWorkers returns the number of physical cores, falling back to
// logical cores when the physical count is unavailable
func DefaultNumWorkers() int {
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}
