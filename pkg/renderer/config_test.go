package renderer

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{Width: 4, Height: 3, SamplesPerPixel: 1, MaxDepth: 1}

	tests := []struct {
		name     string
		mutate   func(c *Config)
		expected error
	}{
		{"valid", func(c *Config) {}, nil},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(c *Config) { c.Height = -1 }, ErrInvalidDimensions},
		{"zero samples", func(c *Config) { c.SamplesPerPixel = 0 }, ErrInvalidSamples},
		{"zero depth", func(c *Config) { c.MaxDepth = 0 }, ErrInvalidDepth},
		{"zero workers is allowed", func(c *Config) { c.NumWorkers = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)
			err := config.Validate()
			if tt.expected == nil && err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if tt.expected != nil && !errors.Is(err, tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Width != 512 || config.Height != 512 || config.SamplesPerPixel != 100 || config.MaxDepth != 3 {
		t.Errorf("Unexpected defaults %+v", config)
	}
	if config.NumWorkers < 1 {
		t.Errorf("Expected at least one worker, got %d", config.NumWorkers)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}
