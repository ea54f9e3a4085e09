package renderer

import "errors"

var (
	ErrInvalidDimensions = errors.New("renderer: frame width and height must be positive")
	ErrInvalidSamples    = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidDepth      = errors.New("renderer: max depth must be at least 1")
	ErrSceneNotDefined   = errors.New("renderer: no scene defined")
	ErrInterrupted       = errors.New("renderer: interrupted while rendering")
)
