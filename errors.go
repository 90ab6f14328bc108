package particles

import "errors"

// Sentinel errors for the rendering core.
var (
	// ErrInvalidSize is returned when a buffer is requested with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("particles: invalid canvas size")

	// ErrSizeMismatch is returned when a canvas and the trail buffer
	// disagree on dimensions.
	ErrSizeMismatch = errors.New("particles: canvas size does not match trail buffer")

	// ErrNotInitialized is returned by pipeline operations that need a
	// live surface and buffers.
	ErrNotInitialized = errors.New("particles: pipeline not initialized")

	// ErrAlreadyInitialized is returned when Init is called twice.
	ErrAlreadyInitialized = errors.New("particles: pipeline already initialized")
)
