// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "errors"

// Surface is a presentation target for packed ARGB8888 frames.
//
// Surfaces are NOT thread-safe. The renderer drives them from a single
// goroutine.
type Surface interface {
	// Create acquires the display subsystem, window, render target and
	// texture for a frame of exactly opts.Width×opts.Height pixels.
	// On failure everything acquired so far is released.
	Create(opts Options) error

	// Upload copies a full frame into the texture. Nothing else is redrawn.
	// len(pix) must equal Width*Height.
	Upload(pix []uint32) error

	// Present shows the last uploaded frame. Backends with vsync block here
	// (or in their loop) until the next refresh.
	Present() error

	// Destroy releases all resources in reverse acquisition order.
	// Destroy is idempotent and safe after a failed Create.
	Destroy() error
}

// FrameFunc runs one tick of the application loop.
// Returning ErrStop ends the loop without error.
type FrameFunc func() error

// Driver is implemented by surfaces whose platform owns the event loop.
// Run calls frame once per display refresh until it returns an error.
type Driver interface {
	Surface

	Run(frame FrameFunc) error
}

// Sentinel errors shared by all backends.
var (
	// ErrStop is returned by a FrameFunc to end the loop cleanly.
	ErrStop = errors.New("surface: stop requested")

	// ErrNotCreated is returned when Upload or Present is called before
	// Create or after Destroy.
	ErrNotCreated = errors.New("surface: not created")

	// ErrAlreadyCreated is returned when Create is called on a live surface.
	ErrAlreadyCreated = errors.New("surface: already created")

	// ErrSizeMismatch is returned when an uploaded frame has the wrong length.
	ErrSizeMismatch = errors.New("surface: frame size mismatch")

	// ErrInvalidOptions is returned when Options fail validation.
	ErrInvalidOptions = errors.New("surface: invalid options")
)
