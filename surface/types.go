// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "fmt"

// Options configures surface creation.
type Options struct {
	// Width is the frame width in pixels.
	Width int

	// Height is the frame height in pixels.
	Height int

	// Title is the window title for windowed backends.
	Title string

	// Scale is the integer window scale factor for windowed backends.
	// Default: 1
	Scale int

	// VSync enables waiting for the display refresh on Present.
	// Default: true
	VSync bool

	// FrameDir, if set, makes the image backend write presented frames
	// there as PNG files.
	FrameDir string

	// FrameEvery writes every n-th presented frame. Default: 1
	FrameEvery int
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:      width,
		Height:     height,
		Title:      "Particles",
		Scale:      1,
		VSync:      true,
		FrameEvery: 1,
	}
}

// Validate reports whether the options describe a usable frame.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.Scale < 0 {
		return fmt.Errorf("%w: scale %d", ErrInvalidOptions, o.Scale)
	}
	if o.FrameEvery < 0 {
		return fmt.Errorf("%w: frame interval %d", ErrInvalidOptions, o.FrameEvery)
	}
	return nil
}

// Pixels returns Width*Height.
func (o Options) Pixels() int {
	return o.Width * o.Height
}

// ExpandARGB converts packed ARGB8888 words into RGBA bytes.
// Alpha is forced to 0xFF; the display treats every pixel as opaque.
// dst must hold at least 4*len(src) bytes.
func ExpandARGB(dst []byte, src []uint32) {
	if len(src) == 0 {
		return
	}
	_ = dst[4*len(src)-1]
	for i, p := range src {
		j := i * 4
		dst[j+0] = byte(p >> 16)
		dst[j+1] = byte(p >> 8)
		dst[j+2] = byte(p)
		dst[j+3] = 0xFF
	}
}
