// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// ImageBackend is the registry name of the headless image surface.
const ImageBackend = "image"

// ImageSurface is a headless surface that presents into an *image.RGBA.
//
// It stands in for a window when no display is reachable, and can write
// every n-th presented frame to disk as a PNG.
//
// Example:
//
//	s := surface.NewImageSurface()
//	opts := surface.DefaultOptions(320, 240)
//	opts.FrameDir = "frames"
//	if err := s.Create(opts); err != nil {
//	    return err
//	}
//	defer s.Destroy()
type ImageSurface struct {
	opts Options

	// texture receives uploads; front holds the last presented frame.
	texture *image.RGBA
	front   *image.RGBA

	uploaded bool
	frames   int
	written  int
}

// NewImageSurface returns an uncreated headless surface.
func NewImageSurface() *ImageSurface {
	return &ImageSurface{}
}

// Create allocates the texture and front buffer and, if configured,
// the frame output directory.
func (s *ImageSurface) Create(opts Options) error {
	if s.texture != nil {
		return ErrAlreadyCreated
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.FrameEvery == 0 {
		opts.FrameEvery = 1
	}
	if opts.FrameDir != "" {
		if err := os.MkdirAll(opts.FrameDir, 0o755); err != nil {
			return fmt.Errorf("surface: frame directory: %w", err)
		}
	}

	rect := image.Rect(0, 0, opts.Width, opts.Height)
	s.opts = opts
	s.texture = image.NewRGBA(rect)
	s.front = image.NewRGBA(rect)
	s.uploaded = false
	s.frames = 0
	s.written = 0

	Logger().Info("surface: image created", "width", opts.Width, "height", opts.Height, "frameDir", opts.FrameDir)
	return nil
}

// Upload expands pix into the texture.
func (s *ImageSurface) Upload(pix []uint32) error {
	if s.texture == nil {
		return ErrNotCreated
	}
	if len(pix) != s.opts.Pixels() {
		return fmt.Errorf("%w: got %d pixels, want %d", ErrSizeMismatch, len(pix), s.opts.Pixels())
	}
	ExpandARGB(s.texture.Pix, pix)
	s.uploaded = true
	return nil
}

// Present copies the texture to the front buffer and writes it to disk
// when a frame directory is configured.
func (s *ImageSurface) Present() error {
	if s.texture == nil {
		return ErrNotCreated
	}
	if s.uploaded {
		copy(s.front.Pix, s.texture.Pix)
	}
	s.frames++

	if s.opts.FrameDir == "" || (s.frames-1)%s.opts.FrameEvery != 0 {
		return nil
	}
	path := filepath.Join(s.opts.FrameDir, fmt.Sprintf("frame-%05d.png", s.frames-1))
	if err := savePNG(path, s.front); err != nil {
		return err
	}
	s.written++
	return nil
}

// Destroy releases the buffers. It is idempotent.
func (s *ImageSurface) Destroy() error {
	if s.texture == nil {
		return nil
	}
	Logger().Info("surface: image destroyed", "frames", s.frames, "written", s.written)
	s.front = nil
	s.texture = nil
	return nil
}

// Frames returns the number of frames presented since Create.
func (s *ImageSurface) Frames() int {
	return s.frames
}

// Written returns the number of frames written to FrameDir.
func (s *ImageSurface) Written() int {
	return s.written
}

// Snapshot returns a copy of the last presented frame, or nil if the
// surface is not created.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.front == nil {
		return nil
	}
	img := image.NewRGBA(s.front.Rect)
	copy(img.Pix, s.front.Pix)
	return img
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is built from the configured frame directory
	if err != nil {
		return fmt.Errorf("surface: write frame: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("surface: encode frame: %w", err)
	}
	return f.Close()
}
