// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestImageSurfaceLifecycle(t *testing.T) {
	s := NewImageSurface()

	if err := s.Upload(make([]uint32, 4)); !errors.Is(err, ErrNotCreated) {
		t.Errorf("Upload before Create: %v, want ErrNotCreated", err)
	}
	if err := s.Present(); !errors.Is(err, ErrNotCreated) {
		t.Errorf("Present before Create: %v, want ErrNotCreated", err)
	}

	if err := s.Create(DefaultOptions(2, 2)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.Create(DefaultOptions(2, 2)); !errors.Is(err, ErrAlreadyCreated) {
		t.Errorf("second Create: %v, want ErrAlreadyCreated", err)
	}

	if err := s.Destroy(); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if err := s.Destroy(); err != nil {
		t.Errorf("second Destroy() error = %v, want nil", err)
	}
	if s.Snapshot() != nil {
		t.Error("Snapshot after Destroy should be nil")
	}
}

func TestImageSurfaceInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"zero width", Options{Width: 0, Height: 4}},
		{"negative height", Options{Width: 4, Height: -1}},
		{"negative scale", Options{Width: 4, Height: 4, Scale: -2}},
		{"negative interval", Options{Width: 4, Height: 4, FrameEvery: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewImageSurface()
			if err := s.Create(tt.opts); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("Create(%+v) = %v, want ErrInvalidOptions", tt.opts, err)
			}
			if err := s.Upload(nil); !errors.Is(err, ErrNotCreated) {
				t.Errorf("failed Create left a live surface: %v", err)
			}
		})
	}
}

func TestImageSurfaceUploadPresent(t *testing.T) {
	s := NewImageSurface()
	if err := s.Create(DefaultOptions(2, 1)); err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()

	if err := s.Upload(make([]uint32, 3)); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Upload(3 pixels) = %v, want ErrSizeMismatch", err)
	}

	if err := s.Upload([]uint32{0x00102030, 0xFFFF0000}); err != nil {
		t.Fatal(err)
	}

	// Upload alone does not change what is on screen.
	if got := s.Snapshot().Pix[0:4]; got[0] != 0 || got[3] != 0 {
		t.Errorf("front buffer changed before Present: %v", got)
	}

	if err := s.Present(); err != nil {
		t.Fatal(err)
	}
	img := s.Snapshot()
	want := []byte{0x10, 0x20, 0x30, 0xFF, 0xFF, 0x00, 0x00, 0xFF}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = %#x, want %#x", i, img.Pix[i], b)
		}
	}
	if s.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", s.Frames())
	}
}

func TestImageSurfaceWritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	opts := DefaultOptions(3, 3)
	opts.FrameDir = dir
	opts.FrameEvery = 2

	s := NewImageSurface()
	if err := s.Create(opts); err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()

	pix := make([]uint32, 9)
	pix[4] = 0xFFFFFFFF
	for range 5 {
		if err := s.Upload(pix); err != nil {
			t.Fatal(err)
		}
		if err := s.Present(); err != nil {
			t.Fatal(err)
		}
	}

	if s.Written() != 3 {
		t.Errorf("Written() = %d, want 3 (frames 0, 2, 4)", s.Written())
	}

	f, err := os.Open(filepath.Join(dir, "frame-00004.png"))
	if err != nil {
		t.Fatalf("expected frame-00004.png: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if r, g, b, _ := img.At(1, 1).RGBA(); r != 0xFFFF || g != 0xFFFF || b != 0xFFFF {
		t.Errorf("centre pixel = (%#x,%#x,%#x), want white", r, g, b)
	}
	if _, err := os.Stat(filepath.Join(dir, "frame-00001.png")); !os.IsNotExist(err) {
		t.Errorf("frame-00001.png should not be written, stat err = %v", err)
	}
}

func TestExpandARGB(t *testing.T) {
	src := []uint32{0xAA112233, 0x00000000, 0xFFFFFFFF}
	dst := make([]byte, 12)
	ExpandARGB(dst, src)

	want := []byte{
		0x11, 0x22, 0x33, 0xFF,
		0x00, 0x00, 0x00, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %#x, want %#x", i, dst[i], want[i])
		}
	}

	// Empty input is a no-op.
	ExpandARGB(nil, nil)
}
