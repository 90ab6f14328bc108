// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"
)

func imageFactory() (Surface, error) {
	return NewImageSurface(), nil
}

// TestRegistryRegister tests backend registration.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, imageFactory, nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if entry.Name != "test" {
		t.Errorf("Name = %s, want test", entry.Name)
	}
	if entry.Priority != 50 {
		t.Errorf("Priority = %d, want 50", entry.Priority)
	}
	if !entry.Available() {
		t.Error("backend should be available (nil Available func)")
	}
}

// TestRegistryUnregister tests backend removal.
func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("temp", 10, imageFactory, nil)

	if _, ok := r.Get("temp"); !ok {
		t.Fatal("backend should exist before unregister")
	}
	r.Unregister("temp")
	if _, ok := r.Get("temp"); ok {
		t.Error("backend should not exist after unregister")
	}
}

// TestRegistryList tests priority ordering.
func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, imageFactory, nil)
	r.Register("high", 100, imageFactory, nil)
	r.Register("mid", 50, imageFactory, nil)

	list := r.List()
	want := []string{"high", "mid", "low"}
	if len(list) != len(want) {
		t.Fatalf("expected %d backends, got %d", len(want), len(list))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("list[%d] = %s, want %s", i, list[i], want[i])
		}
	}
}

// TestRegistryAvailableSkipsUnavailable tests that NewSurface falls back.
func TestRegistryAvailableSkipsUnavailable(t *testing.T) {
	r := NewRegistry()
	r.Register("window", 100, func() (Surface, error) {
		t.Error("factory of unavailable backend must not run")
		return nil, nil
	}, func() bool { return false })
	r.Register("image", 10, imageFactory, nil)

	avail := r.Available()
	if len(avail) != 1 || avail[0] != "image" {
		t.Fatalf("Available() = %v, want [image]", avail)
	}

	s, err := r.NewSurface()
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("NewSurface() = %T, want *ImageSurface", s)
	}
}

// TestRegistryFactoryError tests that a failing factory falls through.
func TestRegistryFactoryError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("broken", 100, func() (Surface, error) { return nil, boom }, nil)

	if _, err := r.NewSurface(); !errors.Is(err, boom) {
		t.Errorf("NewSurface() error = %v, want %v", err, boom)
	}

	r.Register("image", 10, imageFactory, nil)
	if _, err := r.NewSurface(); err != nil {
		t.Errorf("NewSurface() with fallback error = %v", err)
	}
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry()

	if _, err := r.NewSurface(); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("empty registry: error = %v, want ErrNoBackendAvailable", err)
	}

	_, err := r.NewSurfaceByName("missing")
	var nf *BackendNotFoundError
	if !errors.As(err, &nf) || nf.Name != "missing" {
		t.Errorf("NewSurfaceByName(missing) error = %v, want BackendNotFoundError", err)
	}

	r.Register("off", 1, imageFactory, func() bool { return false })
	_, err = r.NewSurfaceByName("off")
	var ua *BackendUnavailableError
	if !errors.As(err, &ua) || ua.Name != "off" {
		t.Errorf("NewSurfaceByName(off) error = %v, want BackendUnavailableError", err)
	}
}

func TestGlobalRegistryHasImage(t *testing.T) {
	entry, ok := Get(ImageBackend)
	if !ok {
		t.Fatal("image backend not registered")
	}
	if entry.Priority != 10 {
		t.Errorf("image priority = %d, want 10", entry.Priority)
	}
	s, err := NewSurfaceByName(ImageBackend)
	if err != nil {
		t.Fatalf("NewSurfaceByName(image) error = %v", err)
	}
	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("got %T, want *ImageSurface", s)
	}
}
