// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the presentation-surface abstraction used by the
// particle renderer.
//
// A Surface is the display side of the pipeline: it owns whatever window,
// render target and texture a backend needs, accepts a packed ARGB8888 frame
// through Upload, and shows it on Present. The compositor and canvas never see
// backend types, so they can be tested without a display.
//
// # Lifecycle
//
//	s, err := surface.NewSurfaceByName("image")
//	if err != nil {
//	    return err
//	}
//	if err := s.Create(surface.DefaultOptions(800, 600)); err != nil {
//	    return err
//	}
//	defer s.Destroy()
//
//	s.Upload(pixels) // len(pixels) == 800*600
//	s.Present()
//
// Create acquires resources in a fixed order. If any step fails the backend
// releases what it already holds before returning, so a failed Create leaves
// nothing to destroy. Destroy releases in reverse order and is idempotent.
//
// # Backends
//
// Backends register themselves by name with a priority:
//
//	surface.Register("ebiten", 100, factory, displayAvailable)
//
// The built-in "image" backend (priority 10) is a headless CPU target that
// can dump presented frames as PNG files. Windowed backends live under
// backend/ and usually implement Driver, because their platform owns the
// event loop.
package surface
