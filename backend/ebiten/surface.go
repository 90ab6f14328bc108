// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebiten provides a windowed surface backed by Ebitengine.
//
// Importing the package registers the "ebiten" backend with the surface
// registry:
//
//	import _ "github.com/gogpu/particles/backend/ebiten"
//
// Ebitengine owns the platform event loop, so Surface implements
// surface.Driver and the pipeline hands its tick to Run.
package ebiten

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/particles/surface"
)

// Name is the registry name of the backend.
const Name = "ebiten"

// Priority ranks the backend above the headless image surface.
const Priority = 100

func init() {
	surface.Register(Name, Priority, func() (surface.Surface, error) {
		return New(), nil
	}, Available)
}

// Available reports whether a display is likely reachable.
func Available() bool {
	if runtime.GOOS != "linux" && runtime.GOOS != "freebsd" {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// Surface presents frames in an Ebitengine window.
type Surface struct {
	opts    surface.Options
	texture *ebiten.Image
	staging []byte
	shown   bool
	frame   surface.FrameFunc
	err     error
}

// New returns a surface that is not yet created.
func New() *Surface {
	return &Surface{}
}

// Create configures the window and allocates the frame texture and its
// RGBA staging buffer.
func (s *Surface) Create(opts surface.Options) error {
	if s.texture != nil {
		return surface.ErrAlreadyCreated
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}

	ebiten.SetWindowSize(opts.Width*opts.Scale, opts.Height*opts.Scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetVsyncEnabled(opts.VSync)
	ebiten.SetTPS(ebiten.DefaultTPS)

	s.opts = opts
	s.texture = ebiten.NewImage(opts.Width, opts.Height)
	s.staging = make([]byte, 4*opts.Pixels())
	s.shown = false
	surface.Logger().Info("ebiten: surface created",
		"width", opts.Width, "height", opts.Height, "scale", opts.Scale, "vsync", opts.VSync)
	return nil
}

// Upload writes a frame into the texture.
func (s *Surface) Upload(pix []uint32) error {
	if s.texture == nil {
		return surface.ErrNotCreated
	}
	if len(pix) != s.opts.Pixels() {
		return fmt.Errorf("%w: got %d pixels, want %d", surface.ErrSizeMismatch, len(pix), s.opts.Pixels())
	}
	surface.ExpandARGB(s.staging, pix)
	s.texture.WritePixels(s.staging)
	return nil
}

// Present marks the texture as the frame to show. The flip happens when
// Ebitengine next calls Draw, paced by vsync.
func (s *Surface) Present() error {
	if s.texture == nil {
		return surface.ErrNotCreated
	}
	s.shown = true
	return nil
}

// Destroy releases the texture and the staging buffer.
func (s *Surface) Destroy() error {
	if s.texture == nil {
		return nil
	}
	s.texture.Deallocate()
	s.texture = nil
	s.staging = nil
	s.shown = false
	surface.Logger().Info("ebiten: surface destroyed")
	return nil
}

// Run starts the Ebitengine loop and calls frame once per tick until it
// returns an error. surface.ErrStop ends the loop without error.
func (s *Surface) Run(frame surface.FrameFunc) error {
	if s.texture == nil {
		return surface.ErrNotCreated
	}
	s.frame = frame
	s.err = nil
	defer func() { s.frame = nil }()

	err := ebiten.RunGame(game{s})
	if s.err != nil {
		return s.err
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// game adapts Surface to ebiten.Game.
type game struct {
	s *Surface
}

func (g game) Update() error {
	if err := g.s.frame(); err != nil {
		if !errors.Is(err, surface.ErrStop) {
			g.s.err = err
		}
		return ebiten.Termination
	}
	return nil
}

func (g game) Draw(screen *ebiten.Image) {
	if !g.s.shown || g.s.texture == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.s.opts.Scale), float64(g.s.opts.Scale))
	screen.DrawImage(g.s.texture, op)
}

func (g game) Layout(_, _ int) (int, int) {
	return g.s.opts.Width * g.s.opts.Scale, g.s.opts.Height * g.s.opts.Scale
}

var _ surface.Driver = (*Surface)(nil)
