package particles

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/particles/surface"
	"github.com/gogpu/particles/text"
)

// Scene is what a Pipeline draws each tick.
type Scene interface {
	// Update advances the scene by one tick. Returning surface.ErrStop
	// ends Run without error.
	Update() error

	// Draw writes the scene into the canvas with SetPixel.
	Draw(c *Canvas)

	// OverlayFade returns the help overlay intensity. Zero hides it.
	OverlayFade() uint8
}

type pipelineState int

const (
	stateUninitialized pipelineState = iota
	stateInitialized
	stateTerminated
)

// Pipeline owns the canvas, the trail and the display surface and runs
// the per-tick sequence: clear, draw, composite, overlay, upload, present.
//
// A Pipeline is not safe for concurrent use.
type Pipeline struct {
	opts    Options
	surface surface.Surface
	font    *text.FontSource

	state      pipelineState
	canvas     *Canvas
	compositor *Compositor
	overlay    *Overlay

	// release holds teardown steps in acquisition order.
	release []func() error
	frames  int
}

// New returns an uninitialized pipeline presenting to s.
// A zero FontSize falls back to DefaultFontSize.
func New(s surface.Surface, opts Options, options ...PipelineOption) *Pipeline {
	var po pipelineOptions
	for _, opt := range options {
		opt(&po)
	}
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultFontSize
	}
	return &Pipeline{
		opts:    opts,
		surface: s,
		font:    po.font,
	}
}

// Init acquires the surface, the canvas, the trail and the overlay, in
// that order. On failure everything already acquired is released and no
// partial state survives.
func (p *Pipeline) Init() (err error) {
	if p.state == stateInitialized {
		return ErrAlreadyInitialized
	}
	if p.surface == nil {
		return fmt.Errorf("particles: init: %w", surface.ErrNotCreated)
	}

	defer func() {
		if err != nil {
			if rerr := p.unwind(); rerr != nil {
				Logger().Warn("particles: release after failed init", "err", rerr)
			}
		}
	}()

	so := p.opts.surfaceOptions()
	if err := p.surface.Create(so); err != nil {
		return fmt.Errorf("particles: create surface: %w", err)
	}
	p.release = append(p.release, p.surface.Destroy)

	canvas, err := NewCanvas(p.opts.Width, p.opts.Height)
	if err != nil {
		return fmt.Errorf("particles: allocate canvas: %w", err)
	}
	p.canvas = canvas
	p.release = append(p.release, func() error {
		p.canvas = nil
		return nil
	})

	comp, err := NewCompositor(p.opts.Width, p.opts.Height, p.opts.Decay)
	if err != nil {
		return fmt.Errorf("particles: allocate trail: %w", err)
	}
	p.compositor = comp
	p.release = append(p.release, func() error {
		p.compositor = nil
		return nil
	})

	p.overlay = p.loadOverlay()
	p.release = append(p.release, func() error {
		p.overlay = nil
		return nil
	})

	p.state = stateInitialized
	p.frames = 0
	Logger().Info("particles: pipeline initialized",
		"width", p.opts.Width, "height", p.opts.Height,
		"decay", p.opts.Decay, "labels", p.overlay.Len())
	return nil
}

// loadOverlay builds the help overlay. A font that cannot be loaded is
// not fatal; the overlay is left empty.
func (p *Pipeline) loadOverlay() *Overlay {
	src := p.font
	if src == nil {
		loaded, err := LoadFont(p.opts.FontPath)
		if err != nil {
			Logger().Warn("particles: font unavailable, overlay disabled", "path", p.opts.FontPath, "err", err)
			return NewOverlay(nil, 0, nil)
		}
		src = loaded
		if p.opts.FontPath != "" {
			// Masks are rasterised now; the file-backed source is not needed after.
			defer func() { _ = src.Close() }()
		}
	}
	Logger().Debug("particles: font loaded", "name", src.Name(), "size", p.opts.FontSize)
	return NewOverlay(src, p.opts.FontSize, p.opts.Labels)
}

// unwind runs the release steps in reverse order and clears them.
func (p *Pipeline) unwind() error {
	var errs []error
	for i := len(p.release) - 1; i >= 0; i-- {
		if err := p.release[i](); err != nil {
			errs = append(errs, err)
		}
	}
	p.release = nil
	return errors.Join(errs...)
}

// Close releases the overlay, the trail, the canvas and the surface in
// reverse acquisition order. Close is idempotent and safe after a failed
// Init.
func (p *Pipeline) Close() error {
	if p.state != stateInitialized {
		return nil
	}
	p.state = stateTerminated
	err := p.unwind()
	if err != nil {
		Logger().Warn("particles: release failed", "err", err)
		return fmt.Errorf("particles: close: %w", err)
	}
	Logger().Info("particles: pipeline closed", "frames", p.frames)
	return nil
}

// Canvas returns the current frame, or nil when the pipeline is not
// initialized.
func (p *Pipeline) Canvas() *Canvas {
	return p.canvas
}

// Frames returns the number of frames presented since Init.
func (p *Pipeline) Frames() int {
	return p.frames
}

// Clear fills the canvas with the background color.
func (p *Pipeline) Clear() {
	if p.state != stateInitialized {
		return
	}
	if p.opts.Background.IsBlack() {
		p.canvas.Clear()
		return
	}
	p.canvas.Fill(p.opts.Background)
}

// Composite blends the decayed trail into the canvas.
func (p *Pipeline) Composite() error {
	if p.state != stateInitialized {
		return ErrNotInitialized
	}
	return p.compositor.Composite(p.canvas)
}

// ResetTrail drops the afterimage so the next frame starts clean.
func (p *Pipeline) ResetTrail() {
	if p.state != stateInitialized {
		return
	}
	p.compositor.Reset()
}

// Overlay draws the help labels at intensity fade. It runs after
// Composite, so labels never enter the trail.
func (p *Pipeline) Overlay(fade uint8) {
	if p.state != stateInitialized {
		return
	}
	p.overlay.Draw(p.canvas, fade)
}

// Update uploads the canvas into the surface texture.
func (p *Pipeline) Update() error {
	if p.state != stateInitialized {
		return ErrNotInitialized
	}
	if err := p.surface.Upload(p.canvas.pix); err != nil {
		return fmt.Errorf("particles: upload: %w", err)
	}
	return nil
}

// Present shows the uploaded frame.
func (p *Pipeline) Present() error {
	if p.state != stateInitialized {
		return ErrNotInitialized
	}
	if err := p.surface.Present(); err != nil {
		return fmt.Errorf("particles: present: %w", err)
	}
	p.frames++
	return nil
}

// Tick renders one frame of scene.
func (p *Pipeline) Tick(scene Scene) error {
	if p.state != stateInitialized {
		return ErrNotInitialized
	}
	p.Clear()
	scene.Draw(p.canvas)
	if err := p.Composite(); err != nil {
		return err
	}
	if fade := scene.OverlayFade(); fade > 0 {
		p.Overlay(fade)
	}
	if err := p.Update(); err != nil {
		return err
	}
	return p.Present()
}

// Run updates and renders scene until it returns surface.ErrStop,
// Options.MaxFrames frames have been presented, or ctx is done.
//
// When the surface drives its own event loop (surface.Driver) Run hands the
// tick to it; otherwise Run loops itself and relies on Present for pacing.
// Run returns nil on a requested stop and ctx.Err() on cancellation.
func (p *Pipeline) Run(ctx context.Context, scene Scene) error {
	if p.state != stateInitialized {
		return ErrNotInitialized
	}

	frame := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if p.opts.MaxFrames > 0 && p.frames >= p.opts.MaxFrames {
			return surface.ErrStop
		}
		if err := scene.Update(); err != nil {
			return err
		}
		return p.Tick(scene)
	}

	if drv, ok := p.surface.(surface.Driver); ok {
		Logger().Debug("particles: surface owns the loop")
		err := drv.Run(frame)
		if errors.Is(err, surface.ErrStop) {
			return nil
		}
		return err
	}

	for {
		if err := frame(); err != nil {
			if errors.Is(err, surface.ErrStop) {
				return nil
			}
			return err
		}
	}
}
