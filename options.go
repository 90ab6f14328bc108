package particles

import (
	"github.com/gogpu/particles/surface"
	"github.com/gogpu/particles/text"
)

// Options configures a Pipeline.
type Options struct {
	// Width and Height are the canvas size in pixels.
	Width  int
	Height int

	// Title is the window title for windowed surfaces.
	Title string

	// Scale is the integer window scale factor. Default: 1
	Scale int

	// VSync paces Present to the display refresh. Default: true
	VSync bool

	// Decay is subtracted from every trail channel each tick.
	// Default: DefaultDecay
	Decay uint8

	// Background is the color Clear fills the canvas with. Default: Black
	Background Color

	// FontPath is the overlay font file. Empty selects the bundled font.
	FontPath string

	// FontSize is the overlay label size in pixels. Default: DefaultFontSize
	FontSize float64

	// Labels is the overlay text. Default: DefaultLabels()
	Labels []Label

	// MaxFrames stops Run after this many ticks. Zero means no limit.
	MaxFrames int

	// FrameDir and FrameEvery are passed to surfaces that can record
	// presented frames.
	FrameDir   string
	FrameEvery int
}

// DefaultOptions returns the options of the interactive demo: an 800×600
// canvas with vsync, the default decay and the help labels.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     600,
		Title:      "Particles",
		Scale:      1,
		VSync:      true,
		Decay:      DefaultDecay,
		Background: Black,
		FontSize:   DefaultFontSize,
		Labels:     DefaultLabels(),
		FrameEvery: 1,
	}
}

// surfaceOptions returns the surface.Options for o.
func (o Options) surfaceOptions() surface.Options {
	so := surface.DefaultOptions(o.Width, o.Height)
	if o.Title != "" {
		so.Title = o.Title
	}
	if o.Scale > 0 {
		so.Scale = o.Scale
	}
	so.VSync = o.VSync
	so.FrameDir = o.FrameDir
	if o.FrameEvery > 0 {
		so.FrameEvery = o.FrameEvery
	}
	return so
}

// PipelineOption configures optional Pipeline dependencies.
//
// Example:
//
//	src, _ := text.NewFontSource(data)
//	p := particles.New(s, particles.DefaultOptions(), particles.WithFontSource(src))
type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	font *text.FontSource
}

// WithFontSource makes the overlay use src instead of loading
// Options.FontPath. The pipeline does not close src.
func WithFontSource(src *text.FontSource) PipelineOption {
	return func(o *pipelineOptions) {
		o.font = src
	}
}
