// Package particles is the rendering core of a real-time particle
// simulation.
//
// # Overview
//
// A simulation draws individual pixels into a Canvas each tick. The
// Compositor then blends in the previous frame's decayed trail, which gives
// moving particles a motion-blur afterimage, and the Pipeline uploads the
// result to a presentation surface.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/particles"
//	    "github.com/gogpu/particles/surface"
//	)
//
//	p := particles.New(surface.NewImageSurface(), particles.DefaultOptions())
//	if err := p.Init(); err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	err := p.Run(ctx, scene)
//
// # Tick
//
// One tick is Clear, Scene.Draw, Composite, Overlay, Update, Present.
// The overlay is drawn after compositing, so help text never enters the
// trail.
//
// # Pixels
//
// Colors are packed ARGB8888 (0xAARRGGBB). Only red, green and blue take
// part in compositing; a pixel is black when those three are zero. The
// trail loses DefaultDecay per channel per tick, clamped at zero.
//
// # Coordinate System
//
// The canvas uses pixel coordinates with the origin at the top-left. The
// simulation works in normalized space; ToAbs and ToRelative convert
// between the two per axis.
//
// # Surfaces
//
// The core never talks to a display directly. The surface package defines
// the presentation interface, a headless image surface and a registry of
// backends; backend/ebiten adds a window.
package particles
