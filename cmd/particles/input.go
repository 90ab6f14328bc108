package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/particles/surface"
)

var errQuit = surface.ErrStop

// pollEbitenInput reads the keyboard and mouse. Tab is sampled while held;
// the other controls fire once per press.
func pollEbitenInput() controls {
	return controls{
		quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		help:    ebiten.IsKeyPressed(ebiten.KeyTab),
		explode: inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		reset:   inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}
