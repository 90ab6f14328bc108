package particles

import (
	"image"
	"image/color"
)

// Canvas is the current frame: a flat W×H buffer of packed pixels.
//
// All accessors are bounds-checked. Writes outside the canvas are dropped
// silently, so callers may hand in positions that drift slightly off-screen.
type Canvas struct {
	width  int
	height int
	pix    []uint32
}

// NewCanvas allocates a zero-filled canvas.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// SetPixel writes col at (x, y). Out-of-bounds positions are ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = uint32(col)
}

// Pixel returns the color at (x, y), or Black outside the canvas.
func (c *Canvas) Pixel(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Black
	}
	return Color(c.pix[y*c.width+x])
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	if len(c.pix) == 0 {
		return
	}
	c.pix[0] = uint32(col)
	for i := 1; i < len(c.pix); i *= 2 {
		copy(c.pix[i:], c.pix[:i])
	}
}

// Clear fills the canvas with Black.
func (c *Canvas) Clear() {
	clear(c.pix)
}

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, y)
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return ColorModel
}
