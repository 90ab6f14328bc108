package particles

import "image/color"

// Color is a packed 32-bit pixel in ARGB8888 layout (0xAARRGGBB).
//
// Only the red, green and blue channels take part in compositing. Alpha is
// carried through unchanged and ignored by the black test.
type Color uint32

// Common colors.
var (
	Black Color = 0x00000000
	White       = RGB(0xFF, 0xFF, 0xFF)
)

const (
	alphaShift = 24
	redShift   = 16
	greenShift = 8
	opaque     = Color(0xFF) << alphaShift
	rgbMask    = Color(0x00FFFFFF)
)

// RGB packs three 8-bit channels into an opaque Color.
func RGB(r, g, b uint8) Color {
	return opaque | Color(r)<<redShift | Color(g)<<greenShift | Color(b)
}

// ARGB packs four 8-bit channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(a)<<alphaShift | Color(r)<<redShift | Color(g)<<greenShift | Color(b)
}

// RGB unpacks the red, green and blue channels.
// RGB(c.RGB()) reproduces c for any opaque c.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> redShift), uint8(c >> greenShift), uint8(c)
}

// A returns the alpha channel.
func (c Color) A() uint8 {
	return uint8(c >> alphaShift)
}

// IsBlack reports whether all three color channels are zero.
func (c Color) IsBlack() bool {
	return c&rgbMask == 0
}

// Gray returns an opaque gray with all three channels set to v.
func Gray(v uint8) Color {
	return RGB(v, v, v)
}

// RGBA implements color.Color. The pixel is reported as fully opaque,
// matching how the display texture treats it.
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb := c.RGB()
	r = uint32(cr) * 0x101
	g = uint32(cg) * 0x101
	b = uint32(cb) * 0x101
	return r, g, b, 0xFFFF
}

// ColorModel converts arbitrary colors to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	r, g, b, _ := c.RGBA()
	//nolint:gosec // G115: r>>8 is always in [0, 255]
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
})

// decayChannel subtracts k from v, clamping at zero.
func decayChannel(v, k uint8) uint8 {
	if v < k {
		return 0
	}
	return v - k
}
