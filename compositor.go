package particles

// DefaultDecay is the per-channel amount subtracted from the trail each tick.
const DefaultDecay uint8 = 0x0F

// Compositor blends the previous frame's decayed trail into the canvas.
//
// It keeps a single trail buffer of the same size as the canvas. Nothing
// outside the compositor reads or writes that buffer.
type Compositor struct {
	width  int
	height int
	decay  uint8
	trail  []uint32
}

// NewCompositor allocates a zeroed trail buffer for a width×height canvas.
func NewCompositor(width, height int, decay uint8) (*Compositor, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return &Compositor{
		width:  width,
		height: height,
		decay:  decay,
		trail:  make([]uint32, width*height),
	}, nil
}

// Decay returns the per-channel decay constant.
func (m *Compositor) Decay() uint8 {
	return m.decay
}

// Reset clears the trail so the next Composite starts without afterimage.
func (m *Compositor) Reset() {
	clear(m.trail)
}

// Composite runs one motion-blur pass over c.
//
// Each trail pixel is faded by the decay constant. Where the canvas is black
// and the faded trail is not, the canvas takes the faded trail color; every
// other canvas pixel is left as drawn. The blended canvas then becomes the
// trail for the next call. Composite does not allocate.
func (m *Compositor) Composite(c *Canvas) error {
	if c == nil || c.width != m.width || c.height != m.height {
		return ErrSizeMismatch
	}

	k := m.decay
	pix := c.pix
	trail := m.trail[:len(pix)]
	for i, t := range trail {
		if Color(pix[i]).IsBlack() {
			r, g, b := Color(t).RGB()
			r = decayChannel(r, k)
			g = decayChannel(g, k)
			b = decayChannel(b, k)
			if r|g|b != 0 {
				pix[i] = uint32(RGB(r, g, b))
			}
		}
	}

	copy(m.trail, pix)
	return nil
}
