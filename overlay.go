package particles

import (
	"fmt"
	"image"

	"github.com/gogpu/particles/text"
)

// DefaultFontSize is the pixel size of overlay labels.
const DefaultFontSize = 24

// Label is a line of overlay text. X and Y are the top-left corner of the
// text box in canvas pixels.
type Label struct {
	Text string
	X, Y int
}

// DefaultLabels returns the help screen: a key column at x=50 and a
// description column at x=100, one row every 25 pixels from y=50.
func DefaultLabels() []Label {
	rows := [][2]string{
		{"esc", "quit"},
		{"space", "explode"},
		{"tab", "hold for help"},
		{"r", "reset"},
	}
	labels := make([]Label, 0, 2*len(rows))
	for i, row := range rows {
		y := 50 + 25*i
		labels = append(labels,
			Label{Text: row[0], X: 50, Y: y},
			Label{Text: row[1], X: 100, Y: y},
		)
	}
	return labels
}

// LoadFont opens the font at path. An empty path selects the bundled font.
func LoadFont(path string) (*text.FontSource, error) {
	if path == "" {
		return text.DefaultFontSource(), nil
	}
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("particles: load font %q: %w", path, err)
	}
	return src, nil
}

type overlayItem struct {
	at   image.Point
	mask *image.Alpha
}

// Overlay draws pre-rasterised labels over the composited frame.
//
// Labels are rasterised once by NewOverlay; Draw only blends coverage
// masks, so it is cheap enough to call every frame.
type Overlay struct {
	items []overlayItem
}

// NewOverlay rasterises labels with src at size pixels.
// A nil src yields an overlay that draws nothing.
func NewOverlay(src *text.FontSource, size float64, labels []Label) *Overlay {
	o := &Overlay{}
	if src == nil {
		return o
	}
	face := src.Face(size)
	for _, l := range labels {
		mask := text.Rasterize(l.Text, face)
		if mask.Bounds().Empty() {
			continue
		}
		o.items = append(o.items, overlayItem{at: image.Pt(l.X, l.Y), mask: mask})
	}
	return o
}

// Len returns the number of labels that produced visible output.
func (o *Overlay) Len() int {
	return len(o.items)
}

// Draw blends every label onto c in gray (fade, fade, fade), weighted by
// glyph coverage. A fade of 0 draws nothing. Pixels falling outside the
// canvas are dropped.
func (o *Overlay) Draw(c *Canvas, fade uint8) {
	if fade == 0 || c == nil {
		return
	}
	f := uint32(fade)
	for _, it := range o.items {
		b := it.mask.Bounds()
		for my := b.Min.Y; my < b.Max.Y; my++ {
			y := it.at.Y + my - b.Min.Y
			if y < 0 || y >= c.height {
				continue
			}
			row := it.mask.Pix[(my-b.Min.Y)*it.mask.Stride:]
			for mx := b.Min.X; mx < b.Max.X; mx++ {
				a := uint32(row[mx-b.Min.X])
				if a == 0 {
					continue
				}
				x := it.at.X + mx - b.Min.X
				if x < 0 || x >= c.width {
					continue
				}
				i := y*c.width + x
				r, g, bl := Color(c.pix[i]).RGB()
				c.pix[i] = uint32(RGB(
					blend(f, uint32(r), a),
					blend(f, uint32(g), a),
					blend(f, uint32(bl), a),
				))
			}
		}
	}
}

// blend mixes src over dst with coverage a in [0, 255].
func blend(src, dst, a uint32) uint8 {
	//nolint:gosec // G115: result is in [0, 255]
	return uint8((src*a + dst*(255-a)) / 255)
}
