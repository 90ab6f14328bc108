package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a FontSource at a specific size in pixels per em.
type Face struct {
	source *FontSource
	size   float64
}

// Metrics holds line metrics in pixels.
type Metrics struct {
	// Ascent is the distance from the top of a line to its baseline.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of a line.
	Descent float64

	// Height is the recommended line height.
	Height float64
}

// Size returns the face size in pixels per em.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the FontSource the face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Metrics returns the line metrics of the face. A closed source yields
// zero metrics.
func (f *Face) Metrics() Metrics {
	if f.source.Closed() {
		return Metrics{}
	}
	var buf sfnt.Buffer
	m, err := f.source.outlines.Metrics(&buf, f.ppem(), font.HintingNone)
	if err != nil {
		return Metrics{}
	}
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		Height:  fixedToFloat(m.Height),
	}
}

func (f *Face) ppem() fixed.Int26_6 {
	return floatToFixed(f.size)
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
