package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/norm"
)

// Glyph is a shaped glyph positioned relative to the start of the baseline.
type Glyph struct {
	// ID is the glyph index in the font.
	ID uint16

	// Cluster is the index of the first rune this glyph was shaped from.
	Cluster int

	// X and Y are the pen position plus the shaper's offset. Y grows upward.
	X, Y float64

	// Advance is the horizontal advance in pixels.
	Advance float64
}

// HarfbuzzShaper is not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape converts label into positioned glyphs using HarfBuzz shaping.
// The label is NFC-normalised first so composed and decomposed input render
// the same. Labels are shaped left to right in a single run.
func Shape(label string, face *Face) []Glyph {
	if label == "" || face == nil || face.source.Closed() {
		return nil
	}

	runes := []rune(norm.NFC.String(label))
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(face.source.shaping),
		Size:      face.ppem(),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	if len(out.Glyphs) == 0 {
		return nil
	}

	glyphs := make([]Glyph, len(out.Glyphs))
	var pen float64
	for i, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		glyphs[i] = Glyph{
			ID:      uint16(g.GlyphID), //nolint:gosec // G115: TrueType glyph indices fit in uint16
			Cluster: g.TextIndex(),
			X:       pen + fixedToFloat(g.XOffset),
			Y:       fixedToFloat(g.YOffset),
			Advance: adv,
		}
		pen += adv
	}
	return glyphs
}

// Advance returns the total horizontal advance of glyphs.
func Advance(glyphs []Glyph) float64 {
	var w float64
	for _, g := range glyphs {
		w += g.Advance
	}
	return w
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
