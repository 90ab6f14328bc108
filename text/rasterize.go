package text

import (
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Rasterize renders label into a coverage mask.
//
// The mask is as wide as the shaped advance and as tall as the face's
// ascent plus descent, with the baseline at Ascent. Its origin is the top
// left corner of the label. An empty label or a closed source yields an
// empty mask.
func Rasterize(label string, face *Face) *image.Alpha {
	glyphs := Shape(label, face)
	if len(glyphs) == 0 {
		return image.NewAlpha(image.Rectangle{})
	}

	m := face.Metrics()
	w := int(math.Ceil(Advance(glyphs))) + 1
	h := int(math.Ceil(m.Ascent + m.Descent))
	if w <= 0 || h <= 0 {
		return image.NewAlpha(image.Rectangle{})
	}

	r := vector.NewRasterizer(w, h)
	var buf sfnt.Buffer
	ppem := face.ppem()
	for _, g := range glyphs {
		segs, err := face.source.outlines.LoadGlyph(&buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			// Colored or missing glyphs are skipped; the pen still advances.
			continue
		}
		appendOutline(r, segs, float32(g.X), float32(m.Ascent-g.Y))
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// appendOutline adds glyph segments to r with the glyph origin at (ox, oy).
// sfnt segments are already y-down relative to the baseline.
func appendOutline(r *vector.Rasterizer, segs sfnt.Segments, ox, oy float32) {
	pt := func(p fixed.Point26_6) (float32, float32) {
		return ox + float32(p.X)/64, oy + float32(p.Y)/64
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			r.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		r.ClosePath()
	}
}
