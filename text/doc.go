// Package text loads fonts and rasterises short labels for the overlay.
//
// The pipeline is deliberately small:
//
//   - FontSource: a parsed TTF/OTF file, shared across sizes
//   - Face: a FontSource at a pixel size
//   - Shape: HarfBuzz shaping through go-text/typesetting
//   - Rasterize: glyph outlines from golang.org/x/image/font/sfnt filled
//     into an *image.Alpha coverage mask
//
// Labels are rasterised once and blitted every frame, so nothing here runs
// on the per-frame path.
//
// # Example usage
//
//	src, err := text.NewFontSourceFromFile(path)
//	if err != nil {
//	    src = text.DefaultFontSource()
//	}
//	mask := text.Rasterize("tab - show help", src.Face(24))
//
// DefaultFontSource returns the bundled Go Regular font, so an overlay never
// depends on a platform font path.
package text
