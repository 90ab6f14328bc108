package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create faces at any number of sizes.
//
// Glyph outlines come from x/image's sfnt parser and the shaping tables
// from go-text; both are parsed once here.
type FontSource struct {
	data []byte

	outlines *sfnt.Font
	shaping  *gotext.Font

	name string
}

// NewFontSource parses font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	outlines, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	face, err := gotext.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to load shaping tables: %w", err)
	}

	s := &FontSource{
		data:     dataCopy,
		outlines: outlines,
		shaping:  face.Font,
	}
	s.name = extractFontName(outlines)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- font path comes from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

var defaultSource = sync.OnceValue(func() *FontSource {
	s, err := NewFontSource(goregular.TTF)
	if err != nil {
		panic("text: bundled font is invalid: " + err.Error())
	}
	return s
})

// DefaultFontSource returns the bundled Go Regular font.
// The returned source is shared; do not Close it.
func DefaultFontSource() *FontSource {
	return defaultSource()
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	return s.name
}

// Face returns the font at size pixels per em.
func (s *FontSource) Face(size float64) *Face {
	return &Face{source: s, size: size}
}

// Closed reports whether Close has been called.
func (s *FontSource) Closed() bool {
	return s.outlines == nil
}

// Close drops the parsed font. Faces created from s stop rendering.
func (s *FontSource) Close() error {
	s.data = nil
	s.outlines = nil
	s.shaping = nil
	return nil
}

func extractFontName(f *sfnt.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
