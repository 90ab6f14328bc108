package particles

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/particles/text"
)

func TestDefaultLabelsLayout(t *testing.T) {
	labels := DefaultLabels()
	if len(labels) == 0 || len(labels)%2 != 0 {
		t.Fatalf("len(DefaultLabels()) = %d, want key/description pairs", len(labels))
	}
	for i := 0; i < len(labels); i += 2 {
		key, desc := labels[i], labels[i+1]
		wantY := 50 + 25*(i/2)
		if key.X != 50 || desc.X != 100 {
			t.Errorf("row %d: X = (%d, %d), want (50, 100)", i/2, key.X, desc.X)
		}
		if key.Y != wantY || desc.Y != wantY {
			t.Errorf("row %d: Y = (%d, %d), want %d", i/2, key.Y, desc.Y, wantY)
		}
	}
}

func TestLoadFont(t *testing.T) {
	src, err := LoadFont("")
	if err != nil {
		t.Fatalf("LoadFont(\"\") error = %v", err)
	}
	if src != text.DefaultFontSource() {
		t.Error("LoadFont(\"\") did not return the bundled font")
	}

	_, err = LoadFont(filepath.Join(t.TempDir(), "missing.ttf"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFont(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestOverlayNilSource(t *testing.T) {
	o := NewOverlay(nil, 24, DefaultLabels())
	if o.Len() != 0 {
		t.Errorf("Len() = %d, want 0", o.Len())
	}
	c := newTestCanvas(t, 200, 200)
	o.Draw(c, 0xFF)
	for i, p := range c.pix {
		if p != 0 {
			t.Fatalf("pixel %d drawn by empty overlay", i)
		}
	}
}

func TestOverlayDraw(t *testing.T) {
	o := NewOverlay(text.DefaultFontSource(), 24, []Label{{Text: "help", X: 10, Y: 10}})
	if o.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", o.Len())
	}

	c := newTestCanvas(t, 120, 60)
	o.Draw(c, 0)
	for i, p := range c.pix {
		if p != 0 {
			t.Fatalf("fade 0 drew pixel %d", i)
		}
	}

	o.Draw(c, 0x80)
	var lit int
	for y := range c.Height() {
		for x := range c.Width() {
			p := c.Pixel(x, y)
			if p.IsBlack() {
				continue
			}
			lit++
			if x < 10 || y < 10 {
				t.Fatalf("pixel (%d, %d) drawn above or left of the label box", x, y)
			}
			if r, g, b := p.RGB(); r > 0x80 || r != g || g != b {
				t.Fatalf("pixel (%d, %d) = (%d, %d, %d), want gray no brighter than the fade", x, y, r, g, b)
			}
		}
	}
	if lit == 0 {
		t.Error("overlay drew nothing")
	}
}

func TestOverlayClipsToCanvas(t *testing.T) {
	o := NewOverlay(text.DefaultFontSource(), 24, []Label{
		{Text: "left", X: -20, Y: -10},
		{Text: "right", X: 30, Y: 15},
	})
	c := newTestCanvas(t, 40, 20)
	o.Draw(c, 0xFF)
}
