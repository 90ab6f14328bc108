package particles

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.Width <= 0 || o.Height <= 0 {
		t.Errorf("size = %dx%d, want positive", o.Width, o.Height)
	}
	if o.Decay != DefaultDecay {
		t.Errorf("Decay = %#x, want %#x", o.Decay, DefaultDecay)
	}
	if !o.Background.IsBlack() {
		t.Errorf("Background = %#08x, want black", uint32(o.Background))
	}
	if len(o.Labels) == 0 {
		t.Error("Labels is empty")
	}
	if o.FontPath != "" {
		t.Errorf("FontPath = %q, want bundled font", o.FontPath)
	}
}

func TestSurfaceOptions(t *testing.T) {
	o := Options{Width: 10, Height: 20, VSync: false, FrameDir: "out", FrameEvery: 3}
	so := o.surfaceOptions()
	if so.Width != 10 || so.Height != 20 {
		t.Errorf("size = %dx%d", so.Width, so.Height)
	}
	if so.Title == "" || so.Scale != 1 {
		t.Errorf("Title, Scale = %q, %d, want defaults", so.Title, so.Scale)
	}
	if so.VSync {
		t.Error("VSync = true, want false")
	}
	if so.FrameDir != "out" || so.FrameEvery != 3 {
		t.Errorf("FrameDir, FrameEvery = %q, %d", so.FrameDir, so.FrameEvery)
	}
	if err := so.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestWithFontSource(t *testing.T) {
	p := New(nil, Options{}, WithFontSource(nil))
	if p.font != nil {
		t.Error("font set from nil source")
	}
	if p.opts.FontSize != DefaultFontSize {
		t.Errorf("FontSize = %v, want default %v", p.opts.FontSize, DefaultFontSize)
	}
}
