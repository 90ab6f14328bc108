package particles

import "testing"

func TestToRelative(t *testing.T) {
	tests := []struct {
		abs, max int
		want     float64
	}{
		{0, 800, 0},
		{400, 800, 1},
		{800, 800, 2},
		{200, 800, 0.5},
	}
	for _, tt := range tests {
		if got := ToRelative(tt.abs, tt.max); got != tt.want {
			t.Errorf("ToRelative(%d, %d) = %v, want %v", tt.abs, tt.max, got, tt.want)
		}
	}
}

func TestToAbs(t *testing.T) {
	tests := []struct {
		rel  float64
		max  int
		want int
	}{
		{0, 800, 0},
		{1, 800, 400},
		{2, 800, 800},
		{0.999, 600, 299},
		{-0.5, 600, -150},
	}
	for _, tt := range tests {
		if got := ToAbs(tt.rel, tt.max); got != tt.want {
			t.Errorf("ToAbs(%v, %d) = %d, want %d", tt.rel, tt.max, got, tt.want)
		}
	}
}

func TestCoordRoundTrip(t *testing.T) {
	for _, max := range []int{1, 3, 7, 600, 800, 1023} {
		for p := 0; p <= max; p++ {
			got := ToAbs(ToRelative(p, max), max)
			if got != p && got != p-1 {
				t.Fatalf("ToAbs(ToRelative(%d, %d)) = %d, want %d or %d", p, max, got, p, p-1)
			}
		}
	}
}
