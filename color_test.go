package gavui

import (
	"math"
	"testing"
)

func TestColorBrighten(t *testing.T) {
	got := Color{0.2, 0.5, 0.9, 1}.Brighten(0.25)
	want := Color{0.45, 0.75, 1, 1}
	if !approx64(got.R, want.R) || !approx64(got.G, want.G) || !approx64(got.B, want.B) {
		t.Errorf("Brighten = %v, want %v", got, want)
	}
}

func TestColorBrightenWhiteDarkens(t *testing.T) {
	got := ColorWhite.Brighten(0.25)
	if !approx64(got.R, 0.75) {
		t.Errorf("R = %v, want 0.75", got.R)
	}
}

func TestColorWithAlphaClamped(t *testing.T) {
	if a := ColorRed.WithAlpha(2).A; a != 1 {
		t.Errorf("A = %v, want 1", a)
	}
	if a := ColorRed.WithAlpha(-1).A; a != 0 {
		t.Errorf("A = %v, want 0", a)
	}
	if a := ColorRed.WithAlpha(math.NaN()).A; a != 0 {
		t.Errorf("A = %v, want 0", a)
	}
}

func TestColorSimilarity(t *testing.T) {
	if s := ColorBlack.Similarity(ColorWhite); !approx64(s, 1) {
		t.Errorf("black/white = %v, want 1", s)
	}
	if s := ColorCyan.Similarity(ColorCyan); s != 0 {
		t.Errorf("cyan/cyan = %v, want 0", s)
	}
}

func TestReadableText(t *testing.T) {
	gray := Color{0.5, 0.5, 0.5, 1}
	tests := []struct {
		name   string
		fg, bg Color
		want   Color
	}{
		{"contrast kept", ColorWhite, ColorBlack, ColorWhite},
		{"inverted", ColorWhite, ColorWhite, Color{0, 0, 0, 1}},
		{"fallback white", gray, gray, ColorWhite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readableText(tt.fg, tt.bg); got != tt.want {
				t.Errorf("readableText = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorRGBA8(t *testing.T) {
	r, g, b, a := RGB(75, 0, 130).RGBA8()
	if r != 75 || g != 0 || b != 130 || a != 255 {
		t.Errorf("RGBA8 = %d,%d,%d,%d", r, g, b, a)
	}
}

func TestSnap(t *testing.T) {
	allowed := []int{1, 3, 5}
	tests := []struct{ in, want int }{
		{0, 1}, {1, 1}, {2, 1}, {3, 3}, {4, 3}, {6, 5}, {100, 5},
	}
	for _, tt := range tests {
		if got := Snap(tt.in, allowed); got != tt.want {
			t.Errorf("Snap(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ v, n, want int }{
		{5, 5, 0}, {-1, 5, 4}, {-6, 5, 4}, {3, 5, 3}, {7, 0, 0},
	}
	for _, tt := range tests {
		if got := wrap(tt.v, tt.n); got != tt.want {
			t.Errorf("wrap(%d, %d) = %d, want %d", tt.v, tt.n, got, tt.want)
		}
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(9, 1, 8); got != 8 {
		t.Errorf("ClampInt = %d, want 8", got)
	}
	if got := ClampInt(0, 1, 8); got != 1 {
		t.Errorf("ClampInt = %d, want 1", got)
	}
}
