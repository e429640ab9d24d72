package gavui

import (
	"math"
	"testing"
	"unicode/utf8"
)

// drawCall is one recorded Surface call.
type drawCall struct {
	op    string // fill, outline, text
	box   Box
	text  string
	x, y  float32
	color Color
}

// recordSurface is a Surface that records every call in order.
type recordSurface struct {
	calls []drawCall
}

func (r *recordSurface) DrawFilledBox(b Box, c Color) {
	r.calls = append(r.calls, drawCall{op: "fill", box: b, color: c})
}

func (r *recordSurface) DrawOutline(b Box, c Color) {
	r.calls = append(r.calls, drawCall{op: "outline", box: b, color: c})
}

func (r *recordSurface) DrawText(s string, x, y float32, c Color, shadow bool) {
	r.calls = append(r.calls, drawCall{op: "text", text: s, x: x, y: y, color: c})
}

func (r *recordSurface) MeasureTextWidth(s string) float32 {
	return float32(6 * utf8.RuneCountInString(s))
}

func (r *recordSurface) ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.op
	}
	return out
}

// countingAudio counts click cues.
type countingAudio struct{ clicks int }

func (a *countingAudio) PlayClickSound() { a.clicks++ }

const epsilon = 1e-4

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func approx64(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func assertBox(t *testing.T, name string, b Box, x, y, w, h float32) {
	t.Helper()
	if !approx(b.X1(), x) || !approx(b.Y1(), y) || !approx(b.Width(), w) || !approx(b.Height(), h) {
		t.Errorf("%s = (%v, %v, %vx%v), want (%v, %v, %vx%v)",
			name, b.X1(), b.Y1(), b.Width(), b.Height(), x, y, w, h)
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// visibleIndices returns the indices of w's visible children.
func visibleIndices(w *Widget) []int {
	var out []int
	for i, c := range w.Children() {
		if c.Visible() {
			out = append(out, i)
		}
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// buildToggles creates n toggles titled t0, t1, ...
func buildToggles(tr *Tree, n int) []*Widget {
	out := make([]*Widget, n)
	for i := range out {
		out[i] = tr.BuildToggle(Config{Title: "t" + string(rune('0'+i%10))})
	}
	return out
}
