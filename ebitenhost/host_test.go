package ebitenhost

import (
	"testing"

	"github.com/phanxgames/gavui"
)

func press(x, y float32, button int) pointerSample {
	s := pointerSample{x: x, y: y}
	s.pressed[button] = true
	s.justPressed[button] = true
	return s
}

func hold(x, y float32, button int) pointerSample {
	s := pointerSample{x: x, y: y}
	s.pressed[button] = true
	return s
}

func release(x, y float32, button int) pointerSample {
	s := pointerSample{x: x, y: y}
	s.justReleased[button] = true
	return s
}

func TestPointerDragsPanel(t *testing.T) {
	screen := gavui.NewScreen("test", nil)
	panel := screen.Tree().BuildDraggable(gavui.Config{TopLeft: gavui.Pt(10, 10)})
	screen.Add(panel)

	p := newPointer()
	p.apply(screen, press(60, 15, 0))
	if p.active != 0 {
		t.Fatalf("active = %d, want 0", p.active)
	}
	p.apply(screen, hold(70, 18, 0))
	p.apply(screen, hold(120, 60, 0))
	if m := panel.Box().Middle(); m != gavui.Pt(120, 60) {
		t.Errorf("Middle = %v, want (120, 60)", m)
	}
	if !panel.Dragging() {
		t.Error("panel should be dragging while the button is held")
	}

	p.apply(screen, release(120, 60, 0))
	if p.active != -1 {
		t.Errorf("active = %d after release, want -1", p.active)
	}
	if panel.Dragging() {
		t.Error("release should clear the dragging flag")
	}
}

func TestPointerRightClick(t *testing.T) {
	screen := gavui.NewScreen("test", nil)
	cycle := screen.Tree().BuildCycle(gavui.Config{CycleSize: 4})
	screen.Add(cycle)

	p := newPointer()
	p.apply(screen, press(5, 5, 1))
	p.apply(screen, release(5, 5, 1))
	if cycle.Index() != 3 {
		t.Errorf("Index = %d, want 3", cycle.Index())
	}
}

func TestPointerIgnoresSecondButtonWhileHeld(t *testing.T) {
	screen := gavui.NewScreen("test", nil)
	toggle := screen.Tree().BuildToggle(gavui.Config{})
	screen.Add(toggle)

	p := newPointer()
	p.apply(screen, press(5, 5, 0))
	both := hold(5, 5, 0)
	both.pressed[1], both.justPressed[1] = true, true
	p.apply(screen, both)
	if !toggle.IsOn() {
		t.Error("first press should flip the toggle exactly once")
	}
	if p.active != 0 {
		t.Errorf("active = %d, want 0", p.active)
	}
}

func TestPointerWheel(t *testing.T) {
	screen := gavui.NewScreen("test", nil)
	tr := screen.Tree()
	var items []*gavui.Widget
	for i := 0; i < 6; i++ {
		items = append(items, tr.BuildToggle(gavui.Config{}))
	}
	list := tr.BuildScroll(gavui.Config{Open: true, MaxVisible: 2, Children: items})
	screen.Add(list)

	p := newPointer()
	p.apply(screen, pointerSample{x: 20, y: 5, wheel: -1})
	if list.Page() != 1 {
		t.Errorf("Page = %d, want 1", list.Page())
	}
	p.apply(screen, pointerSample{x: 20, y: 5, wheel: 1})
	if list.Page() != 0 {
		t.Errorf("Page = %d, want 0", list.Page())
	}
}

func TestGlyphStandIns(t *testing.T) {
	cases := map[string]string{
		gavui.SymbolArrowRight: ">",
		gavui.SymbolArrowDown:  "v",
		gavui.SymbolLocked:     "#",
		gavui.SymbolChecked:    "[x]",
		gavui.SymbolUnchecked:  "[ ]",
		"plain":                "plain",
	}
	for in, want := range cases {
		if got := glyphs.Replace(in); got != want {
			t.Errorf("Replace(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMeasureTextWidth(t *testing.T) {
	s := NewSurface(1)
	if got := s.MeasureTextWidth("abc"); got != 21 {
		t.Errorf("MeasureTextWidth(abc) = %v, want 21", got)
	}
	if got := s.MeasureTextWidth(gavui.SymbolChecked); got != 21 {
		t.Errorf("MeasureTextWidth(checked) = %v, want 21", got)
	}
}

func TestSurfaceWithoutTargetIsNoop(t *testing.T) {
	s := NewSurface(0)
	if s.borderWidth != 1 {
		t.Errorf("borderWidth = %v, want 1", s.borderWidth)
	}
	s.DrawFilledBox(gavui.BoxAt(0, 0, 10, 10), gavui.ColorRed)
	s.DrawOutline(gavui.BoxAt(0, 0, 10, 10), gavui.ColorRed)
	s.DrawText("x", 0, 0, gavui.ColorRed, true)
}

func TestToNRGBA(t *testing.T) {
	got := toNRGBA(gavui.Color{R: 1, G: 0, B: 1, A: 0.5})
	if got.R != 255 || got.G != 0 || got.B != 255 || got.A != 128 {
		t.Errorf("toNRGBA = %v, want {255 0 255 128}", got)
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{64, 32, 0, 128, 10, 20, 30, 255}, 2, 1)
	want := []byte{127, 63, 0, 128, 10, 20, 30, 255}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], b)
		}
	}
}

func TestSanitizeLabel(t *testing.T) {
	cases := map[string]string{
		"menu open":  "menu_open",
		"  ":         "unlabeled",
		"a/b\\c:d":   "a_b_c_d",
		"v1.2-final": "v1.2-final",
	}
	for in, want := range cases {
		if got := sanitizeLabel(in); got != want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClickPCM(t *testing.T) {
	buf := clickPCM(1000, 100, 50)
	if len(buf) != 50*4 {
		t.Fatalf("len = %d, want %d", len(buf), 50*4)
	}
	if buf[0] != 0 || buf[1] != 0 {
		t.Error("first sample should be silent")
	}
	for i := 0; i < len(buf); i += 4 {
		if buf[i] != buf[i+2] || buf[i+1] != buf[i+3] {
			t.Fatalf("channels differ at frame %d", i/4)
		}
	}
}

func TestNewGameDefaults(t *testing.T) {
	screen := gavui.NewScreen("demo", nil)
	g := NewGame(screen, RunConfig{})
	if g.cfg.Width != 640 || g.cfg.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", g.cfg.Width, g.cfg.Height)
	}
	if g.cfg.Scale != 1 {
		t.Errorf("Scale = %d, want 1", g.cfg.Scale)
	}
	if g.cfg.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q", g.cfg.ScreenshotDir)
	}
	if w, h := g.Layout(1920, 1080); w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d, want 640x480", w, h)
	}
}

func TestNewGameAttachesRunner(t *testing.T) {
	screen := gavui.NewScreen("demo", nil)
	toggle := screen.Tree().BuildToggle(gavui.Config{})
	screen.Add(toggle)
	runner, err := gavui.LoadTestScript([]byte("steps:\n  - action: click\n    x: 5\n    y: 5\n"))
	if err != nil {
		t.Fatal(err)
	}
	NewGame(screen, RunConfig{Runner: runner, Scale: 50})

	for i := 0; i < 10 && !runner.Done(); i++ {
		screen.Update()
	}
	if !toggle.IsOn() {
		t.Error("attached runner should drive the screen")
	}
}
