package gavui

import "testing"

func TestConfigDefaults(t *testing.T) {
	tests := []struct {
		name  string
		in    Config
		check func(Config) bool
	}{
		{"width", Config{Width: -4}, func(c Config) bool { return c.Width == 100 }},
		{"height", Config{}, func(c Config) bool { return c.Height == 10 }},
		{"max visible", Config{MaxVisible: 0}, func(c Config) bool { return c.MaxVisible == 4 }},
		{"cycle size", Config{CycleSize: -2}, func(c Config) bool { return c.CycleSize == 1 }},
		{"cycle index", Config{CycleSize: 3, CycleIndex: 7}, func(c Config) bool { return c.CycleIndex == 1 }},
		{"slide high", Config{SlideValue: 3}, func(c Config) bool { return c.SlideValue == 1 }},
		{"slide low", Config{SlideValue: -1}, func(c Config) bool { return c.SlideValue == 0 }},
		{"kept", Config{Width: 40, Height: 12, MaxVisible: 6}, func(c Config) bool {
			return c.Width == 40 && c.Height == 12 && c.MaxVisible == 6
		}},
	}
	for _, tt := range tests {
		if got := tt.in.withDefaults(); !tt.check(got) {
			t.Errorf("%s: withDefaults = %+v", tt.name, got)
		}
	}
}

func TestBuildKinds(t *testing.T) {
	tr := NewTree(nil)
	tests := []struct {
		w    *Widget
		kind Kind
		caps string
	}{
		{tr.Build(Config{}), KindPlain, ""},
		{tr.BuildClick(Config{}), KindClick, "c"},
		{tr.BuildDraggable(Config{}), KindDraggable, "cd"},
		{tr.BuildDropdown(Config{}), KindDropdown, "cm"},
		{tr.BuildDropdown(Config{Draggable: true}), KindDropdown, "cdm"},
		{tr.BuildScroll(Config{Draggable: true}), KindScroll, "cdmp"},
		{tr.BuildToggle(Config{}), KindToggle, "c"},
		{tr.BuildCycle(Config{}), KindCycle, "c"},
		{tr.BuildSlider(Config{}), KindSlider, "c"},
	}
	for _, tt := range tests {
		if tt.w.Kind != tt.kind {
			t.Errorf("Kind = %v, want %v", tt.w.Kind, tt.kind)
		}
		caps := ""
		if tt.w.Click != nil {
			caps += "c"
		}
		if tt.w.Drag != nil {
			caps += "d"
		}
		if tt.w.Menu != nil {
			caps += "m"
		}
		if tt.w.Pages != nil {
			caps += "p"
		}
		if caps != tt.caps {
			t.Errorf("%v capabilities = %q, want %q", tt.kind, caps, tt.caps)
		}
	}
}

func TestConfigReusableAsTemplate(t *testing.T) {
	tr := NewTree(nil)
	bg := ColorRed
	cfg := Config{TopLeft: Pt(4, 4), Title: "row", Background: &bg}
	a := tr.BuildClick(cfg)
	b := tr.BuildClick(cfg)
	if a.ID == b.ID {
		t.Error("each build should get a new ID")
	}
	if a.Box() != b.Box() {
		t.Errorf("boxes differ: %v vs %v", a.Box(), b.Box())
	}
	a.Background.R = 0
	if b.Background.R != 1 || bg.R != 1 {
		t.Error("background should be copied per widget")
	}
}

func TestBuildHiddenAndFrozen(t *testing.T) {
	tr := NewTree(nil)
	child := tr.Build(Config{})
	w := tr.BuildDraggable(Config{Hidden: true, Frozen: true, Children: []*Widget{child}})
	if w.Visible() || child.Visible() {
		t.Error("Hidden should hide the widget and its children")
	}
	if !w.IsFrozen() {
		t.Error("Frozen should be applied")
	}
}

func TestBuildStateFromConfig(t *testing.T) {
	tr := NewTree(nil)
	if !tr.BuildToggle(Config{On: true}).IsOn() {
		t.Error("toggle should start on")
	}
	if got := tr.BuildCycle(Config{CycleSize: 4, CycleIndex: -1}).Index(); got != 3 {
		t.Errorf("cycle index = %d, want 3", got)
	}
	if got := tr.BuildSlider(Config{SlideValue: 0.456}).Value(); !approx(got, 0.46) {
		t.Errorf("slider value = %v, want 0.46", got)
	}
	if got := tr.BuildScroll(Config{MaxVisible: -1}).Pages.MaxVisible; got != 4 {
		t.Errorf("MaxVisible = %d, want 4", got)
	}
}
