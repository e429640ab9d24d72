package gavui

import "github.com/google/uuid"

// Config describes a widget to build. It is consumed once by one of the
// Tree.Build* factories and never referenced by the result, so the same
// value can be reused as a template. Zero values select the defaults noted on
// each field.
type Config struct {
	TopLeft Point
	Width   float32 // <= 0 selects 100
	Height  float32 // <= 0 selects 10

	Key        string
	Title      string
	Symbol     string
	Background *Color
	Opacity    float64 // <= 0 uses the theme alpha

	NoHover  bool
	NoBorder bool
	Hidden   bool
	IsParent bool

	// Menus
	Draggable  bool // dropdowns and scroll lists only; panels are always draggable
	Frozen     bool
	Open       bool
	Direction  Direction
	MaxVisible int // scroll lists; <= 0 selects 4

	// Values
	On         bool
	CycleSize  int // <= 0 selects 1
	CycleIndex int
	SlideValue float32

	Children []*Widget

	OnClick        func(*Widget)
	Callback       func(*Widget)
	RenderCallback func(*Widget)
	UserData       any
}

// withDefaults returns cfg with every out-of-range field replaced by its
// default.
func (cfg Config) withDefaults() Config {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	if cfg.MaxVisible <= 0 {
		cfg.MaxVisible = defaultMaxShown
	}
	if cfg.CycleSize <= 0 {
		cfg.CycleSize = 1
	}
	cfg.CycleIndex = wrap(cfg.CycleIndex, cfg.CycleSize)
	cfg.SlideValue = round2(float32(Clamp01(float64(cfg.SlideValue))))
	return cfg
}

// newWidget allocates the shared part of every variant and registers it.
func (t *Tree) newWidget(kind Kind, cfg Config) *Widget {
	w := &Widget{
		ID:             uuid.New(),
		Kind:           kind,
		Key:            cfg.Key,
		Title:          cfg.Title,
		Symbol:         cfg.Symbol,
		Opacity:        cfg.Opacity,
		Hoverable:      !cfg.NoHover,
		DrawBorder:     !cfg.NoBorder,
		IsParent:       cfg.IsParent,
		RenderCallback: cfg.RenderCallback,
		UserData:       cfg.UserData,
		visible:        true,
	}
	if cfg.Background != nil {
		bg := *cfg.Background
		w.Background = &bg
	}
	w.box = NewBox(cfg.TopLeft, cfg.Width, cfg.Height)
	w.defaultBox = w.box.Copy()
	t.insert(w)
	return w
}

// finish adopts the configured children and applies initial visibility.
func (w *Widget) finish(cfg Config) *Widget {
	for _, c := range cfg.Children {
		w.AddElement(c)
	}
	if w.Menu != nil {
		w.settle()
	}
	if cfg.Hidden {
		w.Hide()
	}
	return w
}

func clickable(cfg Config) *Clickable {
	return &Clickable{OnClick: cfg.OnClick, Callback: cfg.Callback}
}

// Build creates a plain widget: background, title and stacked children.
func (t *Tree) Build(cfg Config) *Widget {
	cfg = cfg.withDefaults()
	return t.newWidget(KindPlain, cfg).finish(cfg)
}

// BuildClick creates a button.
func (t *Tree) BuildClick(cfg Config) *Widget {
	cfg = cfg.withDefaults()
	w := t.newWidget(KindClick, cfg)
	w.Click = clickable(cfg)
	return w.finish(cfg)
}

// BuildDraggable creates a panel that follows the pointer while dragged and
// can be frozen with the secondary button.
func (t *Tree) BuildDraggable(cfg Config) *Widget {
	cfg = cfg.withDefaults()
	w := t.newWidget(KindDraggable, cfg)
	w.Click = clickable(cfg)
	w.Drag = &Draggable{Frozen: cfg.Frozen}
	return w.finish(cfg)
}

func (t *Tree) newMenu(kind Kind, cfg Config) *Widget {
	w := t.newWidget(kind, cfg)
	w.Click = clickable(cfg)
	w.Menu = &Openable{Open: cfg.Open, Direction: cfg.Direction}
	if cfg.Draggable {
		w.Drag = &Draggable{Frozen: cfg.Frozen}
	}
	return w
}

// BuildDropdown creates a header that opens to show its children.
func (t *Tree) BuildDropdown(cfg Config) *Widget {
	cfg = cfg.withDefaults()
	return t.newMenu(KindDropdown, cfg).finish(cfg)
}

// BuildScroll creates a dropdown that shows at most MaxVisible children at
// a time and pages through the rest.
func (t *Tree) BuildScroll(cfg Config) *Widget {
	cfg = cfg.withDefaults()
	w := t.newMenu(KindScroll, cfg)
	w.Pages = &Paginated{MaxVisible: cfg.MaxVisible}
	return w.finish(cfg)
}

// BuildToggle creates an on/off switch.
func (t *Tree) BuildToggle(cfg Config) *Widget {
	cfg = cfg.withDefaults()
	w := t.newWidget(KindToggle, cfg)
	w.Click = clickable(cfg)
	w.Toggle = &ToggleState{On: cfg.On}
	return w.finish(cfg)
}

// BuildCycle creates a selector over CycleSize options.
func (t *Tree) BuildCycle(cfg Config) *Widget {
	cfg = cfg.withDefaults()
	w := t.newWidget(KindCycle, cfg)
	w.Click = clickable(cfg)
	w.Cycle = &CycleState{Index: cfg.CycleIndex, Size: cfg.CycleSize}
	return w.finish(cfg)
}

// BuildSlider creates a slider over [0, 1].
func (t *Tree) BuildSlider(cfg Config) *Widget {
	cfg = cfg.withDefaults()
	w := t.newWidget(KindSlider, cfg)
	w.Click = clickable(cfg)
	w.Slider = &SliderState{Value: cfg.SlideValue}
	return w.finish(cfg)
}
