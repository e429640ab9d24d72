package gavui

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonPrimary   MouseButton = iota // left button
	MouseButtonSecondary                    // right button
	MouseButtonMiddle                       // wheel click
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonPrimary:
		return "primary"
	case MouseButtonSecondary:
		return "secondary"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Direction controls where an open dropdown places its children.
type Direction uint8

const (
	DirectionDown  Direction = iota // stacked below the header
	DirectionRight                  // offset to the right of the header, stacked vertically
)

func (d Direction) String() string {
	if d == DirectionRight {
		return "right"
	}
	return "down"
}

// Kind tags the concrete variant a widget was built as. Dispatch switches on
// it instead of asking which capabilities a widget happens to embed.
type Kind uint8

const (
	KindPlain     Kind = iota // background, title, children; no input of its own
	KindClick                 // Clickable button
	KindDraggable             // Clickable + Draggable panel
	KindDropdown              // Draggable + Openable
	KindScroll                // Dropdown + Paginated
	KindToggle                // Clickable on/off
	KindCycle                 // Clickable index selector
	KindSlider                // value in [0, 1]
)

var kindNames = [...]string{
	KindPlain:     "plain",
	KindClick:     "click",
	KindDraggable: "draggable",
	KindDropdown:  "dropdown",
	KindScroll:    "scroll",
	KindToggle:    "toggle",
	KindCycle:     "cycle",
	KindSlider:    "slider",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Layout constants shared by the containers.
const (
	spacing         = 2  // gap between stacked children and below a header
	rightOffset     = 7  // gap between a header and a RIGHT-opening child column
	scrollbarWidth  = 5  // width of the scrollbar track
	scrollbarGutter = 6  // width children give up while a scrollbar is shown
	hoverBrighten   = 0.25
	contrastLimit   = 0.3
	defaultWidth    = 100
	defaultHeight   = 10
	defaultMaxShown = 4
)

// Glyphs drawn in the symbol slot on the right edge of a widget.
const (
	SymbolArrowRight = "▶"
	SymbolArrowDown  = "▼"
	SymbolLocked     = "🔒"
	SymbolChecked    = "☑"
	SymbolUnchecked  = "☐"
)
