package gavui

// Surface is the drawing backend a widget tree renders into. Calls arrive once
// per visible widget per frame in the order background, title, symbol,
// outline, children.
type Surface interface {
	DrawFilledBox(box Box, c Color)
	DrawOutline(box Box, c Color)
	DrawText(s string, x, y float32, c Color, shadow bool)
	MeasureTextWidth(s string) float32
}

// Theme supplies the colors and switches widgets fall back to.
type Theme interface {
	Color(key string) Color
	Bool(key string) bool
	Float(key string) float32
}

// Audio plays interaction cues. Widgets only call it when the theme's
// KeySound switch is on.
type Audio interface {
	PlayClickSound()
}

// Theme keys.
const (
	KeyBackground  = "gui.color.background"
	KeyForeground  = "gui.color.foreground"
	KeyCategory    = "gui.color.category"
	KeyEnabled     = "gui.color.enabled"
	KeyFrozen      = "gui.color.frozen"
	KeyBorder      = "gui.color.border"
	KeySound       = "gui.sound"
	KeyAlpha       = "gui.alpha"
	KeyScale       = "gui.scale"
	KeyBorderWidth = "gui.border.width"
)

// MapTheme is an in-memory Theme. Unknown color keys read as white, unknown
// switches as false and unknown numbers as zero.
type MapTheme struct {
	Colors map[string]Color
	Bools  map[string]bool
	Floats map[string]float32
}

// DefaultTheme returns a MapTheme holding the stock palette: black panels,
// white text and borders, indigo categories, cyan enabled state, red frozen
// titles, half-transparent backgrounds and no sound.
func DefaultTheme() *MapTheme {
	return &MapTheme{
		Colors: map[string]Color{
			KeyBackground: ColorBlack,
			KeyForeground: ColorWhite,
			KeyCategory:   ColorIndigo,
			KeyEnabled:    ColorCyan,
			KeyFrozen:     ColorRed,
			KeyBorder:     ColorWhite,
		},
		Bools: map[string]bool{
			KeySound: false,
		},
		Floats: map[string]float32{
			KeyAlpha:       0.5,
			KeyScale:       1,
			KeyBorderWidth: 1,
		},
	}
}

func (t *MapTheme) Color(key string) Color {
	if c, ok := t.Colors[key]; ok {
		return c
	}
	return ColorWhite
}

func (t *MapTheme) Bool(key string) bool { return t.Bools[key] }

func (t *MapTheme) Float(key string) float32 { return t.Floats[key] }
