// Package settings provides a gavui.Theme backed by a viper configuration:
// built-in defaults, an optional TOML file and GAVUI_ environment overrides.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"github.com/phanxgames/gavui"
)

// Allowed ranges for the layout settings.
const (
	MinScale = 1
	MaxScale = 8
)

// BorderWidths lists the outline widths a host can draw.
var BorderWidths = []int{1, 3, 5}

var defaultColors = map[string]string{
	gavui.KeyBackground: "#000000",
	gavui.KeyForeground: "#ffffff",
	gavui.KeyCategory:   "#4b0082",
	gavui.KeyEnabled:    "#00ffff",
	gavui.KeyFrozen:     "#ff0000",
	gavui.KeyBorder:     "#ffffff",
}

// Store implements gavui.Theme on top of viper.
type Store struct {
	v *viper.Viper
}

var _ gavui.Theme = (*Store)(nil)

func newViper() *viper.Viper {
	v := viper.New()
	for k, c := range defaultColors {
		v.SetDefault(k, c)
	}
	v.SetDefault(gavui.KeySound, false)
	v.SetDefault(gavui.KeyAlpha, 0.5)
	v.SetDefault(gavui.KeyScale, 1)
	v.SetDefault(gavui.KeyBorderWidth, 1)

	v.SetConfigType("toml")
	v.SetEnvPrefix("GAVUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// New returns a store holding the defaults and environment overrides only.
func New() *Store {
	return &Store{v: newViper()}
}

// DefaultPath is where Load looks when GAVUI_CONFIG is unset.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "gavui", "config.toml")
}

// Load reads the file named by GAVUI_CONFIG, or DefaultPath. A missing file
// is not an error.
func Load() (*Store, error) {
	path := os.Getenv("GAVUI_CONFIG")
	if path == "" {
		path = DefaultPath()
	}
	s, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	return s, err
}

// LoadFile reads settings from the TOML file at path.
func LoadFile(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &Store{v: v}, nil
}

// Save writes every setting to path, creating the directory if needed.
func (s *Store) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir settings dir: %w", err)
	}
	if err := s.v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Color parses the hex color stored under key. Unparseable values fall back
// to the built-in default, and unknown keys to white.
func (s *Store) Color(key string) gavui.Color {
	if c, ok := parseHex(s.v.GetString(key)); ok {
		return c
	}
	if c, ok := parseHex(defaultColors[key]); ok {
		return c
	}
	return gavui.ColorWhite
}

func parseHex(h string) (gavui.Color, bool) {
	if h == "" {
		return gavui.Color{}, false
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return gavui.Color{}, false
	}
	c = c.Clamped()
	return gavui.Color{R: c.R, G: c.G, B: c.B, A: 1}, true
}

// SetColor stores c under key as a hex string.
func (s *Store) SetColor(key string, c gavui.Color) {
	s.v.Set(key, colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex())
}

// Bool returns the switch stored under key.
func (s *Store) Bool(key string) bool { return s.v.GetBool(key) }

// Float returns the number stored under key. The alpha, scale and border
// width settings are normalised into their allowed ranges.
func (s *Store) Float(key string) float32 {
	switch key {
	case gavui.KeyAlpha:
		return float32(gavui.Clamp01(s.v.GetFloat64(key)))
	case gavui.KeyScale:
		return float32(s.Scale())
	case gavui.KeyBorderWidth:
		return float32(s.BorderWidth())
	}
	return float32(s.v.GetFloat64(key))
}

// Set stores a raw value.
func (s *Store) Set(key string, value any) { s.v.Set(key, value) }

// Scale returns the UI scale clamped to [MinScale, MaxScale].
func (s *Store) Scale() int {
	return gavui.ClampInt(s.v.GetInt(gavui.KeyScale), MinScale, MaxScale)
}

// BorderWidth returns the outline width snapped to the nearest of
// BorderWidths.
func (s *Store) BorderWidth() int {
	return gavui.Snap(s.v.GetInt(gavui.KeyBorderWidth), BorderWidths)
}

// Alpha returns the background opacity in [0, 1].
func (s *Store) Alpha() float64 {
	return gavui.Clamp01(s.v.GetFloat64(gavui.KeyAlpha))
}

// SoundEnabled reports whether click cues are on.
func (s *Store) SoundEnabled() bool { return s.v.GetBool(gavui.KeySound) }
