package ebitenhost

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/gavui"
)

// RunConfig configures the window Run opens.
type RunConfig struct {
	Title   string
	Width   int // logical width before scaling
	Height  int
	Scale   int // window pixels per logical pixel; 0 reads the theme
	ShowFPS bool

	// ScreenshotDir receives PNGs for scripted screenshot steps. Defaults
	// to "screenshots".
	ScreenshotDir string
	// ExitWhenScriptDone ends the loop once an attached test runner is done.
	ExitWhenScriptDone bool
	// Runner is attached to the screen before the loop starts.
	Runner *gavui.TestRunner
	// Sound enables the synthesized click cue.
	Sound bool
}

// Game adapts a gavui.Screen to ebiten.Game.
type Game struct {
	screen  *gavui.Screen
	cfg     RunConfig
	surface *Surface
	pointer pointer
	runner  *gavui.TestRunner
}

var _ ebiten.Game = (*Game)(nil)

// NewGame wraps screen. Zero sizes default to 640x480 and a zero scale is
// taken from the screen's theme.
func NewGame(screen *gavui.Screen, cfg RunConfig) *Game {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	theme := screen.Tree().Theme()
	if cfg.Scale <= 0 {
		cfg.Scale = int(theme.Float(gavui.KeyScale))
	}
	cfg.Scale = gavui.ClampInt(cfg.Scale, 1, 8)
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	screen.SetSize(float32(cfg.Width), float32(cfg.Height))
	if cfg.Runner != nil {
		screen.SetTestRunner(cfg.Runner)
	}
	return &Game{
		screen:  screen,
		cfg:     cfg,
		surface: NewSurface(theme.Float(gavui.KeyBorderWidth)),
		pointer: newPointer(),
		runner:  cfg.Runner,
	}
}

// errScriptDone stops the loop without reporting a failure.
var errScriptDone = errors.New("script done")

func (g *Game) Update() error {
	if g.screen.Update() {
		return nil
	}
	if g.cfg.ExitWhenScriptDone && g.runner != nil && g.runner.Done() {
		return errScriptDone
	}
	g.pointer.apply(g.screen, readPointer())
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	g.surface.SetTarget(dst)
	mx, my := ebiten.CursorPosition()
	g.screen.Render(g.surface, float32(mx), float32(my), float32(1/float64(ebiten.TPS())))
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), 2, g.cfg.Height-16)
	}
	flushScreenshots(dst, g.cfg.ScreenshotDir, g.screen.TakeScreenshots())
}

// Layout keeps the logical resolution fixed; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives screen until the window closes or, with
// ExitWhenScriptDone, the attached runner finishes.
func Run(screen *gavui.Screen, cfg RunConfig) error {
	g := NewGame(screen, cfg)
	if g.cfg.Sound {
		screen.Tree().SetAudio(NewClicker())
	}
	title := g.cfg.Title
	if title == "" {
		title = screen.Title
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.cfg.Width*g.cfg.Scale, g.cfg.Height*g.cfg.Scale)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errScriptDone) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
