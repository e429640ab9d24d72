package termhost

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/gavui"
)

// RunConfig configures Run.
type RunConfig struct {
	// FPS is the rate scripted input advances at. Defaults to 30.
	FPS int
	// Runner is attached to the screen before the loop starts.
	Runner *gavui.TestRunner
	// ExitWhenScriptDone ends the loop once Runner is done.
	ExitWhenScriptDone bool
	// Sound rings the terminal bell on clicks.
	Sound bool
}

// Beeper implements gavui.Audio with the terminal bell.
type Beeper struct {
	ts tcell.Screen
}

func (b Beeper) PlayClickSound() { _ = b.ts.Beep() }

// Host feeds tcell events into a gavui.Screen and repaints it.
type Host struct {
	ts     tcell.Screen
	screen *gavui.Screen
	surf   *Surface
	runner *gavui.TestRunner

	held  tcell.ButtonMask
	lastX float32
	lastY float32
	last  time.Time
}

// NewHost binds screen to an initialised tcell screen.
func NewHost(ts tcell.Screen, screen *gavui.Screen, cfg RunConfig) *Host {
	w, h := ts.Size()
	screen.SetSize(float32(w*CellWidth), float32(h*CellHeight))
	if cfg.Runner != nil {
		screen.SetTestRunner(cfg.Runner)
	}
	if cfg.Sound {
		screen.Tree().SetAudio(Beeper{ts: ts})
	}
	return &Host{
		ts:     ts,
		screen: screen,
		surf:   NewSurface(ts),
		runner: cfg.Runner,
		last:   time.Now(),
	}
}

// cellCenter maps a cell to the logical point at its centre.
func cellCenter(cx, cy int) (float32, float32) {
	return float32(cx*CellWidth + CellWidth/2), float32(cy*CellHeight + CellHeight/2)
}

func buttonOf(mask tcell.ButtonMask) (gavui.MouseButton, bool) {
	switch {
	case mask&tcell.Button1 != 0:
		return gavui.MouseButtonPrimary, true
	case mask&tcell.Button2 != 0:
		return gavui.MouseButtonSecondary, true
	case mask&tcell.Button3 != 0:
		return gavui.MouseButtonMiddle, true
	}
	return 0, false
}

// HandleMouse translates one tcell mouse report. tcell reports the full
// button state each time, so press and release are edges of that state.
func (h *Host) HandleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x, y := cellCenter(cx, cy)
	mask := ev.Buttons()
	dx, dy := x-h.lastX, y-h.lastY
	h.lastX, h.lastY = x, y

	if mask&tcell.WheelUp != 0 {
		h.screen.MouseScrolled(x, y, 1)
	}
	if mask&tcell.WheelDown != 0 {
		h.screen.MouseScrolled(x, y, -1)
	}

	buttons := mask & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	switch {
	case h.held == 0 && buttons != 0:
		if b, ok := buttonOf(buttons); ok {
			h.screen.MouseClicked(x, y, b)
		}
		h.held = buttons
	case h.held != 0 && buttons == 0:
		b, _ := buttonOf(h.held)
		h.screen.MouseReleased(x, y, b)
		h.held = 0
	case h.held != 0 && (dx != 0 || dy != 0):
		b, _ := buttonOf(h.held)
		h.screen.MouseDragged(x, y, b, dx, dy)
	}
}

// Draw clears the terminal and renders the screen.
func (h *Host) Draw() {
	now := time.Now()
	dt := float32(now.Sub(h.last).Seconds())
	h.last = now

	h.ts.Clear()
	h.screen.Render(h.surf, h.lastX, h.lastY, dt)
	h.ts.Show()
}

// Tick advances scripted input by one frame and reports whether the loop
// should stop because the script finished.
func (h *Host) Tick(exitWhenDone bool) bool {
	h.screen.Update()
	return exitWhenDone && h.runner != nil && h.runner.Done()
}

// Run takes over the terminal and drives screen until ctx is cancelled,
// Escape or Ctrl-C is pressed, or the script finishes.
func Run(ctx context.Context, screen *gavui.Screen, cfg RunConfig) error {
	ts, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new terminal screen: %w", err)
	}
	if err := ts.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	defer ts.Fini()
	ts.EnableMouse()
	ts.HideCursor()
	return loop(ctx, ts, screen, cfg)
}

func loop(ctx context.Context, ts tcell.Screen, screen *gavui.Screen, cfg RunConfig) error {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	h := NewHost(ts, screen, cfg)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		t := time.NewTicker(time.Second / time.Duration(cfg.FPS))
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				_ = ts.PostEvent(tcell.NewEventInterrupt(nil))
				return
			case <-t.C:
				_ = ts.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	h.Draw()
	for {
		ev := ts.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
			if h.Tick(cfg.ExitWhenScriptDone) {
				return nil
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
		case *tcell.EventMouse:
			h.HandleMouse(ev)
		case *tcell.EventResize:
			w, hgt := ts.Size()
			screen.SetSize(float32(w*CellWidth), float32(hgt*CellHeight))
			ts.Sync()
		}
		h.Draw()
	}
}
