package gavui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`
steps:
  - action: click
    x: 100
    y: 200
  - action: wait
    frames: 3
  - action: drag
    fromX: 1
    fromY: 2
    toX: 30
    toY: 40
    frames: 6
  - action: scroll
    x: 5
    y: 5
    amount: -1
  - action: reset
`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "click" || runner.steps[0].X != 100 || runner.steps[0].Y != 200 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "wait" || runner.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
	if st := runner.steps[2]; st.FromX != 1 || st.ToY != 40 || st.Frames != 6 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Amount != -1 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	if _, err := LoadTestScript([]byte("steps: [")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	if _, err := LoadTestScript([]byte("steps: []")); err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	if _, err := LoadTestScript([]byte("steps:\n  - action: screenshot\n")); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestLoadTestScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(path, []byte("steps:\n  - action: click\n    x: 1\n    y: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTestScriptFile(path); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := LoadTestScriptFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func runToCompletion(t *testing.T, s *Screen, r *TestRunner) int {
	t.Helper()
	frames := 0
	for !r.Done() {
		s.Update()
		frames++
		if frames > 100 {
			t.Fatal("runner did not finish")
		}
	}
	return frames
}

func TestRunnerStep_Click(t *testing.T) {
	s := NewScreen("test", nil)
	toggle := s.Tree().BuildToggle(Config{})
	s.Add(toggle)

	runner, err := LoadTestScript([]byte("steps:\n  - action: click\n    x: 50\n    y: 5\n"))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	runToCompletion(t, s, runner)
	// Drain the release queued by the final step.
	for s.Pending() > 0 {
		s.Update()
	}
	if !toggle.IsOn() {
		t.Error("scripted click should flip the toggle")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	s := NewScreen("test", nil)
	runner, err := LoadTestScript([]byte("steps:\n  - action: wait\n    frames: 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	if frames := runToCompletion(t, s, runner); frames != 4 {
		t.Errorf("frames = %d, want 4", frames)
	}
}

func TestRunnerStep_Reset(t *testing.T) {
	s := NewScreen("test", nil)
	panel := s.Tree().BuildDraggable(Config{TopLeft: Pt(10, 10)})
	s.Add(panel)
	panel.SetPosition(Pt(300, 300))

	runner, err := LoadTestScript([]byte("steps:\n  - action: reset\n"))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	runToCompletion(t, s, runner)
	assertBox(t, "panel", panel.Box(), 10, 10, 100, 10)
}

func TestRunnerStep_Screenshot(t *testing.T) {
	s := NewScreen("test", nil)
	runner, err := LoadTestScript([]byte("steps:\n  - action: screenshot\n    label: menu open\n"))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	runToCompletion(t, s, runner)

	got := s.TakeScreenshots()
	if len(got) != 1 || got[0] != "menu open" {
		t.Fatalf("TakeScreenshots = %v, want [menu open]", got)
	}
	if again := s.TakeScreenshots(); again != nil {
		t.Errorf("second TakeScreenshots = %v, want nil", again)
	}
}
