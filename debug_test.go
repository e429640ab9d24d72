package gavui

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what was
// written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.String()
	}()

	fn()
	w.Close()
	os.Stderr = oldStderr
	return <-done
}

func TestDebugMode_DisposedRootPanics(t *testing.T) {
	s := NewScreen("test", nil)
	s.SetDebugMode(true)

	w := s.Tree().Build(Config{Title: "gone"})
	s.Tree().Dispose(w)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on Add with disposed widget, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()
	s.Add(w)
}

func TestDisposedChildPanics(t *testing.T) {
	tr := NewTree(nil)
	p := tr.Build(Config{})
	c := tr.Build(Config{})
	tr.Dispose(c)
	assertPanics(t, "disposed child", func() { p.AddElement(c) })
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	s := NewScreen("test", nil)
	s.SetDebugMode(true)
	tr := s.Tree()

	output := captureStderr(t, func() {
		current := tr.Build(Config{})
		for i := 0; i < debugMaxTreeDepth+5; i++ {
			child := tr.Build(Config{Title: fmt.Sprintf("depth_%d", i)})
			current.AddElement(child)
			current = child
		}
	})
	if !strings.Contains(output, "[gavui] warning: tree depth") {
		t.Errorf("expected tree depth warning in stderr, got: %q", output)
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	s := NewScreen("test", nil)
	s.SetDebugMode(true)
	tr := s.Tree()

	output := captureStderr(t, func() {
		parent := tr.Build(Config{Title: "many_children"})
		for i := 0; i < debugMaxChildCount+1; i++ {
			parent.AddElement(tr.Build(Config{}))
		}
	})
	if !strings.Contains(output, "many_children") || !strings.Contains(output, "children") {
		t.Errorf("expected child count warning in stderr, got: %q", output)
	}
}

func TestDebugMode_ClickLogged(t *testing.T) {
	s := NewScreen("test", nil)
	s.SetDebugMode(true)
	s.Add(s.Tree().BuildClick(Config{Title: "ok"}))

	output := captureStderr(t, func() {
		s.MouseClicked(5, 5, MouseButtonPrimary)
		s.MouseClicked(500, 5, MouseButtonPrimary)
	})
	if !strings.Contains(output, `click "ok"`) {
		t.Errorf("expected consumer in log, got: %q", output)
	}
	if !strings.Contains(output, "not consumed") {
		t.Errorf("expected miss in log, got: %q", output)
	}
}

func TestReleaseMode_Silent(t *testing.T) {
	s := NewScreen("test", nil)
	s.Add(s.Tree().BuildClick(Config{}))
	output := captureStderr(t, func() {
		s.MouseClicked(5, 5, MouseButtonPrimary)
	})
	if output != "" {
		t.Errorf("expected no output without debug mode, got: %q", output)
	}
}
