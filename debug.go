package gavui

import (
	"fmt"
	"os"
)

// debugLogf prints a [gavui] line to stderr.
func debugLogf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[gavui] "+format+"\n", args...)
}

// widgetLabel names a widget in debug output.
func widgetLabel(w *Widget) string {
	if w == nil {
		return "<none>"
	}
	name := w.Title
	if name == "" {
		name = w.Key
	}
	return fmt.Sprintf("%s %q (%s)", w.Kind, name, w.ID)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(w *Widget) {
	depth := 0
	for p := w; p != nil; p = p.Parent() {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogf("warning: tree depth %d exceeds %d (widget %s)",
			depth, debugMaxTreeDepth, widgetLabel(w))
	}
}

// debugCheckChildCount warns on stderr if a widget has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(w *Widget) {
	if len(w.children) > debugMaxChildCount {
		debugLogf("warning: widget %s has %d children (threshold %d)",
			widgetLabel(w), len(w.children), debugMaxChildCount)
	}
}

// debugCheckDisposed panics with a descriptive message when a disposed widget
// is handed to a screen operation.
func debugCheckDisposed(w *Widget, op string) {
	if w.disposed {
		panic(fmt.Sprintf("gavui debug: %s on disposed widget %s", op, widgetLabel(w)))
	}
}
