package gavui

import "github.com/google/uuid"

// Routing carries the per-screen input state that dispatch threads through a
// widget tree: the widget holding drag capture, if any, and the widget that
// consumed the most recent click. A nil *Routing behaves as an empty one that
// never records anything.
type Routing struct {
	capture uuid.UUID
	clicked uuid.UUID
}

// Capture makes w the only widget that receives drags until Release.
func (r *Routing) Capture(w *Widget) {
	if r == nil || w == nil {
		return
	}
	r.capture = w.ID
}

// Captured returns the id of the widget holding drag capture, or uuid.Nil.
func (r *Routing) Captured() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.capture
}

// Holds reports whether w currently holds drag capture.
func (r *Routing) Holds(w *Widget) bool {
	return r != nil && r.capture != uuid.Nil && r.capture == w.ID
}

// HeldByOther reports whether some widget other than w holds drag capture.
func (r *Routing) HeldByOther(w *Widget) bool {
	return r != nil && r.capture != uuid.Nil && r.capture != w.ID
}

// Release drops drag capture.
func (r *Routing) Release() {
	if r == nil {
		return
	}
	r.capture = uuid.Nil
}

// MarkClicked records w as the consumer of the current click.
func (r *Routing) MarkClicked(w *Widget) {
	if r == nil || w == nil {
		return
	}
	r.clicked = w.ID
}

// Clicked returns the id of the widget that consumed the last click.
func (r *Routing) Clicked() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.clicked
}

// beginClick resets state for a new, unrelated click.
func (r *Routing) beginClick() {
	if r == nil {
		return
	}
	r.capture = uuid.Nil
	r.clicked = uuid.Nil
}
