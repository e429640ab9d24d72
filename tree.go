package gavui

import "github.com/google/uuid"

// Handle addresses a widget inside its Tree. The zero Handle refers to no
// widget.
type Handle uint32

// Tree is the arena that owns every widget of one screen. Widgets reference
// their parent and children by Handle, so the tree can be walked and
// relocated without pointer cycles. Not safe for concurrent use; all calls
// happen on the host's UI thread.
type Tree struct {
	slots []*Widget
	byID  map[uuid.UUID]Handle
	theme Theme
	audio Audio
	debug bool
}

// NewTree creates an empty arena. A nil theme selects DefaultTheme.
func NewTree(theme Theme) *Tree {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Tree{
		byID:  make(map[uuid.UUID]Handle),
		theme: theme,
	}
}

// Theme returns the theme widgets of this tree fall back to.
func (t *Tree) Theme() Theme { return t.theme }

// SetTheme replaces the theme. A nil theme selects DefaultTheme.
func (t *Tree) SetTheme(theme Theme) {
	if theme == nil {
		theme = DefaultTheme()
	}
	t.theme = theme
}

// SetAudio sets the sink for click cues. Nil disables sound.
func (t *Tree) SetAudio(a Audio) { t.audio = a }

// Get returns the widget for h, or nil if h is zero or disposed.
func (t *Tree) Get(h Handle) *Widget {
	if h == 0 || int(h) > len(t.slots) {
		return nil
	}
	return t.slots[h-1]
}

// Lookup returns the live widget with the given id, or nil.
func (t *Tree) Lookup(id uuid.UUID) *Widget {
	if id == uuid.Nil {
		return nil
	}
	return t.Get(t.byID[id])
}

// Len returns the number of live widgets.
func (t *Tree) Len() int { return len(t.byID) }

func (t *Tree) insert(w *Widget) {
	t.slots = append(t.slots, w)
	w.tree = t
	w.handle = Handle(len(t.slots))
	t.byID[w.ID] = w.handle
}

// Dispose detaches w from its parent and releases w and all its descendants
// from the arena. Disposed handles are never reused.
func (t *Tree) Dispose(w *Widget) {
	if w == nil || w.tree != t || w.disposed {
		return
	}
	if p := w.Parent(); p != nil {
		p.removeChild(w.handle)
	}
	t.dispose(w)
}

func (t *Tree) dispose(w *Widget) {
	for _, h := range w.children {
		if c := t.Get(h); c != nil {
			t.dispose(c)
		}
	}
	t.slots[w.handle-1] = nil
	delete(t.byID, w.ID)
	w.disposed = true
	w.children = nil
	w.parent = 0
	w.RenderCallback = nil
	if w.Click != nil {
		w.Click.OnClick = nil
		w.Click.Callback = nil
	}
}

// playClick emits the click cue when sound is enabled.
func (t *Tree) playClick() {
	if t.audio != nil && t.theme.Bool(KeySound) {
		t.audio.PlayClickSound()
	}
}
