package gavui

// IsOn reports the state of a toggle. False for other widgets.
func (w *Widget) IsOn() bool { return w.Toggle != nil && w.Toggle.On }

// SetOn sets the state of a toggle without running callbacks.
func (w *Widget) SetOn(on bool) {
	if w.Toggle != nil {
		w.Toggle.On = on
	}
}

func (w *Widget) clickToggle(r *Routing, x, y float32, button MouseButton) bool {
	if button != MouseButtonPrimary || !w.box.Contains(x, y) {
		return false
	}
	w.Toggle.On = !w.Toggle.On
	w.tree.playClick()
	w.fireClick(r)
	return true
}

// Index returns the selected index of a cycle, or 0 for other widgets.
func (w *Widget) Index() int {
	if w.Cycle == nil {
		return 0
	}
	return w.Cycle.Index
}

// SetIndex selects index i of a cycle, wrapped into [0, Size).
func (w *Widget) SetIndex(i int) {
	if w.Cycle != nil {
		w.Cycle.Index = wrap(i, w.Cycle.Size)
	}
}

// clickCycle steps forward on primary and backward on secondary, wrapping at
// both ends.
func (w *Widget) clickCycle(r *Routing, x, y float32, button MouseButton) bool {
	if !w.box.Contains(x, y) {
		return false
	}
	switch button {
	case MouseButtonPrimary:
		w.SetIndex(w.Cycle.Index + 1)
	case MouseButtonSecondary:
		w.SetIndex(w.Cycle.Index - 1)
	default:
		return false
	}
	w.tree.playClick()
	w.fireClick(r)
	return true
}

// Value returns the value of a slider, or 0 for other widgets.
func (w *Widget) Value() float32 {
	if w.Slider == nil {
		return 0
	}
	return w.Slider.Value
}

// SetValue sets the value of a slider, clamped to [0, 1] and rounded to two
// decimals.
func (w *Widget) SetValue(v float32) {
	if w.Slider != nil {
		w.Slider.Value = round2(float32(Clamp01(float64(v))))
	}
}

// slideTo maps a pointer x onto the slider track.
func (w *Widget) slideTo(x float32) {
	span := w.Width() - 2
	if span <= 0 {
		if x >= w.X() {
			w.SetValue(1)
		} else {
			w.SetValue(0)
		}
		return
	}
	w.SetValue((x - w.X()) / span)
}

func (w *Widget) clickSlider(r *Routing, x, y float32, button MouseButton) bool {
	if button != MouseButtonPrimary || !w.box.Contains(x, y) {
		return false
	}
	w.slideTo(x)
	r.Capture(w)
	w.fireClick(r)
	return true
}

// dragSlider keeps updating while the slider holds capture, even when the
// pointer has left its box.
func (w *Widget) dragSlider(r *Routing, x, y float32, button MouseButton) bool {
	if r.HeldByOther(w) {
		return false
	}
	if !r.Holds(w) {
		if button != MouseButtonPrimary || !w.box.Contains(x, y) {
			return false
		}
		r.Capture(w)
	}
	w.slideTo(x)
	w.dragging = true
	if w.Click != nil && w.Click.Callback != nil {
		w.Click.Callback(w)
	}
	return true
}
