package gavui

// Render draws the widget and then its visible children in list order.
// (mx, my) is the pointer position used for hover feedback and dt is the frame
// time in seconds. Hidden widgets draw nothing.
func (w *Widget) Render(s Surface, mx, my, dt float32) {
	if !w.visible || w.disposed {
		return
	}
	if w.RenderCallback != nil {
		w.RenderCallback(w)
		if !w.visible || w.disposed {
			return
		}
	}
	w.layout()
	w.drawBody(s, mx, my)
	switch w.Kind {
	case KindSlider:
		w.drawTick(s)
	case KindScroll:
		w.drawScrollbar(s)
	}
	for _, c := range w.Children() {
		c.Render(s, mx, my, dt)
	}
}

// drawBody emits background, title, symbol and outline, in that order.
func (w *Widget) drawBody(s Surface, mx, my float32) {
	theme := w.tree.theme

	bg := w.background()
	if w.Hoverable && w.hovered(mx, my) {
		bg = bg.Brighten(hoverBrighten)
	}
	bg = bg.WithAlpha(w.alpha())
	s.DrawFilledBox(w.box, bg)

	fg := theme.Color(KeyForeground)
	if w.IsFrozen() {
		fg = theme.Color(KeyFrozen)
	}
	fg = readableText(fg, bg)

	if w.Title != "" {
		tx := w.X() + 2
		if w.Kind == KindScroll && w.IsParent {
			tx = w.X() + (w.Width()-s.MeasureTextWidth(w.Title))/2
		}
		s.DrawText(w.Title, tx, w.Y()+1, fg, false)
	}
	if sym := w.symbol(); sym != "" {
		sw := s.MeasureTextWidth(sym)
		s.DrawText(sym, w.X2()-sw-1+w.SymbolOffset.X, w.Y()+1+w.SymbolOffset.Y, fg, false)
	}
	if w.DrawBorder {
		s.DrawOutline(w.box, theme.Color(KeyBorder))
	}
}

// hovered reports whether the pointer is over the widget itself rather than
// over one of its children.
func (w *Widget) hovered(mx, my float32) bool {
	return w.box.Contains(mx, my) && !w.childUnder(mx, my)
}

// background resolves the fill color before hover and alpha are applied.
func (w *Widget) background() Color {
	theme := w.tree.theme
	switch {
	case w.Toggle != nil && w.Toggle.On:
		return theme.Color(KeyEnabled)
	case w.Background != nil:
		return *w.Background
	case w.IsParent:
		return theme.Color(KeyCategory)
	default:
		return theme.Color(KeyBackground)
	}
}

func (w *Widget) alpha() float64 {
	if w.Opacity > 0 {
		return Clamp01(w.Opacity)
	}
	return Clamp01(float64(w.tree.theme.Float(KeyAlpha)))
}

// symbol returns the glyph for the symbol slot. Toggles and menus derive it
// from their state; other widgets use Symbol.
func (w *Widget) symbol() string {
	switch {
	case w.Toggle != nil:
		if w.Toggle.On {
			return SymbolChecked
		}
		return SymbolUnchecked
	case w.Menu != nil:
		if w.IsFrozen() {
			return SymbolLocked
		}
		if w.Menu.Open {
			return ""
		}
		if w.Menu.Direction == DirectionRight {
			return SymbolArrowRight
		}
		return SymbolArrowDown
	}
	return w.Symbol
}

// drawTick marks the slider value with a one unit wide bar.
func (w *Widget) drawTick(s Surface) {
	x := w.X() + (w.Width()-1)*w.Slider.Value
	s.DrawFilledBox(BoxAt(x, w.Y(), 1, w.Height()), w.tree.theme.Color(KeyForeground))
}

func (w *Widget) drawScrollbar(s Surface) {
	if !w.IsOpen() || !w.hasScrollbar() {
		return
	}
	theme := w.tree.theme
	track := w.trackBox()
	s.DrawFilledBox(track, theme.Color(KeyBackground).WithAlpha(w.alpha()))
	s.DrawFilledBox(w.thumbBox(), theme.Color(KeyForeground))
	s.DrawOutline(track, theme.Color(KeyBorder))
}
