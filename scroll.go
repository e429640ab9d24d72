package gavui

// NumPages returns ceil(children / MaxVisible), or 0 for a widget without
// children or without pagination.
func (w *Widget) NumPages() int {
	if w.Pages == nil || w.Pages.MaxVisible <= 0 || len(w.children) == 0 {
		return 0
	}
	return (len(w.children) + w.Pages.MaxVisible - 1) / w.Pages.MaxVisible
}

// Page returns the current page index.
func (w *Widget) Page() int {
	if w.Pages == nil {
		return 0
	}
	return w.Pages.Page
}

// ScrollUp moves to the previous page. No-op on the first page or when
// everything fits on one page.
func (w *Widget) ScrollUp() {
	if w.NumPages() <= 1 {
		return
	}
	if w.Pages.Page > 0 {
		w.Pages.Page--
	}
	w.layoutPage()
}

// ScrollDown moves to the next page. No-op on the last page or when
// everything fits on one page.
func (w *Widget) ScrollDown() {
	n := w.NumPages()
	if n <= 1 {
		return
	}
	if w.Pages.Page < n-1 {
		w.Pages.Page++
	}
	w.layoutPage()
}

func (w *Widget) hasScrollbar() bool {
	return w.Pages != nil && len(w.children) > w.Pages.MaxVisible
}

func (w *Widget) addPaged(child *Widget) {
	child.SetWidth(w.Width())
	child.SetHeight(w.Height())
	w.layoutPage()
}

// layoutPage shows only the children on the current page, stacked from the
// list origin. Everything else is hidden, whatever its previous visibility.
// While the scrollbar is shown children give up a gutter on the right.
func (w *Widget) layoutPage() {
	pg := w.Pages
	pg.Page = ClampInt(pg.Page, 0, max(w.NumPages()-1, 0))

	width := w.Width()
	if w.hasScrollbar() {
		width -= scrollbarGutter
	}
	first := pg.Page * pg.MaxVisible
	p := w.listOrigin()
	for i, c := range w.Children() {
		c.SetWidth(width)
		if !w.Menu.Open || i < first || i >= first+pg.MaxVisible {
			if c.visible {
				c.Hide()
			}
			continue
		}
		c.SetPosition(p)
		if !c.visible {
			c.Show()
		}
		c.layout()
		p.Y += c.Height() + spacing
	}
}

// trackBox is the scrollbar strip along the trailing edge of the list.
func (w *Widget) trackBox() Box {
	o := w.listOrigin()
	h := float32(w.Pages.MaxVisible)*w.Height() + spacing
	return BoxAt(o.X+w.Width()-scrollbarWidth, o.Y, scrollbarWidth, h)
}

// thumbBox is the part of the track that represents the current page.
func (w *Widget) thumbBox() Box {
	track := w.trackBox()
	n := float32(max(w.NumPages(), 1))
	h := track.Height() / n
	off := track.Height() * (float32(w.Pages.Page) / n)
	return BoxAt(track.X1(), track.Y1()+off, scrollbarWidth, h)
}

// clickScrollbar pages up or down when the track is clicked above or below
// the thumb. A click on the thumb itself is consumed without effect.
func (w *Widget) clickScrollbar(r *Routing, x, y float32) bool {
	if !w.hasScrollbar() || !w.trackBox().Contains(x, y) {
		return false
	}
	thumb := w.thumbBox()
	switch {
	case thumb.Contains(x, y):
	case y < thumb.Y1():
		w.ScrollUp()
	default:
		w.ScrollDown()
	}
	r.MarkClicked(w)
	return true
}

// clickScroll routes a click to the children, then the scrollbar, then the
// header.
func (w *Widget) clickScroll(r *Routing, x, y float32, button MouseButton) bool {
	if w.Menu.Open {
		if w.clickChildren(r, x, y, button) != nil {
			return true
		}
		if w.clickScrollbar(r, x, y) {
			return true
		}
	}
	if !w.box.Contains(x, y) {
		return false
	}
	return w.clickHeader(r, button)
}

// scrollPaged gives an open nested scroll list under the pointer the first
// chance at a wheel step, then pages this list. Positive amounts page up.
func (w *Widget) scrollPaged(r *Routing, x, y, amount float32) bool {
	if !w.Menu.Open {
		return false
	}
	for _, c := range w.childrenTopFirst() {
		if c.Kind == KindScroll && c.IsOpen() && c.MouseWithinGui(x, y) {
			if c.MouseScrolled(r, x, y, amount) {
				return true
			}
		}
	}
	if !w.MouseWithinGui(x, y) && !(w.hasScrollbar() && w.trackBox().Contains(x, y)) {
		return false
	}
	switch {
	case amount > 0:
		w.ScrollUp()
	case amount < 0:
		w.ScrollDown()
	}
	return true
}
