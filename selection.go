package arctext

// DragSession tracks a pointer drag that extends a selection from the
// index where the drag began.
//
// The zero value is idle.
type DragSession struct {
	active bool
	anchor int
}

// Begin starts a drag anchored at index.
func (d *DragSession) Begin(index int) {
	d.active = true
	d.anchor = index
}

// Active reports whether a drag is in progress.
func (d *DragSession) Active() bool {
	return d.active
}

// Anchor returns the index the drag started at.
func (d *DragSession) Anchor() int {
	return d.anchor
}

// Move computes the selection for the pointer at index given the current
// selection. It reports whether the selection changed. An idle session
// never changes the selection.
func (d *DragSession) Move(index, start, end int) (newStart, newEnd int, changed bool) {
	if !d.active {
		return start, end, false
	}
	newStart, newEnd = SelectionFromPointer(d.anchor, index, start, end)
	return newStart, newEnd, newStart != start || newEnd != end
}

// End finishes the drag.
func (d *DragSession) End() {
	d.active = false
}

// SelectionFromPointer returns the selection spanned by a drag from anchor
// to index, given the current selection start and end. A pointer still on
// an edge of the current selection keeps it unchanged.
func SelectionFromPointer(anchor, index, start, end int) (newStart, newEnd int) {
	if (index != anchor || start == end) && (start == index || end == index) {
		return start, end
	}
	if index > anchor {
		return anchor, index
	}
	return index, anchor
}

// EnterEditing turns on the cursor and selection overlays.
func (t *ArcText) EnterEditing() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.editing = true
}

// ExitEditing turns the overlays off and collapses the selection to its
// start.
func (t *ArcText) ExitEditing() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.editing = false
	t.selEnd = t.selStart
	t.drag.End()
}

// Editing reports whether the object is in editing mode.
func (t *ArcText) Editing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.editing
}

// SelectionRange returns the selection as global offsets, start <= end.
func (t *ArcText) SelectionRange() (start, end int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selStart, t.selEnd
}

// SetSelection sets the selection. The bounds are ordered and clamped to
// the text.
func (t *ArcText) SetSelection(start, end int) {
	if start > end {
		start, end = end, start
	}
	l := t.Layout()
	t.mu.Lock()
	defer t.mu.Unlock()
	limit := 0
	if l != nil {
		n := l.NumLines()
		limit = CursorIndex(l.graphemes, n-1, l.LineLen(n-1))
	}
	t.selStart = max(0, min(start, limit))
	t.selEnd = max(0, min(end, limit))
}

// PointerToCharacterIndex returns the global selection offset nearest to
// a scene point.
func (t *ArcText) PointerToCharacterIndex(p Point) int {
	l := t.Layout()
	if l == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return l.IndexAt(t.sceneToLayout(l, p))
}

// PointerToPosition returns the line and character nearest to a scene
// point.
func (t *ArcText) PointerToPosition(p Point) (line, char int) {
	l := t.Layout()
	if l == nil {
		return 0, 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return l.HitTest(t.sceneToLayout(l, p))
}

// MouseDown places the cursor at the scene point and starts a drag.
func (t *ArcText) MouseDown(p Point) {
	idx := t.PointerToCharacterIndex(p)
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selStart, t.selEnd = idx, idx
	t.drag.Begin(idx)
}

// MouseMove extends the selection of an active drag to the scene point and
// reports whether the selection changed.
func (t *ArcText) MouseMove(p Point) bool {
	t.mu.Lock()
	active := t.drag.Active()
	t.mu.Unlock()
	if !active {
		return false
	}
	idx := t.PointerToCharacterIndex(p)

	t.mu.Lock()
	defer t.mu.Unlock()
	start, end, changed := t.drag.Move(idx, t.selStart, t.selEnd)
	if changed {
		t.selStart, t.selEnd = start, end
		Logger().Debug("arctext: selection", "start", start, "end", end)
	}
	return changed
}

// MouseUp ends the drag.
func (t *ArcText) MouseUp() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.drag.End()
}
