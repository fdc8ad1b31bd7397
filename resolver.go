package arctext

// StyleResolver supplies per-slot style overrides and special markers.
// Slots are addressed by line index and character index within the line.
type StyleResolver interface {
	// StyleAt returns the override declared for a slot. A false result
	// means the slot inherits the base style.
	StyleAt(line, char int) (StyleOverride, bool)

	// Has reports whether any slot of line sets one of props.
	// A negative line asks about the whole text.
	Has(props Property, line int) bool

	// MarkerAt returns the special marker of a slot.
	MarkerAt(line, char int) SpecialMarker
}

// AllProperties names every Style field.
const AllProperties Property = PropContourStrokeWidth<<1 - 1

// StyleMap is an in-memory StyleResolver.
// The zero value is empty and ready to use.
//
// StyleMap is not safe for concurrent mutation.
type StyleMap struct {
	styles  map[int]map[int]StyleOverride
	markers map[int]map[int]SpecialMarker
}

// NewStyleMap returns an empty StyleMap.
func NewStyleMap() *StyleMap {
	return &StyleMap{}
}

// SetStyle merges o into the override of one slot.
func (m *StyleMap) SetStyle(line, char int, o StyleOverride) {
	if o.Set == 0 {
		return
	}
	if m.styles == nil {
		m.styles = make(map[int]map[int]StyleOverride)
	}
	row := m.styles[line]
	if row == nil {
		row = make(map[int]StyleOverride)
		m.styles[line] = row
	}
	if prev, ok := row[char]; ok {
		o = prev.Merge(o)
	}
	row[char] = o
}

// SetRange merges o into every slot in [start, end) of line.
func (m *StyleMap) SetRange(line, start, end int, o StyleOverride) {
	for c := start; c < end; c++ {
		m.SetStyle(line, c, o)
	}
}

// ClearStyle removes the override of one slot.
func (m *StyleMap) ClearStyle(line, char int) {
	row := m.styles[line]
	if row == nil {
		return
	}
	delete(row, char)
	if len(row) == 0 {
		delete(m.styles, line)
	}
}

// SetMarker tags the slots [start, end) of line with marker.
func (m *StyleMap) SetMarker(line, start, end int, marker SpecialMarker) {
	if m.markers == nil {
		m.markers = make(map[int]map[int]SpecialMarker)
	}
	row := m.markers[line]
	if row == nil {
		row = make(map[int]SpecialMarker)
		m.markers[line] = row
	}
	for c := start; c < end; c++ {
		if marker.IsSpecial() {
			row[c] = marker
		} else {
			delete(row, c)
		}
	}
}

// StyleAt implements StyleResolver.
func (m *StyleMap) StyleAt(line, char int) (StyleOverride, bool) {
	o, ok := m.styles[line][char]
	return o, ok
}

// Has implements StyleResolver.
func (m *StyleMap) Has(props Property, line int) bool {
	if line >= 0 {
		for _, o := range m.styles[line] {
			if o.Has(props) {
				return true
			}
		}
		return false
	}
	for _, row := range m.styles {
		for _, o := range row {
			if o.Has(props) {
				return true
			}
		}
	}
	return false
}

// MarkerAt implements StyleResolver.
func (m *StyleMap) MarkerAt(line, char int) SpecialMarker {
	return m.markers[line][char]
}
