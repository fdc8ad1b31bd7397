package arctext

// MarkerKind tags how a character slot is measured and rendered.
type MarkerKind uint8

// Marker kinds.
const (
	// MarkerNone is an ordinary slot.
	MarkerNone MarkerKind = iota
	// MarkerVoid is a zero-width placeholder.
	MarkerVoid
	// MarkerEmoji is one slot of an atomic multi-code-point cluster.
	MarkerEmoji
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerVoid:
		return "void"
	case MarkerEmoji:
		return "emoji"
	default:
		return "none"
	}
}

// SpecialMarker tags a slot. Consecutive slots carrying the same non-none
// marker form one special run that is measured, laid out and hit-tested as
// a single glyph.
type SpecialMarker struct {
	Kind MarkerKind
	ID   int
}

// IsSpecial reports whether the marker is not MarkerNone.
func (m SpecialMarker) IsSpecial() bool {
	return m.Kind != MarkerNone
}
