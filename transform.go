package arctext

// CharBounds is the measured box of one slot on the straight baseline.
type CharBounds struct {
	Left        float64
	Width       float64
	KernedWidth float64
	Height      float64
	// Advance is the glyph advance without spacing or justification.
	Advance float64
	// Contour is the ink rectangle in em units, nil when not reported.
	Contour *Contour
}

// LineMetrics describes one laid out line.
type LineMetrics struct {
	// Width is the measured width including ink overflow on both sides.
	Width float64
	// Height is the line box height (tallest font size times line height).
	Height float64
	// Rendered* is ink reaching beyond the nominal advance box.
	RenderedLeft   float64
	RenderedRight  float64
	RenderedTop    float64
	RenderedBottom float64
	// Radius is the distance from the curving center to the bottom
	// edge of the line box.
	Radius float64
	// LeftOffset is the alignment offset of the line inside the block.
	LeftOffset float64
	// StartAngle and EndAngle bracket the line: the left edge of the first
	// slot and the trailing edge after the last slot.
	StartAngle float64
	EndAngle   float64
}

// ContourQuad is a glyph ink rectangle mapped onto the arc.
type ContourQuad struct {
	TL, TR, BL, BR Point
}

// Points returns the corners in drawing order.
func (q ContourQuad) Points() [4]Point {
	return [4]Point{q.TL, q.TR, q.BR, q.BL}
}

// CharTransform is the arc geometry of one slot.
type CharTransform struct {
	// Text is the drawable text of the slot. It may span several source
	// graphemes after clustering and is empty for slots merged into a
	// neighbor.
	Text string

	LeftAngle  float64
	RightAngle float64
	CharAngle  float64

	BottomRadius float64
	TopRadius    float64
	CharRadius   float64
	LineRadius   float64

	// Box corners on the bottom and top radii.
	TL, TR, BL, BR Point
	// Line reference points on the line radius.
	NL, NR Point
	// CL is the glyph origin on the char radius; LC is its projection on
	// the line radius.
	CL, LC Point

	// Rotation is the surface rotation applied before drawing the glyph.
	Rotation float64

	Contour *ContourQuad

	// IsDiacritic marks a combining mark attached to a preceding slot.
	IsDiacritic bool
	// Continuation marks a slot merged into a preceding cluster.
	Continuation bool
}

// Drawable reports whether the slot renders a glyph.
func (ct CharTransform) Drawable() bool {
	return ct.Text != ""
}

// Overflow is the space by which drawn content exceeds the nominal text
// block on each side. Negative values mean the content is smaller.
type Overflow struct {
	Left, Right, Top, Bottom float64
}
