package arctext

// Surface is the drawing target of Render. Angles are in radians and
// follow the canvas convention: 0 points along +X and positive angles
// turn towards +Y.
//
// Fill and Stroke consume the current path.
type Surface interface {
	// Push saves the drawing state; Pop restores it.
	Push()
	Pop()

	Translate(x, y float64)
	Rotate(angle float64)
	Scale(sx, sy float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc continues the path along the circle centered at (cx, cy) from
	// angle a1 to a2, connecting the current point to the arc start.
	Arc(cx, cy, r, a1, a2 float64, anticlockwise bool)
	ClosePath()
	Fill()
	Stroke()

	SetFillColor(c RGBA)
	SetStrokeColor(c RGBA)
	SetLineWidth(w float64)
	// SetDash sets the stroke dash pattern; no lengths means solid.
	SetDash(lengths ...float64)
	SetAlpha(a float64)
	SetFont(f Font)

	// FillText and StrokeText draw s horizontally centered on x with the
	// baseline at y.
	FillText(s string, x, y float64)
	StrokeText(s string, x, y float64)

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
}

// withState runs fn between Push and Pop.
func withState(s Surface, fn func()) {
	s.Push()
	defer s.Pop()
	fn()
}
