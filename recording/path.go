package recording

import (
	"math"

	"github.com/gogpu/arctext"
)

// PathOp is the type of a path element.
type PathOp uint8

const (
	// PathMoveTo starts a new subpath at Points[0].
	PathMoveTo PathOp = iota
	// PathLineTo draws a line to Points[0].
	PathLineTo
	// PathQuadTo draws a quadratic Bézier with control Points[0] to Points[1].
	PathQuadTo
	// PathCubicTo draws a cubic Bézier with controls Points[0], Points[1]
	// to Points[2].
	PathCubicTo
	// PathClose closes the current subpath.
	PathClose
)

var pathOpNames = [...]string{
	PathMoveTo:  "MoveTo",
	PathLineTo:  "LineTo",
	PathQuadTo:  "QuadTo",
	PathCubicTo: "CubicTo",
	PathClose:   "Close",
}

// String returns the string representation of a PathOp.
func (op PathOp) String() string {
	if int(op) < len(pathOpNames) {
		return pathOpNames[op]
	}
	return "Unknown"
}

// PathElement is one operation of a Path.
type PathElement struct {
	Op     PathOp
	Points [3]arctext.Point
}

// End returns the point the element ends at. Close elements carry the
// subpath start in Points[0].
func (e PathElement) End() arctext.Point {
	switch e.Op {
	case PathQuadTo:
		return e.Points[1]
	case PathCubicTo:
		return e.Points[2]
	default:
		return e.Points[0]
	}
}

// Path is a sequence of subpaths made of lines and Bézier curves.
// The zero value is an empty path ready to use.
type Path struct {
	elems   []PathElement
	start   arctext.Point
	current arctext.Point
	hasCur  bool
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(pt arctext.Point) {
	p.elems = append(p.elems, PathElement{Op: PathMoveTo, Points: [3]arctext.Point{pt}})
	p.start, p.current, p.hasCur = pt, pt, true
}

// LineTo adds a line from the current point. Without a current point it
// behaves as MoveTo.
func (p *Path) LineTo(pt arctext.Point) {
	if !p.hasCur {
		p.MoveTo(pt)
		return
	}
	p.elems = append(p.elems, PathElement{Op: PathLineTo, Points: [3]arctext.Point{pt}})
	p.current = pt
}

// QuadTo adds a quadratic Bézier from the current point.
func (p *Path) QuadTo(c, pt arctext.Point) {
	if !p.hasCur {
		p.MoveTo(c)
	}
	p.elems = append(p.elems, PathElement{Op: PathQuadTo, Points: [3]arctext.Point{c, pt}})
	p.current = pt
}

// CubicTo adds a cubic Bézier from the current point.
func (p *Path) CubicTo(c1, c2, pt arctext.Point) {
	if !p.hasCur {
		p.MoveTo(c1)
	}
	p.elems = append(p.elems, PathElement{Op: PathCubicTo, Points: [3]arctext.Point{c1, c2, pt}})
	p.current = pt
}

// Close closes the current subpath; the current point returns to its start.
func (p *Path) Close() {
	if !p.hasCur {
		return
	}
	p.elems = append(p.elems, PathElement{Op: PathClose, Points: [3]arctext.Point{p.start}})
	p.current = p.start
}

// CurrentPoint returns the current point and whether there is one.
func (p *Path) CurrentPoint() (arctext.Point, bool) {
	return p.current, p.hasCur
}

// Elements returns the path elements. The slice must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elems
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elems) == 0
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	c := *p
	c.elems = append([]PathElement(nil), p.elems...)
	return &c
}

// Transform returns a copy of the path with every point mapped by m.
// Affine maps preserve Bézier curves, so the result is exact.
func (p *Path) Transform(m arctext.Matrix) *Path {
	c := p.Clone()
	for i := range c.elems {
		for j := range c.elems[i].Points {
			c.elems[i].Points[j] = m.TransformPoint(c.elems[i].Points[j])
		}
	}
	c.start = m.TransformPoint(c.start)
	c.current = m.TransformPoint(c.current)
	return c
}

// Append adds all elements of q to p.
func (p *Path) Append(q *Path) {
	for _, e := range q.elems {
		switch e.Op {
		case PathMoveTo:
			p.MoveTo(e.Points[0])
		case PathLineTo:
			p.LineTo(e.Points[0])
		case PathQuadTo:
			p.QuadTo(e.Points[0], e.Points[1])
		case PathCubicTo:
			p.CubicTo(e.Points[0], e.Points[1], e.Points[2])
		case PathClose:
			p.Close()
		}
	}
}

// Bounds returns the box of all points including Bézier controls, which
// contains the path.
func (p *Path) Bounds() arctext.Rect {
	r := arctext.EmptyRect()
	for _, e := range p.elems {
		n := 1
		switch e.Op {
		case PathQuadTo:
			n = 2
		case PathCubicTo:
			n = 3
		}
		for _, pt := range e.Points[:n] {
			r = r.Extend(pt)
		}
	}
	return r
}

// Rect appends a closed rectangle subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(arctext.Pt(x, y))
	p.LineTo(arctext.Pt(x+w, y))
	p.LineTo(arctext.Pt(x+w, y+h))
	p.LineTo(arctext.Pt(x, y+h))
	p.Close()
}

// Arc continues the path along a circular arc with canvas semantics:
// angles grow towards +Y, a line joins the current point to the arc
// start, and the sweep is normalized into one turn in the requested
// direction.
func (p *Path) Arc(cx, cy, r, a1, a2 float64, anticlockwise bool) {
	p.arc(arctext.Identity(), cx, cy, r, a1, a2, anticlockwise)
}

// arc is Arc with every generated point mapped by m.
func (p *Path) arc(m arctext.Matrix, cx, cy, r, a1, a2 float64, anticlockwise bool) {
	sweep := arcSweep(a1, a2, anticlockwise)
	start := m.TransformPoint(arctext.Pt(cx+r*math.Cos(a1), cy+r*math.Sin(a1)))
	if p.hasCur {
		p.LineTo(start)
	} else {
		p.MoveTo(start)
	}
	if sweep == 0 || r == 0 {
		return
	}

	const maxStep = math.Pi / 2
	n := int(math.Ceil(math.Abs(sweep) / maxStep))
	step := sweep / float64(n)
	for i := range n {
		b := arcSegment(cx, cy, r, a1+float64(i)*step, a1+float64(i+1)*step)
		p.CubicTo(m.TransformPoint(b[0]), m.TransformPoint(b[1]), m.TransformPoint(b[2]))
	}
}

// arcSweep returns the signed sweep from a1 to a2.
func arcSweep(a1, a2 float64, anticlockwise bool) float64 {
	const twoPi = 2 * math.Pi
	if !anticlockwise {
		if a2-a1 >= twoPi {
			return twoPi
		}
		d := math.Mod(a2-a1, twoPi)
		if d < 0 {
			d += twoPi
		}
		return d
	}
	if a1-a2 >= twoPi {
		return -twoPi
	}
	d := math.Mod(a1-a2, twoPi)
	if d < 0 {
		d += twoPi
	}
	return -d
}

// arcSegment returns the controls and end point of a cubic Bézier
// approximating the arc from a1 to a2 (at most a quarter turn).
func arcSegment(cx, cy, r, a1, a2 float64) [3]arctext.Point {
	d := a2 - a1
	t := math.Tan(d / 2)
	alpha := math.Sin(d) * (math.Sqrt(4+3*t*t) - 1) / 3

	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)
	x1, y1 := cx+r*cos1, cy+r*sin1
	x2, y2 := cx+r*cos2, cy+r*sin2
	return [3]arctext.Point{
		{X: x1 - alpha*r*sin1, Y: y1 + alpha*r*cos1},
		{X: x2 + alpha*r*sin2, Y: y2 - alpha*r*cos2},
		{X: x2, Y: y2},
	}
}
