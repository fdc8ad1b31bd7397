package arctext

import "math"

// projection maps the straight text frame onto the arc. Angles follow
// onCircle: 0 points straight up from the center. A flat projection
// is used when the curvature is too small to bend the baseline; its
// "radius" is the height above the bottom of the text block and its
// "angle" is the negated horizontal offset, so that every table built
// for arcs keeps its ordering.
type projection struct {
	center Point
	inward bool
	flat   bool
}

// point returns the position at radius r and angle a.
func (p projection) point(r, a float64) Point {
	if p.flat {
		return Point{X: p.center.X - a, Y: p.center.Y - r}
	}
	return onCircle(p.center, r, a)
}

// angle converts a horizontal offset from the block center into an arc
// angle on a circle of radius mid.
func (p projection) angle(x, mid float64) float64 {
	switch {
	case p.flat:
		return -x
	case p.inward:
		return math.Pi + x/mid
	default:
		return -x / mid
	}
}

// rotation is the surface rotation that stands a glyph upright on the arc.
func (p projection) rotation(charAngle float64) float64 {
	switch {
	case p.flat:
		return 0
	case p.inward:
		return -charAngle - math.Pi
	default:
		return -charAngle
	}
}

// polar returns the angle and radius of pt in the projection frame.
func (p projection) polar(pt Point) (angle, radius float64) {
	rel := pt.Sub(p.center)
	if p.flat {
		return -rel.X, -rel.Y
	}
	angle = math.Atan2(-rel.X, -rel.Y)
	if p.inward && angle < 0 {
		angle += 2 * math.Pi
	}
	return angle, rel.Length()
}

// midRadius weights the bottom and top radii so that glyphs keep their
// perceived width near the center.
func (p projection) midRadius(bottom, top float64) float64 {
	if p.inward {
		return (bottom*2 + top*3) / 5
	}
	return (bottom*3 + top*2) / 5
}

// arc continues the current path along radius r from angle a1 to a2,
// first connecting the current point to the arc start.
func (p projection) arc(s Surface, r, a1, a2 float64) {
	if p.flat {
		start, end := p.point(r, a1), p.point(r, a2)
		s.LineTo(start.X, start.Y)
		s.LineTo(end.X, end.Y)
		return
	}
	s.Arc(p.center.X, p.center.Y, r, -a1-math.Pi/2, -a2-math.Pi/2, a2 > a1)
}

// sectorBounds returns the axis-aligned box of the arc of radius r
// between angles a1 and a2.
func (p projection) sectorBounds(r, a1, a2 float64) Rect {
	box := EmptyRect()
	box = box.Extend(p.point(r, a1))
	box = box.Extend(p.point(r, a2))
	if p.flat {
		return box
	}
	lo, hi := math.Min(a1, a2), math.Max(a1, a2)
	if hi-lo >= 2*math.Pi {
		return Rect{
			MinX: p.center.X - math.Abs(r), MinY: p.center.Y - math.Abs(r),
			MaxX: p.center.X + math.Abs(r), MaxY: p.center.Y + math.Abs(r),
		}
	}
	// Extremes of the circle sit at multiples of a quarter turn.
	for k := math.Ceil(lo / (math.Pi / 2)); k*math.Pi/2 <= hi; k++ {
		box = box.Extend(p.point(r, k*math.Pi/2))
	}
	return box
}
