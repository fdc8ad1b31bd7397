package arctext

import "math"

// hitEpsilon absorbs rounding when two slot edges are equally near.
const hitEpsilon = 1e-9

// HitTest returns the cursor position nearest to p, given in the layout
// frame. The pointer radius selects the line and the pointer angle the
// nearest slot edge. Positions outside the text clamp to the nearest line
// and to the line ends.
func (l *Layout) HitTest(p Point) (line, char int) {
	n := len(l.Lines)
	if n == 0 {
		return 0, 0
	}
	angle, radius := l.proj.polar(p)

	sel := 0
	if l.proj.inward {
		for sel < n && radius > l.Lines[sel].Radius {
			sel++
		}
	} else {
		for sel < n && radius < l.Lines[sel].Radius {
			sel++
		}
	}
	if sel == n {
		sel = n - 1
	}

	chars := l.LineChars(sel)
	if len(chars) == 0 {
		return sel, 0
	}
	markers := l.lineMarkers(sel)

	best, bestDiff := -1, math.Inf(1)
	for j := range chars {
		if chars[j].IsDiacritic {
			continue
		}
		if j > 0 && markers[j].IsSpecial() && markers[j] == markers[j-1] {
			continue
		}
		d := l.angleDistance(angle, chars[j].LeftAngle)
		if best >= 0 && d > bestDiff-hitEpsilon {
			return sel, best
		}
		best, bestDiff = j, d
	}
	if d := l.angleDistance(angle, l.Lines[sel].EndAngle); best >= 0 && d > bestDiff-hitEpsilon {
		return sel, best
	}
	return sel, len(chars)
}

// IndexAt returns the global selection offset nearest to p.
func (l *Layout) IndexAt(p Point) int {
	line, char := l.HitTest(p)
	return CursorIndex(l.graphemes, line, char)
}

// angleDistance is the distance between two projection angles, taking the
// short way around the circle.
func (l *Layout) angleDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if l.Flat {
		return d
	}
	d = math.Mod(d, 2*math.Pi)
	return math.Min(d, 2*math.Pi-d)
}
