package arctext

import "math"

// singularDet is the determinant below which a Matrix is not inverted.
const singularDet = 1e-10

// Matrix is a 2D affine transform in canvas order:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// The zero Matrix collapses every point to the origin; use Identity.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a transform moving points by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, C: tx, E: 1, F: ty}
}

// Scale returns a transform scaling about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// Rotate returns a rotation by angle radians. In the y-down canvas frame
// positive angles turn clockwise.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// linear applies the matrix without its translation.
func (m Matrix) linear(x, y float64) Point {
	return Point{X: m.A*x + m.B*y, Y: m.D*x + m.E*y}
}

// Multiply returns the composition of m and n. The result applies n
// first, matching how a canvas accumulates translate and rotate calls.
func (m Matrix) Multiply(n Matrix) Matrix {
	x := m.linear(n.A, n.D)
	y := m.linear(n.B, n.E)
	o := m.TransformPoint(Point{X: n.C, Y: n.F})
	return Matrix{A: x.X, B: y.X, C: o.X, D: x.Y, E: y.Y, F: o.Y}
}

// TransformPoint maps p through the matrix.
func (m Matrix) TransformPoint(p Point) Point {
	return m.linear(p.X, p.Y).Add(Point{X: m.C, Y: m.F})
}

// Invert returns the inverse transform. It reports false, and returns
// Identity, when m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < singularDet {
		return Identity(), false
	}
	inv := Matrix{A: m.E / det, B: -m.B / det, D: -m.D / det, E: m.A / det}
	o := inv.linear(m.C, m.F)
	inv.C, inv.F = -o.X, -o.Y
	return inv, true
}

// IsIdentity reports whether m is exactly Identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
