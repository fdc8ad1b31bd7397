package arctext

import "math"

// Point represents a 2D point or vector in layout coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// onCircle returns the point at radius r and arc angle a around c.
// Arc angles are measured from the upward vertical, increasing towards
// the left, so angle 0 is straight above the center.
func onCircle(c Point, r, a float64) Point {
	sin, cos := math.Sincos(a)
	return Point{X: c.X - r*sin, Y: c.Y - r*cos}
}
