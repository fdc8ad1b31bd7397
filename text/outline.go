package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/arctext"
)

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour.
	OutlineOpMoveTo OutlineOp = iota
	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo
	// OutlineOpQuadTo draws a quadratic Bézier curve.
	OutlineOpQuadTo
	// OutlineOpCubicTo draws a cubic Bézier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// OutlineSegment is one path operation of an outline.
//   - MoveTo, LineTo: Points[0] is the target
//   - QuadTo: Points[0] is the control, Points[1] the target
//   - CubicTo: Points[0] and Points[1] are controls, Points[2] the target
type OutlineSegment struct {
	Op     OutlineOp
	Points [3]arctext.Point
}

// points returns the meaningful points of the segment.
func (s OutlineSegment) points() []arctext.Point {
	switch s.Op {
	case OutlineOpQuadTo:
		return s.Points[:2]
	case OutlineOpCubicTo:
		return s.Points[:3]
	default:
		return s.Points[:1]
	}
}

// Outline is the vector outline of a shaped string in pixels. The pen
// starts at the origin on the baseline and Y points down.
type Outline struct {
	Segments []OutlineSegment
	// Bounds is the box of all segment points, empty without ink.
	Bounds arctext.Rect
	// Advance is the total advance of the string.
	Advance float64
}

// IsEmpty reports whether the outline has no segments.
func (o *Outline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// Outline shapes s with the face serving f and returns its outline.
// Glyphs without vector data are skipped; if no glyph could be
// outlined but some had only color data, ErrColoredGlyph is returned.
func (l *Library) Outline(f arctext.Font, s string) (*Outline, error) {
	src, err := l.Source(f)
	if err != nil {
		return nil, err
	}
	glyphs := shape(src, []rune(s), f.Size)

	var (
		buf     sfnt.Buffer
		pen     float64
		colored bool
	)
	out := &Outline{Bounds: arctext.EmptyRect()}
	ppem := floatToFixed(f.Size)
	for _, g := range glyphs {
		origin := arctext.Pt(pen+fixedToFloat(g.XOffset), -fixedToFloat(g.YOffset))
		pen += fixedToFloat(g.Advance)

		segs, err := src.sfnt.LoadGlyph(&buf, sfnt.GlyphIndex(g.GlyphID), ppem, nil)
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			colored = true
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("text: outline of glyph %d: %w", g.GlyphID, err)
		}
		for _, seg := range segs {
			o := convertSegment(seg, origin)
			for _, p := range o.points() {
				out.Bounds = out.Bounds.Extend(p)
			}
			out.Segments = append(out.Segments, o)
		}
	}
	out.Advance = pen
	if out.IsEmpty() && colored {
		return out, ErrColoredGlyph
	}
	return out, nil
}

func convertSegment(seg sfnt.Segment, origin arctext.Point) OutlineSegment {
	var o OutlineSegment
	n := 1
	switch seg.Op {
	case sfnt.SegmentOpMoveTo:
		o.Op = OutlineOpMoveTo
	case sfnt.SegmentOpLineTo:
		o.Op = OutlineOpLineTo
	case sfnt.SegmentOpQuadTo:
		o.Op, n = OutlineOpQuadTo, 2
	case sfnt.SegmentOpCubeTo:
		o.Op, n = OutlineOpCubicTo, 3
	}
	for i := range n {
		o.Points[i] = fixedPoint(seg.Args[i]).Add(origin)
	}
	return o
}

func fixedPoint(p fixed.Point26_6) arctext.Point {
	return arctext.Pt(fixedToFloat(p.X), fixedToFloat(p.Y))
}
