package recording

import (
	"github.com/gogpu/arctext"
	"github.com/gogpu/arctext/text"
)

// GlyphPath returns the device-space outline of a text run shaped with
// lib. Every glyph contour is closed.
func GlyphPath(lib *text.Library, run TextRun) (*Path, error) {
	o, err := lib.Outline(run.Font, run.Text)
	if err != nil {
		return nil, err
	}
	m := run.Transform.Multiply(arctext.Translate(run.X-o.Advance/2, run.Y))
	p := NewPath()
	for _, s := range o.Segments {
		pts := s.Points
		switch s.Op {
		case text.OutlineOpMoveTo:
			if !p.IsEmpty() {
				p.Close()
			}
			p.MoveTo(m.TransformPoint(pts[0]))
		case text.OutlineOpLineTo:
			p.LineTo(m.TransformPoint(pts[0]))
		case text.OutlineOpQuadTo:
			p.QuadTo(m.TransformPoint(pts[0]), m.TransformPoint(pts[1]))
		case text.OutlineOpCubicTo:
			p.CubicTo(m.TransformPoint(pts[0]), m.TransformPoint(pts[1]), m.TransformPoint(pts[2]))
		}
	}
	if !p.IsEmpty() {
		p.Close()
	}
	return p, nil
}
