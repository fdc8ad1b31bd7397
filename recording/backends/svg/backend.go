// Package svg provides an SVG backend for the recording system.
//
// Paths become <path> elements in device coordinates. Text runs become
// <text> elements centered on their anchor with the run transform as an
// SVG matrix, so the output stays selectable and searchable. With
// WithOutlinedText the runs are drawn as glyph outlines instead, which
// removes the dependency on the viewer's fonts.
//
// # Example
//
//	import _ "github.com/gogpu/arctext/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("output.svg")
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/arctext"
	"github.com/gogpu/arctext/recording"
	"github.com/gogpu/arctext/text"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// ErrNotRendered is returned by the output methods before End.
var ErrNotRendered = errors.New("svg: nothing rendered")

// Backend writes recordings as an SVG document.
type Backend struct {
	width, height int
	bg            arctext.RGBA
	outline       *text.Library

	body strings.Builder
	out  []byte
	err  error
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithBackground adds a full-canvas rectangle of color c.
func WithBackground(c arctext.RGBA) Option {
	return func(b *Backend) { b.bg = c }
}

// WithOutlinedText draws text runs as glyph outlines shaped by lib.
func WithOutlinedText(lib *text.Library) Option {
	return func(b *Backend) { b.outline = lib }
}

// NewBackend creates a new SVG backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin starts a new document of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid canvas size %dx%d", width, height)
	}
	b.width, b.height = width, height
	b.body.Reset()
	b.out = nil
	b.err = nil
	if !b.bg.IsZero() {
		b.body.WriteString("<rect")
		attr(&b.body, "width", strconv.Itoa(width))
		attr(&b.body, "height", strconv.Itoa(height))
		paint(&b.body, "fill", b.bg)
		b.body.WriteString("/>\n")
	}
	return nil
}

// End closes the document and returns the first drawing error.
func (b *Backend) End() error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		b.width, b.height, b.width, b.height)
	buf.WriteString(b.body.String())
	buf.WriteString("</svg>\n")
	b.out = buf.Bytes()
	return b.err
}

// FillPath writes a filled <path>.
func (b *Backend) FillPath(p *recording.Path, c arctext.RGBA) {
	if p.IsEmpty() {
		return
	}
	b.body.WriteString("<path")
	attr(&b.body, "d", pathData(p))
	paint(&b.body, "fill", c)
	b.body.WriteString("/>\n")
}

// StrokePath writes a stroked <path> with butt caps and round joins.
func (b *Backend) StrokePath(p *recording.Path, c arctext.RGBA, s recording.Stroke) {
	if p.IsEmpty() || s.Width <= 0 {
		return
	}
	b.body.WriteString("<path")
	attr(&b.body, "d", pathData(p))
	attr(&b.body, "fill", "none")
	b.stroke(c, s)
	b.body.WriteString("/>\n")
}

func (b *Backend) stroke(c arctext.RGBA, s recording.Stroke) {
	paint(&b.body, "stroke", c)
	attr(&b.body, "stroke-width", num(s.Width))
	attr(&b.body, "stroke-linejoin", "round")
	if len(s.Dash) > 0 {
		parts := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			parts[i] = num(d)
		}
		attr(&b.body, "stroke-dasharray", strings.Join(parts, " "))
	}
}

// FillText writes a <text> element, or the glyph outlines with
// WithOutlinedText.
func (b *Backend) FillText(run recording.TextRun, c arctext.RGBA) {
	if b.outline != nil {
		if p := b.glyphs(run); p != nil {
			b.FillPath(p, c)
		}
		return
	}
	b.text(run, func() { paint(&b.body, "fill", c) })
}

// StrokeText writes a stroked <text> element, or the stroked glyph
// outlines with WithOutlinedText.
func (b *Backend) StrokeText(run recording.TextRun, c arctext.RGBA, s recording.Stroke) {
	if s.Width <= 0 {
		return
	}
	if b.outline != nil {
		if p := b.glyphs(run); p != nil {
			b.StrokePath(p, c, run.DeviceStroke(s))
		}
		return
	}
	b.text(run, func() {
		attr(&b.body, "fill", "none")
		b.stroke(c, s)
	})
}

func (b *Backend) text(run recording.TextRun, style func()) {
	f := run.Font
	b.body.WriteString("<text")
	attr(&b.body, "x", num(run.X))
	attr(&b.body, "y", num(run.Y))
	attr(&b.body, "text-anchor", "middle")
	attr(&b.body, "font-family", f.Family)
	attr(&b.body, "font-size", num(f.Size))
	if f.Weight != 0 && f.Weight != arctext.WeightNormal {
		attr(&b.body, "font-weight", f.Weight.String())
	}
	if f.Style != arctext.FontStyleNormal {
		attr(&b.body, "font-style", f.Style.String())
	}
	if m := run.Transform; !m.IsIdentity() {
		attr(&b.body, "transform", fmt.Sprintf("matrix(%s %s %s %s %s %s)",
			num(m.A), num(m.D), num(m.B), num(m.E), num(m.C), num(m.F)))
	}
	style()
	b.body.WriteString(">")
	escape(&b.body, run.Text)
	b.body.WriteString("</text>\n")
}

func (b *Backend) glyphs(run recording.TextRun) *recording.Path {
	p, err := recording.GlyphPath(b.outline, run)
	switch {
	case errors.Is(err, text.ErrColoredGlyph):
		arctext.Logger().Debug("svg: skipping colored glyphs", "text", run.Text)
		return nil
	case err != nil:
		if b.err == nil {
			b.err = fmt.Errorf("svg: text %q: %w", run.Text, err)
		}
		return nil
	}
	return p
}

// WriteTo writes the document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.out == nil {
		return 0, ErrNotRendered
	}
	n, err := w.Write(b.out)
	return int64(n), err
}

// SaveToFile writes the document to a file.
func (b *Backend) SaveToFile(path string) error {
	if b.out == nil {
		return ErrNotRendered
	}
	return os.WriteFile(path, b.out, 0o644)
}

// pathData converts a path to SVG path syntax.
func pathData(p *recording.Path) string {
	var sb strings.Builder
	for i, e := range p.Elements() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		pts := e.Points
		switch e.Op {
		case recording.PathMoveTo:
			sb.WriteString("M" + pt(pts[0]))
		case recording.PathLineTo:
			sb.WriteString("L" + pt(pts[0]))
		case recording.PathQuadTo:
			sb.WriteString("Q" + pt(pts[0]) + " " + pt(pts[1]))
		case recording.PathCubicTo:
			sb.WriteString("C" + pt(pts[0]) + " " + pt(pts[1]) + " " + pt(pts[2]))
		case recording.PathClose:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func pt(p arctext.Point) string {
	return num(p.X) + "," + num(p.Y)
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// paint writes a color attribute and its opacity when not opaque.
func paint(sb *strings.Builder, name string, c arctext.RGBA) {
	attr(sb, name, arctext.RGB(c.R, c.G, c.B).Hex())
	if c.A < 1 {
		attr(sb, name+"-opacity", num(max(c.A, 0)))
	}
}

func attr(sb *strings.Builder, name, value string) {
	sb.WriteString(" " + name + "=\"")
	escape(sb, value)
	sb.WriteString("\"")
}

func escape(sb *strings.Builder, s string) {
	// strings.Builder writes never fail.
	_ = xml.EscapeText(sb, []byte(s))
}
