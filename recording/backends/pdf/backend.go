// Package pdf provides a PDF backend for the recording system.
//
// Each recording becomes a single page whose size in points equals the
// canvas size in pixels. Paths are written as vector path operators and
// text runs as filled glyph outlines, so the document does not depend on
// embedded fonts.
//
// # Example
//
//	import _ "github.com/gogpu/arctext/recording/backends/pdf"
//
//	backend, _ := recording.NewBackend("pdf")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("output.pdf")
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/arctext"
	"github.com/gogpu/arctext/recording"
	"github.com/gogpu/arctext/text"
)

func init() {
	recording.Register("pdf", func() recording.Backend {
		return NewBackend()
	})
}

// ErrNotRendered is returned by the output methods before End.
var ErrNotRendered = errors.New("pdf: nothing rendered")

// Backend writes recordings as a one-page PDF document.
type Backend struct {
	width, height int
	bg            arctext.RGBA
	lib           *text.Library
	compress      bool
	created       time.Time

	doc   *gofpdf.Fpdf
	alpha float64
	out   []byte
	err   error
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithFonts sets the library used to outline text. The default is
// text.DefaultLibrary.
func WithFonts(lib *text.Library) Option {
	return func(b *Backend) {
		if lib != nil {
			b.lib = lib
		}
	}
}

// WithBackground fills the page with c.
func WithBackground(c arctext.RGBA) Option {
	return func(b *Backend) { b.bg = c }
}

// WithCompression toggles content stream compression. It is on by
// default.
func WithCompression(on bool) Option {
	return func(b *Backend) { b.compress = on }
}

// WithCreationDate fixes the document creation date, which makes the
// output reproducible.
func WithCreationDate(t time.Time) Option {
	return func(b *Backend) { b.created = t }
}

// NewBackend creates a new PDF backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{compress: true}
	for _, opt := range opts {
		opt(b)
	}
	if b.lib == nil {
		b.lib = text.DefaultLibrary()
	}
	return b
}

// Begin starts a new document with one page of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pdf: invalid canvas size %dx%d", width, height)
	}
	b.width, b.height = width, height
	size := gofpdf.SizeType{Wd: float64(width), Ht: float64(height)}

	// Points give a 1:1 mapping from canvas pixels.
	doc := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt", Size: size})
	doc.SetCompression(b.compress)
	doc.SetCreator("arctext", false)
	if !b.created.IsZero() {
		doc.SetCreationDate(b.created)
		doc.SetModificationDate(b.created)
		doc.SetCatalogSort(true)
	}
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPageFormat("", size)
	doc.SetLineCapStyle("butt")
	doc.SetLineJoinStyle("round")

	b.doc = doc
	b.alpha = 1
	b.out = nil
	b.err = nil
	if !b.bg.IsZero() {
		b.setAlpha(b.bg.A)
		r, g, bl := rgb(b.bg)
		doc.SetFillColor(r, g, bl)
		doc.Rect(0, 0, size.Wd, size.Ht, "F")
	}
	return nil
}

// End closes the document and returns the first drawing or encoding
// error.
func (b *Backend) End() error {
	if b.doc == nil {
		return ErrNotRendered
	}
	var buf bytes.Buffer
	if err := b.doc.Output(&buf); err != nil {
		return fmt.Errorf("pdf: write document: %w", err)
	}
	b.out = buf.Bytes()
	b.doc = nil
	return b.err
}

// FillPath fills a path with the non-zero rule.
func (b *Backend) FillPath(p *recording.Path, c arctext.RGBA) {
	if b.doc == nil || p.IsEmpty() {
		return
	}
	b.setAlpha(c.A)
	r, g, bl := rgb(c)
	b.doc.SetFillColor(r, g, bl)
	b.trace(p)
	b.doc.DrawPath("F")
}

// StrokePath strokes a path.
func (b *Backend) StrokePath(p *recording.Path, c arctext.RGBA, s recording.Stroke) {
	if b.doc == nil || p.IsEmpty() || s.Width <= 0 {
		return
	}
	b.setAlpha(c.A)
	r, g, bl := rgb(c)
	b.doc.SetDrawColor(r, g, bl)
	b.doc.SetLineWidth(s.Width)
	b.doc.SetDashPattern(s.Dash, 0)
	b.trace(p)
	b.doc.DrawPath("D")
}

// FillText fills the glyph outlines of a text run.
func (b *Backend) FillText(run recording.TextRun, c arctext.RGBA) {
	if p := b.glyphs(run); p != nil {
		b.FillPath(p, c)
	}
}

// StrokeText strokes the glyph outlines of a text run.
func (b *Backend) StrokeText(run recording.TextRun, c arctext.RGBA, s recording.Stroke) {
	if p := b.glyphs(run); p != nil {
		b.StrokePath(p, c, run.DeviceStroke(s))
	}
}

func (b *Backend) glyphs(run recording.TextRun) *recording.Path {
	if b.doc == nil {
		return nil
	}
	p, err := recording.GlyphPath(b.lib, run)
	switch {
	case errors.Is(err, text.ErrColoredGlyph):
		arctext.Logger().Debug("pdf: skipping colored glyphs", "text", run.Text)
		return nil
	case err != nil:
		if b.err == nil {
			b.err = fmt.Errorf("pdf: text %q: %w", run.Text, err)
		}
		return nil
	}
	return p
}

func (b *Backend) setAlpha(a float64) {
	a = min(max(a, 0), 1)
	if a != b.alpha {
		b.doc.SetAlpha(a, "Normal")
		b.alpha = a
	}
}

// trace emits the path operators. Quadratic segments are raised to
// cubics.
func (b *Backend) trace(p *recording.Path) {
	var cur arctext.Point
	for _, e := range p.Elements() {
		pts := e.Points
		switch e.Op {
		case recording.PathMoveTo:
			b.doc.MoveTo(pts[0].X, pts[0].Y)
		case recording.PathLineTo:
			b.doc.LineTo(pts[0].X, pts[0].Y)
		case recording.PathQuadTo:
			c1 := cur.Add(pts[0].Sub(cur).Mul(2.0 / 3))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3))
			b.doc.CurveBezierCubicTo(c1.X, c1.Y, c2.X, c2.Y, pts[1].X, pts[1].Y)
		case recording.PathCubicTo:
			b.doc.CurveBezierCubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case recording.PathClose:
			b.doc.ClosePath()
		}
		cur = e.End()
	}
}

func rgb(c arctext.RGBA) (r, g, b int) {
	n := c.Color().(color.NRGBA)
	return int(n.R), int(n.G), int(n.B)
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
