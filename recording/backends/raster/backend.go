// Package raster provides a raster backend for the recording system.
// It renders recordings to pixel images with the rasterx scanline
// rasterizer.
//
// # Supported Features
//
//   - Solid color fills (non-zero winding) and strokes
//   - Dashed strokes with butt caps and round joins
//   - Text as glyph outlines shaped by a text.Library
//   - Optional supersampling, downsampled with a Lanczos filter
//   - PNG output through WriteTo; SaveToFile picks the format from the
//     file extension
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/arctext/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend(raster.WithBackground(arctext.White))
//
//	// Playback recording
//	rec.Playback(backend)
//
//	// Get output
//	backend.SaveToFile("output.png")
//	img := backend.Image()
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/arctext"
	"github.com/gogpu/arctext/recording"
	"github.com/gogpu/arctext/text"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	}, "png", "jpg", "jpeg")
}

// ErrInvalidSize is returned by Begin for a non-positive canvas size.
var ErrInvalidSize = errors.New("raster: invalid canvas size")

// ErrNotRendered is returned by the output methods before Begin.
var ErrNotRendered = errors.New("raster: nothing rendered")

const miterLimit = 4

// Backend renders recordings to a pixel image.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend, and recording.ImageBackend interfaces.
type Backend struct {
	width  int
	height int
	scale  int
	bg     arctext.RGBA
	lib    *text.Library

	canvas *image.RGBA
	out    image.Image
	dasher *rasterx.Dasher
	err    error
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
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

// WithBackground fills the canvas with c in Begin. The default is
// transparent.
func WithBackground(c arctext.RGBA) Option {
	return func(b *Backend) { b.bg = c }
}

// WithSupersampling renders at n times the canvas size and downsamples
// in End. Values below 2 disable supersampling.
func WithSupersampling(n int) Option {
	return func(b *Backend) { b.scale = max(n, 1) }
}

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{scale: 1}
	for _, opt := range opts {
		opt(b)
	}
	if b.lib == nil {
		b.lib = text.DefaultLibrary()
	}
	return b
}

// Begin initializes the backend for rendering at the given dimensions.
// This must be called before any drawing operations.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	b.width, b.height = width, height
	w, h := width*b.scale, height*b.scale
	b.canvas = image.NewRGBA(image.Rect(0, 0, w, h))
	if !b.bg.IsZero() {
		draw.Draw(b.canvas, b.canvas.Bounds(), image.NewUniform(b.bg.Color()), image.Point{}, draw.Src)
	}
	scanner := rasterx.NewScannerGV(w, h, b.canvas, b.canvas.Bounds())
	b.dasher = rasterx.NewDasher(w, h, scanner)
	b.out = b.canvas
	b.err = nil
	return nil
}

// End finalizes the rendering and returns the first drawing error.
// After End is called, output methods (WriteTo, SaveToFile) can be used.
func (b *Backend) End() error {
	if b.canvas != nil && b.scale > 1 {
		b.out = imaging.Resize(b.canvas, b.width, b.height, imaging.Lanczos)
	}
	return b.err
}

// FillPath fills the given path with the non-zero winding rule.
func (b *Backend) FillPath(p *recording.Path, c arctext.RGBA) {
	if b.dasher == nil || p.IsEmpty() {
		return
	}
	b.dasher.Clear()
	rf := &b.dasher.Filler
	rf.SetWinding(true)
	convert(p).AddTo(b.adder(rf))
	rf.SetColor(c.Color())
	rf.Draw()
}

// StrokePath strokes the given path with butt caps and round joins.
func (b *Backend) StrokePath(p *recording.Path, c arctext.RGBA, s recording.Stroke) {
	if b.dasher == nil || p.IsEmpty() || s.Width <= 0 {
		return
	}
	k := float64(b.scale)
	var dash []float64
	for _, d := range s.Dash {
		dash = append(dash, d*k)
	}
	b.dasher.Clear()
	b.dasher.SetStroke(toFixed(s.Width*k), toFixed(miterLimit*k),
		rasterx.ButtCap, nil, rasterx.RoundGap, rasterx.Round, dash, 0)
	convert(p).AddTo(b.adder(b.dasher))
	b.dasher.SetColor(c.Color())
	b.dasher.Draw()
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
	p, err := recording.GlyphPath(b.lib, run)
	switch {
	case errors.Is(err, text.ErrColoredGlyph):
		arctext.Logger().Debug("raster: skipping colored glyphs", "text", run.Text)
		return nil
	case err != nil:
		if b.err == nil {
			b.err = fmt.Errorf("raster: text %q: %w", run.Text, err)
		}
		return nil
	}
	return p
}

// adder scales device coordinates to the supersampled canvas.
func (b *Backend) adder(a rasterx.Adder) rasterx.Adder {
	if b.scale == 1 {
		return a
	}
	k := float64(b.scale)
	return &rasterx.MatrixAdder{Adder: a, M: rasterx.Identity.Scale(k, k)}
}

// convert translates a recording path to rasterx commands. A segment
// following a close restarts at the subpath start.
func convert(p *recording.Path) rasterx.Path {
	var (
		rp      rasterx.Path
		start   arctext.Point
		restart bool
	)
	for _, e := range p.Elements() {
		if restart && e.Op != recording.PathMoveTo && e.Op != recording.PathClose {
			rp.Start(toPoint(start))
			restart = false
		}
		switch e.Op {
		case recording.PathMoveTo:
			start = e.Points[0]
			restart = false
			rp.Start(toPoint(start))
		case recording.PathLineTo:
			rp.Line(toPoint(e.Points[0]))
		case recording.PathQuadTo:
			rp.QuadBezier(toPoint(e.Points[0]), toPoint(e.Points[1]))
		case recording.PathCubicTo:
			rp.CubeBezier(toPoint(e.Points[0]), toPoint(e.Points[1]), toPoint(e.Points[2]))
		case recording.PathClose:
			rp.Stop(true)
			restart = true
		}
	}
	return rp
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func toPoint(p arctext.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	return b.out
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.out == nil {
		return 0, ErrNotRendered
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.out)
	return cw.n, err
}

// SaveToFile saves the rendered content to a file. The extension selects
// the format (png, jpg, gif, tif or bmp).
func (b *Backend) SaveToFile(path string) error {
	if b.out == nil {
		return ErrNotRendered
	}
	return imaging.Save(b.out, path)
}

// Width returns the backend width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the backend height.
func (b *Backend) Height() int {
	return b.height
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
