package recording

import (
	"math"
	"slices"

	"github.com/gogpu/arctext"
)

// Recorder captures drawing operations as commands.
// It implements arctext.Surface; use FinishRecording to obtain an
// immutable Recording that can be replayed to different backends.
//
// The Recorder starts with an identity transform, black fill and stroke,
// a 1px line width, full opacity and arctext.DefaultStyle's font.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	path  *Path
	state recorderState
	stack []recorderState
}

// recorderState stores the graphics state for Push/Pop.
type recorderState struct {
	transform arctext.Matrix
	fill      arctext.RGBA
	stroke    arctext.RGBA
	lineWidth float64
	dash      []float64
	alpha     float64
	font      arctext.Font
}

var _ arctext.Surface = (*Recorder)(nil)

// NewRecorder creates a new Recorder for the given canvas size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
		path:     NewPath(),
		state: recorderState{
			transform: arctext.Identity(),
			fill:      arctext.Black,
			stroke:    arctext.Black,
			lineWidth: 1,
			alpha:     1,
			font:      arctext.DefaultStyle().Font(),
		},
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int { return r.height }

// FinishRecording returns an immutable Recording containing all recorded
// commands. The Recorder must not be used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{width: r.width, height: r.height, commands: r.commands}
}

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

// Push saves the current graphics state.
func (r *Recorder) Push() {
	st := r.state
	st.dash = slices.Clone(st.dash)
	r.stack = append(r.stack, st)
}

// Pop restores the last saved state. Pop on an empty stack is a no-op.
func (r *Recorder) Pop() {
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// Depth returns the number of saved states.
func (r *Recorder) Depth() int { return len(r.stack) }

// Transform returns the current transformation matrix.
func (r *Recorder) Transform() arctext.Matrix { return r.state.transform }

// Translate applies a translation to the current transform.
func (r *Recorder) Translate(x, y float64) {
	r.state.transform = r.state.transform.Multiply(arctext.Translate(x, y))
}

// Rotate applies a rotation in radians to the current transform.
func (r *Recorder) Rotate(angle float64) {
	r.state.transform = r.state.transform.Multiply(arctext.Rotate(angle))
}

// Scale applies a scale to the current transform.
func (r *Recorder) Scale(sx, sy float64) {
	r.state.transform = r.state.transform.Multiply(arctext.Scale(sx, sy))
}

// SetFillColor sets the fill color.
func (r *Recorder) SetFillColor(c arctext.RGBA) { r.state.fill = c }

// SetStrokeColor sets the stroke color.
func (r *Recorder) SetStrokeColor(c arctext.RGBA) { r.state.stroke = c }

// SetLineWidth sets the stroke width in user units.
func (r *Recorder) SetLineWidth(w float64) { r.state.lineWidth = w }

// SetDash sets the dash pattern in user units; no lengths means solid.
// A pattern of odd length is repeated to make it even, and a pattern
// without any positive length is treated as solid.
func (r *Recorder) SetDash(lengths ...float64) {
	r.state.dash = normalizeDash(lengths)
}

// SetAlpha sets the global opacity applied to every paint.
func (r *Recorder) SetAlpha(a float64) { r.state.alpha = min(max(a, 0), 1) }

// SetFont sets the font used by FillText and StrokeText.
func (r *Recorder) SetFont(f arctext.Font) { r.state.font = f }

func normalizeDash(lengths []float64) []float64 {
	var sum float64
	for _, l := range lengths {
		if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return nil
		}
		sum += l
	}
	if sum == 0 {
		return nil
	}
	d := slices.Clone(lengths)
	if len(d)%2 == 1 {
		d = append(d, d...)
	}
	return d
}

// --------------------------------------------------------------------------
// Path construction
// --------------------------------------------------------------------------

func (r *Recorder) device(x, y float64) arctext.Point {
	return r.state.transform.TransformPoint(arctext.Pt(x, y))
}

// MoveTo starts a new subpath.
func (r *Recorder) MoveTo(x, y float64) { r.path.MoveTo(r.device(x, y)) }

// LineTo adds a line to the current subpath.
func (r *Recorder) LineTo(x, y float64) { r.path.LineTo(r.device(x, y)) }

// QuadTo adds a quadratic Bézier to the current subpath.
func (r *Recorder) QuadTo(cx, cy, x, y float64) {
	r.path.QuadTo(r.device(cx, cy), r.device(x, y))
}

// CubicTo adds a cubic Bézier to the current subpath.
func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.path.CubicTo(r.device(c1x, c1y), r.device(c2x, c2y), r.device(x, y))
}

// Arc continues the current subpath along a circular arc converted to
// cubic Béziers.
func (r *Recorder) Arc(cx, cy, radius, a1, a2 float64, anticlockwise bool) {
	r.path.arc(r.state.transform, cx, cy, radius, a1, a2, anticlockwise)
}

// ClosePath closes the current subpath.
func (r *Recorder) ClosePath() { r.path.Close() }

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// paint applies the global alpha to c and reports whether anything
// would be drawn.
func (r *Recorder) paint(c arctext.RGBA) (arctext.RGBA, bool) {
	c = c.WithAlpha(r.state.alpha)
	return c, !c.IsZero()
}

// scaleFactor is the geometric mean scale of the current transform.
func (r *Recorder) scaleFactor() float64 {
	m := r.state.transform
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

// deviceStroke returns the current stroke scaled to device space.
func (r *Recorder) deviceStroke() Stroke {
	k := r.scaleFactor()
	s := Stroke{Width: r.state.lineWidth * k}
	if r.state.dash != nil {
		s.Dash = make([]float64, len(r.state.dash))
		for i, d := range r.state.dash {
			s.Dash[i] = d * k
		}
	}
	return s
}

// Fill fills the current path and clears it.
func (r *Recorder) Fill() {
	p := r.takePath()
	if p.IsEmpty() {
		return
	}
	if c, ok := r.paint(r.state.fill); ok {
		r.commands = append(r.commands, FillPathCommand{Path: p, Color: c})
	}
}

// Stroke strokes the current path and clears it.
func (r *Recorder) Stroke() {
	p := r.takePath()
	if p.IsEmpty() || r.state.lineWidth <= 0 {
		return
	}
	if c, ok := r.paint(r.state.stroke); ok {
		r.commands = append(r.commands, StrokePathCommand{Path: p, Color: c, Stroke: r.deviceStroke()})
	}
}

func (r *Recorder) takePath() *Path {
	p := r.path
	r.path = NewPath()
	return p
}

// FillRect fills a rectangle without touching the current path.
func (r *Recorder) FillRect(x, y, w, h float64) {
	c, ok := r.paint(r.state.fill)
	if !ok || w == 0 || h == 0 {
		return
	}
	p := NewPath()
	p.Rect(x, y, w, h)
	r.commands = append(r.commands, FillPathCommand{Path: p.Transform(r.state.transform), Color: c})
}

// StrokeRect strokes a rectangle without touching the current path.
func (r *Recorder) StrokeRect(x, y, w, h float64) {
	c, ok := r.paint(r.state.stroke)
	if !ok || r.state.lineWidth <= 0 {
		return
	}
	p := NewPath()
	p.Rect(x, y, w, h)
	r.commands = append(r.commands, StrokePathCommand{
		Path:   p.Transform(r.state.transform),
		Color:  c,
		Stroke: r.deviceStroke(),
	})
}

func (r *Recorder) run(s string, x, y float64) (TextRun, bool) {
	if s == "" || r.state.font.Size <= 0 {
		return TextRun{}, false
	}
	return TextRun{Text: s, X: x, Y: y, Font: r.state.font, Transform: r.state.transform}, true
}

// FillText records s centered on x with the baseline at y.
func (r *Recorder) FillText(s string, x, y float64) {
	run, ok := r.run(s, x, y)
	if !ok {
		return
	}
	if c, ok := r.paint(r.state.fill); ok {
		r.commands = append(r.commands, FillTextCommand{Run: run, Color: c})
	}
}

// StrokeText records the outline of s centered on x with the baseline at y.
func (r *Recorder) StrokeText(s string, x, y float64) {
	run, ok := r.run(s, x, y)
	if !ok || r.state.lineWidth <= 0 {
		return
	}
	if c, ok := r.paint(r.state.stroke); ok {
		st := Stroke{Width: r.state.lineWidth, Dash: slices.Clone(r.state.dash)}
		r.commands = append(r.commands, StrokeTextCommand{Run: run, Color: c, Stroke: st})
	}
}
