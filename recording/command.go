package recording

import (
	"math"
	"slices"

	"github.com/gogpu/arctext"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdFillPath   CommandType = iota // Fill a device-space path
	CmdStrokePath                    // Stroke a device-space path
	CmdFillText                      // Fill a text run
	CmdStrokeText                    // Stroke a text run
)

var commandTypeNames = [...]string{
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
	CmdFillText:   "FillText",
	CmdStrokeText: "StrokeText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Stroke defines the style for stroking. Width and Dash are in the
// coordinate space of the geometry they apply to.
type Stroke struct {
	Width float64
	// Dash alternates dash and gap lengths; nil is a solid line.
	Dash []float64
}

// Clone creates a deep copy of the Stroke.
func (s Stroke) Clone() Stroke {
	s.Dash = slices.Clone(s.Dash)
	return s
}

// TextRun is a string anchored at its horizontal center on the baseline.
// X, Y and the font are in user space; Transform maps them to the device.
type TextRun struct {
	Text      string
	X, Y      float64
	Font      arctext.Font
	Transform arctext.Matrix
}

// DeviceStroke scales a user-space stroke by the run's transform.
func (r TextRun) DeviceStroke(s Stroke) Stroke {
	m := r.Transform
	k := math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
	out := Stroke{Width: s.Width * k}
	for _, d := range s.Dash {
		out.Dash = append(out.Dash, d*k)
	}
	return out
}

// FillPathCommand fills a path with the non-zero winding rule.
type FillPathCommand struct {
	Path  *Path
	Color arctext.RGBA
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a path.
type StrokePathCommand struct {
	Path   *Path
	Color  arctext.RGBA
	Stroke Stroke
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// FillTextCommand fills the glyphs of a text run.
type FillTextCommand struct {
	Run   TextRun
	Color arctext.RGBA
}

// Type implements Command.
func (FillTextCommand) Type() CommandType { return CmdFillText }

// StrokeTextCommand strokes the glyph outlines of a text run. The stroke
// is in user space.
type StrokeTextCommand struct {
	Run    TextRun
	Color  arctext.RGBA
	Stroke Stroke
}

// Type implements Command.
func (StrokeTextCommand) Type() CommandType { return CmdStrokeText }
