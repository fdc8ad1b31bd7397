package recording

import (
	"fmt"

	"github.com/gogpu/arctext"
)

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command { return r.commands }

// Bounds returns the device-space box of all path commands. Text runs
// contribute their anchor point only.
func (r *Recording) Bounds() arctext.Rect {
	b := arctext.EmptyRect()
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillPathCommand:
			b = b.Union(c.Path.Bounds())
		case StrokePathCommand:
			b = b.Union(c.Path.Bounds())
		case FillTextCommand:
			b = b.Extend(c.Run.Transform.TransformPoint(arctext.Pt(c.Run.X, c.Run.Y)))
		case StrokeTextCommand:
			b = b.Extend(c.Run.Transform.TransformPoint(arctext.Pt(c.Run.X, c.Run.Y)))
		}
	}
	return b
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin playback: %w", err)
	}
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillPathCommand:
			backend.FillPath(c.Path, c.Color)
		case StrokePathCommand:
			backend.StrokePath(c.Path, c.Color, c.Stroke)
		case FillTextCommand:
			backend.FillText(c.Run, c.Color)
		case StrokeTextCommand:
			backend.StrokeText(c.Run, c.Color, c.Stroke)
		}
	}
	arctext.Logger().Debug("recording: playback", "commands", len(r.commands))
	return backend.End()
}
