package recording

import (
	"image"
	"io"

	"github.com/gogpu/arctext"
)

// Backend is the interface that all playback backends must implement.
// Backends receive drawing commands and translate them to their output
// format (raster pixels, SVG elements, PDF content streams).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// Drawing methods do not return errors; a backend that fails to draw
// something reports the first failure from End.
type Backend interface {
	// Begin initializes the backend for a canvas of the given size.
	Begin(width, height int) error

	// End finalizes the output. Output methods may be used afterwards.
	End() error

	// FillPath fills a device-space path with the non-zero rule.
	FillPath(p *Path, c arctext.RGBA)

	// StrokePath strokes a device-space path.
	StrokePath(p *Path, c arctext.RGBA, s Stroke)

	// FillText fills a text run.
	FillText(run TextRun, c arctext.RGBA)

	// StrokeText strokes the outline of a text run.
	StrokeText(run TextRun, c arctext.RGBA, s Stroke)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before Begin.
	Image() image.Image
}
