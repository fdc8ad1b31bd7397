package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFont is returned when a library has no font to serve a request.
	ErrNoFont = errors.New("text: no font registered")

	// ErrColoredGlyph is returned by Outline when a glyph has only color
	// or bitmap data.
	ErrColoredGlyph = errors.New("text: glyph has no vector outline")
)
