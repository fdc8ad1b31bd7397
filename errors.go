package arctext

import "errors"

// Sentinel errors for the arctext package.
var (
	// ErrNoMetrics is returned when a layout is requested without a
	// glyph metrics provider.
	ErrNoMetrics = errors.New("arctext: no metrics provider")

	// ErrNotLaidOut is returned by operations that need a published layout
	// when none could be built.
	ErrNotLaidOut = errors.New("arctext: layout not initialized")
)

// UnknownValueError is returned when a textual enumeration value
// (alignment, transform, weight, color) cannot be parsed.
type UnknownValueError struct {
	Kind  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return "arctext: unknown " + e.Kind + " " + `"` + e.Value + `"`
}
