package arctext

// Contour is the ink rectangle of a glyph in em units.
// X is measured from the pen position, Y is the bottom of the ink above
// the baseline (negative for descenders), W and H are the ink size.
type Contour struct {
	X, Y, W, H float64
}

// GlyphMetrics is the measurement of one grapheme cluster in pixels.
type GlyphMetrics struct {
	// Width is the advance width of the grapheme alone.
	Width float64
	// KernedWidth is the advance including kerning against the
	// previous grapheme.
	KernedWidth float64
	// Height is the nominal glyph height, usually the font size.
	Height float64
	// Contour is the ink rectangle, nil when the provider does not track ink.
	Contour *Contour
}

// MetricsProvider measures grapheme clusters for a resolved style.
// prev is the preceding grapheme on the same line, or "" at line start.
type MetricsProvider interface {
	MeasureGrapheme(grapheme, prev string, style Style) GlyphMetrics
}

// FeatureCluster is a run of graphemes rendered as one glyph, such as a
// ligature. Position is relative to the graphemes passed to DetectFeatures.
type FeatureCluster struct {
	Position int
	Length   int
}

// FeatureDetector reports multi-grapheme clusters of a styled run.
type FeatureDetector interface {
	DetectFeatures(graphemes []string, style Style) []FeatureCluster
}

// MetricsFunc adapts a function to the MetricsProvider interface.
type MetricsFunc func(grapheme, prev string, style Style) GlyphMetrics

// MeasureGrapheme implements MetricsProvider.
func (f MetricsFunc) MeasureGrapheme(grapheme, prev string, style Style) GlyphMetrics {
	return f(grapheme, prev, style)
}
