// Package text measures and outlines graphemes with real fonts for arctext.
//
// The package is organized around two types:
//
//   - FontSource: a parsed font file shared by every size and style
//   - Library: a set of font sources keyed by family, weight and style
//
// A Library implements both arctext.MetricsProvider and
// arctext.FeatureDetector, so one value configures a whole ArcText:
//
//	lib := text.DefaultLibrary()
//	t := arctext.New("Hello", arctext.WithMetrics(lib), arctext.WithFeatures(lib))
//
// # Shaping
//
// Advances, kerning and ligature clusters come from HarfBuzz shaping via
// go-text/typesetting. Kerning against the previous grapheme is measured
// as the advance of the pair minus the advance of the previous grapheme
// alone, so any pair adjustment the font applies is captured.
//
// # Outlines
//
// Outline returns the vector outline of a shaped string in pixels with
// Y pointing down, ready for a rasterizer. Outlines are read with
// golang.org/x/image/font/sfnt.
//
// # Fonts
//
// DefaultLibrary registers the Go font family from
// golang.org/x/image/font/gofont. Additional fonts are added with
// Library.Register or Library.RegisterFile. Unknown families fall back to
// "Go" and are reported once through the arctext logger.
package text
