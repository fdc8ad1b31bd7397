package arctext

// Option configures an ArcText during creation.
//
// Example:
//
//	lib := text.DefaultLibrary()
//	t := arctext.New("Hello",
//		arctext.WithMetrics(lib),
//		arctext.WithCurvature(-150),
//	)
type Option func(*ArcText)

// WithMetrics sets the glyph metrics provider. A layout cannot be built
// without one.
func WithMetrics(m MetricsProvider) Option {
	return func(t *ArcText) {
		t.metrics = m
	}
}

// WithStyles sets the per-character style resolver.
func WithStyles(r StyleResolver) Option {
	return func(t *ArcText) {
		t.styles = r
	}
}

// WithFeatures sets the detector of ligatures and other multi-character
// glyph clusters.
func WithFeatures(fd FeatureDetector) Option {
	return func(t *ArcText) {
		t.features = fd
	}
}

// WithCurvature sets the curvature. Positive values bend the text around
// a center below it, negative values around a center above it.
func WithCurvature(c float64) Option {
	return func(t *ArcText) {
		t.curvature = c
	}
}

// WithTextAlign sets the horizontal alignment.
func WithTextAlign(a TextAlign) Option {
	return func(t *ArcText) {
		t.align = a
	}
}

// WithTextTransform sets the letter case transform.
func WithTextTransform(tt TextTransform) Option {
	return func(t *ArcText) {
		t.transform = tt
	}
}

// WithLineHeight sets the line height as a multiple of the font size.
func WithLineHeight(h float64) Option {
	return func(t *ArcText) {
		t.lineHeight = h
	}
}

// WithCharSpacing sets extra spacing in thousandths of an em.
func WithCharSpacing(cs float64) Option {
	return func(t *ArcText) {
		t.charSpacing = cs
	}
}

// WithBaseStyle sets the style inherited by every character.
func WithBaseStyle(s Style) Option {
	return func(t *ArcText) {
		t.base = s
	}
}

// WithPlacement sets the position of the object in the scene.
// Zero scales are read as 1.
func WithPlacement(p Placement) Option {
	return func(t *ArcText) {
		t.placement = p.normalized()
	}
}

// WithRenderBoundingBoxes controls whether glyph ink contours take part
// in the object size. It is on by default.
func WithRenderBoundingBoxes(on bool) Option {
	return func(t *ArcText) {
		t.renderBounds = on
	}
}

// WithEmojiGlyphs makes emoji sequences one font size square instead of
// measuring them through the metrics provider.
func WithEmojiGlyphs(on bool) Option {
	return func(t *ArcText) {
		t.emojiGlyphs = on
	}
}

// WithPaintFirst selects whether glyphs are filled or stroked first.
func WithPaintFirst(p PaintFirst) Option {
	return func(t *ArcText) {
		t.paintFirst = p
	}
}

// WithStrokeDash sets the dash pattern of glyph strokes.
func WithStrokeDash(lengths ...float64) Option {
	return func(t *ArcText) {
		t.strokeDash = append([]float64(nil), lengths...)
	}
}

// WithBackground sets the fill and border of the object box.
// Zero colors draw nothing.
func WithBackground(fill, stroke RGBA) Option {
	return func(t *ArcText) {
		t.backgroundColor = fill
		t.backgroundStroke = stroke
	}
}

// WithSelectionColor sets the color of the selection overlay.
func WithSelectionColor(c RGBA) Option {
	return func(t *ArcText) {
		t.selectionColor = c
	}
}

// WithCursor sets the cursor width in screen pixels and its opacity.
func WithCursor(width, opacity float64) Option {
	return func(t *ArcText) {
		t.cursorWidth = width
		t.cursorOpacity = opacity
	}
}
