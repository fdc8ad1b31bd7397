package text

import (
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/arctext"
)

type measureKey struct {
	src  *FontSource
	size float64
	g    string
	prev string
}

// MeasureGrapheme implements arctext.MetricsProvider.
//
// Width is the shaped advance of g alone. KernedWidth is the advance of
// prev+g minus the advance of prev. The contour is the union of the ink
// boxes of g's glyphs in em units; it is nil for graphemes without ink.
func (l *Library) MeasureGrapheme(g, prev string, st arctext.Style) arctext.GlyphMetrics {
	size := st.FontSize
	src, err := l.Source(st.Font())
	if err != nil || g == "" || size <= 0 {
		return arctext.GlyphMetrics{Height: size}
	}
	key := measureKey{src: src, size: size, g: g, prev: prev}
	return l.measures.getOrCreate(key, func() arctext.GlyphMetrics {
		return measure(src, g, prev, size)
	})
}

func measure(src *FontSource, g, prev string, size float64) arctext.GlyphMetrics {
	glyphs := shape(src, []rune(g), size)
	gm := arctext.GlyphMetrics{
		Width:   advance(glyphs),
		Height:  size,
		Contour: inkContour(glyphs, size),
	}
	gm.KernedWidth = gm.Width
	if prev != "" {
		pair := advance(shape(src, []rune(prev+g), size))
		gm.KernedWidth = pair - advance(shape(src, []rune(prev), size))
	}
	return gm
}

// inkContour unions the glyph extents of a shaped run. Glyph extents are
// Y up with a negative Height; the contour keeps Y as the bottom of the
// ink above the baseline.
func inkContour(glyphs []shaping.Glyph, size float64) *arctext.Contour {
	var (
		pen  float64
		box  = arctext.EmptyRect()
		seen bool
	)
	for _, g := range glyphs {
		w, h := fixedToFloat(g.Width), fixedToFloat(g.Height)
		if w != 0 && h != 0 {
			x := pen + fixedToFloat(g.XOffset) + fixedToFloat(g.XBearing)
			top := fixedToFloat(g.YOffset) + fixedToFloat(g.YBearing)
			box = box.Extend(arctext.Pt(x, top)).Extend(arctext.Pt(x+w, top+h))
			seen = true
		}
		pen += fixedToFloat(g.Advance)
	}
	if !seen {
		return nil
	}
	return &arctext.Contour{
		X: box.MinX / size,
		Y: box.MinY / size,
		W: (box.MaxX - box.MinX) / size,
		H: (box.MaxY - box.MinY) / size,
	}
}

// DetectFeatures implements arctext.FeatureDetector. It shapes the run
// and reports every shaping cluster that spans more than one grapheme,
// such as a ligature.
func (l *Library) DetectFeatures(graphemes []string, st arctext.Style) []arctext.FeatureCluster {
	if len(graphemes) < 2 {
		return nil
	}
	src, err := l.Source(st.Font())
	if err != nil {
		return nil
	}
	var runes []rune
	owner := make([]int, 0, len(graphemes))
	for gi, g := range graphemes {
		for _, r := range g {
			runes = append(runes, r)
			owner = append(owner, gi)
		}
	}
	return featureClusters(clusters(shape(src, runes, st.FontSize)), owner)
}

// featureClusters maps rune spans to grapheme clusters; owner[i] is the
// grapheme holding rune i.
func featureClusters(spans []clusterSpan, owner []int) []arctext.FeatureCluster {
	var out []arctext.FeatureCluster
	for _, s := range spans {
		if s.start < 0 || s.end > len(owner) || s.start >= s.end {
			continue
		}
		first, last := owner[s.start], owner[s.end-1]
		if last <= first {
			continue
		}
		if n := len(out); n > 0 && first < out[n-1].Position+out[n-1].Length {
			prev := &out[n-1]
			prev.Length = max(prev.Length, last-prev.Position+1)
			continue
		}
		out = append(out, arctext.FeatureCluster{Position: first, Length: last - first + 1})
	}
	return out
}
