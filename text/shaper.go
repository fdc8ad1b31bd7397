package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shaperPool pools HarfbuzzShaper instances. A HarfbuzzShaper keeps an
// internal buffer and is not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// shape runs HarfBuzz over runes with the given source and pixel size.
func shape(src *FontSource, runes []rune, size float64) []shaping.Glyph {
	if len(runes) == 0 {
		return nil
	}
	// font.Face is not safe for concurrent use; NewFace only wraps the
	// shared *font.Font.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(src.shape),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)
	return out.Glyphs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// advance sums the horizontal advances of shaped glyphs.
func advance(glyphs []shaping.Glyph) float64 {
	var w fixed.Int26_6
	for _, g := range glyphs {
		w += g.Advance
	}
	return fixedToFloat(w)
}

// clusterSpan is a shaping cluster in rune indices, end exclusive.
type clusterSpan struct {
	start, end int
}

// clusters lists the rune spans HarfBuzz shaped as units, in text order.
// A glyph covering several runes, or several glyphs of one cluster,
// produce a single span.
func clusters(glyphs []shaping.Glyph) []clusterSpan {
	var out []clusterSpan
	for _, g := range glyphs {
		s := clusterSpan{g.ClusterIndex, g.ClusterIndex + max(g.RuneCount, 1)}
		if n := len(out); n > 0 && s.start < out[n-1].end {
			out[n-1].end = max(out[n-1].end, s.end)
			continue
		}
		out = append(out, s)
	}
	return out
}
