package arctext

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeMetrics measures graphemes from a width table in em units.
// Unknown graphemes are half an em wide.
type fakeMetrics struct {
	widths  map[string]float64
	kerning map[string]float64
	contour bool
}

func (m fakeMetrics) MeasureGrapheme(g, prev string, st Style) GlyphMetrics {
	w, ok := m.widths[g]
	if !ok {
		w = 0.5
	}
	gm := GlyphMetrics{
		Width:       w * st.FontSize,
		KernedWidth: (w + m.kerning[prev+g]) * st.FontSize,
		Height:      st.FontSize,
	}
	if m.contour && strings.TrimSpace(g) != "" {
		gm.Contour = &Contour{X: 0.05, Y: -0.1, W: w - 0.1, H: 0.8}
	}
	return gm
}

// pxMetrics gives every grapheme a fixed pixel width regardless of size.
func pxMetrics(widths map[string]float64, def float64) MetricsProvider {
	return MetricsFunc(func(g, _ string, st Style) GlyphMetrics {
		w, ok := widths[g]
		if !ok {
			w = def
		}
		return GlyphMetrics{Width: w, KernedWidth: w, Height: st.FontSize}
	})
}

// fakeFeatures reports every occurrence of the listed sequences as one
// cluster.
type fakeFeatures []string

func (f fakeFeatures) DetectFeatures(graphemes []string, _ Style) []FeatureCluster {
	var out []FeatureCluster
	for i := 0; i < len(graphemes); {
		matched := false
		for _, lig := range f {
			n := len([]rune(lig))
			if i+n <= len(graphemes) && strings.Join(graphemes[i:i+n], "") == lig {
				out = append(out, FeatureCluster{Position: i, Length: n})
				i += n
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return out
}

func testParams(text string) layoutParams {
	return layoutParams{
		text:         text,
		curvature:    100,
		lineHeight:   defaultLineHeight,
		base:         DefaultStyle(),
		metrics:      fakeMetrics{},
		renderBounds: true,
	}
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}

// opRecorder is a Surface that records its calls by name.
type opRecorder struct {
	ops    []string
	depth  int
	texts  []string
	fills  []RGBA
	widths []float64
	paths  int
}

func (r *opRecorder) op(name string) { r.ops = append(r.ops, name) }

func (r *opRecorder) Push()                                 { r.depth++; r.op("push") }
func (r *opRecorder) Pop()                                  { r.depth--; r.op("pop") }
func (r *opRecorder) Translate(x, y float64)                { r.op("translate") }
func (r *opRecorder) Rotate(float64)                        { r.op("rotate") }
func (r *opRecorder) Scale(float64, float64)                { r.op("scale") }
func (r *opRecorder) MoveTo(float64, float64)               { r.op("moveTo") }
func (r *opRecorder) LineTo(float64, float64)               { r.op("lineTo") }
func (r *opRecorder) Arc(_, _, _, _, _ float64, _ bool)     { r.op("arc") }
func (r *opRecorder) ClosePath()                            { r.op("closePath") }
func (r *opRecorder) Fill()                                 { r.paths++; r.op("fill") }
func (r *opRecorder) Stroke()                               { r.paths++; r.op("stroke") }
func (r *opRecorder) SetFillColor(c RGBA)                   { r.fills = append(r.fills, c) }
func (r *opRecorder) SetStrokeColor(RGBA)                   {}
func (r *opRecorder) SetLineWidth(w float64)                { r.widths = append(r.widths, w) }
func (r *opRecorder) SetDash(...float64)                    { r.op("dash") }
func (r *opRecorder) SetAlpha(float64)                      { r.op("alpha") }
func (r *opRecorder) SetFont(Font)                          { r.op("font") }
func (r *opRecorder) FillText(s string, _, _ float64)       { r.texts = append(r.texts, s); r.op("fillText") }
func (r *opRecorder) StrokeText(s string, _, _ float64)     { r.op("strokeText") }
func (r *opRecorder) FillRect(_, _, _, _ float64)           { r.op("fillRect") }
func (r *opRecorder) StrokeRect(_, _, _, _ float64)         { r.op("strokeRect") }

func (r *opRecorder) count(name string) int {
	n := 0
	for _, op := range r.ops {
		if op == name {
			n++
		}
	}
	return n
}

func (r *opRecorder) index(name string) int {
	for i, op := range r.ops {
		if op == name {
			return i
		}
	}
	return -1
}
