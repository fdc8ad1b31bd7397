package text

import (
	"math"
	"testing"

	"github.com/go-text/typesetting/shaping"
	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/arctext"
)

func styleAt(size float64) arctext.Style {
	st := arctext.DefaultStyle()
	st.FontSize = size
	return st
}

func TestMeasureGrapheme(t *testing.T) {
	lib := DefaultLibrary()
	st := styleAt(40)

	a := lib.MeasureGrapheme("a", "", st)
	if a.Width <= 0 || a.Width >= st.FontSize {
		t.Errorf("Width(a) = %v, want within (0, %v)", a.Width, st.FontSize)
	}
	if a.KernedWidth != a.Width {
		t.Errorf("KernedWidth(a) at line start = %v, want Width %v", a.KernedWidth, a.Width)
	}
	if a.Height != st.FontSize {
		t.Errorf("Height(a) = %v, want %v", a.Height, st.FontSize)
	}
	if a.Contour == nil || a.Contour.W <= 0 || a.Contour.H <= 0 {
		t.Fatalf("Contour(a) = %+v, want ink", a.Contour)
	}

	if w, i := lib.MeasureGrapheme("W", "", st), lib.MeasureGrapheme("i", "", st); w.Width <= i.Width {
		t.Errorf("Width(W) = %v not above Width(i) = %v", w.Width, i.Width)
	}

	space := lib.MeasureGrapheme(" ", "", st)
	if space.Contour != nil {
		t.Errorf("Contour(space) = %+v, want nil", space.Contour)
	}
	if space.Width <= 0 {
		t.Errorf("Width(space) = %v, want positive", space.Width)
	}
}

func TestMeasureGraphemeContourBaseline(t *testing.T) {
	lib := DefaultLibrary()
	st := styleAt(100)

	x := lib.MeasureGrapheme("x", "", st).Contour
	if x == nil || math.Abs(x.Y) > 0.02 {
		t.Errorf("Contour(x).Y = %+v, want on the baseline", x)
	}
	g := lib.MeasureGrapheme("g", "", st).Contour
	if g == nil || g.Y >= -0.1 {
		t.Errorf("Contour(g).Y = %+v, want below the baseline", g)
	}
	h := lib.MeasureGrapheme("H", "", st).Contour
	if h == nil || h.Y+h.H < 0.6 || h.Y+h.H > 0.8 {
		t.Errorf("Contour(H) top = %+v, want cap height", h)
	}
}

func TestMeasureGraphemeScales(t *testing.T) {
	lib := DefaultLibrary()
	small := lib.MeasureGrapheme("m", "", styleAt(20))
	large := lib.MeasureGrapheme("m", "", styleAt(80))
	if math.Abs(large.Width-4*small.Width) > 0.1 {
		t.Errorf("Width at 80 = %v, want 4 x %v", large.Width, small.Width)
	}
	if math.Abs(large.Contour.W-small.Contour.W) > 0.01 {
		t.Errorf("contour width in em changed with size: %v vs %v", large.Contour.W, small.Contour.W)
	}
}

func TestMeasureGraphemeKerningPair(t *testing.T) {
	lib := DefaultLibrary()
	st := styleAt(40)
	for _, pair := range [][2]string{{"A", "V"}, {"T", "o"}, {"a", "b"}} {
		gm := lib.MeasureGrapheme(pair[1], pair[0], st)
		if math.Abs(gm.KernedWidth-gm.Width) > st.FontSize/4 {
			t.Errorf("KernedWidth(%s after %s) = %v, too far from Width %v", pair[1], pair[0], gm.KernedWidth, gm.Width)
		}
	}
}

func TestMeasureGraphemeDegenerate(t *testing.T) {
	lib := DefaultLibrary()
	if got := lib.MeasureGrapheme("", "a", styleAt(40)); got != (arctext.GlyphMetrics{Height: 40}) {
		t.Errorf("MeasureGrapheme(\"\") = %+v", got)
	}
	if got := lib.MeasureGrapheme("a", "", styleAt(0)); got != (arctext.GlyphMetrics{}) {
		t.Errorf("MeasureGrapheme at size 0 = %+v", got)
	}
}

func TestClusters(t *testing.T) {
	glyphs := []shaping.Glyph{
		{ClusterIndex: 0, RuneCount: 1, GlyphCount: 1},
		{ClusterIndex: 1, RuneCount: 3, GlyphCount: 1}, // ligature over runes 1..3
		{ClusterIndex: 4, RuneCount: 1, GlyphCount: 2}, // decomposed glyph
		{ClusterIndex: 4, RuneCount: 1, GlyphCount: 2},
		{ClusterIndex: 5, RuneCount: 1, GlyphCount: 1},
	}
	want := []clusterSpan{{0, 1}, {1, 4}, {4, 5}, {5, 6}}
	if d := cmp.Diff(want, clusters(glyphs), cmp.AllowUnexported(clusterSpan{})); d != "" {
		t.Errorf("clusters() mismatch (-want +got):\n%s", d)
	}
}

func TestFeatureClusters(t *testing.T) {
	tests := []struct {
		name  string
		spans []clusterSpan
		owner []int
		want  []arctext.FeatureCluster
	}{
		{
			name:  "ligature",
			spans: []clusterSpan{{0, 1}, {1, 3}, {3, 4}},
			owner: []int{0, 1, 2, 3},
			want:  []arctext.FeatureCluster{{Position: 1, Length: 2}},
		},
		{
			name:  "cluster inside one grapheme",
			spans: []clusterSpan{{0, 2}, {2, 3}},
			owner: []int{0, 0, 1},
		},
		{
			name:  "cluster across a multi-rune grapheme",
			spans: []clusterSpan{{0, 3}},
			owner: []int{0, 0, 1},
			want:  []arctext.FeatureCluster{{Position: 0, Length: 2}},
		},
		{
			name:  "overlapping clusters merge",
			spans: []clusterSpan{{0, 2}, {1, 3}},
			owner: []int{0, 1, 2, 3},
			want:  []arctext.FeatureCluster{{Position: 0, Length: 3}},
		},
		{
			name:  "out of range span",
			spans: []clusterSpan{{2, 9}},
			owner: []int{0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := cmp.Diff(tt.want, featureClusters(tt.spans, tt.owner)); d != "" {
				t.Errorf("featureClusters() mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestDetectFeaturesPlainText(t *testing.T) {
	lib := DefaultLibrary()
	if got := lib.DetectFeatures([]string{"x"}, styleAt(40)); got != nil {
		t.Errorf("DetectFeatures(single) = %v, want nil", got)
	}
	// The Go fonts carry no ligatures for these letters.
	if got := lib.DetectFeatures([]string{"x", "y", "z"}, styleAt(40)); len(got) != 0 {
		t.Errorf("DetectFeatures(xyz) = %v, want none", got)
	}
}
