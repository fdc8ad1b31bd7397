package arctext

import (
	"testing"
)

func TestJustifyEqualSplit(t *testing.T) {
	// "ab cd ef" is 80px wide and the second line sets a 100px target.
	p := testParams("ab cd ef\nabcdefghij")
	p.renderBounds = false
	p.align = AlignJustifyLeft
	p.metrics = pxMetrics(nil, 10)
	l := buildLayout(p)

	if !approx(l.TextWidth, 100) {
		t.Fatalf("TextWidth = %v, want 100", l.TextWidth)
	}
	if got := l.Lines[0].Width; !approx(got, 100) {
		t.Errorf("Lines[0].Width = %v, want 100", got)
	}
	tests := []struct {
		char      int
		wantLeft  float64
		wantWidth float64
	}{
		{0, 0, 10},
		{1, 10, 10},
		{2, 20, 20}, // first run +10
		{3, 40, 10},
		{4, 50, 10},
		{5, 60, 20}, // second run +10
		{6, 80, 10},
		{7, 90, 10},
		{8, 100, 0}, // trailing box
	}
	for _, tt := range tests {
		b := l.Bounds(0, tt.char)
		if !approx(b.Left, tt.wantLeft) || !approx(b.Width, tt.wantWidth) {
			t.Errorf("Bounds(0, %d) = left %v width %v, want left %v width %v",
				tt.char, b.Left, b.Width, tt.wantLeft, tt.wantWidth)
		}
	}
}

func TestJustifyConservation(t *testing.T) {
	texts := []string{
		"a  b c\t\td efg\nthe longest line of all here\nx",
		"one two\nthree   four five six seven\n",
		"  leading and trailing  \nabcdefghijklmnopqrstuvwxyz0123",
	}
	for _, text := range texts {
		p := testParams(text)
		p.renderBounds = false
		p.align = AlignJustify
		p.metrics = pxMetrics(map[string]float64{" ": 7, "\t": 13}, 11)

		natural := buildLayout(func() layoutParams { q := p; q.align = AlignLeft; return q }())
		justified := buildLayout(p)

		for li := range natural.Lines {
			nw := natural.Lines[li].Width
			if nw >= justified.TextWidth || countSpaceRuns(natural.TextLines()[li]) == 0 {
				continue
			}
			var delta float64
			for j := 0; j < natural.LineLen(li); j++ {
				delta += justified.Bounds(li, j).Width - natural.Bounds(li, j).Width
			}
			if want := justified.TextWidth - nw; !approx(delta, want) {
				t.Errorf("%q line %d: width delta = %v, want %v", text, li, delta, want)
			}
			n := natural.LineLen(li)
			if got := justified.Bounds(li, n).Left; !approx(got, justified.TextWidth) {
				t.Errorf("%q line %d: trailing left = %v, want %v", text, li, got, justified.TextWidth)
			}
		}
	}
}

func TestJustifySkipsLastLine(t *testing.T) {
	p := testParams("a b c d\na b")
	p.renderBounds = false
	p.metrics = pxMetrics(nil, 10)
	for _, align := range []TextAlign{AlignJustifyLeft, AlignJustifyCenter, AlignJustifyRight} {
		p.align = align
		l := buildLayout(p)
		if got := l.Lines[1].Width; !approx(got, 30) {
			t.Errorf("%v: last line width = %v, want 30", align, got)
		}
	}
	p.align = AlignJustify
	l := buildLayout(p)
	if got := l.Lines[1].Width; !approx(got, 70) {
		t.Errorf("justify: last line width = %v, want 70", got)
	}
}

func TestMeasureLineVoidAndEmoji(t *testing.T) {
	styles := NewStyleMap()
	styles.SetMarker(0, 1, 3, SpecialMarker{Kind: MarkerVoid, ID: 1})

	p := testParams("a..b")
	p.renderBounds = false
	p.styles = styles
	p.metrics = pxMetrics(nil, 10)
	l := buildLayout(p)

	if got := l.TextWidth; !approx(got, 20) {
		t.Errorf("TextWidth with void run = %v, want 20", got)
	}
	if got := l.Bounds(0, 3).Left; !approx(got, 10) {
		t.Errorf("Bounds(0, 3).Left = %v, want 10", got)
	}
	if l.Char(0, 1).Drawable() {
		t.Error("void slot is drawable")
	}

	p = testParams("a👍🏽b")
	p.renderBounds = false
	p.metrics = pxMetrics(nil, 10)
	p.emojiGlyphs = true
	l = buildLayout(p)
	if got, want := l.LineLen(0), 4; got != want {
		t.Fatalf("LineLen(0) = %d, want %d", got, want)
	}
	if got := l.Bounds(0, 1).Width; !approx(got, 40) {
		t.Errorf("emoji width = %v, want font size 40", got)
	}
	if got := l.Bounds(0, 2).Width; got != 0 {
		t.Errorf("emoji continuation width = %v, want 0", got)
	}
	if got := l.Char(0, 1).Text; got != "👍🏽" {
		t.Errorf("emoji Text = %q, want the whole sequence", got)
	}
	if ct := l.Char(0, 2); ct.Drawable() || !ct.Continuation {
		t.Errorf("emoji continuation = %+v, want merged", ct)
	}

	p.emojiGlyphs = false
	l = buildLayout(p)
	if got := l.Bounds(0, 1).Width; !approx(got, 10) {
		t.Errorf("measured emoji width = %v, want 10", got)
	}
}

func TestLineLeftOffsetZeroWidth(t *testing.T) {
	l := &Layout{align: AlignCenter, Lines: []LineMetrics{{Width: 5}}}
	if got := l.lineLeftOffset(0, 0); got != 0 {
		t.Errorf("lineLeftOffset(0, 0) = %v, want 0", got)
	}
}
