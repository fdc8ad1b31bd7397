package arctext

import (
	"math"
	"testing"
)

func TestHitTestRoundTrip(t *testing.T) {
	texts := []string{
		"hello",
		"first line\nsecond\n\nfourth line here",
		"e\u0301te\u0301",
	}
	for _, c := range []float64{100, 35, -100, -35, 0} {
		for _, text := range texts {
			p := testParams(text)
			p.curvature = c
			l := buildLayout(p)
			for li := range l.Lines {
				for j, ct := range l.LineChars(li) {
					if ct.IsDiacritic {
						continue
					}
					gotLine, gotChar := l.HitTest(ct.CL)
					if gotLine != li || gotChar != j {
						t.Errorf("curvature %v %q: HitTest(cl of %d,%d) = (%d,%d)",
							c, text, li, j, gotLine, gotChar)
					}
				}
			}
		}
	}
}

func TestHitTestFifthChar(t *testing.T) {
	l := buildLayout(testParams("abcde"))
	if got := l.IndexAt(l.Char(0, 2).CL); got != 2 {
		t.Errorf("IndexAt(cl of 2) = %d, want 2", got)
	}
}

func TestHitTestClamps(t *testing.T) {
	p := testParams("abc\ndefg")
	l := buildLayout(p)

	// Far outside the outer ring selects the first line, far inside the last.
	far := l.Center.Add(Point{X: 0, Y: -10 * math.Abs(l.Radius)})
	if line, _ := l.HitTest(far); line != 0 {
		t.Errorf("HitTest(far outside) line = %d, want 0", line)
	}
	if line, _ := l.HitTest(l.Center); line != 1 {
		t.Errorf("HitTest(center) line = %d, want 1", line)
	}

	// Past the end of the line yields the end-of-line position.
	last := l.Char(1, 3)
	beyond := l.proj.point(last.CharRadius, last.RightAngle-0.2)
	if line, char := l.HitTest(beyond); line != 1 || char != 4 {
		t.Errorf("HitTest(beyond end) = (%d,%d), want (1,4)", line, char)
	}
	if got, want := l.IndexAt(beyond), 8; got != want {
		t.Errorf("IndexAt(beyond end) = %d, want %d", got, want)
	}

	// Before the start of the line yields 0.
	first := l.Char(0, 0)
	before := l.proj.point(first.CharRadius, first.LeftAngle+0.3)
	if line, char := l.HitTest(before); line != 0 || char != 0 {
		t.Errorf("HitTest(before start) = (%d,%d), want (0,0)", line, char)
	}
}

func TestHitTestEmptyLine(t *testing.T) {
	l := buildLayout(testParams("ab\n\ncd"))
	lm := l.Lines[1]
	pt := l.proj.point(lm.Radius+lm.Height/2, 0.4)
	if line, char := l.HitTest(pt); line != 1 || char != 0 {
		t.Errorf("HitTest(empty line) = (%d,%d), want (1,0)", line, char)
	}
}

func TestHitTestSkipsEmojiContinuation(t *testing.T) {
	p := testParams("a👍🏽b")
	p.emojiGlyphs = true
	l := buildLayout(p)
	// The modifier slot is never a cursor position.
	for _, pt := range []Point{l.Char(0, 2).CL, l.Char(0, 2).NL} {
		if _, char := l.HitTest(pt); char == 2 {
			t.Errorf("HitTest(%v) = 2, want an edge of the emoji", pt)
		}
	}
}

func TestAngleDistance(t *testing.T) {
	l := &Layout{}
	if got := l.angleDistance(0.1, 2*math.Pi-0.1); !approx(got, 0.2) {
		t.Errorf("angleDistance across zero = %v, want 0.2", got)
	}
	l.Flat = true
	if got := l.angleDistance(-50, 50); got != 100 {
		t.Errorf("flat angleDistance = %v, want 100", got)
	}
}
