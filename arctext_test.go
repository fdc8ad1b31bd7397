package arctext

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewDefaults(t *testing.T) {
	at := New("x")
	if got := at.Curvature(); got != defaultCurvature {
		t.Errorf("Curvature() = %v, want %v", got, defaultCurvature)
	}
	if got := at.Placement(); got != DefaultPlacement() {
		t.Errorf("Placement() = %+v, want default", got)
	}
	if err := at.InitDimensions(); !errors.Is(err, ErrNoMetrics) {
		t.Errorf("InitDimensions() without metrics = %v, want ErrNoMetrics", err)
	}
	if at.Layout() != nil {
		t.Error("Layout() without metrics is not nil")
	}
	if err := at.Render(&opRecorder{}); !errors.Is(err, ErrNotLaidOut) {
		t.Errorf("Render() without layout = %v, want ErrNotLaidOut", err)
	}
	if got := at.PointerToCharacterIndex(Point{}); got != 0 {
		t.Errorf("PointerToCharacterIndex() without layout = %d, want 0", got)
	}
}

func TestSettersRebuild(t *testing.T) {
	at := New("abc", WithMetrics(fakeMetrics{}))
	if err := at.InitDimensions(); err != nil {
		t.Fatal(err)
	}
	first := at.Layout()

	at.SetTextTransform(TransformUppercase)
	second := at.Layout()
	if first == second {
		t.Fatal("SetTextTransform did not publish a new layout")
	}
	if got := second.Char(0, 0).Text; got != "A" {
		t.Errorf("Char(0, 0).Text = %q, want %q", got, "A")
	}
	// The previous snapshot is untouched.
	if got := first.Char(0, 0).Text; got != "a" {
		t.Errorf("old snapshot Char(0, 0).Text = %q, want %q", got, "a")
	}

	setters := []struct {
		name string
		set  func()
	}{
		{"SetText", func() { at.SetText("abcd") }},
		{"SetCurvature", func() { at.SetCurvature(-50) }},
		{"SetTextAlign", func() { at.SetTextAlign(AlignCenter) }},
		{"SetLineHeight", func() { at.SetLineHeight(2) }},
		{"SetCharSpacing", func() { at.SetCharSpacing(20) }},
		{"SetBaseStyle", func() { at.SetBaseStyle(Style{FontSize: 10}) }},
		{"SetStyles", func() { at.SetStyles(NewStyleMap()) }},
		{"SetFeatures", func() { at.SetFeatures(fakeFeatures{"ab"}) }},
		{"SetMetrics", func() { at.SetMetrics(fakeMetrics{contour: true}) }},
	}
	for _, s := range setters {
		before := at.Layout()
		s.set()
		if at.Layout() == before {
			t.Errorf("%s did not rebuild the layout", s.name)
		}
	}
	if got := at.Layout().Curvature; got != -50 {
		t.Errorf("Layout().Curvature = %v, want -50", got)
	}
}

func TestSetAttachedInitializes(t *testing.T) {
	at := New("abc", WithMetrics(fakeMetrics{}))
	at.SetAttached(true)
	if !at.Attached() {
		t.Error("Attached() = false after SetAttached(true)")
	}
	if at.layout.Load() == nil {
		t.Error("SetAttached(true) did not build the layout")
	}
}

func TestPlacementKeepsOrigin(t *testing.T) {
	tests := []struct {
		name   string
		origin Origin
		angle  float64
	}{
		{"left", OriginLeft, 0},
		{"left rotated", OriginLeft, 30},
		{"center", OriginCenter, 0},
		{"center rotated", OriginCenter, -45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := New("Overflowing text",
				WithMetrics(fakeMetrics{contour: true, widths: map[string]float64{"O": 1.2}}),
				WithPlacement(Placement{Left: 100, Top: 50, Angle: tt.angle, ScaleX: 2, ScaleY: 1.5, OriginX: tt.origin}),
			)
			if err := at.InitDimensions(); err != nil {
				t.Fatal(err)
			}
			// The first glyph stays where it is drawn whatever the curvature.
			anchor := func() Point {
				l := at.Layout()
				return at.TransformMatrix().TransformPoint(l.ToLocal(Point{X: -l.TextWidth / 2, Y: -l.TextHeight / 2}))
			}
			before := anchor()
			for _, c := range []float64{20, -80, 0, 300} {
				at.SetCurvature(c)
				diff(t, before, anchor(), cmpopts.EquateApprox(0, 1e-6))
			}
		})
	}
}

func TestTransformMatrix(t *testing.T) {
	at := New("ab", WithMetrics(fakeMetrics{}), WithCurvature(0), WithPlacement(Placement{Left: 10, Top: 20}))
	l := at.Layout()
	m := at.TransformMatrix()
	// The top-left corner of the object box is the placement point.
	got := m.TransformPoint(Point{X: -l.Width / 2, Y: -l.Height / 2})
	p := at.Placement()
	diff(t, Point{X: p.Left, Y: p.Top}, got, cmpopts.EquateApprox(0, 1e-9))
}

func TestCurvatureFromControl(t *testing.T) {
	for _, c := range []float64{100, 40, -40, -100} {
		at := New("curve\nme", WithMetrics(fakeMetrics{contour: true}), WithCurvature(c),
			WithPlacement(Placement{ScaleX: 2, ScaleY: 3}))
		off := at.CurvingControlOffset()
		if got := at.CurvatureFromControl(off.Y / 3); math.Abs(got-c) > 1e-6 {
			t.Errorf("CurvatureFromControl(control of %v) = %v", c, got)
		}
		if !approx(off.X, -at.ContentOffset().X*2) {
			t.Errorf("CurvingControlOffset().X = %v, want %v", off.X, -at.ContentOffset().X*2)
		}
	}

	at := New("flat", WithMetrics(fakeMetrics{}))
	if got := at.CurvatureFromControl(-at.ContentOffset().Y); got != 0 {
		t.Errorf("CurvatureFromControl(inside band) = %v, want 0", got)
	}
}

func TestDimensions(t *testing.T) {
	at := New("dims", WithMetrics(fakeMetrics{}), WithLineHeight(1.5))
	l := at.Layout()
	if at.Width() != l.Width || at.Height() != l.Height {
		t.Errorf("Width/Height = %v/%v, want %v/%v", at.Width(), at.Height(), l.Width, l.Height)
	}
	if at.CurvingCenter() != l.Center {
		t.Errorf("CurvingCenter() = %v, want %v", at.CurvingCenter(), l.Center)
	}
	if at.ContentOffset() != l.ContentOffset {
		t.Errorf("ContentOffset() = %v, want %v", at.ContentOffset(), l.ContentOffset)
	}
}

func TestConcurrentReadersSeeWholeLayouts(t *testing.T) {
	at := New("abc", WithMetrics(fakeMetrics{}))
	if err := at.InitDimensions(); err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				at.SetText("abcdef")
			} else {
				at.SetText("ab")
			}
		}()
		go func() {
			defer wg.Done()
			l := at.Layout()
			if l.LineLen(0) != len(l.LineChars(0)) || l.LineLen(0) != len(l.TextLines()[0]) {
				t.Error("layout table does not match its text")
			}
		}()
	}
	wg.Wait()
}
