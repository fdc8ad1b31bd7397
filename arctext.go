package arctext

import (
	"math"
	"sync"
	"sync/atomic"
)

// defaultLineHeight is the line height used when none is configured.
const defaultLineHeight = 1.16

// defaultCurvature bends text around a circle of radius 100.
const defaultCurvature = 100

// Origin is the horizontal anchor of an object's placement.
type Origin uint8

// Placement origins.
const (
	// OriginLeft anchors Left at the left edge of the object box.
	OriginLeft Origin = iota
	// OriginCenter anchors Left at the horizontal center of the object box.
	OriginCenter
)

// Placement positions an object in the scene. Top always refers to the
// top edge of the object box.
type Placement struct {
	Left, Top float64
	// Angle is the rotation in degrees.
	Angle   float64
	ScaleX  float64
	ScaleY  float64
	OriginX Origin
}

func (p Placement) normalized() Placement {
	if p.ScaleX == 0 {
		p.ScaleX = 1
	}
	if p.ScaleY == 0 {
		p.ScaleY = 1
	}
	return p
}

// DefaultPlacement returns an unrotated, unscaled placement at the origin.
func DefaultPlacement() Placement {
	return Placement{ScaleX: 1, ScaleY: 1}
}

// ArcText is a block of text laid out along concentric arcs.
//
// Every dimension-affecting setter rebuilds the layout once the object was
// initialized. A rebuild produces a new Layout that replaces the previous
// one atomically, so a Layout obtained from Layout stays valid and
// consistent while the object changes.
//
// ArcText is safe for concurrent use.
type ArcText struct {
	mu sync.Mutex

	text         string
	transform    TextTransform
	curvature    float64
	align        TextAlign
	lineHeight   float64
	charSpacing  float64
	base         Style
	styles       StyleResolver
	metrics      MetricsProvider
	features     FeatureDetector
	emojiGlyphs  bool
	renderBounds bool

	paintFirst       PaintFirst
	strokeDash       []float64
	backgroundColor  RGBA
	backgroundStroke RGBA

	placement Placement
	// shift is the overflow compensation applied to placement so far.
	shift Point
	zoom  float64

	attached    bool
	initialized bool
	dirty       bool
	layout      atomic.Pointer[Layout]

	editing        bool
	selStart       int
	selEnd         int
	drag           DragSession
	selectionColor RGBA
	cursorWidth    float64
	cursorOpacity  float64
}

// New creates an ArcText. The layout is built by InitDimensions or on
// first use.
func New(text string, opts ...Option) *ArcText {
	t := &ArcText{
		text:           text,
		curvature:      defaultCurvature,
		lineHeight:     defaultLineHeight,
		base:           DefaultStyle(),
		renderBounds:   true,
		placement:      DefaultPlacement(),
		zoom:           1,
		selectionColor: RGBA{R: 17 / 255.0, G: 119 / 255.0, B: 1, A: 0.3},
		cursorWidth:    2,
		cursorOpacity:  1,
		dirty:          true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// InitDimensions rebuilds the layout, publishes it and updates the object
// dimensions and placement.
func (t *ArcText) InitDimensions() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.initDimensions()
}

func (t *ArcText) initDimensions() error {
	if t.metrics == nil {
		return ErrNoMetrics
	}
	l := buildLayout(layoutParams{
		text:         t.text,
		transform:    t.transform,
		curvature:    t.curvature,
		align:        t.align,
		lineHeight:   t.lineHeight,
		charSpacing:  t.charSpacing,
		base:         t.base,
		styles:       t.styles,
		metrics:      t.metrics,
		features:     t.features,
		emojiGlyphs:  t.emojiGlyphs,
		renderBounds: t.renderBounds,
	})
	t.layout.Store(l)
	t.initialized = true
	t.dirty = false
	t.translate(l)
	return nil
}

// Layout returns the current layout, rebuilding it first when a setter
// invalidated it. It returns nil when no layout can be built.
func (t *ArcText) Layout() *Layout {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current()
}

func (t *ArcText) current() *Layout {
	if t.dirty {
		if err := t.initDimensions(); err != nil {
			Logger().Debug("arctext: layout unavailable", "err", err)
		}
	}
	return t.layout.Load()
}

// update applies a dimension-affecting change.
func (t *ArcText) update(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn()
	t.dirty = true
	if t.initialized {
		if err := t.initDimensions(); err != nil {
			Logger().Debug("arctext: rebuild skipped", "err", err)
		}
	}
}

// Text returns the raw text.
func (t *ArcText) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.text
}

// SetText replaces the text. The selection is clamped to the new text.
func (t *ArcText) SetText(s string) {
	t.update(func() {
		t.text = s
		n := len([]rune(s))
		t.selStart = min(t.selStart, n)
		t.selEnd = min(t.selEnd, n)
	})
}

// Curvature returns the configured curvature.
func (t *ArcText) Curvature() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.curvature
}

// SetCurvature changes the curvature.
func (t *ArcText) SetCurvature(c float64) {
	t.update(func() { t.curvature = c })
}

// SetTextAlign changes the alignment.
func (t *ArcText) SetTextAlign(a TextAlign) {
	t.update(func() { t.align = a })
}

// TextTransform returns the letter case transform.
func (t *ArcText) TextTransform() TextTransform {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.transform
}

// SetTextTransform changes the letter case transform and rebuilds the
// layout.
func (t *ArcText) SetTextTransform(tt TextTransform) {
	t.update(func() { t.transform = tt })
}

// SetLineHeight changes the line height multiple.
func (t *ArcText) SetLineHeight(h float64) {
	t.update(func() { t.lineHeight = h })
}

// SetCharSpacing changes the character spacing.
func (t *ArcText) SetCharSpacing(cs float64) {
	t.update(func() { t.charSpacing = cs })
}

// SetBaseStyle changes the inherited style.
func (t *ArcText) SetBaseStyle(s Style) {
	t.update(func() { t.base = s })
}

// SetStyles replaces the style resolver. Call it again after mutating a
// resolver in place so the layout picks the change up.
func (t *ArcText) SetStyles(r StyleResolver) {
	t.update(func() { t.styles = r })
}

// SetMetrics replaces the metrics provider.
func (t *ArcText) SetMetrics(m MetricsProvider) {
	t.update(func() { t.metrics = m })
}

// SetFeatures replaces the feature detector.
func (t *ArcText) SetFeatures(fd FeatureDetector) {
	t.update(func() { t.features = fd })
}

// SetAttached records whether the object is attached to a drawing
// surface. Attaching initializes the layout.
func (t *ArcText) SetAttached(on bool) {
	t.update(func() {
		t.attached = on
		if on {
			t.initialized = true
		}
	})
}

// Attached reports whether the object is attached to a drawing surface.
func (t *ArcText) Attached() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.attached
}

// SetZoom sets the viewport zoom used for screen-constant sizes such as
// the cursor width.
func (t *ArcText) SetZoom(z float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if z > 0 {
		t.zoom = z
	}
}

// Width returns the object width, 0 without a layout.
func (t *ArcText) Width() float64 {
	if l := t.Layout(); l != nil {
		return l.Width
	}
	return 0
}

// Height returns the object height, 0 without a layout.
func (t *ArcText) Height() float64 {
	if l := t.Layout(); l != nil {
		return l.Height
	}
	return 0
}

// ContentOffset returns the offset between the object box center and the
// text block center.
func (t *ArcText) ContentOffset() Point {
	if l := t.Layout(); l != nil {
		return l.ContentOffset
	}
	return Point{}
}

// CurvingCenter returns the curving center in the text block frame.
func (t *ArcText) CurvingCenter() Point {
	if l := t.Layout(); l != nil {
		return l.Center
	}
	return Point{}
}

// Placement returns the current placement.
func (t *ArcText) Placement() Placement {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.placement
}

// SetPlacement moves the object. It does not reset the overflow
// compensation already applied. Zero scales are read as 1.
func (t *ArcText) SetPlacement(p Placement) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.placement = p.normalized()
}

// translate moves the placement so that overflow added or removed by the
// latest layout does not move the declared origin.
func (t *ArcText) translate(l *Layout) {
	xShift := l.Overflow.Left
	if t.placement.OriginX == OriginCenter {
		xShift = -l.ContentOffset.X
	}
	dx := xShift - t.shift.X
	dy := l.Overflow.Top - t.shift.Y

	p := &t.placement
	sin, cos := math.Sincos(p.Angle * degToRad)
	p.Top -= dy * cos * p.ScaleY
	p.Left += dy * sin * p.ScaleY
	p.Top -= dx * sin * p.ScaleX
	p.Left -= dx * cos * p.ScaleX

	t.shift = Point{X: xShift, Y: l.Overflow.Top}
}

// TransformMatrix maps the object frame (origin at the box center,
// unscaled) to scene coordinates.
func (t *ArcText) TransformMatrix() Matrix {
	l := t.Layout()
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.transformMatrix(l)
}

func (t *ArcText) transformMatrix(l *Layout) Matrix {
	p := t.placement
	var w, h float64
	if l != nil {
		w, h = l.Width, l.Height
	}
	var ox float64
	if p.OriginX == OriginLeft {
		ox = w / 2
	}
	return Translate(p.Left, p.Top).
		Multiply(Rotate(p.Angle * degToRad)).
		Multiply(Translate(ox*p.ScaleX, h/2*p.ScaleY)).
		Multiply(Scale(p.ScaleX, p.ScaleY))
}

// sceneToLayout converts a scene point to the layout frame.
func (t *ArcText) sceneToLayout(l *Layout, p Point) Point {
	m := t.transformMatrix(l)
	inv, ok := m.Invert()
	if !ok {
		Logger().Warn("arctext: placement is not invertible", "matrix", m)
	}
	return l.FromLocal(inv.TransformPoint(p))
}

// CurvingControlOffset returns the position of the curvature handle
// relative to the object center, in scaled units.
func (t *ArcText) CurvingControlOffset() Point {
	l := t.Layout()
	if l == nil {
		return Point{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	cy := l.Center.Y
	if l.Flat {
		cy = l.TextHeight/2 + radiusScale/flatCurvature
	}
	return Point{
		X: -l.ContentOffset.X * t.placement.ScaleX,
		Y: (cy - l.ContentOffset.Y) * t.placement.ScaleY,
	}
}

// CurvatureFromControl converts a handle position, given as the unscaled
// vertical offset from the object center, to a curvature. A handle inside
// the text band straightens the text.
func (t *ArcText) CurvatureFromControl(localY float64) float64 {
	l := t.Layout()
	if l == nil {
		return 0
	}
	cy := localY + l.ContentOffset.Y
	half := l.TextHeight / 2
	if math.Abs(cy) <= half {
		return 0
	}
	radius := cy - half
	if cy < 0 {
		radius = cy + half
	}
	if radius == 0 {
		return 0
	}
	return radiusScale / radius
}
