package arctext

import (
	"math"
	"strings"
)

const (
	// radiusScale maps curvature to radius: radius = radiusScale / curvature.
	radiusScale = 10000

	// fontSizeMult scales the tallest font size of a line to its box height.
	fontSizeMult = 1.13

	// fontSizeFraction is the share of the line box below the baseline.
	fontSizeFraction = 0.222

	// minTextWidth is the smallest object width ever reported.
	minTextWidth = 2

	// flatCurvature is the magnitude below which the baseline stays straight.
	flatCurvature = 1e-3
)

// layoutParams is the snapshot of object state read by one layout pass.
type layoutParams struct {
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
}

// Layout is the immutable result of one layout pass: per-line metrics and
// one contiguous table of character transforms addressed by (line, char).
// A Layout is never modified after it is published; a rebuild produces a
// new Layout.
type Layout struct {
	// Curvature is the curvature the layout was built for.
	Curvature float64
	// Radius is the signed curving radius, +Inf for a flat layout.
	Radius float64
	// Center is the curving center in the text block frame, whose origin
	// is the middle of the unbent text block.
	Center Point
	// Flat reports that the baseline is straight.
	Flat bool

	TextWidth  float64
	TextHeight float64

	// Width and Height are the object dimensions including overflow.
	Width  float64
	Height float64

	// ContentOffset re-centers drawing on the object box.
	ContentOffset Point

	Overflow Overflow

	Lines []LineMetrics

	proj        projection
	lineHeight  float64
	align       TextAlign
	charSpacing float64
	base        Style

	graphemes  [][]string
	lineStart  []int
	chars      []CharTransform
	bounds     []CharBounds
	styles     []Style
	markers    []SpecialMarker
	lineStyled []bool
}

// NumLines returns the number of lines.
func (l *Layout) NumLines() int {
	return len(l.Lines)
}

// LineLen returns the number of slots in a line.
func (l *Layout) LineLen(line int) int {
	return len(l.graphemes[line])
}

// LineChars returns the transforms of a line. The slice aliases the
// layout table and must not be modified.
func (l *Layout) LineChars(line int) []CharTransform {
	start := l.lineStart[line]
	return l.chars[start : start+len(l.graphemes[line])]
}

// Char returns the transform of one slot.
func (l *Layout) Char(line, char int) CharTransform {
	return l.chars[l.lineStart[line]+char]
}

// Bounds returns the straight-baseline box of one slot. char may equal the
// line length to address the trailing box after the last slot.
func (l *Layout) Bounds(line, char int) CharBounds {
	return l.lineBounds(line)[char]
}

// StyleAt returns the resolved style of one slot. Out of range slots
// resolve to the base style.
func (l *Layout) StyleAt(line, char int) Style {
	if line < 0 || line >= len(l.graphemes) || char < 0 || char >= len(l.graphemes[line]) {
		return l.base
	}
	return l.styles[l.lineStart[line]+char]
}

// MarkerAt returns the special marker of one slot.
func (l *Layout) MarkerAt(line, char int) SpecialMarker {
	if line < 0 || line >= len(l.graphemes) || char < 0 || char >= len(l.graphemes[line]) {
		return SpecialMarker{}
	}
	return l.markers[l.lineStart[line]+char]
}

// TextLines returns the source slots of every line after the text
// transform was applied. The result must not be modified.
func (l *Layout) TextLines() [][]string {
	return l.graphemes
}

func (l *Layout) lineBounds(line int) []CharBounds {
	start := l.lineStart[line] + line
	return l.bounds[start : start+len(l.graphemes[line])+1]
}

func (l *Layout) lineStyles(line int) []Style {
	start := l.lineStart[line]
	return l.styles[start : start+len(l.graphemes[line])]
}

func (l *Layout) lineMarkers(line int) []SpecialMarker {
	start := l.lineStart[line]
	return l.markers[start : start+len(l.graphemes[line])]
}

// radii returns the four radii of a line box whose bottom edge is at row.
func (l *Layout) radii(row, h float64) (bottom, top, char, line float64) {
	charOffset := (h - h/l.lineHeight) + h*fontSizeFraction/l.lineHeight
	if l.proj.inward {
		return row, row - h, row - charOffset, row - h + h/l.lineHeight
	}
	return row, row + h, row + charOffset, row + h - h/l.lineHeight
}

// lineRadii returns the radii of a line without any baseline shift.
func (l *Layout) lineRadii(line int) (bottom, top, char, lineR float64) {
	lm := l.Lines[line]
	return l.radii(lm.Radius, lm.Height)
}

// buildLayout runs a full layout pass.
func buildLayout(p layoutParams) *Layout {
	lines := splitLines(applyTextTransform(p.text, p.transform))
	l := &Layout{
		Curvature:   p.curvature,
		lineHeight:  p.lineHeight,
		align:       p.align,
		charSpacing: p.charSpacing,
		base:        p.base,
		graphemes:   lines,
	}
	if l.lineHeight <= 0 {
		l.lineHeight = defaultLineHeight
	}
	l.resolve(p, detectEmojiMarkers(lines))

	l.Lines = make([]LineMetrics, len(lines))
	for li := range lines {
		l.measureLine(li, p)
	}
	for li, lm := range l.Lines {
		l.TextWidth = math.Max(l.TextWidth, lm.Width)
		if li == len(l.Lines)-1 {
			l.TextHeight += lm.Height / l.lineHeight
		} else {
			l.TextHeight += lm.Height
		}
	}

	l.setupProjection()
	if l.align.IsJustify() {
		l.justify(l.TextWidth)
	}

	ink := l.placeChars(p.renderBounds)
	for li := range l.Lines {
		chars := l.LineChars(li)
		if len(chars) == 0 {
			continue
		}
		bottom, top, _, _ := l.lineRadii(li)
		a1, a2 := chars[0].LeftAngle, chars[len(chars)-1].RightAngle
		ink = ink.Union(l.proj.sectorBounds(top, a1, a2))
		ink = ink.Union(l.proj.sectorBounds(bottom, a1, a2))
	}

	l.mergeFeatures(p.features)
	l.mergeDiacritics()
	l.fitBounds(ink)

	Logger().Debug("arctext: layout",
		"lines", len(l.Lines),
		"radius", l.Radius,
		"width", l.Width,
		"height", l.Height,
		"overflow", l.Overflow)
	return l
}

// resolve indexes the arena and resolves styles and markers per slot.
func (l *Layout) resolve(p layoutParams, auto [][]SpecialMarker) {
	total := 0
	l.lineStart = make([]int, len(l.graphemes))
	for li, line := range l.graphemes {
		l.lineStart[li] = total
		total += len(line)
	}
	l.chars = make([]CharTransform, total)
	l.bounds = make([]CharBounds, total+len(l.graphemes))
	l.styles = make([]Style, total)
	l.markers = make([]SpecialMarker, total)
	l.lineStyled = make([]bool, len(l.graphemes))

	for li, line := range l.graphemes {
		if p.styles != nil {
			l.lineStyled[li] = p.styles.Has(AllProperties, li)
		}
		for j := range line {
			st := p.base
			var m SpecialMarker
			if p.styles != nil {
				if o, ok := p.styles.StyleAt(li, j); ok {
					st = st.Apply(o)
				}
				m = p.styles.MarkerAt(li, j)
			}
			if !m.IsSpecial() && auto[li] != nil {
				m = auto[li][j]
			}
			if st.FontSize <= 0 {
				st.FontSize = p.base.FontSize
			}
			idx := l.lineStart[li] + j
			l.styles[idx] = st
			l.markers[idx] = m
		}
	}
}

// setupProjection derives the radius and curving center.
func (l *Layout) setupProjection() {
	c := l.Curvature
	if math.IsNaN(c) || math.IsInf(c, 0) || math.Abs(c) < flatCurvature {
		Logger().Warn("arctext: curvature too small, using straight baseline", "curvature", c)
		l.Flat = true
		l.Radius = math.Inf(1)
		l.Center = Point{X: 0, Y: l.TextHeight / 2}
		l.proj = projection{center: l.Center, flat: true}
		return
	}
	l.Radius = radiusScale / c
	if c > 0 {
		l.Center = Point{X: 0, Y: l.TextHeight/2 + l.Radius}
	} else {
		l.Center = Point{X: 0, Y: -l.TextHeight/2 + l.Radius}
	}
	l.proj = projection{center: l.Center, inward: c < 0}
}

// placeChars computes every character transform and returns the box of
// all glyph ink contours.
func (l *Layout) placeChars(renderBounds bool) Rect {
	ink := EmptyRect()
	var global, base float64
	if !l.proj.inward {
		global = l.TextHeight
	}
	if !l.Flat {
		base = math.Abs(l.Radius)
	}

	for li := range l.Lines {
		lm := &l.Lines[li]
		h := lm.Height
		if l.proj.inward {
			global += h
		} else {
			global -= h
		}
		lm.Radius = base + global
		lm.LeftOffset = l.lineLeftOffset(li, l.TextWidth)
		currentLeft := -l.TextWidth/2 + lm.LeftOffset
		if renderBounds {
			currentLeft += lm.RenderedLeft
		}

		line := l.graphemes[li]
		chars := l.LineChars(li)
		bounds := l.lineBounds(li)
		styles := l.lineStyles(li)
		markers := l.lineMarkers(li)
		for j := range line {
			b := bounds[j]
			st := styles[j]
			bottom, top, charR, lineR := l.radii(lm.Radius+st.DeltaY, h)
			mid := l.proj.midRadius(bottom, top)
			x := currentLeft + b.Left

			ct := CharTransform{
				Text:         line[j],
				LeftAngle:    l.proj.angle(x, mid),
				RightAngle:   l.proj.angle(x+b.Width, mid),
				CharAngle:    l.proj.angle(x+b.Width/2, mid),
				BottomRadius: bottom,
				TopRadius:    top,
				CharRadius:   charR,
				LineRadius:   lineR,
			}
			ct.BL = l.proj.point(bottom, ct.LeftAngle)
			ct.BR = l.proj.point(bottom, ct.RightAngle)
			ct.TL = l.proj.point(top, ct.LeftAngle)
			ct.TR = l.proj.point(top, ct.RightAngle)
			ct.NL = l.proj.point(lineR, ct.LeftAngle)
			ct.NR = l.proj.point(lineR, ct.RightAngle)
			ct.CL = l.proj.point(charR, ct.CharAngle)
			ct.LC = l.proj.point(lineR, ct.CharAngle)
			ct.Rotation = l.proj.rotation(ct.CharAngle)

			if renderBounds && b.Contour != nil && strings.TrimSpace(ct.Text) != "" {
				q := contourQuad(ct, b, st.FontSize)
				ct.Contour = &q
				for _, pt := range q.Points() {
					ink = ink.Extend(pt)
				}
			}
			if markers[j].Kind == MarkerVoid {
				ct.Text = ""
			} else if st.DeltaY != 0 {
				// Shifted glyphs leave the line sector.
				for _, pt := range [...]Point{ct.TL, ct.TR, ct.BL, ct.BR} {
					ink = ink.Extend(pt)
				}
			}
			chars[j] = ct
		}

		bottom, top, _, _ := l.radii(lm.Radius, h)
		mid := l.proj.midRadius(bottom, top)
		lm.EndAngle = l.proj.angle(currentLeft+bounds[len(line)].Left, mid)
		if len(chars) > 0 {
			lm.StartAngle = chars[0].LeftAngle
		} else {
			lm.StartAngle = lm.EndAngle
		}
	}
	return ink
}

// contourQuad maps the ink rectangle of a glyph into the glyph frame: the
// origin is CL, the advance is centered on it, the baseline is the local
// x axis and the frame is turned by the glyph rotation.
func contourQuad(ct CharTransform, b CharBounds, fontSize float64) ContourQuad {
	c := b.Contour
	advance := b.Advance
	if advance == 0 {
		advance = b.Width
	}
	x0 := -advance/2 + c.X*fontSize
	x1 := x0 + c.W*fontSize
	yb := -c.Y * fontSize
	yt := -(c.Y + c.H) * fontSize

	m := Translate(ct.CL.X, ct.CL.Y).Multiply(Rotate(ct.Rotation))
	return ContourQuad{
		TL: m.TransformPoint(Point{X: x0, Y: yt}),
		TR: m.TransformPoint(Point{X: x1, Y: yt}),
		BL: m.TransformPoint(Point{X: x0, Y: yb}),
		BR: m.TransformPoint(Point{X: x1, Y: yb}),
	}
}

// fitBounds derives overflow, object size and content offset from the
// accumulated ink box.
func (l *Layout) fitBounds(ink Rect) {
	if !ink.IsEmpty() {
		l.Overflow = Overflow{
			Left:   -ink.MinX - l.TextWidth/2,
			Right:  ink.MaxX - l.TextWidth/2,
			Top:    -ink.MinY - l.TextHeight/2,
			Bottom: ink.MaxY - l.TextHeight/2,
		}
	}
	o := l.Overflow
	l.Width = math.Max(l.TextWidth+o.Left+o.Right, minTextWidth)
	l.Height = l.TextHeight + o.Top + o.Bottom
	l.ContentOffset = Point{
		X: o.Right/2 - o.Left/2,
		Y: o.Bottom/2 - o.Top/2,
	}
}

// ToLocal converts a layout point to the object frame, whose origin is
// the middle of the object box.
func (l *Layout) ToLocal(p Point) Point {
	return p.Sub(l.ContentOffset)
}

// FromLocal converts an object frame point to the layout frame.
func (l *Layout) FromLocal(p Point) Point {
	return p.Add(l.ContentOffset)
}
