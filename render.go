package arctext

import "math"

// renderState is the object state read by one render pass.
type renderState struct {
	placement        Placement
	zoom             float64
	paintFirst       PaintFirst
	strokeDash       []float64
	backgroundColor  RGBA
	backgroundStroke RGBA

	editing        bool
	dragging       bool
	selStart       int
	selEnd         int
	selectionColor RGBA
	cursorWidth    float64
	cursorOpacity  float64
}

func (t *ArcText) renderState() renderState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return renderState{
		placement:        t.placement,
		zoom:             t.zoom,
		paintFirst:       t.paintFirst,
		strokeDash:       t.strokeDash,
		backgroundColor:  t.backgroundColor,
		backgroundStroke: t.backgroundStroke,
		editing:          t.editing,
		dragging:         t.drag.Active(),
		selStart:         t.selStart,
		selEnd:           t.selEnd,
		selectionColor:   t.selectionColor,
		cursorWidth:      t.cursorWidth,
		cursorOpacity:    t.cursorOpacity,
	}
}

// Render draws the object at its placement in scene coordinates.
func (t *ArcText) Render(s Surface) error {
	l := t.Layout()
	if l == nil {
		return ErrNotLaidOut
	}
	rs := t.renderState()
	p := rs.placement
	withState(s, func() {
		var ox float64
		if p.OriginX == OriginLeft {
			ox = l.Width / 2
		}
		s.Translate(p.Left, p.Top)
		s.Rotate(p.Angle * degToRad)
		s.Translate(ox*p.ScaleX, l.Height/2*p.ScaleY)
		s.Scale(p.ScaleX, p.ScaleY)
		(&renderer{l: l, s: s, rs: rs}).draw()
	})
	return nil
}

// Draw draws the object in its own frame, whose origin is the middle of
// the object box.
func (t *ArcText) Draw(s Surface) error {
	l := t.Layout()
	if l == nil {
		return ErrNotLaidOut
	}
	(&renderer{l: l, s: s, rs: t.renderState()}).draw()
	return nil
}

const degToRad = math.Pi / 180

// renderer draws one layout onto a surface.
type renderer struct {
	l  *Layout
	s  Surface
	rs renderState
}

func (r *renderer) draw() {
	r.objectBackground()
	withState(r.s, func() {
		r.s.Translate(-r.l.ContentOffset.X, -r.l.ContentOffset.Y)
		r.textBackgrounds()
		r.decorations()
		r.glyphs()
		if r.rs.editing {
			if r.rs.selStart == r.rs.selEnd {
				r.cursor()
			} else {
				r.selection()
			}
		}
	})
}

func (r *renderer) objectBackground() {
	w, h := r.l.Width, r.l.Height
	if !r.rs.backgroundColor.IsZero() {
		r.s.SetFillColor(r.rs.backgroundColor)
		r.s.FillRect(-w/2, -h/2, w, h)
	}
	if !r.rs.backgroundStroke.IsZero() {
		withState(r.s, func() {
			r.s.SetStrokeColor(r.rs.backgroundStroke)
			r.s.SetLineWidth(1)
			r.s.StrokeRect(-w/2, -h/2, w, h)
		})
	}
}

// sectorPath traces the annulus wedge covering slots start..end of a line.
// The outer edge is the top radius; the inner edge is the line radius, or
// the bottom radius when full is set.
func (r *renderer) sectorPath(line, start, end int, full bool) {
	chars := r.l.LineChars(line)
	sc, ec := chars[start], chars[end]
	inner := sc.LineRadius
	if full {
		inner = sc.BottomRadius
	}
	r.s.MoveTo(sc.TL.X, sc.TL.Y)
	r.l.proj.arc(r.s, inner, sc.LeftAngle, ec.RightAngle)
	r.s.LineTo(ec.TR.X, ec.TR.Y)
	r.l.proj.arc(r.s, sc.TopRadius, ec.RightAngle, sc.LeftAngle)
	r.s.ClosePath()
}

// textBackgrounds fills one sector per run of equal background colors.
func (r *renderer) textBackgrounds() {
	for li := range r.l.Lines {
		styles := r.l.lineStyles(li)
		for j := 0; j < len(styles); {
			bg := styles[j].TextBackgroundColor
			end := j + 1
			for end < len(styles) && styles[end].TextBackgroundColor == bg {
				end++
			}
			if !bg.IsZero() {
				r.s.SetFillColor(bg)
				r.sectorPath(li, j, end-1, false)
				r.s.Fill()
			}
			j = end
		}
	}
}

func (r *renderer) glyphs() {
	for li := range r.l.Lines {
		chars := r.l.LineChars(li)
		r.l.IterateTextChunks(li, func(start, end int, st Style) {
			withState(r.s, func() {
				r.s.SetFont(st.Font())
				r.s.SetFillColor(st.Fill)
				r.s.SetStrokeColor(st.Stroke)
				r.s.SetLineWidth(st.StrokeWidth)
				for j := start; j <= end; j++ {
					ct := &chars[j]
					if ct.Contour != nil && !st.ContourStroke.IsZero() {
						r.contour(ct.Contour, st)
					}
					if ct.Drawable() {
						r.glyph(ct, st)
					}
				}
			})
		})
	}
}

func (r *renderer) contour(q *ContourQuad, st Style) {
	withState(r.s, func() {
		r.s.SetLineWidth(st.ContourStrokeWidth)
		r.s.SetStrokeColor(st.ContourStroke)
		pts := q.Points()
		r.s.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			r.s.LineTo(p.X, p.Y)
		}
		r.s.ClosePath()
		r.s.Stroke()
	})
}

func (r *renderer) glyph(ct *CharTransform, st Style) {
	fill := !st.Fill.IsZero()
	stroke := !st.Stroke.IsZero() && st.StrokeWidth > 0
	withState(r.s, func() {
		r.s.Translate(ct.CL.X, ct.CL.Y)
		r.s.Rotate(ct.Rotation)
		if r.rs.paintFirst == PaintStroke {
			if stroke {
				r.strokeText(ct.Text)
			}
			if fill {
				r.s.FillText(ct.Text, 0, 0)
			}
			return
		}
		if fill {
			r.s.FillText(ct.Text, 0, 0)
		}
		if stroke {
			r.strokeText(ct.Text)
		}
	})
}

func (r *renderer) strokeText(s string) {
	if len(r.rs.strokeDash) > 0 {
		r.s.SetDash(r.rs.strokeDash...)
		defer r.s.SetDash()
	}
	r.s.StrokeText(s, 0, 0)
}

// cursor draws the insertion bar at the collapsed selection.
func (r *renderer) cursor() {
	li, ch := CursorLocation(r.l.graphemes, r.rs.selStart)
	chars := r.l.LineChars(li)
	var from, to Point
	if ch < len(chars) {
		from, to = chars[ch].NL, chars[ch].TL
	} else {
		_, top, _, lineR := r.l.lineRadii(li)
		a := r.l.Lines[li].EndAngle
		from, to = r.l.proj.point(lineR, a), r.l.proj.point(top, a)
	}

	alpha := r.rs.cursorOpacity
	if r.rs.dragging {
		alpha = 1
	}
	scale := r.rs.placement.ScaleX * r.rs.zoom
	if scale == 0 {
		scale = 1
	}
	withState(r.s, func() {
		r.s.SetAlpha(alpha)
		r.s.SetStrokeColor(r.l.StyleAt(li, max(ch-1, 0)).Fill)
		r.s.SetLineWidth(r.rs.cursorWidth / scale)
		r.s.MoveTo(from.X, from.Y)
		r.s.LineTo(to.X, to.Y)
		r.s.Stroke()
	})
}

// selection fills one sector per selected line.
func (r *renderer) selection() {
	startLine, startChar := CursorLocation(r.l.graphemes, r.rs.selStart)
	endLine, endChar := CursorLocation(r.l.graphemes, r.rs.selEnd)
	withState(r.s, func() {
		r.s.SetFillColor(r.rs.selectionColor)
		for i := startLine; i <= endLine; i++ {
			charStart := 0
			if i == startLine {
				charStart = startChar
			}
			charEnd := r.l.LineLen(i)
			if i == endLine {
				charEnd = endChar
			}
			if charEnd <= charStart {
				continue
			}
			r.sectorPath(i, charStart, charEnd-1, i != endLine)
			r.s.Fill()
		}
	})
}
