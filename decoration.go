package arctext

// decoration is a line drawn along the text at a fixed fraction of the
// font size from the glyph baseline.
type decoration struct {
	has    func(Style) bool
	offset float64
}

// Underline, overline and linethrough, in drawing order.
var decorations = [...]decoration{
	{func(s Style) bool { return s.Underline }, 0.10},
	{func(s Style) bool { return s.Overline }, -0.88},
	{func(s Style) bool { return s.Linethrough }, -0.315},
}

// decorationKey groups slots that share one decoration stroke.
type decorationKey struct {
	fill   RGBA
	size   float64
	deltaY float64
}

func keyOf(s Style) decorationKey {
	return decorationKey{fill: s.Fill, size: s.FontSize, deltaY: s.DeltaY}
}

// decorations strokes one arc per run of slots sharing a decoration, its
// color, font size and baseline shift.
func (r *renderer) decorations() {
	for _, d := range decorations {
		for li := range r.l.Lines {
			styles := r.l.lineStyles(li)
			for j := 0; j < len(styles); {
				if !d.has(styles[j]) {
					j++
					continue
				}
				key := keyOf(styles[j])
				end := j + 1
				for end < len(styles) && d.has(styles[end]) && keyOf(styles[end]) == key {
					end++
				}
				r.decorationArc(li, j, end-1, d.offset, styles[j])
				j = end
			}
		}
	}
}

func (r *renderer) decorationArc(line, start, end int, factor float64, st Style) {
	chars := r.l.LineChars(line)
	sc, ec := chars[start], chars[end]
	offset := factor * st.FontSize
	radius := sc.CharRadius - 1 - offset
	if r.l.proj.inward {
		radius = sc.CharRadius + 1 + offset
	}
	withState(r.s, func() {
		r.s.SetStrokeColor(st.Fill)
		r.s.SetLineWidth(st.FontSize / 15)
		p := r.l.proj.point(radius, sc.LeftAngle)
		r.s.MoveTo(p.X, p.Y)
		r.l.proj.arc(r.s, radius, sc.LeftAngle, ec.RightAngle)
		r.s.Stroke()
	})
}
