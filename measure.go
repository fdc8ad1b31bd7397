package arctext

import (
	"math"
	"strings"
)

// measureLine fills the straight-baseline boxes of a line and its width,
// height and ink overflow.
func (l *Layout) measureLine(li int, p layoutParams) {
	line := l.graphemes[li]
	bounds := l.lineBounds(li)
	styles := l.lineStyles(li)
	markers := l.lineMarkers(li)
	lm := &l.Lines[li]

	var (
		width, renderedLeft, renderedWidth float64
		renderedTop, renderedBottom        float64
		maxSize                            float64
		prev                               string
	)
	if len(line) == 0 {
		maxSize = l.base.FontSize
	}

	for j := 0; j < len(line); j++ {
		st := styles[j]
		maxSize = math.Max(maxSize, st.FontSize)

		switch m := markers[j]; {
		case m.Kind == MarkerVoid:
			bounds[j] = CharBounds{Left: nextLeft(bounds, j)}
			prev = line[j]
			continue

		case m.Kind == MarkerEmoji:
			end := j + 1
			for end < len(line) && markers[end] == m {
				end++
			}
			var box CharBounds
			if p.emojiGlyphs {
				fs := st.FontSize
				box = CharBounds{Left: nextLeft(bounds, j), Width: fs, KernedWidth: fs, Height: fs, Advance: fs}
			} else {
				box = l.graphemeBox(strings.Join(line[j:end], ""), prev, st, bounds, j, p.metrics)
			}
			bounds[j] = box
			width += box.KernedWidth
			for k := j + 1; k < end; k++ {
				maxSize = math.Max(maxSize, styles[k].FontSize)
				bounds[k] = CharBounds{Left: nextLeft(bounds, k)}
			}
			prev = line[end-1]
			j = end - 1
			continue

		case j > 0 && isDiacriticMark(line[j]):
			// Marks attach to the preceding glyph and take no room.
			bounds[j] = CharBounds{Left: nextLeft(bounds, j), Height: st.FontSize}
			prev = line[j]
			continue
		}

		box := l.graphemeBox(line[j], prev, st, bounds, j, p.metrics)
		bounds[j] = box
		width += box.KernedWidth
		prev = line[j]

		if p.renderBounds && box.Contour != nil {
			fs := st.FontSize
			c := box.Contour
			cx, cw := c.X*fs, c.W*fs
			inkBottom := c.Y*fs + st.DeltaY
			inkTop := inkBottom + c.H*fs
			renderedLeft = math.Max(renderedLeft, -(box.Left + cx))
			renderedWidth = math.Max(renderedWidth, cw+cx+box.Left)
			renderedTop = math.Max(renderedTop, inkTop-fs)
			renderedBottom = math.Max(renderedBottom, -inkBottom)
		}
	}

	trailing := CharBounds{Height: l.base.FontSize}
	if n := len(line); n > 0 {
		trailing.Left = bounds[n-1].Left + bounds[n-1].Width
	}
	bounds[len(line)] = trailing

	lm.Height = maxSize * l.lineHeight * fontSizeMult
	if len(line) == 0 {
		return
	}
	lm.RenderedLeft = renderedLeft
	lm.RenderedRight = math.Max(0, renderedWidth-width)
	lm.RenderedTop = renderedTop
	lm.RenderedBottom = renderedBottom
	lm.Width = width
	if p.renderBounds {
		lm.Width += lm.RenderedLeft + lm.RenderedRight
	}
}

// graphemeBox measures one grapheme and places it after the previous box.
func (l *Layout) graphemeBox(g, prev string, st Style, bounds []CharBounds, j int, metrics MetricsProvider) CharBounds {
	gm := metrics.MeasureGrapheme(g, prev, st)
	box := CharBounds{
		Width:       gm.Width,
		KernedWidth: gm.KernedWidth,
		Height:      gm.Height,
		Advance:     gm.Width,
		Contour:     gm.Contour,
	}
	if box.KernedWidth == 0 && box.Width != 0 {
		box.KernedWidth = box.Width
	}
	if box.Height == 0 {
		box.Height = st.FontSize
	}
	if l.charSpacing != 0 {
		spacing := st.FontSize * l.charSpacing / 1000
		box.Width += spacing
		box.KernedWidth += spacing
	}
	if j > 0 {
		pb := bounds[j-1]
		box.Left = pb.Left + pb.Width + box.KernedWidth - box.Width
	}
	return box
}

func nextLeft(bounds []CharBounds, j int) float64 {
	if j == 0 {
		return 0
	}
	return bounds[j-1].Left + bounds[j-1].Width
}

// lineLeftOffset aligns a line inside a block of the given width.
func (l *Layout) lineLeftOffset(li int, width float64) float64 {
	if width == 0 {
		return 0
	}
	lw := l.Lines[li].Width
	last := li == len(l.Lines)-1
	switch l.align {
	case AlignCenter:
		return (width - lw) / 2
	case AlignRight:
		return width - lw
	case AlignJustifyCenter:
		if last {
			return (width - lw) / 2
		}
	case AlignJustifyRight:
		if last {
			return width - lw
		}
	}
	return 0
}

// justify stretches whitespace so that lines reach the target width. The
// shortfall of a line is split evenly between its whitespace runs and
// evenly between the characters of each run. The last line is left alone
// unless the alignment is full justification.
func (l *Layout) justify(target float64) {
	for li := range l.Lines {
		if l.align != AlignJustify && li == len(l.Lines)-1 {
			continue
		}
		lm := &l.Lines[li]
		line := l.graphemes[li]
		if lm.Width >= target {
			continue
		}
		runs := countSpaceRuns(line)
		if runs == 0 {
			continue
		}
		perRun := (target - lm.Width) / float64(runs)
		bounds := l.lineBounds(li)

		var acc float64
		for j := 0; j <= len(line); {
			if j < len(line) && isSpace(line[j]) {
				end := j
				for end < len(line) && isSpace(line[end]) {
					end++
				}
				extra := perRun / float64(end-j)
				for k := j; k < end; k++ {
					bounds[k].Width += extra
					bounds[k].KernedWidth += extra
					bounds[k].Left += acc
					acc += extra
				}
				j = end
				continue
			}
			bounds[j].Left += acc
			j++
		}
		lm.Width = target
	}
}

func isSpace(g string) bool {
	return g == " " || g == "\t" || g == "\r"
}

func countSpaceRuns(line []string) int {
	runs := 0
	for j, g := range line {
		if isSpace(g) && (j == 0 || !isSpace(line[j-1])) {
			runs++
		}
	}
	return runs
}
