package arctext

import "strings"

// IterateTextChunks partitions a line into runs drawn with one style and
// calls fn with the inclusive bounds of each run. Runs break on style or
// marker changes, after every whitespace slot when justifying and after
// every slot when character spacing is set.
func (l *Layout) IterateTextChunks(line int, fn func(start, end int, style Style)) {
	graphemes := l.graphemes[line]
	n := len(graphemes)
	if n == 0 {
		return
	}
	styles := l.lineStyles(line)
	markers := l.lineMarkers(line)
	justify := l.align.IsJustify()

	if !justify && l.charSpacing == 0 && !l.lineStyled[line] && !hasSpecial(markers) {
		fn(0, n-1, styles[0])
		return
	}

	start := 0
	for i := 0; i < n; i++ {
		boundary := i == n-1 ||
			l.charSpacing != 0 ||
			(justify && isSpace(graphemes[i])) ||
			markers[i] != markers[i+1] ||
			styles[i] != styles[i+1]
		if boundary {
			fn(start, i, styles[start])
			start = i + 1
		}
	}
}

func hasSpecial(markers []SpecialMarker) bool {
	for _, m := range markers {
		if m.IsSpecial() {
			return true
		}
	}
	return false
}

// mergeFeatures collapses emoji runs and the multi-grapheme clusters
// reported by fd into single glyph entries.
func (l *Layout) mergeFeatures(fd FeatureDetector) {
	for li := range l.Lines {
		markers := l.lineMarkers(li)
		for j := 0; j < len(markers); {
			m := markers[j]
			end := j + 1
			for m.IsSpecial() && end < len(markers) && markers[end] == m {
				end++
			}
			if m.Kind == MarkerEmoji && end-j > 1 {
				l.mergeCluster(li, j, end-j)
			}
			j = end
		}

		if fd == nil {
			continue
		}
		graphemes := l.graphemes[li]
		l.IterateTextChunks(li, func(start, end int, style Style) {
			if end == start || markers[start].IsSpecial() {
				return
			}
			run := graphemes[start : end+1]
			for _, c := range fd.DetectFeatures(run, style) {
				if c.Length < 2 || c.Position < 0 || c.Position+c.Length > len(run) {
					continue
				}
				l.mergeCluster(li, start+c.Position, c.Length)
			}
		})
	}
}

// mergeCluster turns length slots starting at first into one glyph drawn
// by the first slot. The glyph is rotated by the mean of the end slots'
// angles and anchored halfway between the cluster boundaries.
func (l *Layout) mergeCluster(li, first, length int) {
	chars := l.LineChars(li)
	last := first + length - 1
	head, tail := &chars[first], chars[last]

	head.Text = strings.Join(l.graphemes[li][first:last+1], "")
	head.CharAngle = (head.CharAngle + tail.CharAngle) / 2
	head.Rotation = l.proj.rotation(head.CharAngle)
	mid := (head.LeftAngle + tail.RightAngle) / 2
	head.CL = l.proj.point(head.CharRadius, mid)
	head.LC = l.proj.point(head.LineRadius, mid)

	for k := first + 1; k <= last; k++ {
		chars[k].Text = ""
		chars[k].Continuation = true
	}
}
