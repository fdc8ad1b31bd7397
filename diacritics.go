package arctext

import "unicode/utf8"

// combiningMarks are the marks attached to the preceding glyph.
var combiningMarks = map[rune]bool{
	0x0300: true, 0x0301: true, 0x0302: true, 0x0303: true, 0x0304: true,
	0x0306: true, 0x0307: true, 0x0308: true, 0x0309: true, 0x030A: true,
	0x030B: true, 0x030C: true, 0x030F: true, 0x0311: true, 0x0312: true,
	0x0313: true, 0x0314: true, 0x031B: true, 0x0321: true, 0x0322: true,
	0x0323: true, 0x0326: true, 0x0327: true, 0x0328: true, 0x0329: true,
	0x0331: true, 0x0335: true, 0x0337: true, 0x0357: true, 0x035D: true,
	0x035E: true, 0x0360: true, 0x0361: true, 0x0483: true, 0x00B7: true,
	0x02D0: true, 0x20D3: true,
}

// isDiacriticMark reports whether g is exactly one combining mark.
func isDiacriticMark(g string) bool {
	r, size := utf8.DecodeRuneInString(g)
	return size > 0 && size == len(g) && combiningMarks[r]
}

// mergeDiacritics appends every standalone mark to the nearest preceding
// drawable slot and returns the number of marks attached. A mark with no
// such slot is left in place.
func (l *Layout) mergeDiacritics() int {
	merged := 0
	for li := range l.Lines {
		chars := l.LineChars(li)
		for j := range chars {
			if !isDiacriticMark(chars[j].Text) {
				continue
			}
			k := j - 1
			for k >= 0 && chars[k].Text == "" {
				k--
			}
			if k < 0 {
				Logger().Warn("arctext: orphan diacritic", "line", li, "char", j, "mark", chars[j].Text)
				continue
			}
			chars[k].Text += chars[j].Text
			chars[j].Text = ""
			chars[j].IsDiacritic = true
			merged++
		}
	}
	return merged
}
