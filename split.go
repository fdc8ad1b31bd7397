package arctext

import (
	"strings"
	"unicode/utf8"

	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// applyTextTransform changes letter case. Capitalize upper-cases the first
// character and lower-cases the rest.
func applyTextTransform(s string, t TextTransform) string {
	switch t {
	case TransformUppercase:
		return cases.Upper(language.Und).String(s)
	case TransformLowercase:
		return cases.Lower(language.Und).String(s)
	case TransformCapitalize:
		if s == "" {
			return s
		}
		_, size := utf8.DecodeRuneInString(s)
		return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
	default:
		return s
	}
}

// splitLines splits text on '\n' into lines of code-point slots.
func splitLines(s string) [][]string {
	raw := strings.Split(s, "\n")
	lines := make([][]string, len(raw))
	for i, l := range raw {
		slots := make([]string, 0, utf8.RuneCountInString(l))
		for _, r := range l {
			slots = append(slots, string(r))
		}
		lines[i] = slots
	}
	return lines
}

// detectEmojiMarkers assigns a shared emoji marker to every grapheme
// cluster that is a multi-code-point emoji sequence.
func detectEmojiMarkers(lines [][]string) [][]SpecialMarker {
	var (
		seg     segmenter.Segmenter
		markers = make([][]SpecialMarker, len(lines))
		nextID  = -1
	)
	for li, line := range lines {
		if len(line) < 2 {
			continue
		}
		runes := make([]rune, len(line))
		for i, g := range line {
			runes[i], _ = utf8.DecodeRuneInString(g)
		}
		seg.Init(runes)
		iter := seg.GraphemeIterator()
		for iter.Next() {
			g := iter.Grapheme()
			if len(g.Text) < 2 || !isEmojiSequence(g.Text) {
				continue
			}
			if markers[li] == nil {
				markers[li] = make([]SpecialMarker, len(line))
			}
			m := SpecialMarker{Kind: MarkerEmoji, ID: nextID}
			nextID--
			for k := range g.Text {
				markers[li][g.Offset+k] = m
			}
		}
	}
	return markers
}

func isEmojiSequence(rs []rune) bool {
	for _, r := range rs {
		switch {
		case r == 0x200D, r == 0xFE0F, r == 0x20E3:
			return true
		case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
			return true
		case r >= 0x1F3FB && r <= 0x1F3FF: // skin tones
			return true
		case r >= 0xE0020 && r <= 0xE007F: // tags
			return true
		case r >= 0x1F000 && r <= 0x1FAFF, r >= 0x2600 && r <= 0x27BF:
			return true
		}
	}
	return false
}

// CursorLocation converts a global selection offset into a line and a
// character index. Each line break occupies one offset.
func CursorLocation(lines [][]string, index int) (line, char int) {
	if index < 0 {
		return 0, 0
	}
	for i, l := range lines {
		if index <= len(l) {
			return i, index
		}
		if i == len(lines)-1 {
			return i, len(l)
		}
		index -= len(l) + 1
	}
	return 0, 0
}

// CursorIndex is the inverse of CursorLocation.
func CursorIndex(lines [][]string, line, char int) int {
	idx := 0
	for i := 0; i < line && i < len(lines); i++ {
		idx += len(lines[i]) + 1
	}
	return idx + char
}
