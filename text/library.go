package text

import (
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/arctext"
)

// FallbackFamily is the family used when a requested family is unknown.
const FallbackFamily = "Go"

// measureCacheSize bounds the number of memoized measurements.
const measureCacheSize = 8192

// faceKey selects one font source of a family.
type faceKey struct {
	family string
	bold   bool
	italic bool
}

func keyOf(f arctext.Font) faceKey {
	return faceKey{
		family: strings.ToLower(strings.TrimSpace(f.Family)),
		bold:   f.Weight >= 600,
		italic: f.Style != arctext.FontStyleNormal,
	}
}

// Library maps font descriptions to font sources and measures graphemes
// with them. It implements arctext.MetricsProvider and
// arctext.FeatureDetector.
//
// Library is safe for concurrent use.
type Library struct {
	mu      sync.RWMutex
	sources map[faceKey]*FontSource
	warned  map[string]bool

	measures *cache[measureKey, arctext.GlyphMetrics]
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{
		sources:  make(map[faceKey]*FontSource),
		warned:   make(map[string]bool),
		measures: newCache[measureKey, arctext.GlyphMetrics](measureCacheSize),
	}
}

var (
	defaultLibOnce sync.Once
	defaultLib     *Library
)

// DefaultLibrary returns a shared library holding the Go fonts:
// "Go" in regular, bold, italic and bold italic, and "Go Mono" in
// regular and bold.
func DefaultLibrary() *Library {
	defaultLibOnce.Do(func() {
		lib := NewLibrary()
		fonts := []struct {
			family string
			weight arctext.FontWeight
			style  arctext.FontStyle
			data   []byte
		}{
			{FallbackFamily, arctext.WeightNormal, arctext.FontStyleNormal, goregular.TTF},
			{FallbackFamily, arctext.WeightBold, arctext.FontStyleNormal, gobold.TTF},
			{FallbackFamily, arctext.WeightNormal, arctext.FontStyleItalic, goitalic.TTF},
			{FallbackFamily, arctext.WeightBold, arctext.FontStyleItalic, gobolditalic.TTF},
			{"Go Mono", arctext.WeightNormal, arctext.FontStyleNormal, gomono.TTF},
			{"Go Mono", arctext.WeightBold, arctext.FontStyleNormal, gomonobold.TTF},
		}
		for _, f := range fonts {
			src, err := NewFontSource(f.data)
			if err != nil {
				panic("text: embedded Go font: " + err.Error())
			}
			lib.Register(f.family, f.weight, f.style, src)
		}
		defaultLib = lib
	})
	return defaultLib
}

// Register adds src under a family, weight and style. Weights of 600 and
// above count as bold; italic and oblique share a slot.
func (l *Library) Register(family string, weight arctext.FontWeight, style arctext.FontStyle, src *FontSource) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources[keyOf(arctext.Font{Family: family, Weight: weight, Style: style})] = src
	l.measures.clear()
}

// RegisterFile loads a font file and registers it under its own family
// name, or under family when family is not empty.
func (l *Library) RegisterFile(path, family string, weight arctext.FontWeight, style arctext.FontStyle) error {
	src, err := NewFontSourceFromFile(path)
	if err != nil {
		return err
	}
	if family == "" {
		family = src.Name()
	}
	l.Register(family, weight, style, src)
	return nil
}

// Families returns the registered family names in lower case.
func (l *Library) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for k := range l.sources {
		if !seen[k.family] {
			seen[k.family] = true
			out = append(out, k.family)
		}
	}
	return out
}

// Source returns the font source serving f. Lookup tries the exact
// weight and style, then the upright regular face of the family, then
// the same slot of FallbackFamily, then any registered face.
func (l *Library) Source(f arctext.Font) (*FontSource, error) {
	k := keyOf(f)
	l.mu.RLock()
	src, exact := l.lookup(k)
	l.mu.RUnlock()
	if src == nil {
		return nil, ErrNoFont
	}
	if !exact {
		l.warnOnce(f.Family)
	}
	return src, nil
}

// lookup returns the best source for k and whether k's family was found.
// Must be called with mu held.
func (l *Library) lookup(k faceKey) (*FontSource, bool) {
	candidates := []faceKey{
		k,
		{family: k.family, bold: k.bold},
		{family: k.family},
	}
	for _, c := range candidates {
		if s, ok := l.sources[c]; ok {
			return s, true
		}
	}
	fb := strings.ToLower(FallbackFamily)
	for _, c := range []faceKey{{fb, k.bold, k.italic}, {family: fb}} {
		if s, ok := l.sources[c]; ok {
			return s, false
		}
	}
	for _, s := range l.sources {
		return s, false
	}
	return nil, false
}

func (l *Library) warnOnce(family string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.warned[family] {
		return
	}
	l.warned[family] = true
	arctext.Logger().Warn("text: unknown font family, using fallback",
		"family", family, "fallback", FallbackFamily)
}
