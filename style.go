package arctext

import (
	"strconv"
	"strings"
)

// FontWeight is a CSS-style numeric font weight (100..900).
type FontWeight int

// Common font weights.
const (
	WeightNormal FontWeight = 400
	WeightBold   FontWeight = 700
)

// String returns "normal", "bold" or the numeric weight.
func (w FontWeight) String() string {
	switch w {
	case WeightNormal, 0:
		return "normal"
	case WeightBold:
		return "bold"
	default:
		return strconv.Itoa(int(w))
	}
}

// ParseFontWeight parses "normal", "bold" or a numeric weight.
func ParseFontWeight(s string) (FontWeight, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return WeightNormal, nil
	case "bold":
		return WeightBold, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 1000 {
		return 0, &UnknownValueError{Kind: "font weight", Value: s}
	}
	return FontWeight(n), nil
}

// FontStyle selects upright or slanted glyphs.
type FontStyle uint8

// Font styles.
const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

var fontStyleNames = [...]string{
	FontStyleNormal:  "normal",
	FontStyleItalic:  "italic",
	FontStyleOblique: "oblique",
}

// String returns the CSS name of the style.
func (s FontStyle) String() string {
	if int(s) < len(fontStyleNames) {
		return fontStyleNames[s]
	}
	return "normal"
}

// ParseFontStyle parses a CSS font style name.
func ParseFontStyle(s string) (FontStyle, error) {
	return parseEnum("font style", s, fontStyleNames[:], func(i int) FontStyle { return FontStyle(i) })
}

// Font identifies the face used to draw a glyph.
type Font struct {
	Family string
	Size   float64
	Weight FontWeight
	Style  FontStyle
}

// Style is the fully resolved style of one character slot.
// Style is comparable; two slots share a render chunk only when their
// styles are equal.
type Style struct {
	FontFamily string
	FontSize   float64
	FontWeight FontWeight
	FontStyle  FontStyle

	Fill        RGBA
	Stroke      RGBA
	StrokeWidth float64

	// DeltaY shifts the glyph baseline away from the curving center.
	DeltaY float64

	Underline   bool
	Overline    bool
	Linethrough bool

	TextBackgroundColor RGBA

	// ContourStroke outlines the glyph ink contour when set.
	ContourStroke      RGBA
	ContourStrokeWidth float64
}

// DefaultStyle returns the style used when nothing else is configured.
func DefaultStyle() Style {
	return Style{
		FontFamily:         "Go",
		FontSize:           40,
		FontWeight:         WeightNormal,
		Fill:               Black,
		ContourStrokeWidth: 1,
	}
}

// Font returns the font description of the style.
func (s Style) Font() Font {
	return Font{Family: s.FontFamily, Size: s.FontSize, Weight: s.FontWeight, Style: s.FontStyle}
}

// Property is a bit set naming Style fields.
type Property uint32

// Style properties.
const (
	PropFontFamily Property = 1 << iota
	PropFontSize
	PropFontWeight
	PropFontStyle
	PropFill
	PropStroke
	PropStrokeWidth
	PropDeltaY
	PropUnderline
	PropOverline
	PropLinethrough
	PropTextBackgroundColor
	PropContourStroke
	PropContourStrokeWidth
)

// StyleOverride is a partial style: only the fields named in Set apply.
type StyleOverride struct {
	Style
	Set Property
}

// Has reports whether the override sets any of props.
func (o StyleOverride) Has(props Property) bool {
	return o.Set&props != 0
}

// Apply merges the set fields of o over s.
func (s Style) Apply(o StyleOverride) Style {
	if o.Set == 0 {
		return s
	}
	if o.Has(PropFontFamily) {
		s.FontFamily = o.FontFamily
	}
	if o.Has(PropFontSize) {
		s.FontSize = o.FontSize
	}
	if o.Has(PropFontWeight) {
		s.FontWeight = o.FontWeight
	}
	if o.Has(PropFontStyle) {
		s.FontStyle = o.FontStyle
	}
	if o.Has(PropFill) {
		s.Fill = o.Fill
	}
	if o.Has(PropStroke) {
		s.Stroke = o.Stroke
	}
	if o.Has(PropStrokeWidth) {
		s.StrokeWidth = o.StrokeWidth
	}
	if o.Has(PropDeltaY) {
		s.DeltaY = o.DeltaY
	}
	if o.Has(PropUnderline) {
		s.Underline = o.Underline
	}
	if o.Has(PropOverline) {
		s.Overline = o.Overline
	}
	if o.Has(PropLinethrough) {
		s.Linethrough = o.Linethrough
	}
	if o.Has(PropTextBackgroundColor) {
		s.TextBackgroundColor = o.TextBackgroundColor
	}
	if o.Has(PropContourStroke) {
		s.ContourStroke = o.ContourStroke
	}
	if o.Has(PropContourStrokeWidth) {
		s.ContourStrokeWidth = o.ContourStrokeWidth
	}
	return s
}

// Merge returns o with the set fields of next applied on top.
func (o StyleOverride) Merge(next StyleOverride) StyleOverride {
	return StyleOverride{Style: o.Style.Apply(next), Set: o.Set | next.Set}
}

// TextAlign is the horizontal alignment of lines inside the text block.
type TextAlign uint8

// Alignments. The justify variants stretch whitespace on every line but
// the last, which is aligned by the suffix.
const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
	AlignJustify
	AlignJustifyLeft
	AlignJustifyCenter
	AlignJustifyRight
)

var textAlignNames = [...]string{
	AlignLeft:          "left",
	AlignCenter:        "center",
	AlignRight:         "right",
	AlignJustify:       "justify",
	AlignJustifyLeft:   "justify-left",
	AlignJustifyCenter: "justify-center",
	AlignJustifyRight:  "justify-right",
}

func (a TextAlign) String() string {
	if int(a) < len(textAlignNames) {
		return textAlignNames[a]
	}
	return "left"
}

// IsJustify reports whether the alignment stretches whitespace.
func (a TextAlign) IsJustify() bool {
	return a >= AlignJustify
}

// ParseTextAlign parses a CSS-style alignment name.
func ParseTextAlign(s string) (TextAlign, error) {
	return parseEnum("text align", s, textAlignNames[:], func(i int) TextAlign { return TextAlign(i) })
}

// TextTransform changes letter case before the text is split into lines.
type TextTransform uint8

// Text transforms.
const (
	TransformNone TextTransform = iota
	TransformUppercase
	TransformLowercase
	TransformCapitalize
)

var textTransformNames = [...]string{
	TransformNone:       "none",
	TransformUppercase:  "uppercase",
	TransformLowercase:  "lowercase",
	TransformCapitalize: "capitalize",
}

func (t TextTransform) String() string {
	if int(t) < len(textTransformNames) {
		return textTransformNames[t]
	}
	return "none"
}

// ParseTextTransform parses a transform name; the empty string means none.
func ParseTextTransform(s string) (TextTransform, error) {
	if strings.TrimSpace(s) == "" {
		return TransformNone, nil
	}
	return parseEnum("text transform", s, textTransformNames[:], func(i int) TextTransform { return TextTransform(i) })
}

// PaintFirst selects whether glyph fill or stroke is painted first.
type PaintFirst uint8

// Paint orders.
const (
	PaintFill PaintFirst = iota
	PaintStroke
)

func (p PaintFirst) String() string {
	if p == PaintStroke {
		return "stroke"
	}
	return "fill"
}

// ParsePaintFirst parses "fill" or "stroke".
func ParsePaintFirst(s string) (PaintFirst, error) {
	return parseEnum("paint order", s, []string{"fill", "stroke"}, func(i int) PaintFirst { return PaintFirst(i) })
}

func parseEnum[T any](kind, s string, names []string, conv func(int) T) (T, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == want {
			return conv(i), nil
		}
	}
	var zero T
	return zero, &UnknownValueError{Kind: kind, Value: s}
}
