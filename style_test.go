package arctext

import (
	"errors"
	"testing"
)

func TestStyleApply(t *testing.T) {
	base := DefaultStyle()
	o := StyleOverride{
		Style: Style{FontSize: 12, Fill: RGB(1, 0, 0), Underline: true, FontFamily: "ignored"},
		Set:   PropFontSize | PropFill | PropUnderline,
	}
	got := base.Apply(o)

	want := base
	want.FontSize = 12
	want.Fill = RGB(1, 0, 0)
	want.Underline = true
	diff(t, want, got)

	if got := base.Apply(StyleOverride{}); got != base {
		t.Errorf("Apply(empty) = %+v, want base", got)
	}
}

func TestStyleOverrideMerge(t *testing.T) {
	a := StyleOverride{Style: Style{FontSize: 10}, Set: PropFontSize}
	b := StyleOverride{Style: Style{DeltaY: 3, FontSize: 99}, Set: PropDeltaY}
	m := a.Merge(b)
	if !m.Has(PropFontSize) || !m.Has(PropDeltaY) || m.Has(PropFill) {
		t.Errorf("Merge().Set = %b, want font size and delta y", m.Set)
	}
	if m.FontSize != 10 || m.DeltaY != 3 {
		t.Errorf("Merge() = %+v, want size 10 delta 3", m.Style)
	}
}

func TestParseEnums(t *testing.T) {
	if a, err := ParseTextAlign(" Justify-Center "); err != nil || a != AlignJustifyCenter {
		t.Errorf("ParseTextAlign() = %v, %v, want justify-center", a, err)
	}
	if tt, err := ParseTextTransform(""); err != nil || tt != TransformNone {
		t.Errorf("ParseTextTransform(\"\") = %v, %v, want none", tt, err)
	}
	if tt, err := ParseTextTransform("capitalize"); err != nil || tt != TransformCapitalize {
		t.Errorf("ParseTextTransform() = %v, %v, want capitalize", tt, err)
	}
	if p, err := ParsePaintFirst("stroke"); err != nil || p != PaintStroke {
		t.Errorf("ParsePaintFirst() = %v, %v, want stroke", p, err)
	}
	if w, err := ParseFontWeight("600"); err != nil || w != 600 {
		t.Errorf("ParseFontWeight(600) = %v, %v", w, err)
	}
	if s, err := ParseFontStyle("italic"); err != nil || s != FontStyleItalic {
		t.Errorf("ParseFontStyle() = %v, %v, want italic", s, err)
	}

	_, err := ParseTextAlign("middle")
	var uv *UnknownValueError
	if !errors.As(err, &uv) || uv.Kind != "text align" || uv.Value != "middle" {
		t.Errorf("ParseTextAlign(middle) error = %v", err)
	}
	if _, err := ParseFontWeight("heavy"); err == nil {
		t.Error("ParseFontWeight(heavy) error = nil")
	}
}

func TestStyleMap(t *testing.T) {
	m := NewStyleMap()
	if m.Has(AllProperties, -1) {
		t.Error("empty StyleMap reports styles")
	}
	m.SetRange(1, 0, 2, StyleOverride{Style: Style{Underline: true}, Set: PropUnderline})
	m.SetStyle(1, 1, StyleOverride{Style: Style{FontSize: 9}, Set: PropFontSize})

	o, ok := m.StyleAt(1, 1)
	if !ok || !o.Has(PropUnderline) || o.FontSize != 9 {
		t.Errorf("StyleAt(1, 1) = %+v, %v, want merged override", o, ok)
	}
	if !m.Has(PropFontSize, 1) || m.Has(PropFontSize, 0) || !m.Has(PropUnderline, -1) {
		t.Error("Has() does not reflect the stored overrides")
	}

	m.ClearStyle(1, 1)
	m.ClearStyle(1, 0)
	if _, ok := m.StyleAt(1, 0); ok {
		t.Error("StyleAt after ClearStyle reports an override")
	}
	if m.Has(AllProperties, 1) {
		t.Error("Has() after clearing line = true")
	}

	m.SetMarker(0, 2, 4, SpecialMarker{Kind: MarkerVoid, ID: 3})
	if got := m.MarkerAt(0, 3); got.Kind != MarkerVoid || got.ID != 3 {
		t.Errorf("MarkerAt(0, 3) = %v, want void 3", got)
	}
	if got := m.MarkerAt(0, 4); got.IsSpecial() {
		t.Errorf("MarkerAt(0, 4) = %v, want none", got)
	}
}
