package arctext

import (
	"errors"
	"image/color"
	"testing"
)

func TestRGBA_Color(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"black", Black, color.NRGBA{0, 0, 0, 255}},
		{"white", White, color.NRGBA{255, 255, 255, 255}},
		{"transparent", Transparent, color.NRGBA{}},
		{"half red", RGBA{1, 0, 0, 0.5}, color.NRGBA{255, 0, 0, 127}},
		{"clamped", RGBA{2, -1, 0, 1}, color.NRGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 51, A: 255})
	diff(t, RGBA{R: 1, G: 0, B: 0.2, A: 1}, got)
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#fff", White},
		{"000", Black},
		{"#ff000080", RGBA{1, 0, 0, 128.0 / 255}},
		{" #00ff00 ", RGB(0, 1, 0)},
		{"#0000", RGBA{}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#12", "#gggggg", "#1234567"} {
		_, err := ParseHex(bad)
		var uv *UnknownValueError
		if !errors.As(err, &uv) || uv.Kind != "color" {
			t.Errorf("ParseHex(%q) error = %v, want *UnknownValueError", bad, err)
		}
	}
	if got := Hex("nope"); got != Black {
		t.Errorf("Hex(invalid) = %v, want black", got)
	}
}

func TestRGBA_Hex(t *testing.T) {
	if got, want := RGB(1, 0, 0).Hex(), "#ff0000"; got != want {
		t.Errorf("Hex() = %q, want %q", got, want)
	}
	if got, want := (RGBA{0, 0, 1, 0.5}).Hex(), "#0000ff7f"; got != want {
		t.Errorf("Hex() = %q, want %q", got, want)
	}
}

func TestRGBA_IsZero(t *testing.T) {
	if !Transparent.IsZero() {
		t.Error("Transparent.IsZero() = false, want true")
	}
	if Black.WithAlpha(0.5).IsZero() {
		t.Error("half black IsZero() = true, want false")
	}
	if got := Black.WithAlpha(0.5).A; got != 0.5 {
		t.Errorf("WithAlpha(0.5).A = %v, want 0.5", got)
	}
}
