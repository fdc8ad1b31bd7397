package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	if got := src.Name(); got != "Go" {
		t.Errorf("Name() = %q, want %q", got, "Go")
	}
	if got := src.UnitsPerEm(); got != 2048 {
		t.Errorf("UnitsPerEm() = %d, want 2048", got)
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource(garbage) error = nil")
	}
	if _, err := NewFontSourceFromFile("testdata/missing.ttf"); err == nil {
		t.Error("NewFontSourceFromFile(missing) error = nil")
	}
}

func TestFontSourceCopyCheck(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("copied FontSource did not panic")
		}
	}()
	cp := *src
	cp.Name()
}
