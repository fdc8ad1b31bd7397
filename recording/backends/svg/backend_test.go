package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/arctext"
	"github.com/gogpu/arctext/recording"
	"github.com/gogpu/arctext/text"
)

func render(t *testing.T, b *Backend, draw func(r *recording.Recorder)) string {
	t.Helper()
	rec := recording.NewRecorder(200, 100)
	draw(rec)
	if err := rec.FinishRecording().Playback(b); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestBackendRegistration(t *testing.T) {
	backend, err := recording.NewBackend("svg")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatalf("backend is %T, want *svg.Backend", backend)
	}
}

func TestDocumentIsWellFormed(t *testing.T) {
	out := render(t, NewBackend(WithBackground(arctext.White)), func(r *recording.Recorder) {
		r.SetFillColor(arctext.RGB(1, 0, 0))
		r.FillRect(10, 10, 20, 20)
		r.FillText(`a<b & "c"`, 50, 50)
	})

	dec := xml.NewDecoder(strings.NewReader(out))
	var names []string
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if se, ok := tok.(xml.StartElement); ok {
			names = append(names, se.Name.Local)
		}
	}
	if d := cmp.Diff([]string{"svg", "rect", "path", "text"}, names); d != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", d)
	}
	if !strings.Contains(out, `viewBox="0 0 200 100"`) {
		t.Errorf("missing viewBox in %s", out)
	}
	if !strings.Contains(out, "a&lt;b &amp; &#34;c&#34;") {
		t.Errorf("text not escaped in %s", out)
	}
}

func TestPathElements(t *testing.T) {
	out := render(t, NewBackend(), func(r *recording.Recorder) {
		r.SetFillColor(arctext.RGBA{R: 0, G: 0, B: 1, A: 0.5})
		r.FillRect(1, 2, 3, 4)
		r.SetStrokeColor(arctext.Black)
		r.SetLineWidth(2)
		r.SetDash(3, 1)
		r.MoveTo(0, 0)
		r.QuadTo(5, 5, 10, 0)
		r.Stroke()
	})

	for _, want := range []string{
		`d="M1,2 L4,2 L4,6 L1,6 Z"`,
		`fill="#0000ff" fill-opacity="0.5"`,
		`d="M0,0 Q5,5 10,0"`,
		`fill="none" stroke="#000000" stroke-width="2" stroke-linejoin="round" stroke-dasharray="3 1"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %s:\n%s", want, out)
		}
	}
}

func TestTextElement(t *testing.T) {
	out := render(t, NewBackend(), func(r *recording.Recorder) {
		r.SetFont(arctext.Font{Family: "Go", Size: 24, Weight: arctext.WeightBold, Style: arctext.FontStyleItalic})
		r.Translate(100, 50)
		r.Rotate(0)
		r.Scale(2, 2)
		r.FillText("A", 0, 0)
	})

	want := `<text x="0" y="0" text-anchor="middle" font-family="Go" font-size="24" ` +
		`font-weight="bold" font-style="italic" transform="matrix(2 0 0 2 100 50)" fill="#000000">A</text>`
	if !strings.Contains(out, want) {
		t.Errorf("output lacks\n%s\ngot:\n%s", want, out)
	}
}

func TestOutlinedText(t *testing.T) {
	out := render(t, NewBackend(WithOutlinedText(text.DefaultLibrary())), func(r *recording.Recorder) {
		r.SetFont(arctext.Font{Family: "Go", Size: 30})
		r.FillText("O", 100, 60)
	})
	if strings.Contains(out, "<text") {
		t.Error("outlined output contains <text>")
	}
	if !strings.Contains(out, "<path d=\"M") {
		t.Errorf("outlined output lacks glyph path:\n%s", out)
	}
}

func TestOutputBeforeEnd(t *testing.T) {
	b := NewBackend()
	if _, err := b.WriteTo(&bytes.Buffer{}); !errors.Is(err, ErrNotRendered) {
		t.Errorf("WriteTo error = %v, want ErrNotRendered", err)
	}
	if err := b.Begin(-1, 5); err == nil {
		t.Error("Begin(-1, 5) succeeded")
	}
}

func TestSaveToFile(t *testing.T) {
	b := NewBackend()
	render(t, b, func(r *recording.Recorder) { r.FillRect(0, 0, 1, 1) })

	path := filepath.Join(t.TempDir(), "out.svg")
	if err := b.SaveToFile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("<svg ")) {
		t.Errorf("file starts with %q", data[:min(len(data), 20)])
	}
}
