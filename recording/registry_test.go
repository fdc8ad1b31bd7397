package recording

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/arctext"
)

// mockBackend records the calls it receives.
type mockBackend struct {
	name          string
	width, height int
	calls         []string
	beginErr      error
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) Begin(width, height int) error {
	b.width, b.height = width, height
	b.calls = append(b.calls, "Begin")
	return b.beginErr
}

func (b *mockBackend) End() error {
	b.calls = append(b.calls, "End")
	return nil
}

func (b *mockBackend) FillPath(_ *Path, _ arctext.RGBA) { b.calls = append(b.calls, "FillPath") }

func (b *mockBackend) StrokePath(_ *Path, _ arctext.RGBA, _ Stroke) {
	b.calls = append(b.calls, "StrokePath")
}

func (b *mockBackend) FillText(run TextRun, _ arctext.RGBA) {
	b.calls = append(b.calls, "FillText:"+run.Text)
}

func (b *mockBackend) StrokeText(run TextRun, _ arctext.RGBA, _ Stroke) {
	b.calls = append(b.calls, "StrokeText:"+run.Text)
}

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]*backendEntry)
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("test", func() Backend { return newMockBackend("test") })

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}
	if !IsRegistered("test") {
		t.Error("IsRegistered(test) = false")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	_, err := NewBackend("nope")
	if err == nil || !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("NewBackend(nope) error = %v", err)
	}
}

func TestMustBackendPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	defer func() {
		if recover() == nil {
			t.Error("MustBackend did not panic")
		}
	}()
	MustBackend("nope")
}

func TestRegisterPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}
	mustPanic("nil factory", func() { Register("nil", nil) })
	Register("dup", func() Backend { return newMockBackend("dup") })
	mustPanic("duplicate", func() {
		Register("dup", func() Backend { return newMockBackend("dup") })
	})
}

func TestBackendsSorted(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	for _, name := range []string{"svg", "pdf", "raster"} {
		Register(name, func() Backend { return newMockBackend(name) })
	}
	Unregister("pdf")
	Unregister("missing")
	if d := cmp.Diff([]string{"raster", "svg"}, Backends()); d != "" {
		t.Errorf("Backends() mismatch (-want +got):\n%s", d)
	}
}

func TestAliases(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("Raster", func() Backend { return newMockBackend("raster") }, "png", "JPG")

	for _, name := range []string{"raster", "RASTER", "png", " jpg "} {
		got, ok := Resolve(name)
		if !ok || got != "raster" {
			t.Errorf("Resolve(%q) = %q, %v, want raster", name, got, ok)
		}
		if _, err := NewBackend(name); err != nil {
			t.Errorf("NewBackend(%q) error: %v", name, err)
		}
	}
	if d := cmp.Diff([]string{"raster"}, Backends()); d != "" {
		t.Errorf("Backends() mismatch (-want +got):\n%s", d)
	}

	Unregister("png")
	if !IsRegistered("png") {
		t.Error("Unregister(alias) removed the backend")
	}
	Unregister("raster")
	for _, name := range []string{"raster", "png", "jpg"} {
		if IsRegistered(name) {
			t.Errorf("IsRegistered(%q) after Unregister = true", name)
		}
	}
}

func TestAliasCollisionPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("svg", func() Backend { return newMockBackend("svg") })
	defer func() {
		if recover() == nil {
			t.Error("alias colliding with a backend name did not panic")
		}
	}()
	Register("vector", func() Backend { return newMockBackend("vector") }, "SVG")
}

func TestPlaybackOrder(t *testing.T) {
	r := NewRecorder(64, 32)
	r.FillRect(0, 0, 4, 4)
	r.FillText("a", 1, 1)
	r.MoveTo(0, 0)
	r.LineTo(5, 5)
	r.Stroke()
	r.StrokeText("b", 1, 1)

	mock := newMockBackend("m")
	if err := r.FinishRecording().Playback(mock); err != nil {
		t.Fatal(err)
	}
	want := []string{"Begin", "FillPath", "FillText:a", "StrokePath", "StrokeText:b", "End"}
	if d := cmp.Diff(want, mock.calls); d != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", d)
	}
	if mock.width != 64 || mock.height != 32 {
		t.Errorf("Begin(%d, %d), want 64x32", mock.width, mock.height)
	}
}

func TestPlaybackBeginError(t *testing.T) {
	boom := errors.New("boom")
	mock := &mockBackend{beginErr: boom}
	err := NewRecorder(1, 1).FinishRecording().Playback(mock)
	if !errors.Is(err, boom) {
		t.Errorf("Playback() error = %v, want wrapped boom", err)
	}
	if d := cmp.Diff([]string{"Begin"}, mock.calls); d != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", d)
	}
}

func TestRecordingBounds(t *testing.T) {
	r := NewRecorder(100, 100)
	r.FillRect(10, 10, 5, 5)
	r.Translate(50, 60)
	r.FillText("x", 0, 0)

	want := arctext.Rect{MinX: 10, MinY: 10, MaxX: 50, MaxY: 60}
	if got := r.FinishRecording().Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}
