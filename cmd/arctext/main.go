// Command arctext renders the arc text objects of a scene file to PNG, SVG
// or PDF.
//
// Usage:
//
//	arctext -scene scene.yaml -out banner.png
//	arctext -scene scene.yaml -out banner.pdf -log-level debug
//
// The output format follows the file extension unless -format is given.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/arctext"
	"github.com/gogpu/arctext/internal/config"
	alog "github.com/gogpu/arctext/internal/log"
	"github.com/gogpu/arctext/internal/parallel"
	"github.com/gogpu/arctext/recording"
	"github.com/gogpu/arctext/recording/backends/pdf"
	"github.com/gogpu/arctext/recording/backends/raster"
	"github.com/gogpu/arctext/recording/backends/svg"
	"github.com/gogpu/arctext/text"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

type options struct {
	scene       string
	out         string
	format      string
	supersample int
	outlineText bool
	jobs        int
	log         alog.Options
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	env := alog.FromEnv()
	var o options
	fs := flag.NewFlagSet("arctext", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.scene, "scene", "", "scene file (YAML)")
	fs.StringVar(&o.out, "out", "", "output file")
	fs.StringVar(&o.format, "format", "", "output backend: "+strings.Join(recording.Backends(), ", ")+" (default from -out extension)")
	fs.IntVar(&o.supersample, "supersample", 0, "raster supersampling factor (overrides the scene)")
	fs.IntVar(&o.jobs, "jobs", 0, "objects laid out concurrently (default GOMAXPROCS)")
	fs.BoolVar(&o.outlineText, "outline-text", false, "write SVG text as glyph outlines")
	fs.StringVar(&o.log.Level, "log-level", env.Level, "log level: debug, info, warn, error")
	fs.StringVar(&o.log.Format, "log-format", env.Format, "log format: text or json")
	fs.StringVar(&o.log.File, "log-file", env.File, "also write JSON logs to this file")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.scene == "" || o.out == "" {
		fs.Usage()
		return o, errors.New("-scene and -out are required")
	}
	if o.format == "" {
		o.format = strings.TrimPrefix(strings.ToLower(filepath.Ext(o.out)), ".")
	}
	name, ok := recording.Resolve(o.format)
	if !ok {
		return o, fmt.Errorf("unknown output format %q", o.format)
	}
	o.format = name
	return o, nil
}

func run(args []string, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "arctext:", err)
		return 2
	}

	logger, closer := alog.New(o.log, stderr)
	defer closer.Close()
	arctext.SetLogger(logger)

	if err := render(context.Background(), o, logger); err != nil {
		logger.Error("render failed", "scene", o.scene, "err", err)
		fmt.Fprintln(stderr, "arctext:", err)
		return 1
	}
	return 0
}

func render(ctx context.Context, o options, logger *slog.Logger) error {
	start := time.Now()
	sc, err := config.Load(o.scene)
	if err != nil {
		return err
	}

	lib := text.DefaultLibrary()
	for _, f := range sc.Fonts {
		w, st := f.Face()
		if err := lib.RegisterFile(sc.FontPath(f), f.Family, w, st); err != nil {
			return fmt.Errorf("font %q: %w", f.File, err)
		}
		logger.Debug("registered font", "family", f.Family, "file", f.File, "weight", w, "style", st)
	}

	objs, err := build(ctx, sc.Objects, lib, o.jobs)
	if err != nil {
		return err
	}
	rec := recording.NewRecorder(sc.Canvas.Width, sc.Canvas.Height)
	for i, t := range objs {
		if err := t.Render(rec); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
		logger.Debug("rendered object", "index", i, "width", t.Width(), "height", t.Height())
	}

	backend, err := newBackend(o, sc, lib)
	if err != nil {
		return err
	}
	r := rec.FinishRecording()
	if err := r.Playback(backend); err != nil {
		return err
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("format %q cannot be saved to a file", o.format)
	}
	if err := fb.SaveToFile(o.out); err != nil {
		return err
	}
	logger.Info("wrote scene",
		"out", o.out,
		"format", o.format,
		"objects", len(sc.Objects),
		"commands", len(r.Commands()),
		"elapsed", time.Since(start))
	return nil
}

// build lays out the objects concurrently. The result keeps scene order,
// which is the paint order.
func build(ctx context.Context, objects []config.Object, lib *text.Library, workers int) ([]*arctext.ArcText, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool := parallel.NewPool(min(workers, len(objects)))
	defer pool.Close()

	out := make([]*arctext.ArcText, len(objects))
	jobs := make([]func() error, len(objects))
	for i, obj := range objects {
		jobs[i] = func() error {
			t, err := obj.Build(lib, lib)
			if err != nil {
				return fmt.Errorf("object %d: %w", i, err)
			}
			out[i] = t
			return nil
		}
	}
	if err := pool.Run(ctx, jobs); err != nil {
		return nil, err
	}
	return out, nil
}

func newBackend(o options, sc config.Scene, lib *text.Library) (recording.Backend, error) {
	bg, err := sc.Background()
	if err != nil {
		return nil, err
	}
	switch o.format {
	case "raster":
		n := sc.Canvas.Supersample
		if o.supersample > 0 {
			n = o.supersample
		}
		return raster.NewBackend(raster.WithFonts(lib), raster.WithBackground(bg), raster.WithSupersampling(n)), nil
	case "svg":
		opts := []svg.Option{svg.WithBackground(bg)}
		if o.outlineText {
			opts = append(opts, svg.WithOutlinedText(lib))
		}
		return svg.NewBackend(opts...), nil
	case "pdf":
		opts := []pdf.Option{pdf.WithFonts(lib), pdf.WithBackground(bg)}
		if t, ok := sourceDate(); ok {
			opts = append(opts, pdf.WithCreationDate(t))
		}
		return pdf.NewBackend(opts...), nil
	}
	return recording.NewBackend(o.format)
}

// sourceDate reads SOURCE_DATE_EPOCH for reproducible documents.
func sourceDate() (time.Time, bool) {
	v := os.Getenv("SOURCE_DATE_EPOCH")
	if v == "" {
		return time.Time{}, false
	}
	sec, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(sec, 0).UTC(), true
}
