// Package arctext lays out, renders and hit-tests text bent along
// concentric arcs.
//
// # Overview
//
// An ArcText holds a block of text, a curvature and the collaborators
// that size and style it. Each line of the block becomes a ring around a
// common curving center; every character becomes a wedge of that ring
// with its own rotation. Positive curvature puts the center below the
// text, negative curvature puts it above, and a curvature close to zero
// keeps the baseline straight.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/arctext"
//		"github.com/gogpu/arctext/recording"
//		_ "github.com/gogpu/arctext/recording/backends/raster"
//		"github.com/gogpu/arctext/text"
//	)
//
//	lib := text.DefaultLibrary()
//	t := arctext.New("Hello, arc",
//		arctext.WithMetrics(lib),
//		arctext.WithFeatures(lib),
//		arctext.WithCurvature(120),
//	)
//	if err := t.InitDimensions(); err != nil {
//		log.Fatal(err)
//	}
//
//	rec := recording.NewRecorder(512, 512)
//	t.Render(rec)
//	backend := recording.MustBackend("raster")
//	rec.FinishRecording().Playback(backend)
//
// # Collaborators
//
// The layout depends on three small interfaces rather than on a concrete
// text object:
//   - MetricsProvider measures graphemes (advance, kerning, ink contour)
//   - StyleResolver returns per-character style overrides and markers
//   - FeatureDetector reports ligatures and other multi-character glyphs
//
// StyleMap is a ready StyleResolver; package text provides a
// MetricsProvider and FeatureDetector backed by real fonts.
//
// # Layouts
//
// A Layout is the immutable result of one layout pass. Setters that
// change dimensions build a new Layout and publish it atomically, so a
// Layout in hand never changes underneath its reader.
//
// # Coordinate System
//
// The layout frame has its origin at the middle of the unbent text block,
// X to the right and Y down. Arc angles are measured from the upward
// vertical of the curving center, positive to the left. The object frame
// is the layout frame shifted by the content offset so that its origin is
// the middle of the object box; TransformMatrix maps it to the scene.
//
// # Logging
//
// The package is silent by default. Install a logger with SetLogger to see
// layout diagnostics at Debug and absorbed degeneracies at Warn.
package arctext
