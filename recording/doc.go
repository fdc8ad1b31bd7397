// Package recording captures arctext drawing operations and replays them
// to output backends.
//
// A Recorder implements arctext.Surface. Instead of producing pixels it
// turns every Fill, Stroke, FillText and StrokeText into a typed command.
// FinishRecording returns an immutable Recording that can be replayed to
// any Backend any number of times.
//
// # Coordinates
//
// Path commands hold device-space geometry: the recorder applies the
// current transform to every point as it is added, converts arcs to cubic
// Béziers and scales stroke widths and dash lengths by the transform's
// scale factor. Text commands keep their string, font and anchor in user
// space together with the transform in effect, because glyph geometry is
// only known to the backend. GlyphPath converts a TextRun to a
// device-space path with a text.Library.
//
// # Backends
//
// Backends register themselves by name from init, following the
// database/sql driver pattern:
//
//	import _ "github.com/gogpu/arctext/recording/backends/raster"
//
//	rec := recording.NewRecorder(800, 600)
//	obj.Render(rec)
//	b := recording.MustBackend("raster")
//	if err := rec.FinishRecording().Playback(b); err != nil {
//		log.Fatal(err)
//	}
package recording
