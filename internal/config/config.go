// Package config loads arctext scene files.
//
// A scene is a YAML document describing a canvas, the font files to
// register and the arc text objects to draw. Documents are checked against
// an embedded JSON schema before they are decoded, so structural mistakes
// are reported with the offending field path.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/arctext"
)

//go:embed scene.schema.json
var schema []byte

// Version is the scene format version written by this package.
const Version = 1

// Errors returned by Parse and Validate.
var (
	ErrSchema     = errors.New("config: scene does not match schema")
	ErrNoObjects  = errors.New("config: scene has no objects")
	ErrBadVersion = errors.New("config: unsupported scene version")
)

// Scene is a decoded scene file.
type Scene struct {
	Version int      `yaml:"version"`
	Canvas  Canvas   `yaml:"canvas"`
	Fonts   []Font   `yaml:"fonts"`
	Objects []Object `yaml:"objects"`

	// dir resolves relative font paths. It is set by Load.
	dir string
}

// Canvas describes the output surface.
type Canvas struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Background  string `yaml:"background"`
	Supersample int    `yaml:"supersample"`
}

// Font names a font file and the face it provides.
type Font struct {
	Family string `yaml:"family"`
	File   string `yaml:"file"`
	Weight string `yaml:"weight"`
	Style  string `yaml:"style"`
}

// Object is one arc text object.
type Object struct {
	Text        string    `yaml:"text"`
	Curvature   *float64  `yaml:"curvature"`
	Align       string    `yaml:"align"`
	Transform   string    `yaml:"text_transform"`
	LineHeight  *float64  `yaml:"line_height"`
	CharSpacing float64   `yaml:"char_spacing"`
	PaintFirst  string    `yaml:"paint_first"`
	StrokeDash  []float64 `yaml:"stroke_dash"`

	Background       string `yaml:"background"`
	BackgroundStroke string `yaml:"background_stroke"`

	// Features enables font feature clustering. Defaults to true.
	Features *bool `yaml:"features"`

	Placement Placement  `yaml:"placement"`
	Style     StyleSpec  `yaml:"style"`
	Ranges    []Range    `yaml:"ranges"`
	Selection *Selection `yaml:"selection"`
}

// Placement positions an object on the canvas.
type Placement struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Angle  float64 `yaml:"angle"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
	Origin string  `yaml:"origin"`
}

// StyleSpec is a partial style. Nil fields are left unset.
type StyleSpec struct {
	FontFamily         *string  `yaml:"font_family"`
	FontSize           *float64 `yaml:"font_size"`
	FontWeight         *string  `yaml:"font_weight"`
	FontStyle          *string  `yaml:"font_style"`
	Fill               *string  `yaml:"fill"`
	Stroke             *string  `yaml:"stroke"`
	StrokeWidth        *float64 `yaml:"stroke_width"`
	DeltaY             *float64 `yaml:"delta_y"`
	Underline          *bool    `yaml:"underline"`
	Overline           *bool    `yaml:"overline"`
	Linethrough        *bool    `yaml:"linethrough"`
	TextBackground     *string  `yaml:"text_background"`
	ContourStroke      *string  `yaml:"contour_stroke"`
	ContourStrokeWidth *float64 `yaml:"contour_stroke_width"`
}

// Range applies a style to characters [Start, End) of a line.
type Range struct {
	Line  int       `yaml:"line"`
	Start int       `yaml:"start"`
	End   int       `yaml:"end"`
	Style StyleSpec `yaml:"style"`
}

// Selection is a selection in global character offsets. A scene with a
// selection renders its object in editing mode.
type Selection struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Defaults returns the scene defaults.
func Defaults() Scene {
	return Scene{
		Version: Version,
		Canvas:  Canvas{Width: 800, Height: 600, Background: "#ffffff", Supersample: 1},
	}
}

// Load reads and parses a scene file. Relative font paths are resolved
// against the directory of the file.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	sc, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	sc.dir = filepath.Dir(path)
	return sc, nil
}

// Parse validates data against the scene schema, decodes it over the
// defaults and checks the values.
func Parse(data []byte) (Scene, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Scene{}, fmt.Errorf("config: %w", err)
	}
	if err := checkSchema(doc); err != nil {
		return Scene{}, err
	}

	var file Scene
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Scene{}, fmt.Errorf("config: %w", err)
	}
	sc := Defaults()
	mergeInto(&sc, &file)
	if err := sc.Validate(); err != nil {
		return Scene{}, err
	}
	return sc, nil
}

func checkSchema(doc any) error {
	if doc == nil {
		doc = map[string]any{}
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("config: schema: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}

func mergeInto(dst, src *Scene) {
	if src.Version != 0 {
		dst.Version = src.Version
	}
	if src.Canvas.Width != 0 {
		dst.Canvas.Width = src.Canvas.Width
	}
	if src.Canvas.Height != 0 {
		dst.Canvas.Height = src.Canvas.Height
	}
	if strings.TrimSpace(src.Canvas.Background) != "" {
		dst.Canvas.Background = strings.TrimSpace(src.Canvas.Background)
	}
	if src.Canvas.Supersample != 0 {
		dst.Canvas.Supersample = src.Canvas.Supersample
	}
	dst.Fonts = src.Fonts
	dst.Objects = src.Objects
}

// Validate checks values the schema cannot express. All problems are
// reported together.
func (s Scene) Validate() error {
	if s.Version != Version {
		return fmt.Errorf("%w: %d", ErrBadVersion, s.Version)
	}
	if len(s.Objects) == 0 {
		return ErrNoObjects
	}
	var errs []error
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas: invalid size %dx%d", s.Canvas.Width, s.Canvas.Height))
	}
	if _, err := s.Background(); err != nil {
		errs = append(errs, fmt.Errorf("canvas.background: %w", err))
	}
	for i, f := range s.Fonts {
		if _, _, err := f.face(); err != nil {
			errs = append(errs, fmt.Errorf("fonts[%d]: %w", i, err))
		}
	}
	for i, o := range s.Objects {
		if _, err := o.Options(); err != nil {
			errs = append(errs, fmt.Errorf("objects[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Background returns the parsed canvas background. An empty value is
// transparent.
func (s Scene) Background() (arctext.RGBA, error) {
	if s.Canvas.Background == "" {
		return arctext.Transparent, nil
	}
	return arctext.ParseHex(s.Canvas.Background)
}

// FontPath returns the path of f, resolved against the scene file.
func (s Scene) FontPath(f Font) string {
	if filepath.IsAbs(f.File) || s.dir == "" {
		return f.File
	}
	return filepath.Join(s.dir, f.File)
}

// Face returns the weight and style of the font file.
func (f Font) Face() (arctext.FontWeight, arctext.FontStyle) {
	w, st, _ := f.face()
	return w, st
}

func (f Font) face() (arctext.FontWeight, arctext.FontStyle, error) {
	w, err := arctext.ParseFontWeight(f.Weight)
	if err != nil {
		return 0, 0, err
	}
	if f.Style == "" {
		return w, arctext.FontStyleNormal, nil
	}
	st, err := arctext.ParseFontStyle(f.Style)
	if err != nil {
		return 0, 0, err
	}
	return w, st, nil
}
