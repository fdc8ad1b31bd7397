package config

import (
	"fmt"

	"github.com/gogpu/arctext"
)

// Options converts the object to construction options. Metrics and
// feature detection are not included; Build adds them.
func (o Object) Options() ([]arctext.Option, error) {
	var opts []arctext.Option

	if o.Curvature != nil {
		opts = append(opts, arctext.WithCurvature(*o.Curvature))
	}
	if o.Align != "" {
		a, err := arctext.ParseTextAlign(o.Align)
		if err != nil {
			return nil, fmt.Errorf("align: %w", err)
		}
		opts = append(opts, arctext.WithTextAlign(a))
	}
	tt, err := arctext.ParseTextTransform(o.Transform)
	if err != nil {
		return nil, fmt.Errorf("text_transform: %w", err)
	}
	opts = append(opts, arctext.WithTextTransform(tt))
	if o.LineHeight != nil {
		opts = append(opts, arctext.WithLineHeight(*o.LineHeight))
	}
	if o.CharSpacing != 0 {
		opts = append(opts, arctext.WithCharSpacing(o.CharSpacing))
	}
	if o.PaintFirst != "" {
		p, err := arctext.ParsePaintFirst(o.PaintFirst)
		if err != nil {
			return nil, fmt.Errorf("paint_first: %w", err)
		}
		opts = append(opts, arctext.WithPaintFirst(p))
	}
	if len(o.StrokeDash) > 0 {
		opts = append(opts, arctext.WithStrokeDash(o.StrokeDash...))
	}

	if o.Background != "" || o.BackgroundStroke != "" {
		fill, err := parseColor(o.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		stroke, err := parseColor(o.BackgroundStroke)
		if err != nil {
			return nil, fmt.Errorf("background_stroke: %w", err)
		}
		opts = append(opts, arctext.WithBackground(fill, stroke))
	}

	pl, err := o.Placement.placement()
	if err != nil {
		return nil, fmt.Errorf("placement: %w", err)
	}
	opts = append(opts, arctext.WithPlacement(pl))

	base, err := o.Style.Override()
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	opts = append(opts, arctext.WithBaseStyle(arctext.DefaultStyle().Apply(base)))

	if len(o.Ranges) > 0 {
		styles := arctext.NewStyleMap()
		for i, r := range o.Ranges {
			if r.End < r.Start {
				return nil, fmt.Errorf("ranges[%d]: end %d before start %d", i, r.End, r.Start)
			}
			ov, err := r.Style.Override()
			if err != nil {
				return nil, fmt.Errorf("ranges[%d]: %w", i, err)
			}
			styles.SetRange(r.Line, r.Start, r.End, ov)
		}
		opts = append(opts, arctext.WithStyles(styles))
	}
	return opts, nil
}

// FeaturesEnabled reports whether feature clustering is on.
func (o Object) FeaturesEnabled() bool {
	return o.Features == nil || *o.Features
}

// Build creates and lays out the object.
func (o Object) Build(metrics arctext.MetricsProvider, features arctext.FeatureDetector) (*arctext.ArcText, error) {
	opts, err := o.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, arctext.WithMetrics(metrics))
	if features != nil && o.FeaturesEnabled() {
		opts = append(opts, arctext.WithFeatures(features))
	}
	t := arctext.New(o.Text, opts...)
	if err := t.InitDimensions(); err != nil {
		return nil, err
	}
	if o.Selection != nil {
		t.EnterEditing()
		t.SetSelection(o.Selection.Start, o.Selection.End)
	}
	return t, nil
}

func (p Placement) placement() (arctext.Placement, error) {
	pl := arctext.DefaultPlacement()
	pl.Left, pl.Top, pl.Angle = p.Left, p.Top, p.Angle
	if p.ScaleX != 0 {
		pl.ScaleX = p.ScaleX
	}
	if p.ScaleY != 0 {
		pl.ScaleY = p.ScaleY
	}
	switch p.Origin {
	case "", "left":
		pl.OriginX = arctext.OriginLeft
	case "center":
		pl.OriginX = arctext.OriginCenter
	default:
		return pl, &arctext.UnknownValueError{Kind: "origin", Value: p.Origin}
	}
	return pl, nil
}

// Override converts the set fields to a style override.
func (s StyleSpec) Override() (arctext.StyleOverride, error) {
	var o arctext.StyleOverride
	if s.FontFamily != nil {
		o.FontFamily = *s.FontFamily
		o.Set |= arctext.PropFontFamily
	}
	if s.FontSize != nil {
		o.FontSize = *s.FontSize
		o.Set |= arctext.PropFontSize
	}
	if s.FontWeight != nil {
		w, err := arctext.ParseFontWeight(*s.FontWeight)
		if err != nil {
			return o, err
		}
		o.FontWeight = w
		o.Set |= arctext.PropFontWeight
	}
	if s.FontStyle != nil {
		st, err := arctext.ParseFontStyle(*s.FontStyle)
		if err != nil {
			return o, err
		}
		o.FontStyle = st
		o.Set |= arctext.PropFontStyle
	}
	colors := []struct {
		v    *string
		dst  *arctext.RGBA
		prop arctext.Property
	}{
		{s.Fill, &o.Fill, arctext.PropFill},
		{s.Stroke, &o.Stroke, arctext.PropStroke},
		{s.TextBackground, &o.TextBackgroundColor, arctext.PropTextBackgroundColor},
		{s.ContourStroke, &o.ContourStroke, arctext.PropContourStroke},
	}
	for _, c := range colors {
		if c.v == nil {
			continue
		}
		v, err := parseColor(*c.v)
		if err != nil {
			return o, err
		}
		*c.dst = v
		o.Set |= c.prop
	}
	if s.StrokeWidth != nil {
		o.StrokeWidth = *s.StrokeWidth
		o.Set |= arctext.PropStrokeWidth
	}
	if s.DeltaY != nil {
		o.DeltaY = *s.DeltaY
		o.Set |= arctext.PropDeltaY
	}
	if s.ContourStrokeWidth != nil {
		o.ContourStrokeWidth = *s.ContourStrokeWidth
		o.Set |= arctext.PropContourStrokeWidth
	}
	flags := []struct {
		v    *bool
		dst  *bool
		prop arctext.Property
	}{
		{s.Underline, &o.Underline, arctext.PropUnderline},
		{s.Overline, &o.Overline, arctext.PropOverline},
		{s.Linethrough, &o.Linethrough, arctext.PropLinethrough},
	}
	for _, f := range flags {
		if f.v != nil {
			*f.dst = *f.v
			o.Set |= f.prop
		}
	}
	return o, nil
}

// parseColor parses a hex color. The empty string is transparent.
func parseColor(s string) (arctext.RGBA, error) {
	if s == "" {
		return arctext.Transparent, nil
	}
	return arctext.ParseHex(s)
}
