// Package layout composes the geometry engine into complete chart layouts.
package layout

import (
	"errors"
	"fmt"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/geom"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

// ErrUnsupportedKind indicates a chart kind no composer handles.
var ErrUnsupportedKind = errors.New("unsupported chart kind")

// Params holds the layout tuning shared by all composers.
type Params struct {
	// Width and Height are the default canvas size in pixels.
	Width  float64
	Height float64
	// Margin is the fraction of the height kept free at top and bottom.
	Margin float64
	// PadLow and PadHigh pad line chart domains.
	PadLow  float64
	PadHigh float64
	// BarPadHigh pads the top of bar domains.
	BarPadHigh float64
	// BarWidthRatio is the share of a category slot covered by its bar.
	BarWidthRatio float64
	// Band is the part of the bar scale reserved for overlay lines.
	Band geom.Band
	// OverlayPadLow and OverlayPadHigh pad overlay series domains.
	OverlayPadLow  float64
	OverlayPadHigh float64
	// TickCount is the desired number of value axis ticks.
	TickCount int
	// RadarRings is the number of radar grid rings.
	RadarRings int
	// RadarRadiusRatio is the radar radius relative to the smaller canvas side.
	RadarRadiusRatio float64
	// RadarLabelOffset is the distance of axis labels beyond the rim.
	RadarLabelOffset float64
}

// DefaultParams returns the default layout parameters.
func DefaultParams() Params {
	return Params{
		Width:            360,
		Height:           220,
		Margin:           0.075,
		PadLow:           0.998,
		PadHigh:          1.002,
		BarPadHigh:       1.15,
		BarWidthRatio:    0.6,
		Band:             geom.DefaultBand,
		OverlayPadLow:    1,
		OverlayPadHigh:   1,
		TickCount:        5,
		RadarRings:       4,
		RadarRadiusRatio: 0.38,
		RadarLabelOffset: 14,
	}
}

// canvas returns the canvas size of the chart, falling back to the defaults.
func (p Params) canvas(spec models.ChartSpec) (float64, float64) {
	w, h := p.Width, p.Height
	if spec.Width > 0 {
		w = float64(spec.Width)
	}
	if spec.Height > 0 {
		h = float64(spec.Height)
	}
	return w, h
}

// Compose lays out a chart spec according to its kind.
func Compose(spec models.ChartSpec, p Params) (models.ChartLayout, error) {
	switch spec.Kind {
	case models.KindBar:
		return Bars(spec, p), nil
	case models.KindBarLine:
		return BarLine(spec, p), nil
	case models.KindLine:
		return Line(spec, p), nil
	case models.KindRadar:
		return Radar(spec, p), nil
	default:
		return models.ChartLayout{}, fmt.Errorf("%w: %q", ErrUnsupportedKind, spec.Kind)
	}
}

// base fills the fields every layout shares.
func base(spec models.ChartSpec, p Params) models.ChartLayout {
	w, h := p.canvas(spec)
	return models.ChartLayout{
		Name:   spec.Name,
		Kind:   spec.Kind,
		Title:  spec.Title,
		Sheet:  spec.Sheet,
		Width:  w,
		Height: h,
		Margin: p.Margin,
	}
}

// pinned returns the fixed y range of the chart, if any.
func pinned(spec models.ChartSpec) (geom.Domain, bool) {
	if len(spec.YRange) != 2 {
		return geom.Domain{}, false
	}
	return geom.Domain{Min: spec.YRange[0], Max: spec.YRange[1]}.Sanitize(), true
}

// ticks positions the value axis ticks that fall inside the domain.
func ticks(axis geom.Axis, n int) []models.AxisTick {
	var out []models.AxisTick
	for _, t := range geom.NiceTicks(axis.Domain, n) {
		if !axis.Domain.Contains(t.Value) {
			continue
		}
		out = append(out, models.AxisTick{Tick: t, Y: axis.Map(t.Value)})
	}
	return out
}

func primary(spec models.ChartSpec) models.Series {
	if len(spec.Series) == 0 {
		return models.Series{}
	}
	return spec.Series[0]
}
