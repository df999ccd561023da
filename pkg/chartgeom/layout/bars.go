package layout

import (
	"math"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/geom"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

// Bars lays out the first series as one bar per category. The domain is
// anchored at zero so bars grow from a common baseline.
func Bars(spec models.ChartSpec, p Params) models.ChartLayout {
	l := base(spec, p)
	s := primary(spec)
	values := s.Values()

	d, ok := pinned(spec)
	if !ok {
		d = geom.ComputeDomain(values, 1, p.BarPadHigh).IncludeZero()
	}
	axis := geom.Axis{Domain: d, Span: l.Height, Margin: p.Margin, Inverted: true}
	l.Domain = d
	l.Ticks = ticks(axis, p.TickCount)

	n := len(s.Points)
	baseline := axis.Map(math.Max(d.Min, math.Min(0, d.Max)))
	bw := geom.SlotWidth(n, l.Width) * p.BarWidthRatio
	for i, pt := range s.Points {
		cx := geom.SlotCenter(i, n, l.Width)
		l.Slots = append(l.Slots, models.Slot{Index: i, Label: pt.Label, Center: cx})
		if math.IsNaN(pt.Value) || math.IsInf(pt.Value, 0) {
			continue
		}
		top := axis.Map(pt.Value)
		l.Bars = append(l.Bars, models.Bar{
			Index:  i,
			Series: s.Name,
			Label:  pt.Label,
			Value:  pt.Value,
			X:      cx - bw/2,
			Y:      math.Min(top, baseline),
			W:      bw,
			H:      math.Abs(baseline - top),
		})
	}
	return l
}

// BarLine lays out bars for the first series and draws every other series,
// plus the first series' secondary values, as overlay lines squeezed into
// the band of the bar scale.
func BarLine(spec models.ChartSpec, p Params) models.ChartLayout {
	l := Bars(spec, p)
	axis := geom.Axis{Domain: l.Domain, Span: l.Height, Margin: p.Margin, Inverted: true}
	target := overlayRange(p.Band, l.Domain)
	n := len(l.Slots)

	var overlays []models.Series
	if s := primary(spec); s.HasSecondary() {
		sec := models.Series{Name: s.Name + " (secondary)"}
		for i, v := range s.SecondaryValues() {
			sec.Points = append(sec.Points, models.DataPoint{Label: s.Points[i].Label, Value: v})
		}
		overlays = append(overlays, sec)
	}
	if len(spec.Series) > 1 {
		overlays = append(overlays, spec.Series[1:]...)
	}

	for _, o := range overlays {
		values := o.Values()
		if len(values) > n {
			values = values[:n]
		}
		line := models.Polyline{
			Name:    o.Name,
			Overlay: true,
			Domain:  geom.ComputeDomain(values, p.OverlayPadLow, p.OverlayPadHigh),
		}
		for i, v := range geom.NormalizeSeries(values, p.OverlayPadLow, p.OverlayPadHigh, target) {
			if math.IsNaN(v) {
				continue
			}
			line.Points = append(line.Points, geom.Point{X: l.Slots[i].Center, Y: axis.Map(v)})
			line.Samples = append(line.Samples, models.Sample{Index: i, Value: values[i]})
		}
		l.Lines = append(l.Lines, line)
	}
	return l
}

// overlayRange resolves band against the bar domain. Bars that never rise
// above zero get the band over the whole span instead.
func overlayRange(band geom.Band, d geom.Domain) geom.Range {
	if d.Max > 0 {
		return band.Resolve(d)
	}
	return geom.Range{Min: d.Min + band.Low*d.Span(), Max: d.Min + band.High*d.Span()}
}
