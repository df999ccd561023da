package layout

import (
	"math"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/geom"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

// Line lays out every series as a polyline over one shared domain, points
// spread evenly from the left to the right edge.
func Line(spec models.ChartSpec, p Params) models.ChartLayout {
	l := base(spec, p)

	all := make([][]float64, len(spec.Series))
	for i, s := range spec.Series {
		all[i] = s.Values()
	}
	d, ok := pinned(spec)
	if !ok {
		d = geom.ComputeDomainMulti(p.PadLow, p.PadHigh, all...)
	}
	axis := geom.Axis{Domain: d, Span: l.Height, Margin: p.Margin, Inverted: true}
	l.Domain = d
	l.Ticks = ticks(axis, p.TickCount)

	longest := 0
	for i, s := range spec.Series {
		if len(s.Points) > len(spec.Series[longest].Points) {
			longest = i
		}
		n := len(s.Points)
		line := models.Polyline{Name: s.Name, Domain: geom.ComputeDomain(all[i], p.PadLow, p.PadHigh)}
		for j, v := range all[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			line.Points = append(line.Points, geom.Point{X: geom.SpreadX(j, n, l.Width), Y: axis.Map(v)})
			line.Samples = append(line.Samples, models.Sample{Index: j, Value: v})
		}
		l.Lines = append(l.Lines, line)
	}

	if len(spec.Series) > 0 {
		pts := spec.Series[longest].Points
		for i, pt := range pts {
			l.Slots = append(l.Slots, models.Slot{Index: i, Label: pt.Label, Center: geom.SpreadX(i, len(pts), l.Width)})
		}
	}
	return l
}
