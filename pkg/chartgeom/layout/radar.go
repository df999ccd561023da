package layout

import (
	"math"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/geom"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

// Radar lays out the first series as a radar polygon, one axis per point.
func Radar(spec models.ChartSpec, p Params) models.ChartLayout {
	l := base(spec, p)
	s := primary(spec)
	values := s.Values()

	full := radarMax(spec.MaxScore, values)
	l.Domain = geom.Domain{Min: 0, Max: full}

	scores := make([]float64, len(values))
	for i, v := range values {
		scores[i] = geom.NormalizeScore(v, full)
	}

	center := geom.Point{X: l.Width / 2, Y: l.Height / 2}
	radius := math.Min(l.Width, l.Height) * p.RadarRadiusRatio
	n := len(scores)

	r := &models.Radar{
		Center:  center,
		Radius:  radius,
		Polygon: geom.PolygonVertices(scores, radius, center),
		Rings:   geom.GridRings(n, p.RadarRings, radius, center),
	}
	ends := geom.AxisSpokes(n, radius, center)
	text := geom.LabelAnchors(n, radius, p.RadarLabelOffset, center)
	for i, pt := range s.Points {
		r.Axes = append(r.Axes, models.RadarAxis{Label: pt.Label, Score: scores[i], End: ends[i], Text: text[i]})
	}
	l.Radar = r
	return l
}

// radarMax returns the full-scale score: the explicit maximum when given,
// 1 when every score already lies in [0, 1], the largest score otherwise.
func radarMax(explicit float64, values []float64) float64 {
	if explicit > 0 {
		return explicit
	}
	top := 0.0
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) && v > top {
			top = v
		}
	}
	if top <= 1 {
		return 1
	}
	return top
}
