package layout

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/geom"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func f(v float64) *float64 { return &v }

func series(name string, values ...float64) models.Series {
	s := models.Series{Name: name}
	for i, v := range values {
		s.Points = append(s.Points, models.DataPoint{Label: string(rune('A' + i)), Value: v})
	}
	return s
}

// flatParams removes margins and padding so expected pixels are easy to derive.
func flatParams() Params {
	p := DefaultParams()
	p.Margin = 0
	p.PadLow, p.PadHigh = 1, 1
	p.BarPadHigh = 1
	return p
}

func TestBars(t *testing.T) {
	spec := models.ChartSpec{
		Name:   "revenue",
		Kind:   models.KindBar,
		Width:  400,
		Height: 200,
		Series: []models.Series{series("Revenue", 100, 200, math.NaN(), 150)},
	}
	l := Bars(spec, flatParams())

	assert.Equal(t, geom.Domain{Min: 0, Max: 200}, l.Domain)
	require.Len(t, l.Slots, 4)
	require.Len(t, l.Bars, 3, "NaN sample keeps its slot but draws no bar")

	assert.InDelta(t, 20, l.Bars[0].X, 1e-9)
	assert.InDelta(t, 60, l.Bars[0].W, 1e-9)
	assert.InDelta(t, 100, l.Bars[0].Y, 1e-9)
	assert.InDelta(t, 100, l.Bars[0].H, 1e-9)
	assert.InDelta(t, 0, l.Bars[1].Y, 1e-9)
	assert.InDelta(t, 200, l.Bars[1].H, 1e-9)
	assert.InDelta(t, 350, l.Slots[3].Center, 1e-9)
	assert.Equal(t, "D", l.Bars[2].Label)

	for _, tk := range l.Ticks {
		assert.True(t, l.Domain.Contains(tk.Value))
		assert.InDelta(t, 200-tk.Value, tk.Y, 1e-9)
	}
}

func TestBars_NegativeValuesHangFromZero(t *testing.T) {
	spec := models.ChartSpec{Kind: models.KindBar, Width: 200, Height: 100,
		Series: []models.Series{series("Net", -50, 50)}}
	l := Bars(spec, flatParams())

	require.Len(t, l.Bars, 2)
	zero := geom.Axis{Domain: l.Domain, Span: 100, Inverted: true}.Map(0)
	assert.InDelta(t, zero, l.Bars[0].Y, 1e-9)
	assert.InDelta(t, zero, l.Bars[1].Y+l.Bars[1].H, 1e-9)
}

func TestBarLine(t *testing.T) {
	revenue := series("Revenue", 100, 200, 50, 150)
	for i, yoy := range []*float64{f(-10), f(30), f(10), nil} {
		revenue.Points[i].Secondary = yoy
	}
	spec := models.ChartSpec{
		Kind:   models.KindBarLine,
		Width:  400,
		Height: 200,
		Series: []models.Series{revenue, series("EPS", 1, 2, 3, 4)},
	}
	l := BarLine(spec, flatParams())

	require.Len(t, l.Bars, 4)
	require.Len(t, l.Lines, 2)

	yoy := l.Lines[0]
	assert.Equal(t, "Revenue (secondary)", yoy.Name)
	assert.True(t, yoy.Overlay)
	require.Len(t, yoy.Points, 3)
	want := []geom.Point{{X: 50, Y: 170}, {X: 150, Y: 50}, {X: 250, Y: 110}}
	if diff := cmp.Diff(want, yoy.Points, approx); diff != "" {
		t.Errorf("overlay points mismatch (-want +got):\n%s", diff)
	}
	wantSamples := []models.Sample{{Index: 0, Value: -10}, {Index: 1, Value: 30}, {Index: 2, Value: 10}}
	if diff := cmp.Diff(wantSamples, yoy.Samples); diff != "" {
		t.Errorf("overlay samples mismatch (-want +got):\n%s", diff)
	}

	eps := l.Lines[1]
	require.Len(t, eps.Points, 4)
	for i, y := range []float64{170, 130, 90, 50} {
		assert.InDelta(t, y, eps.Points[i].Y, 1e-9)
	}
}

func TestBarLine_OverlayStaysInBand(t *testing.T) {
	p := DefaultParams()
	spec := models.ChartSpec{
		Kind: models.KindBarLine,
		Series: []models.Series{
			series("Revenue", 12, 18, 25, 31, 40),
			series("Margin %", -4, 12.5, 3, 27, 19),
		},
	}
	l := BarLine(spec, p)
	axis := geom.Axis{Domain: l.Domain, Span: l.Height, Margin: p.Margin, Inverted: true}
	band := p.Band.Resolve(l.Domain)
	top, bottom := axis.Map(band.Max), axis.Map(band.Min)

	require.Len(t, l.Lines, 1)
	for _, pt := range l.Lines[0].Points {
		assert.GreaterOrEqual(t, pt.Y, top-1e-9)
		assert.LessOrEqual(t, pt.Y, bottom+1e-9)
	}
}

func TestLine_Sparkline(t *testing.T) {
	spec := models.ChartSpec{
		Kind:   models.KindLine,
		Width:  60,
		Height: 60,
		Series: []models.Series{series("Price", 100, 102, 105, 108, 112, 118, 122)},
	}
	l := Line(spec, flatParams())

	assert.Equal(t, geom.Domain{Min: 100, Max: 122}, l.Domain)
	require.Len(t, l.Lines, 1)
	pts := l.Lines[0].Points
	require.Len(t, pts, 7)
	assert.InDelta(t, 0, pts[0].X, 1e-9)
	assert.InDelta(t, 60, pts[0].Y, 1e-9)
	assert.InDelta(t, 60, pts[6].X, 1e-9)
	assert.InDelta(t, 0, pts[6].Y, 1e-9)
	assert.Len(t, l.Slots, 7)
}

func TestLine_PinnedRange(t *testing.T) {
	spec := models.ChartSpec{Kind: models.KindLine, YRange: []float64{0, 200},
		Series: []models.Series{series("Price", 100, 120)}}
	l := Line(spec, flatParams())
	assert.Equal(t, geom.Domain{Min: 0, Max: 200}, l.Domain)
}

func TestRadar(t *testing.T) {
	p := DefaultParams()
	p.RadarRadiusRatio = 0.4
	spec := models.ChartSpec{
		Kind:     models.KindRadar,
		Width:    200,
		Height:   200,
		MaxScore: 5,
		Series:   []models.Series{series("Moat", 4, 3, 5, 2, 1)},
	}
	l := Radar(spec, p)
	require.NotNil(t, l.Radar)
	r := l.Radar

	assert.Equal(t, geom.Point{X: 100, Y: 100}, r.Center)
	assert.InDelta(t, 80, r.Radius, 1e-9)
	require.Len(t, r.Polygon, 6)
	assert.Equal(t, r.Polygon[0], r.Polygon[5])
	assert.InDelta(t, 64, r.Polygon[0].Dist(r.Center), 1e-9)
	assert.InDelta(t, 80, r.Polygon[2].Dist(r.Center), 1e-9)
	assert.Len(t, r.Rings, p.RadarRings)
	require.Len(t, r.Axes, 5)
	assert.Equal(t, "C", r.Axes[2].Label)
	assert.InDelta(t, 1.0, r.Axes[2].Score, 1e-12)
	assert.InDelta(t, 80+p.RadarLabelOffset, r.Axes[0].Text.Dist(r.Center), 1e-9)
}

func TestRadarMax(t *testing.T) {
	assert.Equal(t, 5.0, radarMax(5, []float64{1, 9}))
	assert.Equal(t, 1.0, radarMax(0, []float64{0.2, 0.5}))
	assert.Equal(t, 6.0, radarMax(0, []float64{3, 6, math.NaN()}))
	assert.Equal(t, 1.0, radarMax(0, nil))
}

func TestCompose(t *testing.T) {
	for _, kind := range []models.Kind{models.KindBar, models.KindBarLine, models.KindLine, models.KindRadar} {
		l, err := Compose(models.ChartSpec{Kind: kind}, DefaultParams())
		require.NoError(t, err, kind)
		assert.Equal(t, kind, l.Kind)
	}

	_, err := Compose(models.ChartSpec{Kind: "pie"}, DefaultParams())
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestLayout_Select(t *testing.T) {
	bars := Bars(models.ChartSpec{Kind: models.KindBar, Width: 400,
		Series: []models.Series{series("Revenue", 1, 2, 3, 4)}}, DefaultParams())

	slot, ok := bars.Select(260)
	require.True(t, ok)
	assert.Equal(t, 2, slot.Index)
	assert.Equal(t, "C", slot.Label)

	_, ok = bars.Select(-1)
	assert.False(t, ok)

	line := Line(models.ChartSpec{Kind: models.KindLine, Width: 300,
		Series: []models.Series{series("Price", 1, 2, 3, 4)}}, DefaultParams())
	slot, ok = line.Select(190)
	require.True(t, ok)
	assert.Equal(t, 2, slot.Index)
}

func TestRadar_PolygonMatchesEngine(t *testing.T) {
	spec := models.ChartSpec{Kind: models.KindRadar, Width: 300, Height: 200, MaxScore: 4,
		Series: []models.Series{series("Moat", 4, 2, 3)}}
	p := DefaultParams()
	l := Radar(spec, p)
	require.NotNil(t, l.Radar)

	want := geom.PolygonVertices([]float64{1, 0.5, 0.75}, 200*p.RadarRadiusRatio, geom.Point{X: 150, Y: 100})
	if diff := cmp.Diff(want, l.Radar.Polygon, approx); diff != "" {
		t.Errorf("polygon mismatch (-want +got):\n%s", diff)
	}
}

func TestValuesAt(t *testing.T) {
	revenue := series("Revenue", 100, 200, 50)
	revenue.Points[1].Secondary = f(12.5)
	combo := BarLine(models.ChartSpec{Kind: models.KindBarLine,
		Series: []models.Series{revenue, series("Margin %", 8, 9, 7)}}, DefaultParams())

	got := combo.ValuesAt(1)
	want := map[string]float64{"Revenue": 200, "Revenue (secondary)": 12.5, "Margin %": 9}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bar_line values mismatch (-want +got):\n%s", diff)
	}

	// The shorter series is spread over the full width but still answers
	// for its own sample index.
	lines := Line(models.ChartSpec{Kind: models.KindLine, Series: []models.Series{
		series("Close", 10, 12, 11, 13),
		series("Target", 15, 14),
	}}, DefaultParams())
	assert.Equal(t, map[string]float64{"Close": 12, "Target": 14}, lines.ValuesAt(1))
	assert.Equal(t, map[string]float64{"Close": 13}, lines.ValuesAt(3))
	assert.Empty(t, lines.ValuesAt(9))
}
