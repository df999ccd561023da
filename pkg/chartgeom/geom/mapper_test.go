package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueToCoordinate_InvertedY(t *testing.T) {
	series := []float64{100, 102, 105, 108, 112, 118, 122}
	d := ComputeDomain(series, 1, 1)

	assert.InDelta(t, 0, ValueToCoordinate(122, d, 60, 0), 1e-9)
	assert.InDelta(t, 60, ValueToCoordinate(100, d, 60, 0), 1e-9)
	assert.InDelta(t, 30, ValueToCoordinate(111, d, 60, 0), 1e-9)
}

func TestValueToCoordinate_Margin(t *testing.T) {
	d := Domain{0, 10}
	// margin 0.075 leaves 7.5% free at each end, i.e. scale 0.85.
	assert.InDelta(t, 15, ValueToCoordinate(10, d, 200, 0.075), 1e-9)
	assert.InDelta(t, 185, ValueToCoordinate(0, d, 200, 0.075), 1e-9)
	assert.Less(t, ValueToCoordinate(d.Max, d, 200, 0.05), ValueToCoordinate(d.Min, d, 200, 0.05))
}

func TestValueToCoordinate_DegenerateDomain(t *testing.T) {
	y := ValueToCoordinate(5, Domain{5, 5}, 100, 0)
	assert.InDelta(t, 50, y, 1e-9)
}

func TestAxis_RoundTrip(t *testing.T) {
	axes := []Axis{
		{Domain: Domain{-20, 80}, Span: 300, Margin: 0.05, Inverted: true},
		{Domain: Domain{0, 1}, Span: 120},
	}
	for _, a := range axes {
		for _, v := range []float64{a.Domain.Min, 0, 0.5, a.Domain.Max} {
			assert.InDelta(t, v, a.Value(a.Map(v)), 1e-9)
		}
	}
}

func TestAxis_NonInverted(t *testing.T) {
	a := Axis{Domain: Domain{0, 10}, Span: 100}
	assert.InDelta(t, 0, a.Map(0), 1e-9)
	assert.InDelta(t, 100, a.Map(10), 1e-9)
}

func TestSlotCenter(t *testing.T) {
	tests := []struct {
		index, count int
		width        float64
		want         float64
	}{
		{0, 4, 400, 50},
		{3, 4, 400, 350},
		{0, 1, 90, 45},
		{0, 0, 90, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, SlotCenter(tt.index, tt.count, tt.width), 1e-9)
	}
}

func TestSpreadX(t *testing.T) {
	assert.InDelta(t, 0, SpreadX(0, 5, 200), 1e-9)
	assert.InDelta(t, 200, SpreadX(4, 5, 200), 1e-9)
	assert.InDelta(t, 100, SpreadX(0, 1, 200), 1e-9)
	assert.InDelta(t, 0, SpreadX(2, 5, -1), 1e-9)
}
