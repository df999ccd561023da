package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestPolygonVertices_Square(t *testing.T) {
	center := Point{X: 100, Y: 100}
	got := PolygonVertices([]float64{1, 1, 1, 1}, 50, center)
	want := []Point{
		{100, 50},  // up
		{150, 100}, // right
		{100, 150}, // down
		{50, 100},  // left
		{100, 50},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("PolygonVertices mismatch (-want +got):\n%s", diff)
	}
}

func TestPolygonVertices_ClosedAndBounded(t *testing.T) {
	center := Point{X: 10, Y: -4}
	scores := []float64{0.2, 1.7, -0.5, math.NaN(), 0.9}
	pts := PolygonVertices(scores, 40, center)
	require.Len(t, pts, len(scores)+1)
	assert.Equal(t, pts[0], pts[len(pts)-1])
	for _, p := range pts {
		assert.LessOrEqual(t, p.Dist(center), 40+1e-9)
	}
	// Clamped scores: 1.7 reaches the rim, -0.5 and NaN collapse on the center.
	assert.InDelta(t, 40, pts[1].Dist(center), 1e-9)
	assert.InDelta(t, 0, pts[2].Dist(center), 1e-9)
	assert.InDelta(t, 0, pts[3].Dist(center), 1e-9)
}

func TestPolygonVertices_Empty(t *testing.T) {
	assert.Nil(t, PolygonVertices(nil, 10, Point{}))
}

func TestPolarVertices(t *testing.T) {
	got := PolarVertices([]float64{0.5, 1, 0}, 60)
	require.Len(t, got, 3)
	assert.InDelta(t, -math.Pi/2, got[0].Angle, 1e-12)
	assert.InDelta(t, 30, got[0].Radius, 1e-12)
	assert.InDelta(t, 2*math.Pi/3-math.Pi/2, got[1].Angle, 1e-12)
	assert.InDelta(t, 0, got[2].Radius, 1e-12)
}

func TestGridRings(t *testing.T) {
	center := Point{X: 0, Y: 0}
	rings := GridRings(5, 4, 80, center)
	require.Len(t, rings, 4)
	for r, ring := range rings {
		require.Len(t, ring, 6)
		assert.Equal(t, ring[0], ring[5])
		want := 80 * float64(r+1) / 4
		for _, p := range ring {
			assert.InDelta(t, want, p.Dist(center), 1e-9)
		}
	}
	assert.Nil(t, GridRings(0, 4, 80, center))
	assert.Nil(t, GridRings(5, 0, 80, center))
}

func TestLabelAnchors(t *testing.T) {
	center := Point{X: 50, Y: 50}
	spokes := AxisSpokes(4, 40, center)
	labels := LabelAnchors(4, 40, 10, center)
	require.Len(t, spokes, 4)
	require.Len(t, labels, 4)
	if diff := cmp.Diff(Point{50, 10}, spokes[0], approx); diff != "" {
		t.Errorf("spoke 0 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Point{50, 0}, labels[0], approx); diff != "" {
		t.Errorf("label 0 (-want +got):\n%s", diff)
	}
}

func TestNormalizeScore(t *testing.T) {
	assert.InDelta(t, 0.8, NormalizeScore(4, 5), 1e-12)
	assert.Equal(t, 1.0, NormalizeScore(7, 5))
	assert.Equal(t, 0.0, NormalizeScore(3, 0))
	assert.Equal(t, 0.0, NormalizeScore(-1, 5))
}
