package geom

import (
	"math"
	"time"
)

// DefaultSelectionClearDelay is how long a selection stays visible after the
// pointer is released.
const DefaultSelectionClearDelay = 2500 * time.Millisecond

// SelectIndex returns the category column under pointerX for count columns
// spread across chartWidth starting at chartOriginX. ok is false when the
// pointer is outside the chart or there is nothing to select.
func SelectIndex(pointerX, chartOriginX, chartWidth float64, count int) (index int, ok bool) {
	if count <= 0 || !(chartWidth > 0) || !isFinite(pointerX) || !isFinite(chartOriginX) {
		return 0, false
	}
	col := chartWidth / float64(count)
	idx := math.Floor((pointerX - chartOriginX) / col)
	if idx < 0 || idx >= float64(count) {
		return 0, false
	}
	return int(idx), true
}

// NearestIndex returns the index of the center closest to x.
func NearestIndex(centers []float64, x float64) (int, bool) {
	if len(centers) == 0 || math.IsNaN(x) {
		return 0, false
	}
	best := -1
	bestD := math.Inf(1)
	for i, c := range centers {
		if math.IsNaN(c) {
			continue
		}
		if d := math.Abs(x - c); d < bestD {
			bestD = d
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// SelectionExpired reports whether a selection released at releasedAt
// should be cleared at now.
func SelectionExpired(releasedAt, now time.Time, delay time.Duration) bool {
	if releasedAt.IsZero() {
		return false
	}
	return !now.Before(releasedAt.Add(delay))
}
