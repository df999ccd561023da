package geom

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Tick is an axis tick mark.
type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// tickSteps are the preferred multipliers of a power of ten.
var tickSteps = []float64{1, 2, 2.5, 5, 10}

// NiceTicks returns about n ticks covering d using 1/2/2.5/5/10 steps.
// Tick values are accumulated in decimal arithmetic so a 0.1 step yields
// 0.3 and not 0.30000000000000004.
func NiceTicks(d Domain, n int) []Tick {
	if n < 2 {
		return nil
	}
	d = d.Sanitize()
	span := d.Span()
	if !(span > 0) || !isFinite(span) {
		return nil
	}
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range tickSteps {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			bestStep = step
		}
	}

	if !(bestStep > 0) || !isFinite(bestStep) {
		return nil
	}
	step := decimal.NewFromFloat(bestStep)
	start := decimal.NewFromFloat(d.Min).Div(step).Floor().Mul(step)
	end := decimal.NewFromFloat(d.Max).Div(step).Ceil().Mul(step)
	places := int32(0)
	if exp := step.Exponent(); exp < 0 {
		places = -exp
	}

	var ticks []Tick
	for v := start; v.LessThanOrEqual(end); v = v.Add(step) {
		if f := v.InexactFloat64(); isFinite(f) {
			ticks = append(ticks, Tick{Value: f, Label: v.StringFixed(places)})
		}
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// FormatTick renders a tick value with precision depending on magnitude.
func FormatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
