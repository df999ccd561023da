// Package geom provides the pure numeric core used to lay out charts:
// value domains, value-to-pixel mapping, cross-series normalization,
// radar polygon geometry and pointer selection.
//
// Nothing in this package returns an error or panics on degenerate input.
// Empty series, NaN samples and zero spans fall back to safe values so a
// caller can always draw an empty or flat chart.
package geom

import "math"

// MinSpan is the smallest span a Domain is allowed to have.
const MinSpan = 0.01

// relSpan is the smallest span relative to the magnitude of a domain.
const relSpan = 1e-12

// DefaultDomain is used when a series has no finite samples.
var DefaultDomain = Domain{Min: 0, Max: 1}

// Domain is a closed value interval [Min, Max] represented by a chart axis.
type Domain struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Span returns Max-Min.
func (d Domain) Span() float64 {
	return d.Max - d.Min
}

// Contains reports whether v lies inside the domain.
func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// IncludeZero extends the domain so that it contains 0.
// Bar charts grow from the zero line.
func (d Domain) IncludeZero() Domain {
	if d.Min > 0 {
		d.Min = 0
	}
	if d.Max < 0 {
		d.Max = 0
	}
	return d.Sanitize()
}

// Sanitize widens a too narrow domain symmetrically around its midpoint.
// The widening grows with the magnitude of the midpoint so that Max > Min
// holds even where MinSpan is below float64 resolution.
func (d Domain) Sanitize() Domain {
	if !isFinite(d.Min) || !isFinite(d.Max) {
		return DefaultDomain
	}
	if d.Max < d.Min {
		d.Min, d.Max = d.Max, d.Min
	}
	if d.Max-d.Min < MinSpan {
		mid := d.Min/2 + d.Max/2
		half := math.Max(MinSpan, math.Abs(mid)*relSpan) / 2
		d.Min = clampFinite(mid - half)
		d.Max = clampFinite(mid + half)
		for d.Max <= d.Min {
			d.Min = math.Nextafter(d.Min, math.Inf(-1))
			d.Max = math.Nextafter(d.Max, math.Inf(1))
		}
	}
	return d
}

// ComputeDomain returns the padded bounds of series.
//
// The minimum is scaled by padLow and the maximum by padHigh (for example
// 0.9 and 1.1). Negative bounds are scaled with the opposite factor so the
// padding always moves away from the data. Non-finite samples are ignored;
// a series without finite samples yields DefaultDomain.
func ComputeDomain(series []float64, padLow, padHigh float64) Domain {
	return ComputeDomainMulti(padLow, padHigh, series)
}

// ComputeDomainMulti returns one padded domain covering every series.
func ComputeDomainMulti(padLow, padHigh float64, series ...[]float64) Domain {
	lo, hi, ok := bounds(series...)
	if !ok {
		return DefaultDomain
	}
	if !isFinite(padLow) || padLow <= 0 {
		padLow = 1
	}
	if !isFinite(padHigh) || padHigh <= 0 {
		padHigh = 1
	}

	if lo < 0 {
		lo *= padHigh
	} else {
		lo *= padLow
	}
	if hi < 0 {
		hi *= padLow
	} else {
		hi *= padHigh
	}
	return Domain{Min: clampFinite(lo), Max: clampFinite(hi)}.Sanitize()
}

// bounds returns the min and max finite value over all series.
func bounds(series ...[]float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s {
			if !isFinite(v) {
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
			ok = true
		}
	}
	return lo, hi, ok
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// clampFinite pulls an overflowed bound back to the largest finite value.
func clampFinite(v float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
