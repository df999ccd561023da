package geom

import "math"

// Range is a target interval for a normalization. Min may be greater than
// Max, in which case the mapping is decreasing.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Band is a sub-range of a primary domain expressed as fractions of the
// primary maximum, e.g. {0.15, 0.75} keeps an overlay line between 15% and
// 75% of the tallest bar.
type Band struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// DefaultBand is the overlay band used by bar+line charts.
var DefaultBand = Band{Low: 0.15, High: 0.75}

// Resolve converts the band into an absolute range of primary.
func (b Band) Resolve(primary Domain) Range {
	return Range{Min: b.Low * primary.Max, Max: b.High * primary.Max}
}

// NormalizeCrossSeries maps value from the secondary domain into target.
// Values outside the secondary domain are clamped to its edges; a
// degenerate secondary domain or a NaN value maps to the middle of target.
func NormalizeCrossSeries(value float64, secondary Domain, target Range) float64 {
	return Mapping{From: secondary, To: target}.Apply(value)
}

// Mapping is an affine transform from a domain onto a range.
type Mapping struct {
	From Domain
	To   Range
}

// Apply maps v. See NormalizeCrossSeries.
func (m Mapping) Apply(v float64) float64 {
	// Halved so domains near ±MaxFloat64 do not overflow the span.
	half := m.From.Max/2 - m.From.Min/2
	t := 0.5
	if half >= MinSpan/2 && isFinite(half) && !math.IsNaN(v) {
		t = clamp01((v/2 - m.From.Min/2) / half)
	}
	return m.To.Min + t*(m.To.Max-m.To.Min)
}

// NormalizeSeries maps every value of a secondary series into target using
// the series' own padded domain. NaN samples stay NaN so gaps survive.
func NormalizeSeries(values []float64, padLow, padHigh float64, target Range) []float64 {
	if len(values) == 0 {
		return nil
	}
	m := Mapping{From: ComputeDomain(values, padLow, padHigh), To: target}
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = m.Apply(v)
	}
	return out
}
