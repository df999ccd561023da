package models

import "math"

// DataPoint is one sample of a series.
type DataPoint struct {
	// Label is the category label (e.g., a period name).
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	// Value is the primary sample value.
	Value float64 `json:"value" yaml:"value"`
	// Secondary is an optional companion value (e.g., price, sector average).
	Secondary *float64 `json:"secondary,omitempty" yaml:"secondary,omitempty"`
}

// Series is an ordered list of samples. Order is display order.
type Series struct {
	// Name is the series display name.
	Name string `json:"name" yaml:"name"`
	// Points holds the samples in display order.
	Points []DataPoint `json:"points" yaml:"points"`
}

// Values returns the primary values.
func (s Series) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Value
	}
	return out
}

// HasSecondary reports whether any point carries a secondary value.
func (s Series) HasSecondary() bool {
	for _, p := range s.Points {
		if p.Secondary != nil {
			return true
		}
	}
	return false
}

// SecondaryValues returns the secondary values, NaN where a point has none.
func (s Series) SecondaryValues() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		if p.Secondary == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *p.Secondary
	}
	return out
}

// Labels returns the category labels.
func (s Series) Labels() []string {
	out := make([]string, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Label
	}
	return out
}
