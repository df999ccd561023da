package geom

import "math"

// ValueToCoordinate maps value onto a vertical pixel span where y grows
// downward. margin is the fraction of pixelSpan kept free at the top and at
// the bottom, so Max lands at pixelSpan*margin and Min at
// pixelSpan*(1-margin).
func ValueToCoordinate(value float64, d Domain, pixelSpan, margin float64) float64 {
	return Axis{Domain: d, Span: pixelSpan, Margin: margin, Inverted: true}.Map(value)
}

// Axis maps a value domain onto a pixel span.
type Axis struct {
	Domain Domain
	// Span is the pixel length of the axis.
	Span float64
	// Margin is the fraction of Span reserved at each end, in [0, 0.5).
	Margin float64
	// Inverted places Max at the low pixel end (screen y axes).
	Inverted bool
}

func (a Axis) margin() float64 {
	if math.IsNaN(a.Margin) || a.Margin < 0 {
		return 0
	}
	if a.Margin >= 0.5 {
		return 0.49
	}
	return a.Margin
}

// Map converts a value to a pixel coordinate.
func (a Axis) Map(value float64) float64 {
	d := a.Domain.Sanitize()
	// Halved so domains near ±MaxFloat64 do not overflow the span.
	n := (value/2 - d.Min/2) / (d.Max/2 - d.Min/2)
	if math.IsNaN(n) {
		n = 0
	}
	m := a.margin()
	scale := 1 - 2*m
	if a.Inverted {
		return a.Span - n*a.Span*scale - a.Span*m
	}
	return a.Span*m + n*a.Span*scale
}

// Value converts a pixel coordinate back to a value.
func (a Axis) Value(px float64) float64 {
	d := a.Domain.Sanitize()
	m := a.margin()
	usable := a.Span * (1 - 2*m)
	if usable <= 0 || math.IsNaN(px) {
		return d.Min
	}
	var n float64
	if a.Inverted {
		n = (a.Span - a.Span*m - px) / usable
	} else {
		n = (px - a.Span*m) / usable
	}
	return (d.Min/2 + n*(d.Max/2-d.Min/2)) * 2
}

// SlotWidth returns the width of one category slot.
func SlotWidth(count int, width float64) float64 {
	if count <= 0 || width <= 0 {
		return 0
	}
	return width / float64(count)
}

// SlotCenter returns the x position of category index when count slots are
// distributed evenly across width.
func SlotCenter(index, count int, width float64) float64 {
	step := SlotWidth(count, width)
	return float64(index)*step + step/2
}

// SpreadX returns the x position of point index when count points are
// spread from 0 to width. A single point is centred.
func SpreadX(index, count int, width float64) float64 {
	if width <= 0 {
		return 0
	}
	if count <= 1 {
		return width / 2
	}
	return float64(index) * width / float64(count-1)
}
