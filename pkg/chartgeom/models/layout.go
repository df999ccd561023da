package models

import "github.com/ukaji3/chartgeom-go/pkg/chartgeom/geom"

// Bar is one laid out bar. Y is the top edge in pixels.
type Bar struct {
	Index  int     `json:"index"`
	Series string  `json:"series,omitempty"`
	Label  string  `json:"label,omitempty"`
	Value  float64 `json:"value"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
}

// Sample ties a drawn point back to its source sample.
type Sample struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// Polyline is one laid out line series.
type Polyline struct {
	// Name is the series name.
	Name string `json:"name"`
	// Overlay marks a series normalized into another series' scale.
	Overlay bool `json:"overlay,omitempty"`
	// Domain is the series' own value domain.
	Domain geom.Domain `json:"domain"`
	// Points holds one pixel position per sample; gaps are omitted.
	Points []geom.Point `json:"points"`
	// Samples is parallel to Points and holds the unscaled source values.
	Samples []Sample `json:"samples"`
}

// RadarAxis is one radar dimension.
type RadarAxis struct {
	Label string     `json:"label"`
	Score float64    `json:"score"`
	End   geom.Point `json:"end"`
	Text  geom.Point `json:"text"`
}

// Radar holds the geometry of a radar chart.
type Radar struct {
	Center  geom.Point     `json:"center"`
	Radius  float64        `json:"radius"`
	Polygon []geom.Point   `json:"polygon"`
	Rings   [][]geom.Point `json:"rings"`
	Axes    []RadarAxis    `json:"axes"`
}

// Slot is the horizontal extent of one selectable category.
type Slot struct {
	Index  int     `json:"index"`
	Label  string  `json:"label,omitempty"`
	Center float64 `json:"center"`
}

// ChartLayout is the computed pixel geometry of one chart.
type ChartLayout struct {
	// Name identifies the chart.
	Name string `json:"name"`
	// Kind is the layout kind.
	Kind Kind `json:"kind"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// Sheet is the source sheet when loaded from a workbook.
	Sheet string `json:"sheet,omitempty"`
	// Width is the canvas width in pixels.
	Width float64 `json:"width"`
	// Height is the canvas height in pixels.
	Height float64 `json:"height"`
	// Margin is the vertical margin fraction used by the value axis.
	Margin float64 `json:"margin"`
	// Domain is the primary value domain.
	Domain geom.Domain `json:"domain"`
	// Ticks are the primary axis ticks with their pixel position.
	Ticks []AxisTick `json:"ticks,omitempty"`
	// Bars holds the bars of bar and bar_line charts.
	Bars []Bar `json:"bars,omitempty"`
	// Lines holds line series, including normalized overlays.
	Lines []Polyline `json:"lines,omitempty"`
	// Radar holds radar geometry for radar charts.
	Radar *Radar `json:"radar,omitempty"`
	// Slots are the selectable categories from left to right.
	Slots []Slot `json:"slots,omitempty"`
}

// AxisTick is a value axis tick positioned on the canvas.
type AxisTick struct {
	geom.Tick
	Y float64 `json:"y"`
}

// Select resolves a pointer x position to a category slot.
func (l ChartLayout) Select(x float64) (Slot, bool) {
	if l.Kind == KindLine {
		centers := make([]float64, len(l.Slots))
		for i, s := range l.Slots {
			centers[i] = s.Center
		}
		idx, ok := geom.NearestIndex(centers, x)
		if !ok || x < 0 || x > l.Width {
			return Slot{}, false
		}
		return l.Slots[idx], true
	}
	idx, ok := geom.SelectIndex(x, 0, l.Width, len(l.Slots))
	if !ok {
		return Slot{}, false
	}
	return l.Slots[idx], true
}

// ValuesAt returns the source value of every bar and line series at the
// category index, keyed by series name.
func (l ChartLayout) ValuesAt(index int) map[string]float64 {
	values := make(map[string]float64)
	for _, b := range l.Bars {
		if b.Index == index {
			values[b.Series] = b.Value
		}
	}
	for _, line := range l.Lines {
		for _, s := range line.Samples {
			if s.Index == index {
				values[line.Name] = s.Value
				break
			}
		}
	}
	return values
}
