package models

// Kind identifies how a chart is laid out.
type Kind string

const (
	// KindBar lays out one bar per category.
	KindBar Kind = "bar"
	// KindLine lays out one polyline per series (sparklines, price lines).
	KindLine Kind = "line"
	// KindBarLine lays out bars with overlay lines normalized into the bar scale.
	KindBarLine Kind = "bar_line"
	// KindRadar lays out a closed polygon with one axis per category.
	KindRadar Kind = "radar"
)

// ChartSeries represents series metadata for a chart embedded in a workbook.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for category values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for series values.
	YRange string `json:"y_range,omitempty"`
	// Group is the plot group chart type the series belongs to (e.g., Bar, Line).
	Group string `json:"group"`
}

// Chart represents an embedded workbook chart before its data is resolved.
type Chart struct {
	// Name is the chart name.
	Name string `json:"name"`
	// Sheet is the sheet the chart is drawn on.
	Sheet string `json:"sheet"`
	// ChartType is the type of the first plot group (e.g., Bar, Line).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// YAxisTitle is the Y-axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// YAxisRange is the Y-axis range [min, max] when fixed in the workbook.
	YAxisRange []float64 `json:"y_axis_range,omitempty"`
	// W is the chart frame width in pixels.
	W int `json:"w"`
	// H is the chart frame height in pixels.
	H int `json:"h"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
}

// Groups returns the distinct plot group types in series order.
func (c Chart) Groups() []string {
	var groups []string
	seen := make(map[string]bool)
	for _, s := range c.Series {
		if s.Group == "" || seen[s.Group] {
			continue
		}
		seen[s.Group] = true
		groups = append(groups, s.Group)
	}
	return groups
}

// ChartSpec is a chart ready to be laid out: its kind, canvas and data.
type ChartSpec struct {
	// Name identifies the chart.
	Name string `json:"name" yaml:"name"`
	// Kind selects the layout.
	Kind Kind `json:"kind" yaml:"kind"`
	// Title is the chart title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Sheet is the source sheet when loaded from a workbook.
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`
	// Width is the canvas width in pixels (0 uses the configured default).
	Width int `json:"width,omitempty" yaml:"width,omitempty"`
	// Height is the canvas height in pixels (0 uses the configured default).
	Height int `json:"height,omitempty" yaml:"height,omitempty"`
	// MaxScore is the full-scale radar score (0 picks one from the data).
	MaxScore float64 `json:"max_score,omitempty" yaml:"max_score,omitempty"`
	// YRange pins the value domain to [min, max] when set.
	YRange []float64 `json:"y_range,omitempty" yaml:"y_range,omitempty"`
	// Series holds the data. The first series is the primary one.
	Series []Series `json:"series" yaml:"series"`
}
