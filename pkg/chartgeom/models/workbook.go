package models

// BookLayout is the result of laying out every chart of one source.
type BookLayout struct {
	// Source is the input file name (no path).
	Source string `json:"source"`
	// Charts holds the laid out charts in source order.
	Charts []ChartLayout `json:"charts"`
}

// SeriesFile is the YAML/JSON document accepted as a chart source.
type SeriesFile struct {
	Charts []ChartSpec `json:"charts" yaml:"charts"`
}
