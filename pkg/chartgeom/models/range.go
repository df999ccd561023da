package models

// CellRange represents cell coordinate bounds referenced by a chart series.
type CellRange struct {
	// Sheet is the sheet name owning the range.
	Sheet string `json:"sheet"`
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Len returns the number of cells in the range.
func (r CellRange) Len() int {
	if r.R2 < r.R1 || r.C2 < r.C1 {
		return 0
	}
	return (r.R2 - r.R1 + 1) * (r.C2 - r.C1 + 1)
}

// Each calls fn for every cell in row-major order.
func (r CellRange) Each(fn func(row, col int)) {
	for row := r.R1; row <= r.R2; row++ {
		for col := r.C1; col <= r.C2; col++ {
			fn(row, col)
		}
	}
}
