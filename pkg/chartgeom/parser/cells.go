package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"github.com/xuri/excelize/v2"
)

// ReadRange returns the displayed text of r in row-major order, as used for
// category labels and series names.
func ReadRange(f *excelize.File, r models.CellRange) ([]string, error) {
	return readCells(f, r, false)
}

// readCells reads r in row-major order. With raw set, number formats are
// not applied, so 1,234,567 and 12.50% come back as 1234567 and 0.125.
func readCells(f *excelize.File, r models.CellRange, raw bool) ([]string, error) {
	out := make([]string, 0, r.Len())
	var firstErr error
	r.Each(func(row, col int) {
		if firstErr != nil {
			return
		}
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			firstErr = err
			return
		}
		v, err := f.GetCellValue(r.Sheet, cell, excelize.Options{RawCellValue: raw})
		if err != nil {
			firstErr = err
			return
		}
		out = append(out, strings.TrimSpace(v))
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// ReadValues returns the stored numeric values of r, ignoring number
// formats. Cells that are empty or not numeric become NaN so the sample
// keeps its position.
func ReadValues(f *excelize.File, r models.CellRange) ([]float64, error) {
	raw, err := readCells(f, r, true)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(raw))
	for i, s := range raw {
		out[i] = toFloat(parseValue(s))
	}
	return out, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		return math.NaN()
	}
}
