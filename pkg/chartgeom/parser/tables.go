package parser

import (
	"fmt"
	"math"
	"strings"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for series table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
	// MinNumericRatio is the share of numeric body cells a column needs to
	// count as a series.
	MinNumericRatio float64
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.5,
		MinNonemptyCells: 4,
		MinNumericRatio:  0.5,
	}
}

// DetectTable finds the bounding box of the data on a sheet and returns it
// when it is dense enough to be a series table.
func DetectTable(f *excelize.File, sheetName string, params TableDetectionParams) (models.CellRange, bool, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.CellRange{}, false, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.CellRange{}, false, nil
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return models.CellRange{}, false, nil
	}
	if float64(nonEmptyCells)/float64(totalCells) < params.DensityMin {
		return models.CellRange{}, false, nil
	}

	return models.CellRange{
		Sheet: sheetName,
		R1:    minRow + 1,
		C1:    minCol + 1,
		R2:    maxRow + 1,
		C2:    maxCol + 1,
	}, true, nil
}

// SeriesFromTable reads a series table: the first row holds series names,
// the first column holds category labels and every mostly numeric column
// after it becomes a series.
func SeriesFromTable(f *excelize.File, area models.CellRange, params TableDetectionParams) ([]models.Series, error) {
	if area.R2-area.R1 < 1 || area.C2-area.C1 < 1 {
		return nil, fmt.Errorf("table %s needs a header row and a label column", formatRange(area))
	}

	labels, err := ReadRange(f, models.CellRange{Sheet: area.Sheet, R1: area.R1 + 1, C1: area.C1, R2: area.R2, C2: area.C1})
	if err != nil {
		return nil, err
	}

	var result []models.Series
	for col := area.C1 + 1; col <= area.C2; col++ {
		header, err := ReadRange(f, models.CellRange{Sheet: area.Sheet, R1: area.R1, C1: col, R2: area.R1, C2: col})
		if err != nil {
			return nil, err
		}
		values, err := ReadValues(f, models.CellRange{Sheet: area.Sheet, R1: area.R1 + 1, C1: col, R2: area.R2, C2: col})
		if err != nil {
			return nil, err
		}

		numeric := 0
		for _, v := range values {
			if !math.IsNaN(v) {
				numeric++
			}
		}
		if len(values) == 0 || float64(numeric)/float64(len(values)) < params.MinNumericRatio {
			continue
		}

		name := header[0]
		if name == "" {
			name, _ = excelize.ColumnNumberToName(col)
		}
		s := models.Series{Name: name}
		for i, v := range values {
			s.Points = append(s.Points, models.DataPoint{Label: labels[i], Value: v})
		}
		result = append(result, s)
	}

	return result, nil
}

func formatRange(r models.CellRange) string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return fmt.Sprintf("%s!%s:%s", r.Sheet, start, end)
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if strings.TrimSpace(row[colIdx]) != "" {
				count++
			}
		}
	}
	return count
}
