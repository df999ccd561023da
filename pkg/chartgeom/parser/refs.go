package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"github.com/xuri/excelize/v2"
)

// ParseRangeRef parses a series reference.
// Format: 'Sheet Name'!$A$1:$A$10, SheetName!$B$2 or $B$2:$B$8 (defaultSheet).
func ParseRangeRef(ref, defaultSheet string) (models.CellRange, error) {
	ref = strings.TrimSpace(ref)
	ref = strings.TrimPrefix(ref, "=")
	ref = strings.Trim(ref, "()")
	if ref == "" {
		return models.CellRange{}, fmt.Errorf("empty range reference")
	}
	if strings.Contains(ref, ",") {
		return models.CellRange{}, fmt.Errorf("multi-area reference %q is not supported", ref)
	}

	sheet := defaultSheet
	rangeStr := ref
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		sheet = strings.ReplaceAll(sheet, "''", "'")
		rangeStr = ref[idx+1:]
	}

	area, err := parseRangeToArea(rangeStr)
	if err != nil {
		return models.CellRange{}, fmt.Errorf("invalid range reference %q: %w", ref, err)
	}
	area.Sheet = sheet
	return area, nil
}

// parseRangeToArea parses a range string like $A$1:$D$10 or $B$3.
func parseRangeToArea(rangeStr string) (models.CellRange, error) {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.CellRange{}, fmt.Errorf("expected start:end")
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, err
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}
