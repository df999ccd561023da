package chartgeom

import (
	"errors"
	"fmt"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is neither a valid xlsx
// workbook nor a series file.
var ErrInvalidFormat = errors.New("invalid input format")

// ErrNoCharts indicates the input produced no chart layout.
var ErrNoCharts = errors.New("no charts found")

// ErrUnsupportedChart indicates a workbook chart type with no layout.
var ErrUnsupportedChart = parser.ErrUnsupportedChart

// LayoutError represents an error while laying out one chart.
type LayoutError struct {
	Chart     string
	Component string // "resolve", "table", "layout"
	Err       error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout error in chart %q (%s): %v", e.Chart, e.Component, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// NewLayoutError creates a new LayoutError.
func NewLayoutError(chart, component string, err error) *LayoutError {
	return &LayoutError{
		Chart:     chart,
		Component: component,
		Err:       err,
	}
}
