// Package chartgeom lays out charts from workbooks and series files.
package chartgeom

import (
	"go.uber.org/zap"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/layout"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/parser"
)

// Options configures layout behavior.
type Options struct {
	// Params tunes the layout composers.
	Params layout.Params
	// Tables enables laying out detected data tables on sheets that carry
	// no chart.
	Tables bool
	// TableParams tunes table detection.
	TableParams parser.TableDetectionParams
	// Logger receives per-chart warnings. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default layout options.
func DefaultOptions() Options {
	return Options{
		Params:      layout.DefaultParams(),
		Tables:      true,
		TableParams: parser.DefaultTableParams(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
