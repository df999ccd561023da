package chartgeom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/layout"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/parser"
)

// LayoutFile lays out every chart of path. Files ending in .yaml, .yml or
// .json are read as series files; anything else is opened as a workbook.
func LayoutFile(path string, opts Options) (*models.BookLayout, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		specs, err := parser.LoadSeriesFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		book, err := LayoutSpecs(specs, opts)
		if book != nil {
			book.Source = filepath.Base(path)
		}
		return book, err
	default:
		return LayoutWorkbook(path, opts)
	}
}

// LayoutWorkbook lays out the charts embedded in an xlsx workbook. When the
// workbook has no chart and opts.Tables is set, each sheet's detected data
// table is laid out as a line chart instead. Charts that fail are logged and
// skipped.
func LayoutWorkbook(path string, opts Options) (*models.BookLayout, error) {
	log := opts.logger().With(zap.String("source", path))

	f, err := excelize.OpenFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	charts, err := parser.ExtractCharts(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	var specs []models.ChartSpec
	for _, chart := range charts {
		spec, err := parser.ResolveChart(f, chart)
		if err != nil {
			log.Warn("skipping chart", zap.Error(NewLayoutError(chart.Name, "resolve", err)))
			continue
		}
		specs = append(specs, spec)
	}

	if len(charts) == 0 && opts.Tables {
		specs = tableSpecs(f, opts, log)
	}

	book, err := layoutSpecs(specs, opts, log)
	if book != nil {
		book.Source = filepath.Base(path)
	}
	return book, err
}

// LayoutSpecs lays out already resolved chart specs.
func LayoutSpecs(specs []models.ChartSpec, opts Options) (*models.BookLayout, error) {
	return layoutSpecs(specs, opts, opts.logger())
}

func layoutSpecs(specs []models.ChartSpec, opts Options, log *zap.Logger) (*models.BookLayout, error) {
	book := &models.BookLayout{}
	for _, spec := range specs {
		l, err := layout.Compose(spec, opts.Params)
		if err != nil {
			log.Warn("skipping chart", zap.Error(NewLayoutError(spec.Name, "layout", err)))
			continue
		}
		log.Debug("laid out chart",
			zap.String("chart", spec.Name),
			zap.String("kind", string(spec.Kind)),
			zap.Int("series", len(spec.Series)))
		book.Charts = append(book.Charts, l)
	}
	if len(book.Charts) == 0 {
		return book, ErrNoCharts
	}
	return book, nil
}

func tableSpecs(f *excelize.File, opts Options, log *zap.Logger) []models.ChartSpec {
	var specs []models.ChartSpec
	for _, sheet := range f.GetSheetList() {
		area, ok, err := parser.DetectTable(f, sheet, opts.TableParams)
		if err != nil {
			log.Warn("skipping sheet", zap.Error(NewLayoutError(sheet, "table", err)))
			continue
		}
		if !ok {
			continue
		}
		series, err := parser.SeriesFromTable(f, area, opts.TableParams)
		if err != nil {
			log.Warn("skipping sheet", zap.Error(NewLayoutError(sheet, "table", err)))
			continue
		}
		if len(series) == 0 {
			continue
		}
		specs = append(specs, models.ChartSpec{
			Name:   sheet + " table",
			Kind:   models.KindLine,
			Sheet:  sheet,
			Series: series,
		})
	}
	return specs
}
