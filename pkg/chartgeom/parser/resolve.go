package parser

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedChart indicates a workbook chart type with no layout.
var ErrUnsupportedChart = errors.New("unsupported chart type")

// groupKinds maps plot group types to the layout they contribute to.
var groupKinds = map[string]models.Kind{
	"Bar":       models.KindBar,
	"3DBar":     models.KindBar,
	"Line":      models.KindLine,
	"3DLine":    models.KindLine,
	"Area":      models.KindLine,
	"3DArea":    models.KindLine,
	"XYScatter": models.KindLine,
	"Stock":     models.KindLine,
	"Radar":     models.KindRadar,
}

// KindForChart picks the layout kind for a workbook chart from its plot
// groups. A bar group combined with a line group becomes a bar_line chart.
func KindForChart(chart models.Chart) (models.Kind, error) {
	var hasBar, hasLine, hasRadar bool
	for _, g := range chart.Groups() {
		switch groupKinds[g] {
		case models.KindBar:
			hasBar = true
		case models.KindLine:
			hasLine = true
		case models.KindRadar:
			hasRadar = true
		default:
			return "", fmt.Errorf("%w: %s", ErrUnsupportedChart, g)
		}
	}
	switch {
	case hasRadar:
		return models.KindRadar, nil
	case hasBar && hasLine:
		return models.KindBarLine, nil
	case hasBar:
		return models.KindBar, nil
	case hasLine:
		return models.KindLine, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedChart, chart.ChartType)
	}
}

// ResolveChart reads the data behind every series reference of chart and
// returns a chart spec ready for layout. Bar series come first so they become the
// primary series of combo charts.
func ResolveChart(f *excelize.File, chart models.Chart) (models.ChartSpec, error) {
	kind, err := KindForChart(chart)
	if err != nil {
		return models.ChartSpec{}, err
	}

	ordered := make([]models.ChartSeries, len(chart.Series))
	copy(ordered, chart.Series)
	sort.SliceStable(ordered, func(i, j int) bool {
		return groupKinds[ordered[i].Group] == models.KindBar && groupKinds[ordered[j].Group] != models.KindBar
	})

	spec := models.ChartSpec{
		Name:   chart.Name,
		Kind:   kind,
		Title:  chart.Title,
		Sheet:  chart.Sheet,
		Width:  chart.W,
		Height: chart.H,
		YRange: chart.YAxisRange,
	}
	for i, cs := range ordered {
		s, err := resolveSeries(f, chart.Sheet, cs)
		if err != nil {
			return models.ChartSpec{}, fmt.Errorf("series %d: %w", i+1, err)
		}
		if s.Name == "" {
			s.Name = "Series " + strconv.Itoa(i+1)
		}
		spec.Series = append(spec.Series, s)
	}
	return spec, nil
}

func resolveSeries(f *excelize.File, sheet string, cs models.ChartSeries) (models.Series, error) {
	valRange, err := ParseRangeRef(cs.YRange, sheet)
	if err != nil {
		return models.Series{}, err
	}
	values, err := ReadValues(f, valRange)
	if err != nil {
		return models.Series{}, err
	}

	var labels []string
	if cs.XRange != "" {
		catRange, err := ParseRangeRef(cs.XRange, sheet)
		if err != nil {
			return models.Series{}, err
		}
		if labels, err = ReadRange(f, catRange); err != nil {
			return models.Series{}, err
		}
	}

	s := models.Series{Name: cs.Name}
	if s.Name == "" && cs.NameRange != "" {
		if nameRange, err := ParseRangeRef(cs.NameRange, sheet); err == nil {
			if raw, err := ReadRange(f, nameRange); err == nil && len(raw) > 0 {
				s.Name = raw[0]
			}
		}
	}
	for i, v := range values {
		label := strconv.Itoa(i + 1)
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		s.Points = append(s.Points, models.DataPoint{Label: label, Value: v})
	}
	return s, nil
}
