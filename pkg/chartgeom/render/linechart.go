package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/geom"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

var (
	// ErrUnsupportedFormat indicates an unknown image format.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrNotLineLayout indicates a layout LineChart cannot draw.
	ErrNotLineLayout = errors.New("layout is not a line chart")
	// ErrTooFewPoints indicates a series too short to draw as a line.
	ErrTooFewPoints = errors.New("need at least 2 data points")
)

// ParseFormat parses an image format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// LineChart renders a line layout with axes and a legend. The value axis
// uses the layout's domain and ticks so the picture matches the geometry
// reported for the same chart.
func LineChart(l models.ChartLayout, format Format, w io.Writer) error {
	if l.Kind != models.KindLine {
		return fmt.Errorf("%w: %s", ErrNotLineLayout, l.Kind)
	}
	provider, err := rendererFor(format)
	if err != nil {
		return err
	}

	pal := PaletteFor(l.Kind)
	axis := geom.Axis{Domain: l.Domain, Span: l.Height, Margin: l.Margin, Inverted: true}

	var series []chart.Series
	for _, line := range l.Lines {
		if len(line.Points) < 2 {
			return fmt.Errorf("series %q: %w, got %d", line.Name, ErrTooFewPoints, len(line.Points))
		}
		xs := make([]float64, len(line.Points))
		ys := make([]float64, len(line.Points))
		for i, p := range line.Points {
			xs[i] = p.X
			if i < len(line.Samples) {
				ys[i] = line.Samples[i].Value
			} else {
				ys[i] = axis.Value(p.Y)
			}
		}
		series = append(series, chart.ContinuousSeries{
			Name: line.Name,
			Style: chart.Style{
				StrokeColor: toDrawing(pal.lineColor(line)),
				StrokeWidth: 2,
			},
			XValues: xs,
			YValues: ys,
		})
	}
	if len(series) == 0 {
		return fmt.Errorf("%w, got 0", ErrTooFewPoints)
	}

	yTicks := make([]chart.Tick, len(l.Ticks))
	for i, t := range l.Ticks {
		yTicks[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}
	var xTicks []chart.Tick
	for _, s := range l.Slots {
		xTicks = append(xTicks, chart.Tick{Value: s.Center, Label: s.Label})
	}

	graph := chart.Chart{
		Title:  l.Title,
		Width:  int(l.Width),
		Height: int(l.Height),
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: l.Width},
			Ticks: xTicks,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: l.Domain.Min, Max: l.Domain.Max},
			Ticks: yTicks,
		},
		Series: series,
	}
	if len(series) > 1 {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}

func rendererFor(format Format) (chart.RendererProvider, error) {
	switch format {
	case FormatPNG, "":
		return chart.PNG, nil
	case FormatSVG:
		return chart.SVG, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
