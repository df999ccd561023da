package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/geom"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

// ErrEmptyCanvas indicates a layout without a drawable canvas.
var ErrEmptyCanvas = errors.New("layout has an empty canvas")

// PNG draws l as a PNG image. Everything is drawn at the pixel positions
// already stored in the layout; nothing is rescaled.
func PNG(l models.ChartLayout, w io.Writer) error {
	width, height := int(math.Round(l.Width)), int(math.Round(l.Height))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyCanvas, width, height)
	}
	pal := PaletteFor(l.Kind)

	dc := gg.NewContext(width, height)
	dc.SetColor(pal.Background)
	dc.Clear()

	if l.Radar != nil {
		drawRadar(dc, *l.Radar, pal)
	} else {
		drawTicks(dc, l, pal)
		drawBars(dc, l.Bars, pal)
		for _, line := range l.Lines {
			drawPolyline(dc, line, pal)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func drawTicks(dc *gg.Context, l models.ChartLayout, pal Palette) {
	dc.SetLineWidth(0.5)
	for _, t := range l.Ticks {
		dc.SetColor(pal.Grid)
		dc.DrawLine(0, t.Y, l.Width, t.Y)
		dc.Stroke()
		dc.SetColor(pal.Text)
		dc.DrawStringAnchored(t.Label, 2, t.Y-2, 0, 0)
	}
}

// minLabelWidth is the narrowest bar that still gets a value label.
const minLabelWidth = 18

// dotRadius is the radius of line sample markers.
const dotRadius = 2.5

func drawBars(dc *gg.Context, bars []models.Bar, pal Palette) {
	dc.SetColor(pal.Bar)
	for _, b := range bars {
		dc.DrawRectangle(b.X, b.Y, b.W, b.H)
		dc.Fill()
	}

	dc.SetColor(pal.Text)
	for _, b := range bars {
		if b.W < minLabelWidth {
			continue
		}
		dc.DrawStringAnchored(geom.FormatTick(b.Value), b.X+b.W/2, b.Y-3, 0.5, 0)
	}
}

func drawPolyline(dc *gg.Context, line models.Polyline, pal Palette) {
	col := pal.lineColor(line)
	dc.SetColor(col)
	dc.SetLineWidth(2)
	tracePath(dc, line.Points)
	dc.Stroke()

	// Markers closer than a marker width would merge into a blob.
	var last geom.Point
	for i, pt := range line.Points {
		if i > 0 && pt.Dist(last) < 2*dotRadius {
			continue
		}
		dc.DrawCircle(pt.X, pt.Y, dotRadius)
		dc.Fill()
		last = pt
	}
}

func drawRadar(dc *gg.Context, r models.Radar, pal Palette) {
	dc.SetLineWidth(1)
	dc.SetColor(pal.Grid)
	for _, ring := range r.Rings {
		tracePath(dc, ring)
		dc.Stroke()
	}
	for _, a := range r.Axes {
		dc.DrawLine(r.Center.X, r.Center.Y, a.End.X, a.End.Y)
		dc.Stroke()
	}

	if len(r.Polygon) > 0 {
		tracePath(dc, r.Polygon)
		dc.SetColor(pal.Fill)
		dc.FillPreserve()
		dc.SetColor(pal.Line)
		dc.SetLineWidth(2)
		dc.Stroke()
	}

	dc.SetColor(pal.Text)
	for _, a := range r.Axes {
		ax, ay := labelAnchor(a.Text, r.Center)
		dc.DrawStringAnchored(a.Label, a.Text.X, a.Text.Y, ax, ay)
	}
}

func tracePath(dc *gg.Context, pts []geom.Point) {
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
			continue
		}
		dc.LineTo(p.X, p.Y)
	}
}

// labelAnchor aligns a label so it grows away from the center.
func labelAnchor(p, center geom.Point) (float64, float64) {
	ax, ay := 0.5, 0.5
	switch {
	case p.X < center.X-1:
		ax = 1
	case p.X > center.X+1:
		ax = 0
	}
	switch {
	case p.Y < center.Y-1:
		ay = 1
	case p.Y > center.Y+1:
		ay = 0
	}
	return ax, ay
}
