// Package render draws computed chart layouts as images.
package render

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

// Palette holds the colors used to draw one chart kind.
type Palette struct {
	Background color.RGBA
	Grid       color.RGBA
	Text       color.RGBA
	Bar        color.RGBA
	Line       color.RGBA
	Overlay    color.RGBA
	Fill       color.RGBA
}

var basePalette = Palette{
	Background: color.RGBA{255, 255, 255, 255},
	Grid:       color.RGBA{226, 232, 240, 255},
	Text:       color.RGBA{71, 85, 105, 255},
	Bar:        color.RGBA{59, 130, 246, 255},
	Line:       color.RGBA{37, 99, 235, 255},
	Overlay:    color.RGBA{234, 88, 12, 255},
	Fill:       color.RGBA{37, 99, 235, 60},
}

// palettes is keyed by layout kind; unknown kinds use basePalette.
var palettes = map[models.Kind]Palette{
	models.KindBar:     basePalette,
	models.KindBarLine: basePalette,
	models.KindLine: {
		Background: basePalette.Background,
		Grid:       basePalette.Grid,
		Text:       basePalette.Text,
		Bar:        basePalette.Bar,
		Line:       color.RGBA{22, 163, 74, 255},
		Overlay:    basePalette.Overlay,
		Fill:       color.RGBA{22, 163, 74, 40},
	},
	models.KindRadar: {
		Background: basePalette.Background,
		Grid:       color.RGBA{203, 213, 225, 255},
		Text:       basePalette.Text,
		Bar:        basePalette.Bar,
		Line:       color.RGBA{124, 58, 237, 255},
		Overlay:    basePalette.Overlay,
		Fill:       color.RGBA{124, 58, 237, 70},
	},
}

// PaletteFor returns the palette for kind.
func PaletteFor(kind models.Kind) Palette {
	if p, ok := palettes[kind]; ok {
		return p
	}
	return basePalette
}

// lineColor returns the stroke color of line.
func (p Palette) lineColor(line models.Polyline) color.RGBA {
	if line.Overlay {
		return p.Overlay
	}
	return p.Line
}

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
