package parser

import (
	"archive/zip"
	"encoding/xml"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// chartInfo holds chart frame metadata from drawing.xml.
type chartInfo struct {
	name      string
	chartPath string
	width     int
	height    int
}

// ExtractCharts lists the charts embedded in an xlsx file, sheet by sheet.
// Charts whose XML cannot be read are skipped.
func ExtractCharts(xlsxPath string) ([]models.Chart, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheetChartMap := getSheetChartMap(&r.Reader)

	sheets := make([]string, 0, len(sheetChartMap))
	for name := range sheetChartMap {
		sheets = append(sheets, name)
	}
	sort.Strings(sheets)

	var result []models.Chart
	for _, sheetName := range sheets {
		for _, ci := range sheetChartMap[sheetName] {
			chartXML, err := readZipFile(&r.Reader, ci.chartPath)
			if err != nil || chartXML == nil {
				continue
			}
			chart := parseChartXML(chartXML, ci)
			chart.Sheet = sheetName
			result = append(result, chart)
		}
	}

	return result, nil
}

// getSheetChartMap returns a mapping of sheet names to their chart info.
func getSheetChartMap(r *zip.Reader) map[string][]chartInfo {
	result := make(map[string][]chartInfo)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result
	}
	sheetsInfo := parseWorkbookSheets(workbookXML)
	if len(sheetsInfo) == 0 {
		return result
	}

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return result
	}
	sheetFiles := parseWorkbookRels(wbRelsXML, sheetsInfo)

	for sheetName, sheetPath := range sheetFiles {
		sheetRelsXML, err := readZipFile(r, relsPathFor(sheetPath))
		if err != nil || sheetRelsXML == nil {
			continue
		}

		drawingPath := findDrawingRelationship(sheetRelsXML)
		if drawingPath == "" {
			continue
		}

		infos := getChartInfosFromDrawing(r, resolveRelativePath(drawingPath, "xl/worksheets"))
		if len(infos) > 0 {
			result[sheetName] = infos
		}
	}

	return result
}

// getChartInfosFromDrawing extracts chart frames from a drawing part in
// document order.
func getChartInfosFromDrawing(r *zip.Reader, drawingPath string) []chartInfo {
	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return nil
	}
	frames := parseDrawingForCharts(drawingXML)
	if len(frames) == 0 {
		return nil
	}

	relsXML, err := readZipFile(r, relsPathFor(drawingPath))
	if err != nil || relsXML == nil {
		return nil
	}
	chartPaths := make(map[string]string)
	forEachRelationship(relsXML, func(id, relType, target string) {
		if strings.HasSuffix(strings.ToLower(relType), "/chart") {
			chartPaths[id] = target
		}
	})

	var result []chartInfo
	for _, fr := range frames {
		if chartPath, ok := chartPaths[fr.rID]; ok {
			fr.info.chartPath = resolveRelativePath(chartPath, "xl/drawings")
			result = append(result, fr.info)
		}
	}
	return result
}

// chartFrame links a drawing graphicFrame to its chart relationship.
type chartFrame struct {
	rID  string
	info chartInfo
}

// parseDrawingForCharts finds the chart graphicFrames of a drawing.
func parseDrawingForCharts(data []byte) []chartFrame {
	var result []chartFrame
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "graphicFrame" {
			if fr := parseGraphicFrame(decoder); fr.rID != "" {
				result = append(result, fr)
			}
		}
	}

	return result
}

// parseGraphicFrame parses graphicFrame content.
func parseGraphicFrame(decoder *xml.Decoder) chartFrame {
	var fr chartFrame
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "cNvPr":
				fr.info.name = attr(t, "name")
			case "xfrm":
				fr.info.width, fr.info.height = parseXfrm(decoder)
				depth--
			case "chart":
				fr.rID = attr(t, "id")
			}
		case xml.EndElement:
			depth--
		}
	}

	return fr
}

// parseChartXML parses chart XML content.
func parseChartXML(data []byte, ci chartInfo) models.Chart {
	chart := models.Chart{Name: ci.name, W: ci.width, H: ci.height}
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, &chart)
		}
	}

	if groups := chart.Groups(); len(groups) > 0 {
		chart.ChartType = groups[0]
	} else {
		chart.ChartType = "unknown"
	}
	return chart
}

// parseChartElement parses the c:chart element.
func parseChartElement(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				chart.Title = parseChartTitle(decoder)
				depth--
			case "plotArea":
				parsePlotArea(decoder, chart)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartTitle concatenates the text runs of a title element.
func parseChartTitle(decoder *xml.Decoder) string {
	var parts []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					parts = append(parts, txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(strings.Join(parts, ""))
}

// parsePlotArea collects the series of every plot group and the first value
// axis. Combo charts carry several groups (e.g., barChart and lineChart).
func parsePlotArea(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1
	sawValAx := false

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if group, ok := ChartTypeMap[t.Name.Local]; ok {
				chart.Series = append(chart.Series, parseChartSeries(decoder, group)...)
				depth--
			} else if t.Name.Local == "valAx" {
				if sawValAx {
					skipElement(decoder)
				} else {
					chart.YAxisTitle, chart.YAxisRange = parseValueAxis(decoder)
					sawValAx = true
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartSeries parses series elements within a plot group.
func parseChartSeries(decoder *xml.Decoder, group string) []models.ChartSeries {
	var series []models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ser" {
				s := parseSingleSeries(decoder)
				s.Group = group
				series = append(series, s)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return series
}

// parseSingleSeries parses a single series element.
func parseSingleSeries(decoder *xml.Decoder) models.ChartSeries {
	var s models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseSeriesName(decoder)
				depth--
			case "cat", "xVal":
				s.XRange = parseSeriesRange(decoder)
				depth--
			case "val", "yVal":
				s.YRange = parseSeriesRange(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseSeriesName parses series name from tx element.
func parseSeriesName(decoder *xml.Decoder) (name, nameRange string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					nameRange = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil {
					name = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSeriesRange parses the range reference of a cat or val element.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" && ref == "" {
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}

// parseValueAxis parses value axis element.
func parseValueAxis(decoder *xml.Decoder) (title string, axisRange []float64) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				title = parseChartTitle(decoder)
				depth--
			case "scaling":
				axisRange = parseAxisScaling(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseAxisScaling parses axis scaling element.
func parseAxisScaling(decoder *xml.Decoder) []float64 {
	var lo, hi *float64
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "min":
				if v, err := strconv.ParseFloat(attr(t, "val"), 64); err == nil {
					lo = &v
				}
			case "max":
				if v, err := strconv.ParseFloat(attr(t, "val"), 64); err == nil {
					hi = &v
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	if lo != nil && hi != nil {
		return []float64{*lo, *hi}
	}
	return nil
}
