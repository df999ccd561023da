package parser

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"github.com/xuri/excelize/v2"
)

const comboChartXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <c:chart>
    <c:title><c:tx><c:rich><a:p><a:r><a:t>Growth</a:t></a:r><a:r><a:t> 2024</a:t></a:r></a:p></c:rich></c:tx></c:title>
    <c:plotArea>
      <c:barChart>
        <c:barDir val="col"/>
        <c:ser>
          <c:tx><c:strRef><c:f>Data!$B$1</c:f><c:strCache><c:pt idx="0"><c:v>Revenue</c:v></c:pt></c:strCache></c:strRef></c:tx>
          <c:cat><c:strRef><c:f>Data!$A$2:$A$5</c:f></c:strRef></c:cat>
          <c:val><c:numRef><c:f>Data!$B$2:$B$5</c:f></c:numRef></c:val>
        </c:ser>
      </c:barChart>
      <c:lineChart>
        <c:ser>
          <c:tx><c:strRef><c:f>Data!$C$1</c:f></c:strRef></c:tx>
          <c:cat><c:strRef><c:f>Data!$A$2:$A$5</c:f></c:strRef></c:cat>
          <c:val><c:numRef><c:f>Data!$C$2:$C$5</c:f></c:numRef></c:val>
        </c:ser>
      </c:lineChart>
      <c:valAx>
        <c:scaling><c:orientation val="minMax"/><c:max val="500"/><c:min val="0"/></c:scaling>
        <c:title><c:tx><c:rich><a:p><a:r><a:t>USD m</a:t></a:r></a:p></c:rich></c:tx></c:title>
      </c:valAx>
      <c:valAx>
        <c:scaling><c:max val="40"/><c:min val="-10"/></c:scaling>
      </c:valAx>
    </c:plotArea>
  </c:chart>
</c:chartSpace>`

func TestParseChartXML(t *testing.T) {
	chart := parseChartXML([]byte(comboChartXML), chartInfo{name: "Chart 1", width: 480, height: 288})

	if chart.Title != "Growth 2024" {
		t.Errorf("Expected title 'Growth 2024', got %q", chart.Title)
	}
	if chart.ChartType != "Bar" {
		t.Errorf("Expected chart type Bar, got %q", chart.ChartType)
	}
	if chart.W != 480 || chart.H != 288 {
		t.Errorf("Expected 480x288, got %dx%d", chart.W, chart.H)
	}
	if len(chart.Series) != 2 {
		t.Fatalf("Expected 2 series, got %d", len(chart.Series))
	}
	bar, line := chart.Series[0], chart.Series[1]
	if bar.Group != "Bar" || bar.Name != "Revenue" || bar.YRange != "Data!$B$2:$B$5" || bar.XRange != "Data!$A$2:$A$5" {
		t.Errorf("Unexpected bar series %+v", bar)
	}
	if line.Group != "Line" || line.NameRange != "Data!$C$1" {
		t.Errorf("Unexpected line series %+v", line)
	}
	if chart.YAxisTitle != "USD m" {
		t.Errorf("Expected axis title 'USD m', got %q", chart.YAxisTitle)
	}
	if len(chart.YAxisRange) != 2 || chart.YAxisRange[0] != 0 || chart.YAxisRange[1] != 500 {
		t.Errorf("Expected first value axis range [0 500], got %v", chart.YAxisRange)
	}
}

func TestKindForChart(t *testing.T) {
	tests := []struct {
		groups   []string
		expected models.Kind
	}{
		{[]string{"Bar"}, models.KindBar},
		{[]string{"Line"}, models.KindLine},
		{[]string{"Area", "Line"}, models.KindLine},
		{[]string{"Bar", "Line"}, models.KindBarLine},
		{[]string{"Radar"}, models.KindRadar},
	}

	for _, tt := range tests {
		var chart models.Chart
		for _, g := range tt.groups {
			chart.Series = append(chart.Series, models.ChartSeries{Group: g})
		}
		kind, err := KindForChart(chart)
		if err != nil {
			t.Errorf("KindForChart(%v) failed: %v", tt.groups, err)
			continue
		}
		if kind != tt.expected {
			t.Errorf("KindForChart(%v) = %q, expected %q", tt.groups, kind, tt.expected)
		}
	}

	_, err := KindForChart(models.Chart{Series: []models.ChartSeries{{Group: "Pie"}}})
	if !errors.Is(err, ErrUnsupportedChart) {
		t.Errorf("Expected ErrUnsupportedChart for Pie, got %v", err)
	}
	_, err = KindForChart(models.Chart{ChartType: "unknown"})
	if !errors.Is(err, ErrUnsupportedChart) {
		t.Errorf("Expected ErrUnsupportedChart for empty chart, got %v", err)
	}
}

// writeChartBook creates a workbook with a combo chart and a radar chart.
func writeChartBook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	rows := [][]interface{}{
		{"Year", "Revenue", "YoY %"},
		{"2021", 120, 8.5},
		{"2022", 150, 25},
		{"2023", 140, -6.7},
		{"2024", 190, 35.7},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	moat := [][]interface{}{
		{"Brand", 4}, {"Switching", 3}, {"Network", 5}, {"Cost", 2}, {"Scale", 4},
	}
	for i, row := range moat {
		cell, _ := excelize.CoordinatesToCellName(6, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	bar := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       "Sheet1!$B$1",
			Categories: "Sheet1!$A$2:$A$5",
			Values:     "Sheet1!$B$2:$B$5",
		}},
		Title: []excelize.RichTextRun{{Text: "Growth"}},
	}
	line := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       "Sheet1!$C$1",
			Categories: "Sheet1!$A$2:$A$5",
			Values:     "Sheet1!$C$2:$C$5",
		}},
	}
	if err := f.AddChart(sheet, "I1", bar, line); err != nil {
		t.Fatalf("AddChart combo failed: %v", err)
	}
	radar := &excelize.Chart{
		Type: excelize.Radar,
		Series: []excelize.ChartSeries{{
			Name:       "Moat",
			Categories: "Sheet1!$F$1:$F$5",
			Values:     "Sheet1!$G$1:$G$5",
		}},
		Title: []excelize.RichTextRun{{Text: "Moat"}},
	}
	if err := f.AddChart(sheet, "I20", radar); err != nil {
		t.Fatalf("AddChart radar failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "charts.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestExtractAndResolveCharts(t *testing.T) {
	path := writeChartBook(t)

	charts, err := ExtractCharts(path)
	if err != nil {
		t.Fatalf("ExtractCharts failed: %v", err)
	}
	if len(charts) != 2 {
		t.Fatalf("Expected 2 charts, got %d", len(charts))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f.Close()

	specs := make(map[models.Kind]models.ChartSpec)
	for _, c := range charts {
		if c.Sheet != "Sheet1" {
			t.Errorf("Expected sheet Sheet1, got %q", c.Sheet)
		}
		spec, err := ResolveChart(f, c)
		if err != nil {
			t.Fatalf("ResolveChart(%s) failed: %v", c.Name, err)
		}
		specs[spec.Kind] = spec
	}

	combo, ok := specs[models.KindBarLine]
	if !ok {
		t.Fatalf("Expected a bar_line chart, got %v", specs)
	}
	if len(combo.Series) != 2 {
		t.Fatalf("Expected 2 combo series, got %d", len(combo.Series))
	}
	if combo.Series[0].Name != "Revenue" || combo.Series[1].Name != "YoY %" {
		t.Errorf("Unexpected series names %q, %q", combo.Series[0].Name, combo.Series[1].Name)
	}
	if got := combo.Series[0].Values(); len(got) != 4 || got[3] != 190 {
		t.Errorf("Unexpected revenue values %v", got)
	}
	if got := combo.Series[1].Points[2]; got.Label != "2023" || got.Value != -6.7 {
		t.Errorf("Unexpected YoY point %+v", got)
	}

	radar, ok := specs[models.KindRadar]
	if !ok {
		t.Fatalf("Expected a radar chart, got %v", specs)
	}
	if labels := radar.Series[0].Labels(); len(labels) != 5 || labels[2] != "Network" {
		t.Errorf("Unexpected radar labels %v", labels)
	}
}
