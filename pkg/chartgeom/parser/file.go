package parser

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"gopkg.in/yaml.v3"
)

// LoadSeriesFile reads chart specs from a YAML or JSON file. The document is
// either {charts: [...]} or a single chart.
func LoadSeriesFile(path string) ([]models.ChartSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSeriesFile(data)
}

// ParseSeriesFile decodes a series document. See LoadSeriesFile.
func ParseSeriesFile(data []byte) ([]models.ChartSpec, error) {
	var doc models.SeriesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse series file: %w", err)
	}
	if len(doc.Charts) == 0 {
		var single models.ChartSpec
		if err := yaml.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("failed to parse series file: %w", err)
		}
		if len(single.Series) > 0 {
			doc.Charts = append(doc.Charts, single)
		}
	}

	for i := range doc.Charts {
		c := &doc.Charts[i]
		if c.Name == "" {
			c.Name = "chart-" + strconv.Itoa(i+1)
		}
		if c.Kind == "" {
			c.Kind = models.KindLine
		}
		if c.YRange != nil && len(c.YRange) != 2 {
			return nil, fmt.Errorf("chart %q: y_range needs exactly [min, max]", c.Name)
		}
	}
	return doc.Charts, nil
}
