// Package output serializes chart layouts.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

// ToJSON serializes v to JSON.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName returns a file system safe name for a chart layout.
func FileName(l models.ChartLayout, ext string) string {
	name := l.Name
	if l.Sheet != "" {
		name = l.Sheet + "_" + name
	}
	name = strings.Trim(unsafeName.ReplaceAllString(name, "_"), "_")
	if name == "" {
		name = "chart"
	}
	return name + ext
}

// FileNamer hands out FileName results that are unique within one output
// directory by suffixing repeats with _2, _3, ...
type FileNamer struct {
	used map[string]bool
}

// NewFileNamer returns an empty FileNamer.
func NewFileNamer() *FileNamer {
	return &FileNamer{used: make(map[string]bool)}
}

// Name returns a file name for l that was not handed out before.
func (n *FileNamer) Name(l models.ChartLayout, ext string) string {
	name := FileName(l, ext)
	base := strings.TrimSuffix(name, ext)
	for i := 2; n.used[strings.ToLower(name)]; i++ {
		name = base + "_" + strconv.Itoa(i) + ext
	}
	n.used[strings.ToLower(name)] = true
	return name
}

// WriteChartFiles writes one JSON file per chart into dir.
func WriteChartFiles(book *models.BookLayout, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	names := NewFileNamer()
	for _, chart := range book.Charts {
		data, err := ToJSON(chart, pretty)
		if err != nil {
			return fmt.Errorf("chart %q: %w", chart.Name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, names.Name(chart, ".json")), data, 0644); err != nil {
			return err
		}
	}
	return nil
}
