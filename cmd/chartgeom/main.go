// Package main provides the CLI entry point for chartgeom.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/config"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
)

var (
	// Global flags
	configPath string
	verbose    bool
	noTables   bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chartgeom",
	Short: "Compute chart geometry from Excel charts and series files",
	Long: `chartgeom computes the pixel geometry of bar, line, bar+line and radar
charts (domains, bars, polylines, radar polygons, selectable slots) from the
charts embedded in xlsx workbooks or from YAML/JSON series files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zc := zap.NewProductionConfig()
		if level, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
			zc.Level = zap.NewAtomicLevelAt(level)
		}
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noTables, "no-tables", false, "Do not lay out data tables of sheets without charts")

	rootCmd.AddCommand(layoutCmd(), renderCmd(), selectCmd(), initConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadBook lays out every chart of the input file with the loaded settings.
func loadBook(inputPath string) (*models.BookLayout, error) {
	opts := chartgeom.DefaultOptions()
	opts.Params = cfg.Params()
	opts.Tables = !noTables
	opts.Logger = logger

	book, err := chartgeom.LayoutFile(inputPath, opts)
	if err != nil {
		return nil, fmt.Errorf("layout failed: %w", err)
	}
	return book, nil
}

// findChart returns the chart called name, or the only chart when name is
// empty.
func findChart(book *models.BookLayout, name string) (models.ChartLayout, error) {
	if name == "" {
		if len(book.Charts) != 1 {
			return models.ChartLayout{}, fmt.Errorf("%d charts found, pick one with --chart", len(book.Charts))
		}
		return book.Charts[0], nil
	}
	for _, c := range book.Charts {
		if c.Name == name {
			return c, nil
		}
	}
	return models.ChartLayout{}, fmt.Errorf("chart %q not found", name)
}
