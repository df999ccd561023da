package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/models"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/output"
	"github.com/ukaji3/chartgeom-go/pkg/chartgeom/render"
)

func layoutCmd() *cobra.Command {
	var (
		outputPath string
		chartsDir  string
		pretty     bool
	)
	cmd := &cobra.Command{
		Use:   "layout [input]",
		Short: "Write the chart layouts of a workbook or series file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := loadBook(args[0])
			if err != nil {
				return err
			}

			jsonData, err := output.ToJSON(book, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			} else if chartsDir == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			}

			if chartsDir != "" {
				if err := output.WriteChartFiles(book, chartsDir, pretty); err != nil {
					return fmt.Errorf("failed to write chart files: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&chartsDir, "charts-dir", "", "Directory for per-chart output files")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func renderCmd() *cobra.Command {
	var (
		outDir string
		format string
		axes   bool
	)
	cmd := &cobra.Command{
		Use:   "render [input]",
		Short: "Draw every chart of a workbook or series file as an image",
		Long: `Draws each chart layout into --out-dir. PNG output is drawn straight from
the computed geometry. SVG output and --axes draw line charts with axes and a
legend; other chart kinds are skipped for those.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			book, err := loadBook(args[0])
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}

			names := output.NewFileNamer()
			written := 0
			for _, chart := range book.Charts {
				var buf bytes.Buffer
				if f == render.FormatPNG && !axes {
					err = render.PNG(chart, &buf)
				} else {
					err = render.LineChart(chart, f, &buf)
				}
				if errors.Is(err, render.ErrNotLineLayout) || errors.Is(err, render.ErrTooFewPoints) {
					logger.Info("skipping chart",
						zap.String("chart", chart.Name),
						zap.String("kind", string(chart.Kind)),
						zap.Error(err))
					continue
				}
				if err != nil {
					return fmt.Errorf("chart %q: %w", chart.Name, err)
				}

				path := filepath.Join(outDir, names.Name(chart, "."+string(f)))
				if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				logger.Debug("rendered chart", zap.String("chart", chart.Name), zap.String("path", path))
				written++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d chart(s) written to %s\n", written, outDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "Directory for rendered images")
	cmd.Flags().StringVar(&format, "format", "png", "Image format: png, svg")
	cmd.Flags().BoolVar(&axes, "axes", false, "Draw line charts with axes and legend")
	return cmd
}

func selectCmd() *cobra.Command {
	var (
		chartName string
		pointerX  float64
		pretty    bool
	)
	cmd := &cobra.Command{
		Use:   "select [input]",
		Short: "Resolve a pointer x position to the category under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := loadBook(args[0])
			if err != nil {
				return err
			}
			chart, err := findChart(book, chartName)
			if err != nil {
				return err
			}

			delay, err := cfg.ClearDelay()
			if err != nil {
				return err
			}
			result := selection{Chart: chart.Name, X: pointerX, ClearAfterMS: delay.Milliseconds()}
			if slot, ok := chart.Select(pointerX); ok {
				result.Slot = &slot
				result.Values = chart.ValuesAt(slot.Index)
			}

			jsonData, err := output.ToJSON(result, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}
	cmd.Flags().StringVar(&chartName, "chart", "", "Chart name (required when the input has several charts)")
	cmd.Flags().Float64Var(&pointerX, "x", 0, "Pointer x position in canvas pixels")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func initConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the current settings to a YAML config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Save(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", args[0])
			return nil
		},
	}
}

// selection is the result of the select command.
type selection struct {
	Chart        string             `json:"chart"`
	X            float64            `json:"x"`
	Slot         *models.Slot       `json:"slot,omitempty"`
	Values       map[string]float64 `json:"values,omitempty"`
	ClearAfterMS int64              `json:"clear_after_ms"`
}
