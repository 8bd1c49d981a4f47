// Command depthplot computes the recursion-depth curves and writes them as
// an interactive line chart embedded in a static HTML page.
//
// Bare invocation needs no arguments:
//
//	depthplot
//
// writes depth_plot.html into the working directory, overwriting any
// previous run. Flags adjust the output path, add a static raster fallback,
// or include the analytic worst-case curves.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/depthviz/depth"
	"github.com/katalvlaran/depthviz/depthchart"
)

const defaultOut = "depth_plot.html"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "depthplot:", err)
		os.Exit(1)
	}
}

// rootOptions holds the flag values of the root command.
type rootOptions struct {
	out   string
	png   string
	worst bool
}

func newRootCmd() *cobra.Command {
	var o rootOptions

	cmd := &cobra.Command{
		Use:   "depthplot",
		Short: "Render recursion-depth curves as an embeddable interactive chart",
		Long: strings.TrimSpace(`
depthplot evaluates four recursion-depth formulas over 2..255 alternatives
(complete binary tree, linear recursion, 4-step and 8-step grouping) and
renders them as one interactive line chart, written as embeddable HTML.
`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(o)
		},
	}

	cmd.Flags().StringVarP(&o.out, "out", "o", defaultOut, "output HTML path")
	cmd.Flags().StringVar(&o.png, "png", "", "also write a static raster image to this path")
	cmd.Flags().BoolVar(&o.worst, "worst", false, "include the analytic worst-case curves")

	return cmd
}

// run is the whole pipeline: compute curves, build the chart, write files.
// It logs progress to stderr and returns the first failure, which main
// turns into a non-zero exit status.
func run(o rootOptions) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	curves := depth.Curves()
	if o.worst {
		curves = append(curves, depth.WorstCurves()...)
	}

	chartOpts := depthchart.DefaultOptions()
	line, err := depthchart.NewLine(curves, chartOpts)
	if err != nil {
		log.Error("building chart failed", "error", err)

		return fmt.Errorf("build chart: %w", err)
	}

	if err = depthchart.WriteHTML(o.out, line); err != nil {
		log.Error("writing chart failed", "path", o.out, "error", err)

		return fmt.Errorf("write chart: %w", err)
	}
	log.Info("wrote interactive chart", "path", o.out, "curves", len(curves))

	if o.png != "" {
		if err = depthchart.WritePNG(o.png, curves, chartOpts); err != nil {
			log.Error("writing raster fallback failed", "path", o.png, "error", err)

			return fmt.Errorf("write raster: %w", err)
		}
		log.Info("wrote raster fallback", "path", o.png)
	}

	return nil
}
