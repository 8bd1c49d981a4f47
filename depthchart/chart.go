package depthchart

import (
	"fmt"
	"html/template"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/depthviz/depth"
)

// wrapperTmpl is the minimal static page the embeddable fragments are written
// into: asset includes, the placeholder div, then the chart script.
var wrapperTmpl = template.Must(template.New("wrapper").Parse(`<html>
{{- range .Assets }}
<script src="{{ . }}"></script>
{{- end }}
{{ .Div }}
{{ .Script }}
</html>
`))

// validateCurves enforces the shared-domain invariant at the package
// boundary: a non-empty set of equal-length curves over one domain.
func validateCurves(curves []depth.Curve) error {
	if len(curves) == 0 {
		return ErrNoCurves
	}
	base := curves[0].N
	for _, c := range curves {
		if len(c.N) != len(c.Depth) {
			return fmt.Errorf("%w: %q", ErrRaggedCurve, c.Name)
		}
		if len(c.N) != len(base) {
			return fmt.Errorf("%w: %q", ErrDomainMismatch, c.Name)
		}
		for i := range c.N {
			if c.N[i] != base[i] {
				return fmt.Errorf("%w: %q", ErrDomainMismatch, c.Name)
			}
		}
	}

	return nil
}

// NewLine builds one interactive line chart holding every given curve.
// Curves keep their order, legend label and color; the chart carries the
// fixed bounds, axes, theme, legend, tooltip and tool bindings from o.
// Returns ErrNoCurves, ErrRaggedCurve or ErrDomainMismatch on invalid input.
// Complexity: O(curves × len(domain)).
func NewLine(curves []depth.Curve, o Options) (*charts.Line, error) {
	if err := validateCurves(curves); err != nil {
		return nil, err
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     o.Theme,
			Width:     o.Width,
			Height:    o.Height,
			PageTitle: o.Title,
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: o.XLabel,
			Type: "value",
			Min:  o.XMin,
			Max:  o.XMax,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: o.YLabel,
			Type: "value",
			Min:  o.YMin,
			Max:  o.YMax,
		}),
		// Legend entries toggle their curve on click (ECharts default).
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Left: "left",
			Top:  "top",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:        opts.Bool(true),
			Trigger:     "axis",
			AxisPointer: &opts.AxisPointer{Type: "cross"},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				Restore:  &opts.ToolBoxFeatureRestore{Show: opts.Bool(true)},
				DataZoom: &opts.ToolBoxFeatureDataZoom{Show: opts.Bool(true)},
			},
		}),
		// Wheel zoom and drag pan, active without selecting a tool first.
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside", XAxisIndex: []int{0}},
			opts.DataZoom{Type: "inside", YAxisIndex: []int{0}},
		),
	)

	for _, c := range curves {
		items := make([]opts.LineData, len(c.N))
		for i := range c.N {
			items[i] = opts.LineData{Value: []interface{}{c.N[i], c.Depth[i]}}
		}
		line.AddSeries(c.Name, items,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: c.Color, Width: 2}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: c.Color}),
		)
	}

	return line, nil
}

// Snippet serializes the chart to its embeddable form: a placeholder div,
// the script block that draws into it, and the asset URLs both require.
// The fragments can be inserted into any existing page.
func Snippet(line *charts.Line) (Embed, error) {
	if line == nil {
		return Embed{}, ErrNilChart
	}

	s := line.Renderer.RenderSnippet()

	// Asset URLs are finalized during snippet rendering; read them after.
	assets := make([]string, len(line.JSAssets.Values))
	copy(assets, line.JSAssets.Values)

	return Embed{
		Div:    template.HTML(s.Element),
		Script: template.HTML(s.Script),
		Assets: assets,
	}, nil
}

// WriteHTML serializes the chart and writes the wrapped page to path,
// truncating any existing file. The write is all-or-nothing per run: any
// error is returned and the process-level caller decides the exit status.
func WriteHTML(path string, line *charts.Line) error {
	em, err := Snippet(line)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("depthchart: create %s: %w", path, err)
	}
	if err = wrapperTmpl.Execute(f, em); err != nil {
		f.Close()

		return fmt.Errorf("depthchart: render %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("depthchart: close %s: %w", path, err)
	}

	return nil
}
