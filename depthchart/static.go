package depthchart

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/depthviz/depth"
)

// hexColor parses a #rrggbb string into an opaque RGBA color.
func hexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// WritePNG renders the curves as a static raster image for contexts that
// cannot run scripts (feed readers, link previews). Bounds, labels, legend
// placement and line colors follow o, matching the interactive chart.
// The output format follows the file extension (.png, .svg, .pdf, ...).
// Validation mirrors NewLine; rendering errors are wrapped and returned.
func WritePNG(path string, curves []depth.Curve, o Options) error {
	if err := validateCurves(curves); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.X.Min, p.X.Max = o.XMin, o.XMax
	p.Y.Min, p.Y.Max = o.YMin, o.YMax
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	for _, c := range curves {
		col, err := hexColor(c.Color)
		if err != nil {
			return err
		}

		pts := make(plotter.XYs, len(c.N))
		for i := range c.N {
			pts[i].X = float64(c.N[i])
			pts[i].Y = c.Depth[i]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("depthchart: line %q: %w", c.Name, err)
		}
		l.LineStyle.Width = vg.Points(2)
		l.LineStyle.Color = col
		p.Add(l)
		p.Legend.Add(c.Name, l)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("depthchart: save %s: %w", path, err)
	}

	return nil
}
