// Package depthchart defines options, the embeddable-markup type, and
// sentinel errors for the depthchart subpackage of
// github.com/katalvlaran/depthviz.
package depthchart

import (
	"errors"
	"html/template"

	"github.com/go-echarts/go-echarts/v2/types"
)

// Sentinel errors for chart construction and rendering.
var (
	// ErrNoCurves indicates an empty curve set.
	ErrNoCurves = errors.New("depthchart: at least one curve is required")
	// ErrRaggedCurve indicates a curve whose domain and depth lengths differ.
	ErrRaggedCurve = errors.New("depthchart: curve domain and depth lengths differ")
	// ErrDomainMismatch indicates curves that do not share a single domain.
	ErrDomainMismatch = errors.New("depthchart: all curves must share one domain")
	// ErrNilChart indicates a nil chart passed to a rendering operation.
	ErrNilChart = errors.New("depthchart: chart must not be nil")
	// ErrBadColor indicates a curve color that is not a #rrggbb hex string.
	ErrBadColor = errors.New("depthchart: curve color must be a #rrggbb hex string")
)

// Options holds the visual configuration of the chart.
// The zero value is not useful; start from DefaultOptions.
type Options struct {
	// Title is the chart heading.
	Title string
	// XLabel and YLabel name the axes.
	XLabel, YLabel string
	// XMin, XMax, YMin, YMax fix the initial visual bounds. Zooming and
	// panning can leave them; Reset restores them.
	XMin, XMax float64
	YMin, YMax float64
	// Theme selects the ECharts theme of the interactive chart.
	Theme string
	// Width and Height size the chart container. Width may be a percentage
	// ("100%") to track the embedding container; Height stays fixed.
	Width, Height string
}

// DefaultOptions returns the standard depth-plot configuration:
// bounds 0–180 / 0–50, "alternatives" vs. "depth", dark chalk theme,
// responsive width with a fixed 500px height.
func DefaultOptions() Options {
	return Options{
		Title:  "Maximum recursion depth",
		XLabel: "alternatives",
		YLabel: "depth",
		XMin:   0,
		XMax:   180,
		YMin:   0,
		YMax:   50,
		Theme:  types.ThemeChalk,
		Width:  "100%",
		Height: "500px",
	}
}

// Embed is the serialized, embeddable form of a chart: a placeholder div,
// a script block that draws into it, and the charting assets both depend on.
// Div and Script are pre-rendered markup and must be inserted verbatim.
type Embed struct {
	// Div is the placeholder element the chart draws into.
	Div template.HTML
	// Script is the script block that builds the chart inside Div.
	Script template.HTML
	// Assets lists the script URLs the fragments require, in include order.
	Assets []string
}
