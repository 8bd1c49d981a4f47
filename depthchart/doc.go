// Package depthchart renders depth curves as an interactive line chart and
// serializes it to embeddable HTML markup.
//
// 🚀 What is depthchart?
//
//	The bridge between depth.Curve values and a browser:
//	  • NewLine   — build one interactive line chart (ECharts) from curves
//	  • Snippet   — serialize it to embeddable fragments (div + script)
//	  • WriteHTML — wrap the fragments in a minimal page and write it to disk
//	  • WritePNG  — optional static raster fallback (gonum/plot)
//
// ✨ Chart behavior (fixed by DefaultOptions):
//   - visual bounds x: 0–180, y: 0–50; axis labels "alternatives" / "depth"
//   - dark (chalk) theme, responsive width, fixed height
//   - legend top-left; clicking an entry toggles that curve
//   - tooltip with crosshair pointer, wheel-zoom active, toolbox reset/zoom
//
// ⚙️ Usage:
//
//	line, err := depthchart.NewLine(depth.Curves(), depthchart.DefaultOptions())
//	if err != nil { ... }
//	if err := depthchart.WriteHTML("depth_plot.html", line); err != nil { ... }
//
// Rendering is all-or-nothing per call: any failure is returned unwrapped of
// partial output, and rerunning simply overwrites the target file.
package depthchart
