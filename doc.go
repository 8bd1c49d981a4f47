// Package depthviz computes closed-form recursion-depth curves and renders
// them as an interactive, embeddable line chart.
//
// 🚀 What is depthviz?
//
//	A small companion library + CLI for the question "how deep does the
//	decision recursion go for n alternatives?", comparing:
//	  • Complete Binary Tree — ceil(log2(n))
//	  • Recursive            — one alternative per step (depth n)
//	  • Recursive 4-step     — groups of four, remainder-dependent terms
//	  • Recursive 8-step     — groups of eight, remainder-dependent terms
//	over the fixed domain of 2..255 alternatives.
//
// ✨ Why choose depthviz?
//
//   - Exact formulas – closed forms verified against brute-force recursion
//   - Embeddable output – the chart serializes to a div + script fragment
//     pair, ready to drop into any static page
//   - Interactive – legend click-to-toggle, hover tooltip with crosshair,
//     wheel zoom, pan, one-click reset
//   - One-shot – a single deterministic run, no state between invocations
//
// Everything is organized under two subpackages and one command:
//
//	depth/        — domain, strategies and depth-curve computation
//	depthchart/   — chart construction, embeddable markup, HTML/PNG output
//	cmd/depthplot — bare-invocation CLI gluing compute → render → disk
//
// Quick start:
//
//	go run github.com/katalvlaran/depthviz/cmd/depthplot
//
// writes depth_plot.html next to your shell. See examples/ for programs
// that use the packages directly.
package depthviz
