package depthchart_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/depthviz/depth"
	"github.com/katalvlaran/depthviz/depthchart"
)

// TestWritePNG_Raster verifies the static fallback writes a non-empty image
// with the default bounds and all standard curves.
func TestWritePNG_Raster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "depth_plot.png")

	err := depthchart.WritePNG(path, depth.Curves(), depthchart.DefaultOptions())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size(), "raster output must not be empty")
}

// TestWritePNG_Validation verifies the fallback enforces the same curve
// invariants as the interactive chart.
func TestWritePNG_Validation(t *testing.T) {
	err := depthchart.WritePNG(filepath.Join(t.TempDir(), "x.png"), nil, depthchart.DefaultOptions())
	assert.ErrorIs(t, err, depthchart.ErrNoCurves)
}

// TestWritePNG_BadColor verifies non-hex curve colors are rejected before
// any file is written.
func TestWritePNG_BadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.png")
	bad := depth.Curve{Name: "bad", Color: "fuchsia", N: []int{2, 3}, Depth: []float64{1, 2}}

	err := depthchart.WritePNG(path, []depth.Curve{bad}, depthchart.DefaultOptions())
	assert.ErrorIs(t, err, depthchart.ErrBadColor)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no partial output on failure")
}
