package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_BareInvocation verifies the default pipeline writes the HTML
// artifact and nothing else.
func TestRun_BareInvocation(t *testing.T) {
	out := filepath.Join(t.TempDir(), "depth_plot.html")

	require.NoError(t, run(rootOptions{out: out}))

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Recursive 8-step")
	assert.NotContains(t, string(page), "Worst Case")
}

// TestRun_WorstAndRaster verifies the opt-in flags: worst-case curves reach
// the page and the raster fallback is written alongside.
func TestRun_WorstAndRaster(t *testing.T) {
	tmp := t.TempDir()
	out := filepath.Join(tmp, "depth_plot.html")
	png := filepath.Join(tmp, "depth_plot.png")

	require.NoError(t, run(rootOptions{out: out, png: png, worst: true}))

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Rec8 Worst Case")

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestRootCmd_NoArgs verifies positional arguments are rejected; the tool
// is bare-invocation only.
func TestRootCmd_NoArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"unexpected"})
	assert.Error(t, cmd.Execute())
}
