package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleIDF = `
Version,9.0;
GlobalGeometryRules, UpperLeftCorner, Counterclockwise, Relative;
Zone, Z1, 0, 0, 0, 2;
BuildingSurface:Detailed, W1, Wall, C, Z1, Outdoors, , , , , 4,
  0,0,0, 4,0,0, 4,0,3, 0,0,3;
FenestrationSurface:Detailed, G1, Window, Glass, W1, , , , 1, 4,
  1,0,1, 2,0,1, 2,0,2, 1,0,2;
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info", "--text", sampleIDF)
	require.NoError(t, err)

	assert.Contains(t, out, "inline model")
	assert.Contains(t, out, "relative")
	assert.Contains(t, out, "9.0")
	assert.Contains(t, out, "1 polygons, 4 vertices")
	assert.Contains(t, out, "[2.000, 6.000]", "z range starts at the zone origin")
}

func TestViewTestMode(t *testing.T) {
	_, err := execute(t, "view", "--test", "--log-level", "error", "--text", sampleIDF)
	assert.NoError(t, err)
}

func TestViewRejectsTwoInputs(t *testing.T) {
	_, err := execute(t, "view", "model.idf", "--text", sampleIDF, "--test")
	assert.ErrorContains(t, err, "not more than one")
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "idfview")
}
