package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/frippiat/SuggestiveContours/contour"
	"github.com/frippiat/SuggestiveContours/meshio"
	"github.com/frippiat/SuggestiveContours/primitive"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func defaultConfig() *Config {
	return &Config{
		Subdivisions: 1,
		High:         0.005,
		Low:          0.002,
		ViewAngle:    20,
	}
}

func TestParseVec(t *testing.T) {
	v, err := parseVec("1, -2.5,3e1")
	require.NoError(t, err)
	assert.Equal(t, vec3.T{1, -2.5, 30}, v)

	_, err = parseVec("1,2")
	assert.Error(t, err)
	_, err = parseVec("1,b,2")
	assert.Error(t, err)
}

func TestPipelineOptions(t *testing.T) {
	c := defaultConfig()
	opts, err := c.PipelineOptions()
	require.NoError(t, err)
	assert.Nil(t, opts.Camera)
	assert.Equal(t, contour.DefaultOptions(), opts.Contour)

	c.Camera = "0,0,4"
	opts, err = c.PipelineOptions()
	require.NoError(t, err)
	assert.Equal(t, vec3.T{0, 0, 4}, *opts.Camera)

	c.Low = 1
	_, err = c.PipelineOptions()
	assert.ErrorIs(t, err, contour.ErrInvalidOptions)
}

func TestMeshPath(t *testing.T) {
	c := defaultConfig()
	_, err := c.MeshPath()
	assert.Error(t, err)

	home, err := homedir.Dir()
	require.NoError(t, err)
	c.Mesh = "~/bunny.off"
	path, err := c.MeshPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "bunny.off"), path)
}

func TestAnalyzeAndSubdivide(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ico.off")
	require.NoError(t, meshio.Save(in, primitive.Icosahedron(1)))

	c := defaultConfig()
	c.Mesh = in
	c.Summary = filepath.Join(dir, "summary.json")
	require.NoError(t, Analyze(c))
	data, err := os.ReadFile(c.Summary)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"faces": 80`)

	c.Output = filepath.Join(dir, "ico2.obj")
	c.Subdivisions = 2
	require.NoError(t, Subdivide(c))
	m, err := meshio.Load(c.Output)
	require.NoError(t, err)
	assert.Equal(t, 320, m.FaceCount())

	c.Output = ""
	assert.Error(t, Subdivide(c))
}
