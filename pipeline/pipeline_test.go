package pipeline

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/frippiat/SuggestiveContours/contour"
	"github.com/frippiat/SuggestiveContours/meshio"
	"github.com/frippiat/SuggestiveContours/primitive"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
	"gopkg.in/yaml.v3"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 1, opts.Subdivisions)
	assert.Nil(t, opts.Camera)
	assert.Equal(t, contour.DefaultOptions(), opts.Contour)
	assert.NoError(t, opts.Validate())
}

func TestNewInvalid(t *testing.T) {
	opts := DefaultOptions()
	opts.Contour.Low = 1
	_, err := New(opts)
	assert.ErrorIs(t, err, contour.ErrInvalidOptions)

	opts = DefaultOptions()
	opts.Subdivisions = -1
	_, err = New(opts)
	assert.Error(t, err)
}

func TestDefaultCamera(t *testing.T) {
	m := primitive.Sphere(2, 2)
	cam := DefaultCamera(m)

	assert.InDelta(t, 0, cam[0], 1e-9)
	assert.InDelta(t, 0, cam[1], 1e-9)
	assert.InDelta(t, 6, cam[2], 1e-9)
}

func TestDriverSetMesh(t *testing.T) {
	d, err := New(DefaultOptions())
	require.NoError(t, err)

	m := primitive.Sphere(1, 3)
	require.NoError(t, d.SetMesh(m))
	assert.Same(t, m, d.Mesh())
	diff(t, DefaultCamera(m), d.Camera())

	for v := range m.Points {
		assert.Less(t, m.Kappa1[v], 0.0)
		assert.NotZero(t, m.Radial[v])
	}
	assert.Len(t, m.Eligible, m.VertexCount())
}

func TestDriverFixedCamera(t *testing.T) {
	opts := DefaultOptions()
	opts.Camera = &vec3.T{1, 2, 3}
	d, err := New(opts)
	require.NoError(t, err)

	require.NoError(t, d.SetMesh(primitive.Sphere(1, 1)))
	diff(t, vec3.T{1, 2, 3}, d.Camera())
}

func TestDriverSetCamera(t *testing.T) {
	d, err := New(DefaultOptions())
	require.NoError(t, err)

	m := primitive.Grid(10, 10, 2, func(x, y float64) float64 { return 0.2 * x * x })
	require.NoError(t, d.SetMesh(m))

	kappa := append([]float64(nil), m.Kappa1...)
	radial := append([]float64(nil), m.Radial...)

	require.NoError(t, d.SetCamera(vec3.T{5, 0, 1}))
	diff(t, kappa, m.Kappa1)
	assert.NotEqual(t, radial, m.Radial)

	// moving back reproduces the first result exactly
	require.NoError(t, d.SetCamera(DefaultCamera(m)))
	diff(t, radial, m.Radial)
}

func TestDriverSubdivide(t *testing.T) {
	d, err := New(DefaultOptions())
	require.NoError(t, err)
	assert.Error(t, d.Subdivide(1))
	assert.Error(t, d.Run())

	require.NoError(t, d.SetMesh(primitive.Tetrahedron()))
	cam := d.Camera()

	require.NoError(t, d.Subdivide(1))
	assert.Equal(t, 10, d.Mesh().VertexCount())
	assert.Equal(t, 16, d.Mesh().FaceCount())
	assert.Equal(t, cam, d.Camera())
	assert.Len(t, d.Mesh().Radial, 10)
	assert.NoError(t, d.Mesh().Validate())
}

func TestDriverRun(t *testing.T) {
	opts := DefaultOptions()
	opts.Subdivisions = 2
	d, err := New(opts)
	require.NoError(t, err)

	require.NoError(t, d.SetMesh(primitive.Icosahedron(1)))
	require.NoError(t, d.Run())
	assert.Equal(t, 320, d.Mesh().FaceCount())

	opts.Subdivisions = 0
	d, err = New(opts)
	require.NoError(t, err)
	require.NoError(t, d.SetMesh(primitive.Icosahedron(1)))
	require.NoError(t, d.Run())
	assert.Equal(t, 20, d.Mesh().FaceCount())
}

func TestDriverLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphere.obj")
	require.NoError(t, meshio.Save(path, primitive.Sphere(1, 1)))

	d, err := New(DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, d.Load(path))
	assert.Equal(t, 42, d.Mesh().VertexCount())

	assert.Error(t, d.Load(filepath.Join(t.TempDir(), "missing.obj")))
	// the previous mesh survives a failed load
	assert.Equal(t, 42, d.Mesh().VertexCount())
}

func TestSummarize(t *testing.T) {
	m := primitive.Grid(2, 2, 2, nil)
	m.Kappa1 = []float64{-1, 0, 0, 0, 0, 0, 0, 0, 3}
	m.Eligible[4] = true
	m.Eligible[5] = true

	s := Summarize(m, vec3.T{0, 0, 9}, false)
	assert.Equal(t, 9, s.Vertices)
	assert.Equal(t, 8, s.Faces)
	assert.Equal(t, 16, s.Edges)
	assert.Equal(t, 8, s.BoundaryEdges)
	assert.Equal(t, 2, s.Eligible)
	assert.Equal(t, [3]float64{0, 0, 9}, s.Camera)
	assert.Equal(t, Range{Min: -1, Max: 3, Mean: 2.0 / 9}, s.Kappa1)
	assert.Equal(t, Range{}, s.Radial)
	assert.Nil(t, s.Records)

	s = Summarize(m, vec3.T{}, true)
	require.Len(t, s.Records, 9)
	assert.Equal(t, VertexRecord{Index: 8, Position: [3]float64{1, 1, 0}, Kappa1: 3}, s.Records[8])
	assert.True(t, s.Records[4].Eligible)
}

func TestDriverSummary(t *testing.T) {
	d, err := New(DefaultOptions())
	require.NoError(t, err)
	assert.Nil(t, d.Summary(false))

	require.NoError(t, d.SetMesh(primitive.Sphere(1, 2)))
	s := d.Summary(false)
	assert.Equal(t, 162, s.Vertices)
	assert.Zero(t, s.BoundaryEdges)
	assert.InDelta(t, 1, s.Radius, 1e-9)
	diff(t, [3]float64{0, 0, 0}, s.Bounds.Center, cmpopts.EquateApprox(0, 1e-12))
	diff(t, [3]float64{1, 1, 1}, s.Bounds.Max, cmpopts.EquateApprox(0, 1e-12))
}

func TestSummarizeBounds(t *testing.T) {
	m := primitive.Grid(2, 2, 4, nil)
	s := Summarize(m, vec3.T{}, false)

	diff(t, Bounds{Min: [3]float64{-2, -2, 0}, Max: [3]float64{2, 2, 0}}, s.Bounds)
}

func TestDriverCameraInsideBounds(t *testing.T) {
	var buf bytes.Buffer
	suggestive.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer suggestive.SetLogger(nil)

	d, err := New(DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, d.SetMesh(primitive.Sphere(1, 1)))
	assert.NotContains(t, buf.String(), "camera inside")

	require.NoError(t, d.SetCamera(vec3.T{0.1, 0, 0}))
	assert.Contains(t, buf.String(), "camera inside")
}

func TestEncodeSummary(t *testing.T) {
	m := primitive.Triangle()
	s := Summarize(m, vec3.T{0, 0, 2}, true)

	decoders := map[string]func([]byte, any) error{
		"yaml": yaml.Unmarshal,
		"toml": toml.Unmarshal,
		"json": json.Unmarshal,
	}

	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeSummary(&buf, s, format))

			var got Summary
			require.NoError(t, decode(buf.Bytes(), &got))
			diff(t, s, &got)
		})
	}

	assert.Error(t, EncodeSummary(&bytes.Buffer{}, s, "xml"))
}

func TestWriteSummary(t *testing.T) {
	dir := t.TempDir()
	s := Summarize(primitive.Tetrahedron(), vec3.T{}, false)

	path := filepath.Join(dir, "summary.yml")
	require.NoError(t, WriteSummary(path, s))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vertices: 4")

	bad := filepath.Join(dir, "summary.xml")
	assert.Error(t, WriteSummary(bad, s))
	assert.NoFileExists(t, bad)
}
