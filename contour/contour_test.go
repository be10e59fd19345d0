package contour

import (
	"math"
	"testing"

	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/frippiat/SuggestiveContours/curvature"
	"github.com/frippiat/SuggestiveContours/primitive"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// path returns the adjacency of the chain 0 - 1 - ... - n-1.
func path(n int) *suggestive.Adjacency {
	adj := &suggestive.Adjacency{Offsets: []int{0}}
	for v := 0; v < n; v++ {
		if v > 0 {
			adj.Indices = append(adj.Indices, v-1)
		}
		if v < n-1 {
			adj.Indices = append(adj.Indices, v+1)
		}
		adj.Offsets = append(adj.Offsets, len(adj.Indices))
	}
	return adj
}

// field samples f at every vertex of m.
func field(m *suggestive.Mesh, f func(p vec3.T) float64) []float64 {
	out := make([]float64, m.VertexCount())
	for v, p := range m.Points {
		out[v] = f(p)
	}
	return out
}

func TestHysteresisChain(t *testing.T) {
	classes := []Class{None, Weak, Strong, Weak, None}
	adj := path(5)

	passes := Hysteresis(classes, adj)
	diff(t, []Class{None, Strong, Strong, Strong, None}, classes)
	assert.Equal(t, 2, passes)

	// a settled result is a fixed point
	settled := append([]Class(nil), classes...)
	assert.Equal(t, 1, Hysteresis(classes, adj))
	diff(t, settled, classes)
}

func TestHysteresisPropagation(t *testing.T) {
	classes := []Class{Weak, Weak, Weak, Weak, Weak, Strong, None, Weak}
	passes := Hysteresis(classes, path(8))

	// the weak run reaches the strong seed one vertex per pass against the
	// scan order; the weak vertex behind a None stays weak
	diff(t, []Class{Strong, Strong, Strong, Strong, Strong, Strong, None, Weak}, classes)
	assert.Equal(t, 6, passes)
}

func TestHysteresisNoStrong(t *testing.T) {
	classes := []Class{Weak, Weak, None}
	assert.Equal(t, 1, Hysteresis(classes, path(3)))
	diff(t, []Class{Weak, Weak, None}, classes)
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "weak", Weak.String())
	assert.Equal(t, "strong", Strong.String())
	assert.Equal(t, "Class(7)", Class(7).String())
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
	diff(t, Options{High: 0.005, Low: 0.002, ViewAngle: 20}, DefaultOptions())

	tests := []struct {
		name string
		opts Options
	}{
		{"low above high", Options{High: 0.001, Low: 0.002, ViewAngle: 20}},
		{"negative angle", Options{High: 0.005, Low: 0.002, ViewAngle: -1}},
		{"angle above 180", Options{High: 0.005, Low: 0.002, ViewAngle: 181}},
		{"nan", Options{High: math.NaN(), Low: 0.002, ViewAngle: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.opts.Validate(), ErrInvalidOptions)
		})
	}
}

func TestGradientsLinearField(t *testing.T) {
	m := primitive.Grid(6, 5, 2, nil)
	f := field(m, func(p vec3.T) float64 { return 3*p[0] - 2*p[1] + 1 })

	grads, skipped, err := Gradients(m, f)
	require.NoError(t, err)
	assert.Zero(t, skipped)

	for v := range grads {
		diff(t, vec3.T{3, -2, 0}, grads[v], cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestGradientsDegenerate(t *testing.T) {
	m, err := suggestive.NewMesh(
		[]vec3.T{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {2, 0, 0}},
		[]suggestive.Tri{{0, 1, 2}, {0, 1, 3}},
	)
	require.NoError(t, err)

	grads, skipped, err := Gradients(m, []float64{0, 1, 0, 5})
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	diff(t, vec3.T{1, 0, 0}, grads[0], cmpopts.EquateApprox(0, 1e-12))
	diff(t, vec3.T{}, grads[3])
}

func TestGradientsLengthMismatch(t *testing.T) {
	m := primitive.Triangle()

	_, _, err := Gradients(m, []float64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestClassifyViewGate(t *testing.T) {
	m := primitive.Grid(4, 4, 2, nil)
	f := field(m, func(p vec3.T) float64 { return p[0] })
	opts := DefaultOptions()

	// looking down the normal: every vertex is gated out
	classes, err := Classify(m, f, vec3.T{0, 0, 50}, opts)
	require.NoError(t, err)
	for _, c := range classes {
		assert.Equal(t, None, c)
	}

	// grazing view towards +X, where the field grows
	classes, err = Classify(m, f, vec3.T{100, 0, 1}, opts)
	require.NoError(t, err)
	for _, c := range classes {
		assert.Equal(t, Strong, c)
	}

	// grazing view towards -X: the derivative is negative
	classes, err = Classify(m, f, vec3.T{-100, 0, 1}, opts)
	require.NoError(t, err)
	for _, c := range classes {
		assert.Equal(t, None, c)
	}
}

func TestClassifyThresholds(t *testing.T) {
	m := primitive.Grid(4, 4, 2, nil)
	cam := vec3.T{100, 0, 1}
	opts := Options{High: 1, Low: 0.5, ViewAngle: 20}

	// a slope between the thresholds leaves every vertex weak, with no
	// strong seed to promote it
	classes, err := Classify(m, field(m, func(p vec3.T) float64 { return 0.7 * p[0] }), cam, opts)
	require.NoError(t, err)
	for _, c := range classes {
		assert.Equal(t, Weak, c)
	}

	eligible, err := Eligible(m, field(m, func(p vec3.T) float64 { return 0.7 * p[0] }), cam, opts)
	require.NoError(t, err)
	for _, e := range eligible {
		assert.False(t, e)
	}

	// below the low threshold
	classes, err = Classify(m, field(m, func(p vec3.T) float64 { return 0.2 * p[0] }), cam, opts)
	require.NoError(t, err)
	for _, c := range classes {
		assert.Equal(t, None, c)
	}
}

func TestClassifyConstantField(t *testing.T) {
	m := primitive.Sphere(1, 2)
	f := make([]float64, m.VertexCount())
	for v := range f {
		f[v] = -1
	}

	eligible, err := Eligible(m, f, vec3.T{0, 0, 3}, DefaultOptions())
	require.NoError(t, err)
	for _, e := range eligible {
		assert.False(t, e)
	}
}

func TestClassifyErrors(t *testing.T) {
	m := primitive.Triangle()

	_, err := Classify(m, []float64{0, 0, 0}, vec3.T{}, Options{High: 0, Low: 1})
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = Classify(m, []float64{0}, vec3.T{}, DefaultOptions())
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestUpdate(t *testing.T) {
	m := primitive.Grid(4, 4, 2, nil)
	m.Radial = field(m, func(p vec3.T) float64 { return p[0] })

	require.NoError(t, Update(m, vec3.T{100, 0, 1}, DefaultOptions()))
	for _, e := range m.Eligible {
		assert.True(t, e)
	}

	// a failing update keeps the previous result
	m.Radial = m.Radial[:3]
	assert.ErrorIs(t, Update(m, vec3.T{-100, 0, 1}, DefaultOptions()), ErrLengthMismatch)
	for _, e := range m.Eligible {
		assert.True(t, e)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	m := primitive.Grid(12, 12, 2, func(x, y float64) float64 {
		return 0.3 * math.Sin(3*x) * math.Cos(2*y)
	})
	require.NoError(t, curvature.Update(m))
	cam := vec3.T{2, -1, 1.5}
	require.NoError(t, curvature.UpdateRadial(m, cam))

	a, err := Classify(m, m.Radial, cam, DefaultOptions())
	require.NoError(t, err)
	b, err := Classify(m, m.Radial, cam, DefaultOptions())
	require.NoError(t, err)
	diff(t, a, b)
}
