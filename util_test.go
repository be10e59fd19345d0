package suggestive

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ungerik/go3d/float64/vec3"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func tetrahedron(t *testing.T) *Mesh {
	t.Helper()
	m, err := NewMesh(
		[]vec3.T{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}},
		[]Tri{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	)
	if err != nil {
		t.Fatal(err)
	}
	return m
}
