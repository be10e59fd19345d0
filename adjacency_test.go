package suggestive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestEdgeTableClosed(t *testing.T) {
	m := tetrahedron(t)
	edges, index := m.EdgeTable()

	require.Len(t, edges, 6)
	require.Len(t, index, 6)
	for i, e := range edges {
		assert.Equal(t, 2, e.Valence, "edge %v", e.Edge)
		assert.False(t, e.Boundary())
		assert.Equal(t, i, index[e.Edge])
		assert.Less(t, e.A, e.B)
	}

	// first face visits ab, bc, ca
	diff(t, []Edge{{0, 1}, {1, 2}, {0, 2}}, []Edge{edges[0].Edge, edges[1].Edge, edges[2].Edge})
	diff(t, [2]int{0, 1}, edges[0].Faces)
}

func TestEdgeTableBoundary(t *testing.T) {
	m, err := NewMesh(
		[]vec3.T{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[]Tri{{0, 1, 2}, {0, 2, 3}},
	)
	require.NoError(t, err)

	edges, index := m.EdgeTable()
	require.Len(t, edges, 5)

	boundary := 0
	for _, e := range edges {
		if e.Boundary() {
			boundary++
		}
	}
	assert.Equal(t, 4, boundary)
	assert.Equal(t, 2, edges[index[MakeEdge(2, 0)]].Valence)
}

func TestMakeEdge(t *testing.T) {
	assert.Equal(t, Edge{2, 5}, MakeEdge(5, 2))
	assert.Equal(t, MakeEdge(1, 3), MakeEdge(3, 1))
}

func TestNeighbors(t *testing.T) {
	m := tetrahedron(t)
	adj := m.Neighbors()

	require.Equal(t, 4, adj.Len())
	diff(t, []int{1, 2, 3}, adj.Of(0))
	diff(t, []int{0, 2, 3}, adj.Of(1))
	diff(t, []int{0, 1, 3}, adj.Of(2))
	diff(t, []int{0, 1, 2}, adj.Of(3))
	assert.Equal(t, 3, adj.Valence(3))
}

func TestNeighborsDegenerateFace(t *testing.T) {
	m, err := NewMesh(
		[]vec3.T{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
		[]Tri{{0, 0, 1}},
	)
	require.NoError(t, err)

	adj := m.Neighbors()
	diff(t, []int{1}, adj.Of(0))
	diff(t, []int{0}, adj.Of(1))
	assert.Zero(t, adj.Valence(2))
}
