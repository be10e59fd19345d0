package subdiv

import (
	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/ungerik/go3d/float64/vec3"
)

// Warren's weight for an interior vertex of valence n.
func interiorWeight(n int) float64 {
	if n == 3 {
		return 3.0 / 16.0
	}
	return 3.0 / (8.0 * float64(n))
}

// boundaryVertices flags every endpoint of an edge used by exactly one face.
func boundaryVertices(n int, edges []suggestive.EdgeInfo) []bool {
	boundary := make([]bool, n)
	for i := range edges {
		e := &edges[i]
		if e.Boundary() {
			boundary[e.A] = true
			boundary[e.B] = true
		}
	}
	return boundary
}

// Compute the new position of an even vertex
//
// **params**
// + positions of the coarse mesh
// + one-ring adjacency of the coarse mesh
// + boundary flags of the coarse vertices
// + the vertex
//
// **returns**
// + the repositioned vertex; a boundary vertex keeps 3/4 of itself plus 1/8
// of every one-ring neighbour that is a boundary vertex too
// + false for a boundary vertex that does not have exactly two such
// neighbours; the rule is still applied to whatever it has
func evenPosition(points []vec3.T, adj *suggestive.Adjacency, boundary []bool, v int) (vec3.T, bool) {
	old := points[v]
	ring := adj.Of(v)

	if !boundary[v] {
		n := len(ring)
		if n == 0 {
			return old, true
		}

		w := interiorWeight(n)
		var sum vec3.T
		for _, u := range ring {
			sum.Add(&points[u])
		}

		pos := old.Scaled(1 - float64(n)*w)
		sum.Scale(w)
		return *pos.Add(&sum), true
	}

	var sum vec3.T
	count := 0
	for _, u := range ring {
		if boundary[u] {
			sum.Add(&points[u])
			count++
		}
	}

	pos := old.Scaled(0.75)
	sum.Scale(0.125)
	return *pos.Add(&sum), count == 2
}

// Compute the position of the odd vertex inserted on an edge
//
// **params**
// + the coarse mesh
// + the edge with its incident faces
//
// **returns**
// + the midpoint for a boundary edge, otherwise 3/8 of the endpoints plus
// 1/8 of the two opposite vertices
func oddPosition(m *suggestive.Mesh, e *suggestive.EdgeInfo) vec3.T {
	pa, pb := &m.Points[e.A], &m.Points[e.B]
	ends := vec3.Add(pa, pb)

	if e.Valence >= 2 {
		o1, ok1 := opposite(&m.Faces[e.Faces[0]], e.Edge)
		o2, ok2 := opposite(&m.Faces[e.Faces[1]], e.Edge)
		if ok1 && ok2 {
			opp := vec3.Add(&m.Points[o1], &m.Points[o2])
			opp.Scale(0.125)
			ends.Scale(0.375)
			return *ends.Add(&opp)
		}
	}

	return ends.Scaled(0.5)
}

// opposite returns the vertex of tri that is not an endpoint of e.
func opposite(tri *suggestive.Tri, e suggestive.Edge) (int, bool) {
	for _, v := range tri {
		if v != e.A && v != e.B {
			return v, true
		}
	}
	return 0, false
}
