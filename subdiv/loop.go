// Package subdiv refines triangle meshes with Loop subdivision.
package subdiv

import (
	"fmt"

	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/ungerik/go3d/float64/vec3"
)

// Loop performs one step of Loop subdivision and returns the refined mesh.
// The input mesh is not modified.
//
// Every vertex keeps its index and is repositioned (even vertices); every
// edge gets one new vertex appended after them (odd vertices) in the order
// the edges are first met while walking the faces; every face is replaced by
// four. The result has |V|+|E| vertices and 4|T| faces, freshly derived
// normals and texture coordinates, and zeroed curvature and eligibility.
//
// Edges shared by more than two faces are not part of a 2-manifold. They are
// refined from their first two faces and reported at warn level; the output
// is then not guaranteed to be well formed.
func Loop(m *suggestive.Mesh) (*suggestive.Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("loop subdivision: %w", err)
	}

	edges, index := m.EdgeTable()
	adj := m.Neighbors()
	n := len(m.Points)

	boundary := boundaryVertices(n, edges)
	var nonManifold int
	for i := range edges {
		if edges[i].Valence > 2 {
			nonManifold++
		}
	}
	if nonManifold > 0 {
		suggestive.Logger().Warn("loop subdivision: non-manifold edges", "count", nonManifold)
	}

	points := make([]vec3.T, n, n+len(edges))
	var degenerate int
	for v := 0; v < n; v++ {
		var ok bool
		points[v], ok = evenPosition(m.Points, adj, boundary, v)
		if !ok {
			degenerate++
		}
	}
	if degenerate > 0 {
		suggestive.Logger().Warn("loop subdivision: boundary vertices without exactly two boundary neighbours", "count", degenerate)
	}

	// EdgeTable lists edges in first-visit order, so the odd vertex of edge i
	// is vertex n+i.
	for i := range edges {
		points = append(points, oddPosition(m, &edges[i]))
	}

	faces := make([]suggestive.Tri, 0, 4*len(m.Faces))
	for _, tri := range m.Faces {
		a, b, c := tri[0], tri[1], tri[2]
		eab := n + index[suggestive.MakeEdge(a, b)]
		ebc := n + index[suggestive.MakeEdge(b, c)]
		eca := n + index[suggestive.MakeEdge(c, a)]

		faces = append(faces,
			suggestive.Tri{a, eab, eca},
			suggestive.Tri{eab, b, ebc},
			suggestive.Tri{eca, ebc, c},
			suggestive.Tri{eab, ebc, eca},
		)
	}

	suggestive.Logger().Debug("loop subdivision",
		"vertices", n, "edges", len(edges), "faces", len(m.Faces),
		"newVertices", len(points), "newFaces", len(faces))

	return suggestive.NewMesh(points, faces)
}

// LoopN applies Loop subdivision the given number of times. Zero or fewer
// levels return a copy of m.
func LoopN(m *suggestive.Mesh, levels int) (*suggestive.Mesh, error) {
	if levels <= 0 {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("loop subdivision: %w", err)
		}
		return m.Clone(), nil
	}

	out := m
	for i := 0; i < levels; i++ {
		var err error
		out, err = Loop(out)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
	}

	return out, nil
}
