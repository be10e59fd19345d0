// Package primitive builds simple triangle meshes: single triangles,
// platonic solids, icospheres and height field grids.
package primitive

import (
	"math"

	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/frippiat/SuggestiveContours/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Triangle returns the open unit right triangle in the XY plane, facing +Z.
func Triangle() *suggestive.Mesh {
	return mustMesh(
		[]vec3.T{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[]suggestive.Tri{{0, 1, 2}},
	)
}

// Tetrahedron returns a closed regular tetrahedron inscribed in the cube
// [-1, 1]^3 with outward facing triangles.
func Tetrahedron() *suggestive.Mesh {
	return mustMesh(
		[]vec3.T{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}},
		[]suggestive.Tri{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	)
}

// Icosahedron returns a regular icosahedron with every vertex at distance r
// from the origin and outward facing triangles.
func Icosahedron(r float64) *suggestive.Mesh {
	t := (1 + math.Sqrt(5)) / 2

	points := []vec3.T{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range points {
		onSphere(&points[i], r)
	}

	faces := []suggestive.Tri{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	return mustMesh(points, faces)
}

//
// Build an icosphere
//
// **params**
// + the radius
// + the number of refinements of the icosahedron, each one splits every
//   triangle in four and pushes the new vertices onto the sphere
//
// **returns**
// + a closed mesh with 20 * 4^level outward facing triangles
//
func Sphere(r float64, level int) *suggestive.Mesh {
	m := Icosahedron(r)
	for i := 0; i < level; i++ {
		m = refine(m, r)
	}
	return m
}

// refine splits every face of m at its edge midpoints projected onto the
// sphere of radius r.
func refine(m *suggestive.Mesh, r float64) *suggestive.Mesh {
	edges, index := m.EdgeTable()

	n := len(m.Points)
	points := make([]vec3.T, n, n+len(edges))
	copy(points, m.Points)
	for i := range edges {
		mid := vec3.Interpolate(&m.Points[edges[i].A], &m.Points[edges[i].B], 0.5)
		onSphere(&mid, r)
		points = append(points, mid)
	}

	faces := make([]suggestive.Tri, 0, 4*len(m.Faces))
	for _, tri := range m.Faces {
		a, b, c := tri[0], tri[1], tri[2]
		ab := n + index[suggestive.MakeEdge(a, b)]
		bc := n + index[suggestive.MakeEdge(b, c)]
		ca := n + index[suggestive.MakeEdge(c, a)]
		faces = append(faces,
			suggestive.Tri{a, ab, ca},
			suggestive.Tri{ab, b, bc},
			suggestive.Tri{ca, bc, c},
			suggestive.Tri{ab, bc, ca},
		)
	}

	return mustMesh(points, faces)
}

func onSphere(p *vec3.T, r float64) {
	internal.Normalize(p)
	p.Scale(r)
}

// Flip returns a copy of m with every triangle wound the other way, so its
// normals point inward.
func Flip(m *suggestive.Mesh) *suggestive.Mesh {
	flipped := m.Clone()
	for i := range flipped.Faces {
		tri := &flipped.Faces[i]
		tri[1], tri[2] = tri[2], tri[1]
	}
	flipped.RecomputeNormals()
	return flipped
}

// mustMesh builds a mesh from indices known to be in range.
func mustMesh(points []vec3.T, faces []suggestive.Tri) *suggestive.Mesh {
	m, err := suggestive.NewMesh(points, faces)
	if err != nil {
		panic(err)
	}
	return m
}
