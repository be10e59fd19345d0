package suggestive

import (
	"github.com/frippiat/SuggestiveContours/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// RecomputeNormals replaces every vertex normal with the normalized sum of
// the area weighted normals of its incident faces. Vertices without a
// non-degenerate incident face get the zero vector.
func (m *Mesh) RecomputeNormals() {
	normals := make([]vec3.T, len(m.Points))

	for i := range m.Faces {
		tri := &m.Faces[i]
		n := FaceCross(m.Points, tri)
		for _, v := range tri {
			normals[v].Add(&n)
		}
	}

	for i := range normals {
		internal.Normalize(&normals[i])
	}

	m.Normals = normals
}

// RecomputeTexCoords replaces every texture coordinate with the planar
// projection of the vertex onto the X/Y extents of the bounding box. An axis
// with no extent maps to 0.
func (m *Mesh) RecomputeTexCoords() {
	uvs := make([]UV, len(m.Points))
	bb := m.BoundingBox()
	if bb.Empty() {
		m.UVs = uvs
		return
	}

	dx, dy := bb.AxisLength(0), bb.AxisLength(1)
	for i, p := range m.Points {
		if dx > 0 {
			uvs[i][0] = (p[0] - bb.Min[0]) / dx
		}
		if dy > 0 {
			uvs[i][1] = (p[1] - bb.Min[1]) / dy
		}
	}

	m.UVs = uvs
}
