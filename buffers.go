package suggestive

// Buffers holds the mesh as flat arrays ready for upload to GPU vertex and
// index buffers. Positions and Normals have 3 floats per vertex, TexCoords 2,
// Radial and Eligible 1 (Eligible is 1 or 0), Indices 3 per triangle.
type Buffers struct {
	Positions []float32
	Normals   []float32
	TexCoords []float32
	Radial    []float32
	Eligible  []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices in the buffers.
func (b *Buffers) VertexCount() int {
	return len(b.Positions) / 3
}

// TriangleCount returns the number of triangles in the buffers.
func (b *Buffers) TriangleCount() int {
	return len(b.Indices) / 3
}

// Buffers flattens the mesh into a fresh set of Buffers.
func (m *Mesh) Buffers() *Buffers {
	n := len(m.Points)
	b := &Buffers{
		Positions: make([]float32, 0, 3*n),
		Normals:   make([]float32, 0, 3*n),
		TexCoords: make([]float32, 0, 2*n),
		Radial:    make([]float32, n),
		Eligible:  make([]float32, n),
		Indices:   make([]uint32, 0, 3*len(m.Faces)),
	}

	for i := 0; i < n; i++ {
		p, nm := m.Points[i], m.Normals[i]
		b.Positions = append(b.Positions, float32(p[0]), float32(p[1]), float32(p[2]))
		b.Normals = append(b.Normals, float32(nm[0]), float32(nm[1]), float32(nm[2]))
		b.TexCoords = append(b.TexCoords, float32(m.UVs[i][0]), float32(m.UVs[i][1]))
		b.Radial[i] = float32(m.Radial[i])
		if m.Eligible[i] {
			b.Eligible[i] = 1
		}
	}

	for _, tri := range m.Faces {
		b.Indices = append(b.Indices, uint32(tri[0]), uint32(tri[1]), uint32(tri[2]))
	}

	return b
}
