package suggestive

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// Tri is an ordered triple of vertex indices. The winding decides the face
// normal: cross(p1-p0, p2-p0).
type Tri [3]int

// UV is a texture coordinate.
type UV = vec2.T

// Mesh stores a triangle mesh as parallel per-vertex arrays and a flat face
// list. All per-vertex arrays always have len(Points) entries.
//
// Normals and UVs are derived from Points and Faces. The curvature, radial
// and eligibility arrays are derived as well but are never recomputed
// implicitly: after a topology or camera change they are stale until the
// caller runs the corresponding stage again.
type Mesh struct {
	Faces   []Tri
	Points  []vec3.T
	Normals []vec3.T
	UVs     []UV

	// Principal curvatures, Kappa1 <= Kappa2.
	Kappa1, Kappa2 []float64
	// Principal directions, unit length, tangent and mutually orthogonal.
	Dir1, Dir2 []vec3.T

	Radial   []float64
	Eligible []bool
}

func newMesh() *Mesh {
	return &Mesh{
		Faces:   make([]Tri, 0),
		Points:  make([]vec3.T, 0),
		Normals: make([]vec3.T, 0),
		UVs:     make([]UV, 0),
	}
}

// NewMesh builds a mesh from positions and faces, sizes every per-vertex
// array and derives normals and texture coordinates. The slices are owned by
// the mesh afterwards.
func NewMesh(points []vec3.T, faces []Tri) (*Mesh, error) {
	m := newMesh()
	if points != nil {
		m.Points = points
	}
	if faces != nil {
		m.Faces = faces
	}
	m.Normals = make([]vec3.T, len(m.Points))
	m.UVs = make([]UV, len(m.Points))
	m.ResetDerived()

	if err := m.Validate(); err != nil {
		return nil, err
	}

	m.RecomputeNormals()
	m.RecomputeTexCoords()

	return m, nil
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Points)
}

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Clear empties every array of the mesh.
func (m *Mesh) Clear() {
	m.Faces = m.Faces[:0]
	m.Points = m.Points[:0]
	m.Normals = m.Normals[:0]
	m.UVs = m.UVs[:0]
	m.ResetDerived()
}

// ResetDerived replaces the curvature, radial and eligibility arrays with
// zero values sized to the current vertex count.
func (m *Mesh) ResetDerived() {
	n := len(m.Points)
	m.Kappa1 = make([]float64, n)
	m.Kappa2 = make([]float64, n)
	m.Dir1 = make([]vec3.T, n)
	m.Dir2 = make([]vec3.T, n)
	m.Radial = make([]float64, n)
	m.Eligible = make([]bool, n)
}

// Validate checks that every face index addresses a vertex and that every
// per-vertex array has the same length. Errors wrap ErrInvalidMesh.
func (m *Mesh) Validate() error {
	n := len(m.Points)

	lengths := []struct {
		name string
		len  int
	}{
		{"normals", len(m.Normals)},
		{"uvs", len(m.UVs)},
		{"kappa1", len(m.Kappa1)},
		{"kappa2", len(m.Kappa2)},
		{"dir1", len(m.Dir1)},
		{"dir2", len(m.Dir2)},
		{"radial", len(m.Radial)},
		{"eligible", len(m.Eligible)},
	}
	for _, l := range lengths {
		if l.len != n {
			return fmt.Errorf("%w: %d %s for %d vertices", ErrInvalidMesh, l.len, l.name, n)
		}
	}

	for i, tri := range m.Faces {
		for _, v := range tri {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidMesh, i, v, n)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Faces:    append([]Tri(nil), m.Faces...),
		Points:   append([]vec3.T(nil), m.Points...),
		Normals:  append([]vec3.T(nil), m.Normals...),
		UVs:      append([]UV(nil), m.UVs...),
		Kappa1:   append([]float64(nil), m.Kappa1...),
		Kappa2:   append([]float64(nil), m.Kappa2...),
		Dir1:     append([]vec3.T(nil), m.Dir1...),
		Dir2:     append([]vec3.T(nil), m.Dir2...),
		Radial:   append([]float64(nil), m.Radial...),
		Eligible: append([]bool(nil), m.Eligible...),
	}
}
