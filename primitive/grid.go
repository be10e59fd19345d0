package primitive

import (
	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/ungerik/go3d/float64/vec3"
)

// HeightFunc gives the height of a grid at (x, y).
type HeightFunc func(x, y float64) float64

//
// Tessellate a height field over a square grid centered on the origin
//
// **params**
// + the number of cells along X, at least 1
// + the number of cells along Y, at least 1
// + the side length of the grid
// + the height function, nil for a flat grid
//
// **returns**
// + a mesh of (nx+1)*(ny+1) vertices and 2*nx*ny triangles facing +Z
//
func Grid(nx, ny int, size float64, height HeightFunc) *suggestive.Mesh {
	half := size / 2
	c0 := vec3.T{-half, -half, 0}
	c1 := vec3.T{half, -half, 0}
	c2 := vec3.T{half, half, 0}
	c3 := vec3.T{-half, half, 0}

	m := Patch(&c0, &c1, &c2, &c3, nx, ny)
	if height != nil {
		for i := range m.Points {
			p := &m.Points[i]
			p[2] = height(p[0], p[1])
		}
		m.RecomputeNormals()
	}
	return m
}

// Patch tessellates the bilinear quad p1 p2 p3 p4, given counter-clockwise,
// into divsU by divsV cells of two triangles each.
func Patch(p1, p2, p3, p4 *vec3.T, divsU, divsV int) *suggestive.Mesh {
	if divsU < 1 {
		divsU = 1
	}
	if divsV < 1 {
		divsV = 1
	}

	points := make([]vec3.T, 0, (divsU+1)*(divsV+1))
	for i := 0; i <= divsU; i++ {
		u := float64(i) / float64(divsU)
		bottom := vec3.Interpolate(p1, p2, u)
		top := vec3.Interpolate(p4, p3, u)

		for j := 0; j <= divsV; j++ {
			points = append(points, vec3.Interpolate(&bottom, &top, float64(j)/float64(divsV)))
		}
	}

	faces := make([]suggestive.Tri, 0, 2*divsU*divsV)
	for i := 0; i < divsU; i++ {
		for j := 0; j < divsV; j++ {
			ai := i*(divsV+1) + j
			bi := (i+1)*(divsV+1) + j
			ci := bi + 1
			di := ai + 1

			faces = append(faces, suggestive.Tri{ai, bi, ci}, suggestive.Tri{ai, ci, di})
		}
	}

	return mustMesh(points, faces)
}
