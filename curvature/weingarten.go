package curvature

import (
	"math"

	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/frippiat/SuggestiveContours/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// faceOperator is the shape operator of one face, as the matrix W acting on
// coordinates in the (e1, e2) edge basis, together with that basis.
type faceOperator struct {
	e1, e2  vec3.T
	E, F, G float64
	W       [2][2]float64
}

//
// Build the Weingarten matrix of a face
//
// **params**
// + the mesh, with normals
// + the face
//
// **returns**
// + the shape operator in the edge basis e1 = p1-p0, e2 = p2-p0
// + false when E*G - F*F is negligible (near collinear or zero length edges)
//
func weingarten(m *suggestive.Mesh, tri *suggestive.Tri) (faceOperator, bool) {
	var op faceOperator

	p0, p1, p2 := &m.Points[tri[0]], &m.Points[tri[1]], &m.Points[tri[2]]
	n0, n1, n2 := &m.Normals[tri[0]], &m.Normals[tri[1]], &m.Normals[tri[2]]

	op.e1 = vec3.Sub(p1, p0)
	op.e2 = vec3.Sub(p2, p0)
	dn1 := vec3.Sub(n1, n0)
	dn2 := vec3.Sub(n2, n0)

	// first fundamental form
	op.E = vec3.Dot(&op.e1, &op.e1)
	op.F = vec3.Dot(&op.e1, &op.e2)
	op.G = vec3.Dot(&op.e2, &op.e2)

	// second fundamental form
	L := -vec3.Dot(&dn1, &op.e1)
	M := -vec3.Dot(&dn1, &op.e2)
	N := -vec3.Dot(&dn2, &op.e2)

	det := op.E*op.G - op.F*op.F
	if !(det > internal.Epsilon*op.E*op.G) || math.IsInf(det, 0) {
		return op, false
	}

	// W = I^-1 II
	op.W = [2][2]float64{
		{(op.G*L - op.F*M) / det, (op.G*M - op.F*N) / det},
		{(op.E*M - op.F*L) / det, (op.E*N - op.F*M) / det},
	}

	return op, true
}

// coords returns the coordinates in the edge basis of the projection of t
// onto the plane of the face.
func (op *faceOperator) coords(t *vec3.T) ([2]float64, bool) {
	x, y, ok := internal.Solve2(op.E, op.F, op.F, op.G, vec3.Dot(&op.e1, t), vec3.Dot(&op.e2, t))
	return [2]float64{x, y}, ok
}

// inFrame expresses the operator in the orthonormal frame fr: entry (i, j)
// is t_i . W(t_j), where W(t_j) is mapped back to 3D through the edges.
func (op *faceOperator) inFrame(fr *frame) (tensor, bool) {
	var t tensor
	axes := [2]*vec3.T{&fr.t1, &fr.t2}

	for j, tj := range axes {
		c, ok := op.coords(tj)
		if !ok {
			return t, false
		}

		a := op.W[0][0]*c[0] + op.W[0][1]*c[1]
		b := op.W[1][0]*c[0] + op.W[1][1]*c[1]
		image := op.e1.Scaled(a)
		e2 := op.e2.Scaled(b)
		image.Add(&e2)

		for i, ti := range axes {
			t[i][j] = vec3.Dot(ti, &image)
		}
	}

	return t, true
}
