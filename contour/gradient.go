package contour

import (
	"fmt"

	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/frippiat/SuggestiveContours/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

//
// Estimate the gradient of a per-vertex scalar field
//
// Each face contributes the gradient of the linear interpolation of the
// field over it, sum_i f_i * grad(lambda_i), where lambda_i are the
// barycentric coordinates. A vertex averages the gradients of its faces
// weighted by the interior angle of each face at that vertex. Faces with
// |cross(e1, e2)| below internal.DegenerateArea are skipped.
//
// **params**
// + the mesh
// + the field, one value per vertex
//
// **returns**
// + one gradient per vertex, zero for vertices without a usable face
// + the number of skipped faces
// + ErrLengthMismatch if the field does not match the vertex count
//
func Gradients(m *suggestive.Mesh, field []float64) ([]vec3.T, int, error) {
	if len(field) != len(m.Points) {
		return nil, 0, fmt.Errorf("%w: %d values for %d vertices", ErrLengthMismatch, len(field), len(m.Points))
	}
	if err := m.Validate(); err != nil {
		return nil, 0, err
	}

	acc := make([]vec3.T, len(m.Points))
	weight := make([]float64, len(m.Points))
	skipped := 0

	for i := range m.Faces {
		tri := &m.Faces[i]

		n := suggestive.FaceCross(m.Points, tri)
		area := n.Length()
		if area < internal.DegenerateArea {
			skipped++
			continue
		}
		n.Scale(1 / area)

		var g vec3.T
		for k := 0; k < 3; k++ {
			// grad(lambda_k) = n x (p_next2 - p_next) / |cross|
			pj := &m.Points[tri[(k+1)%3]]
			pk := &m.Points[tri[(k+2)%3]]
			opp := vec3.Sub(pk, pj)
			grad := vec3.Cross(&n, &opp)
			grad.Scale(field[tri[k]] / area)
			g.Add(&grad)
		}

		angles := suggestive.CornerAngles(m.Points, tri)
		for k, v := range tri {
			contrib := g.Scaled(angles[k])
			acc[v].Add(&contrib)
			weight[v] += angles[k]
		}
	}

	for v := range acc {
		if weight[v] > 0 {
			acc[v].Scale(1 / weight[v])
		} else {
			acc[v] = vec3.Zero
		}
	}

	return acc, skipped, nil
}
