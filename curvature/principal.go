// Package curvature estimates per-vertex principal curvatures and the view
// dependent radial curvature of a triangle mesh.
package curvature

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/frippiat/SuggestiveContours/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// ErrNormalsRequired is returned when the mesh has no normal per vertex.
var ErrNormalsRequired = errors.New("curvature: vertex normals required")

// Principal holds per-vertex principal curvatures and directions.
type Principal struct {
	Kappa1, Kappa2 []float64
	Dir1, Dir2     []vec3.T

	// Skipped counts faces left out because their first fundamental form
	// is singular.
	Skipped int
}

// tensor is a symmetric 2x2 matrix accumulated in a vertex tangent frame.
type tensor [2][2]float64

// Estimate computes the principal curvatures and directions of every vertex
// from the per-face shape operators. It reads Points, Faces and Normals and
// does not modify m.
//
// The shape operator of a face is built in the basis of its two edges from
// the first fundamental form (E, F, G) of the edges and the second
// fundamental form (L, M, N) of the normal differences along them, with
// L = -dn1.e1. For outward facing normals a convex region therefore has
// negative curvatures. Each face operator is expressed in the tangent frame
// of each of its vertices and averaged there; the eigen decomposition of the
// average gives Kappa1 <= Kappa2 and their directions. Vertices with no
// usable face keep zero curvature and zero directions.
func Estimate(m *suggestive.Mesh) (*Principal, error) {
	if len(m.Normals) != len(m.Points) {
		return nil, fmt.Errorf("%w: %d normals for %d vertices", ErrNormalsRequired, len(m.Normals), len(m.Points))
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	n := len(m.Points)
	frames := tangentFrames(m)
	sums := make([]tensor, n)
	counts := make([]int, n)

	res := &Principal{
		Kappa1: make([]float64, n),
		Kappa2: make([]float64, n),
		Dir1:   make([]vec3.T, n),
		Dir2:   make([]vec3.T, n),
	}

	for i := range m.Faces {
		tri := &m.Faces[i]
		w, ok := weingarten(m, tri)
		if !ok {
			res.Skipped++
			continue
		}

		for _, v := range tri {
			fr := &frames[v]
			if !fr.ok {
				continue
			}
			t, ok := w.inFrame(fr)
			if !ok {
				continue
			}
			for r := 0; r < 2; r++ {
				for c := 0; c < 2; c++ {
					sums[v][r][c] += t[r][c]
				}
			}
			counts[v]++
		}
	}

	for v := 0; v < n; v++ {
		if counts[v] == 0 {
			continue
		}

		k := float64(counts[v])
		a := sums[v][0][0] / k
		b := (sums[v][0][1] + sums[v][1][0]) / (2 * k)
		d := sums[v][1][1] / k

		vals, vecs, ok := internal.SymEigen2(a, b, d)
		if !ok {
			continue
		}

		fr := &frames[v]
		res.Kappa1[v], res.Kappa2[v] = vals[0], vals[1]
		res.Dir1[v] = fr.toWorld(vecs[0])
		res.Dir2[v] = vec3.Cross(&fr.n, &res.Dir1[v])
		internal.Normalize(&res.Dir2[v])
	}

	if res.Skipped > 0 {
		suggestive.Logger().Debug("curvature: skipped degenerate faces", "count", res.Skipped)
	}

	return res, nil
}

// Update estimates the principal curvatures of m and stores them in the mesh.
// On error the mesh is left untouched.
func Update(m *suggestive.Mesh) error {
	p, err := Estimate(m)
	if err != nil {
		return err
	}

	m.Kappa1, m.Kappa2 = p.Kappa1, p.Kappa2
	m.Dir1, m.Dir2 = p.Dir1, p.Dir2
	return nil
}
