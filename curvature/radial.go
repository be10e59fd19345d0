package curvature

import (
	"math"

	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/frippiat/SuggestiveContours/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Radial returns the radial curvature of every vertex seen from cam, using
// the principal curvatures and directions stored in m:
//
//	kr = k1 cos^2(phi) + k2 sin^2(phi)
//
// where cos(phi) is the dot product of the unit view vector w = cam - p with
// Dir1 and sin(phi) is the non-negative root of 1 - cos^2(phi). Vertices
// whose curvatures are both exactly zero keep the value already in
// m.Radial. m is not modified.
func Radial(m *suggestive.Mesh, cam vec3.T) ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	radial := append([]float64(nil), m.Radial...)

	for v := range m.Points {
		k1, k2 := m.Kappa1[v], m.Kappa2[v]
		if k1 == 0 && k2 == 0 {
			continue
		}

		w := vec3.Sub(&cam, &m.Points[v])
		internal.Normalize(&w)
		d1 := internal.Normalized(m.Dir1[v])

		cos := vec3.Dot(&w, &d1)
		sin := math.Sqrt(math.Max(0, 1-cos*cos))

		radial[v] = k1*cos*cos + k2*sin*sin
	}

	return radial, nil
}

// UpdateRadial computes the radial curvature from cam and stores it in the
// mesh.
func UpdateRadial(m *suggestive.Mesh, cam vec3.T) error {
	radial, err := Radial(m, cam)
	if err != nil {
		return err
	}
	m.Radial = radial
	return nil
}
