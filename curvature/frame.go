package curvature

import (
	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/frippiat/SuggestiveContours/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// frame is an orthonormal tangent basis (t1, t2) at a vertex with normal n,
// t2 = n x t1.
type frame struct {
	n, t1, t2 vec3.T
	ok        bool
}

func (fr *frame) toWorld(c [2]float64) vec3.T {
	d := fr.t1.Scaled(c[0])
	t2 := fr.t2.Scaled(c[1])
	d.Add(&t2)
	internal.Normalize(&d)
	return d
}

// tangentFrames builds one frame per vertex from the first face that uses it.
// t1 is the outgoing edge of that face projected onto the tangent plane,
// falling back to the other edge and then to any vector orthogonal to n.
// Vertices with a zero normal or no face get no frame.
func tangentFrames(m *suggestive.Mesh) []frame {
	frames := make([]frame, len(m.Points))
	seen := make([]bool, len(m.Points))

	for i := range m.Faces {
		tri := &m.Faces[i]
		for k, v := range tri {
			if seen[v] {
				continue
			}
			seen[v] = true

			fr := &frames[v]
			fr.n = m.Normals[v]
			if !internal.Normalize(&fr.n) {
				continue
			}

			p := &m.Points[v]
			next := vec3.Sub(&m.Points[tri[(k+1)%3]], p)
			prev := vec3.Sub(&m.Points[tri[(k+2)%3]], p)

			fr.t1 = internal.ProjectTangent(&next, &fr.n)
			if !internal.Normalize(&fr.t1) {
				fr.t1 = internal.ProjectTangent(&prev, &fr.n)
				if !internal.Normalize(&fr.t1) {
					fr.t1 = fr.n.Normal()
					internal.Normalize(&fr.t1)
				}
			}
			fr.t2 = vec3.Cross(&fr.n, &fr.t1)
			internal.Normalize(&fr.t2)
			fr.ok = true
		}
	}

	return frames
}
