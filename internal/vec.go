package internal

import "github.com/ungerik/go3d/float64/vec3"

// Normalize scales v to unit length in place and reports whether v had a
// non-zero length. A zero vector is left unchanged.
//
// Unlike vec3.T.Normalize it has no epsilon cut-off, so the tiny normals of
// a finely tessellated mesh still come out unit length.
func Normalize(v *vec3.T) bool {
	l := v.Length()
	if l == 0 {
		return false
	}
	v.Scale(1 / l)
	return true
}

// Normalized returns a unit length copy of v, or the zero vector.
func Normalized(v vec3.T) vec3.T {
	Normalize(&v)
	return v
}

// ProjectTangent removes from v its component along the unit normal n.
func ProjectTangent(v, n *vec3.T) vec3.T {
	along := n.Scaled(vec3.Dot(v, n))
	return vec3.Sub(v, &along)
}
