package suggestive

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

//
// Get the area weighted normal of a triangle
//
// **params**
// + vertex positions
// + the triangle
//
// **returns**
// + cross(p1-p0, p2-p0), whose length is twice the triangle area
//
func FaceCross(points []vec3.T, tri *Tri) vec3.T {
	e1 := vec3.Sub(&points[tri[1]], &points[tri[0]])
	e2 := vec3.Sub(&points[tri[2]], &points[tri[0]])
	return vec3.Cross(&e1, &e2)
}

//
// Get the interior angles of a triangle
//
// **params**
// + vertex positions
// + the triangle
//
// **returns**
// + the angle at each corner in radians, in the order of the triangle's vertices;
// corners with a zero length edge get 0
//
func CornerAngles(points []vec3.T, tri *Tri) [3]float64 {
	var angles [3]float64

	for k := 0; k < 3; k++ {
		p := &points[tri[k]]
		a := vec3.Sub(&points[tri[(k+1)%3]], p)
		b := vec3.Sub(&points[tri[(k+2)%3]], p)

		la, lb := a.Length(), b.Length()
		if la == 0 || lb == 0 {
			continue
		}

		cos := vec3.Dot(&a, &b) / (la * lb)
		angles[k] = math.Acos(math.Max(-1, math.Min(1, cos)))
	}

	return angles
}
