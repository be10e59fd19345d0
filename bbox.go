package suggestive

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

const BoundingBoxTolerance = 1e-4

// The zero value for BoundingBox is ready to use
type BoundingBox struct {
	Min, Max    vec3.T
	initialized bool
}

// Adds a point to the bounding box, expanding the bounding box if the point is outside of it.
// If the bounding box is not initialized, this method has that side effect.
//
// **params**
// + the point
//
// **returns**
// + This BoundingBox for chaining
func (bb *BoundingBox) Add(point *vec3.T) *BoundingBox {
	if !bb.initialized {
		bb.Min = *point
		bb.Max = *point
		bb.initialized = true

		return bb
	}

	for i, val := range point {
		if val > bb.Max[i] {
			bb.Max[i] = val
		}
		if val < bb.Min[i] {
			bb.Min[i] = val
		}
	}

	return bb
}

// Add a slice of points to the bounding box
//
// **returns**
// + this BoundingBox for chaining
func (bb *BoundingBox) AddRange(points []vec3.T) *BoundingBox {
	for i := range points {
		bb.Add(&points[i])
	}

	return bb
}

// Empty reports whether no point has been added yet.
func (bb *BoundingBox) Empty() bool {
	return !bb.initialized
}

// Determines if point is contained in the bounding box
//
// **params**
// + the point
// + the tolerance, negative for BoundingBoxTolerance
//
// **returns**
// + true if the point lies inside the box grown by the tolerance
func (bb *BoundingBox) Contains(point *vec3.T, tol float64) bool {
	if !bb.initialized {
		return false
	}
	if tol < 0 {
		tol = BoundingBoxTolerance
	}

	for i, val := range point {
		if val < bb.Min[i]-tol || val > bb.Max[i]+tol {
			return false
		}
	}

	return true
}

// Get longest axis of bounding box
//
// **returns**
// + Index of longest axis
func (bb *BoundingBox) LongestAxis() int {
	id, max := 0, 0.0

	for i := range bb.Min {
		l := bb.AxisLength(i)
		if l > max {
			max = l
			id = i
		}
	}

	return id
}

// Get length of given axis.
//
// **params**
// + Index of axis to inspect (between 0 and 2)
//
// **returns**
// + Length of the given axis.  If axis is out of bounds, returns 0.
func (bb *BoundingBox) AxisLength(i int) float64 {
	if i < 0 || i > len(bb.Min)-1 {
		return 0
	}
	return math.Abs(bb.Min[i] - bb.Max[i])
}

// Center returns the midpoint of the box.
func (bb *BoundingBox) Center() vec3.T {
	return vec3.Interpolate(&bb.Min, &bb.Max, 0.5)
}

// BoundingBox returns the axis aligned box of all vertex positions.
func (m *Mesh) BoundingBox() BoundingBox {
	var bb BoundingBox
	bb.AddRange(m.Points)
	return bb
}

// BoundingSphere returns a sphere enclosing every vertex: the center is the
// mean of the positions and the radius the largest distance to it. An empty
// mesh yields the origin and radius 0.
func (m *Mesh) BoundingSphere() (center vec3.T, radius float64) {
	if len(m.Points) == 0 {
		return vec3.Zero, 0
	}

	for i := range m.Points {
		center.Add(&m.Points[i])
	}
	center.Scale(1 / float64(len(m.Points)))

	for i := range m.Points {
		radius = math.Max(radius, vec3.Distance(&center, &m.Points[i]))
	}

	return center, radius
}
