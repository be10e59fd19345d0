// Package contour classifies mesh vertices as suggestive contour candidates
// from the directional derivative of radial curvature, with a view angle gate
// and double threshold hysteresis over the vertex one-ring.
package contour

import (
	"fmt"

	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/frippiat/SuggestiveContours/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Classify returns the final class of every vertex seen from cam.
//
// The derivative of the radial curvature along the view direction projected
// onto the tangent plane is compared against the thresholds. Only vertices
// with n.w < cos(ViewAngle), w the unit view vector, are considered at all.
// Weak vertices connected to a Strong one through Weak vertices are then
// promoted by Hysteresis.
func Classify(m *suggestive.Mesh, radial []float64, cam vec3.T, opts Options) ([]Class, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	grads, skipped, err := Gradients(m, radial)
	if err != nil {
		return nil, err
	}

	classes := make([]Class, len(m.Points))
	gate := opts.cosViewAngle()

	for v := range m.Points {
		w := vec3.Sub(&cam, &m.Points[v])
		internal.Normalize(&w)
		n := internal.Normalized(m.Normals[v])

		if !(vec3.Dot(&n, &w) < gate) {
			continue
		}

		dir := internal.ProjectTangent(&w, &n)
		if !internal.Normalize(&dir) {
			continue
		}

		classes[v] = threshold(vec3.Dot(&dir, &grads[v]), &opts)
	}

	passes := Hysteresis(classes, m.Neighbors())

	suggestive.Logger().Debug("contour: classified vertices",
		"vertices", len(classes),
		"skipped_faces", skipped,
		"hysteresis_passes", passes,
	)

	return classes, nil
}

// Hysteresis promotes every Weak vertex with a Strong neighbour to Strong,
// scanning all vertices until a pass changes nothing. It returns the number
// of passes including the final unchanged one. Running it again on its own
// result is a no-op.
func Hysteresis(classes []Class, adj *suggestive.Adjacency) int {
	passes := 0
	for {
		passes++
		changed := false

		for v, c := range classes {
			if c != Weak || v >= adj.Len() {
				continue
			}
			for _, u := range adj.Of(v) {
				if classes[u] == Strong {
					classes[v] = Strong
					changed = true
					break
				}
			}
		}

		if !changed {
			return passes
		}
	}
}

// Eligible reports for every vertex whether it classifies as Strong.
func Eligible(m *suggestive.Mesh, radial []float64, cam vec3.T, opts Options) ([]bool, error) {
	classes, err := Classify(m, radial, cam, opts)
	if err != nil {
		return nil, err
	}

	eligible := make([]bool, len(classes))
	for v, c := range classes {
		eligible[v] = c == Strong
	}
	return eligible, nil
}

// Update classifies m using its stored radial curvature and stores the
// result in m.Eligible.
func Update(m *suggestive.Mesh, cam vec3.T, opts Options) error {
	eligible, err := Eligible(m, m.Radial, cam, opts)
	if err != nil {
		return fmt.Errorf("contour: %w", err)
	}
	m.Eligible = eligible
	return nil
}
