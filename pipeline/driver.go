// Package pipeline runs the mesh analysis stages in order and keeps their
// results consistent when the mesh or the camera changes.
package pipeline

import (
	"fmt"

	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/frippiat/SuggestiveContours/contour"
	"github.com/frippiat/SuggestiveContours/curvature"
	"github.com/frippiat/SuggestiveContours/meshio"
	"github.com/frippiat/SuggestiveContours/subdiv"
	"github.com/ungerik/go3d/float64/vec3"
)

// Options configures a Driver.
type Options struct {
	// Subdivisions is the number of Loop steps Run applies.
	Subdivisions int

	// Camera is the eye position, nil to place it with DefaultCamera.
	Camera *vec3.T

	Contour contour.Options
}

// DefaultOptions returns one subdivision step, an automatic camera and the
// default contour thresholds.
func DefaultOptions() Options {
	return Options{
		Subdivisions: 1,
		Contour:      contour.DefaultOptions(),
	}
}

// Validate checks the options.
func (o *Options) Validate() error {
	if o.Subdivisions < 0 {
		return fmt.Errorf("pipeline: negative subdivision count %d", o.Subdivisions)
	}
	return o.Contour.Validate()
}

// DefaultCamera places the eye on the +Z axis of the bounding sphere of m,
// three radii from its center.
func DefaultCamera(m *suggestive.Mesh) vec3.T {
	center, radius := m.BoundingSphere()
	return vec3.T{center[0], center[1], center[2] + 3*radius}
}

// Driver owns a mesh and a camera. Every call runs the stages that depend
// on what changed: a new mesh recomputes curvature, radial curvature and
// eligibility, a camera move only the last two. A failing stage leaves the
// results of the previous run in place.
type Driver struct {
	opts   Options
	mesh   *suggestive.Mesh
	camera vec3.T
}

// New returns a driver with no mesh.
func New(opts Options) (*Driver, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	d := &Driver{opts: opts}
	if opts.Camera != nil {
		d.camera = *opts.Camera
	}
	return d, nil
}

// Mesh returns the current mesh, nil before Load or SetMesh.
func (d *Driver) Mesh() *suggestive.Mesh { return d.mesh }

// Camera returns the current eye position.
func (d *Driver) Camera() vec3.T { return d.camera }

// Options returns the options the driver was built with.
func (d *Driver) Options() Options { return d.opts }

// Load reads a mesh file and analyzes it.
func (d *Driver) Load(path string) error {
	m, err := meshio.Load(path)
	if err != nil {
		return err
	}
	return d.SetMesh(m)
}

// SetMesh replaces the mesh and analyzes it. Without a fixed camera in the
// options the camera is placed with DefaultCamera.
func (d *Driver) SetMesh(m *suggestive.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	d.mesh = m
	if d.opts.Camera == nil {
		d.camera = DefaultCamera(m)
	}
	return d.analyze()
}

// Subdivide applies levels Loop steps to the mesh and analyzes the result.
// The camera is kept.
func (d *Driver) Subdivide(levels int) error {
	if d.mesh == nil {
		return errNoMesh
	}

	m, err := subdiv.LoopN(d.mesh, levels)
	if err != nil {
		return err
	}

	d.mesh = m
	return d.analyze()
}

// SetCamera moves the eye and recomputes the view dependent results.
func (d *Driver) SetCamera(p vec3.T) error {
	d.camera = p
	if d.mesh == nil {
		return nil
	}
	return d.view()
}

// Run subdivides the mesh the configured number of times, or only analyzes
// it when that number is zero.
func (d *Driver) Run() error {
	if d.mesh == nil {
		return errNoMesh
	}
	if d.opts.Subdivisions == 0 {
		return d.analyze()
	}
	return d.Subdivide(d.opts.Subdivisions)
}

func (d *Driver) analyze() error {
	if err := curvature.Update(d.mesh); err != nil {
		return err
	}
	return d.view()
}

func (d *Driver) view() error {
	if bb := d.mesh.BoundingBox(); bb.Contains(&d.camera, -1) {
		suggestive.Logger().Warn("pipeline: camera inside the mesh bounding box", "camera", d.camera)
	}

	if err := curvature.UpdateRadial(d.mesh, d.camera); err != nil {
		return err
	}
	if err := contour.Update(d.mesh, d.camera, d.opts.Contour); err != nil {
		return err
	}

	suggestive.Logger().Debug("pipeline: view updated",
		"camera", d.camera,
		"vertices", d.mesh.VertexCount(),
	)
	return nil
}
