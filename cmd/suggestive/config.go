package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frippiat/SuggestiveContours/contour"
	"github.com/frippiat/SuggestiveContours/pipeline"
	"github.com/mitchellh/go-homedir"
	"github.com/ungerik/go3d/float64/vec3"
)

// Config is filled from defaults, suggestive.toml and the command line.
type Config struct {

	// the mesh file to read, .off or .obj
	Mesh string `posarg:"0" required:"-"`

	// the number of Loop subdivision steps
	Subdivisions int `default:"1" flag:"n,subdivisions"`

	// the eye position as "x,y,z"; empty places it on +Z at three times the bounding radius
	Camera string

	// the directional derivative at or above which a vertex is a contour vertex
	High float64 `default:"0.005"`

	// the directional derivative at or above which a vertex may join a contour
	Low float64 `default:"0.002"`

	// the angle in degrees between normal and view direction below which vertices are ignored
	ViewAngle float64 `default:"20"`

	// the file to write the summary to (.yaml, .toml or .json); empty prints YAML
	Summary string `flag:"s,summary"`

	// whether the summary lists every vertex
	Records bool

	// the file subdivide writes the mesh to, .off or .obj
	Output string `flag:"o,output"`
}

// PipelineOptions converts the configuration to driver options.
func (c *Config) PipelineOptions() (pipeline.Options, error) {
	opts := pipeline.Options{
		Subdivisions: c.Subdivisions,
		Contour: contour.Options{
			High:      c.High,
			Low:       c.Low,
			ViewAngle: c.ViewAngle,
		},
	}

	if c.Camera != "" {
		cam, err := parseVec(c.Camera)
		if err != nil {
			return opts, fmt.Errorf("camera: %w", err)
		}
		opts.Camera = &cam
	}

	return opts, opts.Validate()
}

// MeshPath returns the mesh path with a leading ~ expanded.
func (c *Config) MeshPath() (string, error) {
	if c.Mesh == "" {
		return "", fmt.Errorf("no mesh file given")
	}
	return homedir.Expand(c.Mesh)
}

func parseVec(s string) (vec3.T, error) {
	var v vec3.T

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("want x,y,z, got %q", s)
	}
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, err
		}
		v[i] = x
	}
	return v, nil
}
