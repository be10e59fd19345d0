package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	suggestive "github.com/frippiat/SuggestiveContours"
	"github.com/pelletier/go-toml/v2"
	"github.com/ungerik/go3d/float64/vec3"
	"gopkg.in/yaml.v3"
)

// Range summarizes a per-vertex scalar.
type Range struct {
	Min  float64 `json:"min" yaml:"min" toml:"min"`
	Max  float64 `json:"max" yaml:"max" toml:"max"`
	Mean float64 `json:"mean" yaml:"mean" toml:"mean"`
}

// Bounds is the axis aligned box of the vertex positions.
type Bounds struct {
	Min         [3]float64 `json:"min" yaml:"min,flow" toml:"min"`
	Max         [3]float64 `json:"max" yaml:"max,flow" toml:"max"`
	Center      [3]float64 `json:"center" yaml:"center,flow" toml:"center"`
	LongestAxis int        `json:"longest_axis" yaml:"longest_axis" toml:"longest_axis"`
}

// VertexRecord holds the analysis results of one vertex.
type VertexRecord struct {
	Index    int        `json:"index" yaml:"index" toml:"index"`
	Position [3]float64 `json:"position" yaml:"position,flow" toml:"position"`
	Kappa1   float64    `json:"kappa1" yaml:"kappa1" toml:"kappa1"`
	Kappa2   float64    `json:"kappa2" yaml:"kappa2" toml:"kappa2"`
	Radial   float64    `json:"radial" yaml:"radial" toml:"radial"`
	Eligible bool       `json:"eligible" yaml:"eligible" toml:"eligible"`
}

// Summary reports the size of a mesh and the ranges of its analysis results.
type Summary struct {
	Vertices      int        `json:"vertices" yaml:"vertices" toml:"vertices"`
	Faces         int        `json:"faces" yaml:"faces" toml:"faces"`
	Edges         int        `json:"edges" yaml:"edges" toml:"edges"`
	BoundaryEdges int        `json:"boundary_edges" yaml:"boundary_edges" toml:"boundary_edges"`
	Camera        [3]float64 `json:"camera" yaml:"camera,flow" toml:"camera"`
	Radius        float64    `json:"radius" yaml:"radius" toml:"radius"`
	Bounds        Bounds     `json:"bounds" yaml:"bounds" toml:"bounds"`

	Kappa1 Range `json:"kappa1" yaml:"kappa1" toml:"kappa1"`
	Kappa2 Range `json:"kappa2" yaml:"kappa2" toml:"kappa2"`
	Radial Range `json:"radial" yaml:"radial" toml:"radial"`

	Eligible int `json:"eligible" yaml:"eligible" toml:"eligible"`

	Records []VertexRecord `json:"records,omitempty" yaml:"records,omitempty" toml:"records,omitempty"`
}

// Summarize collects the summary of m seen from cam, with one record per
// vertex when records is set.
func Summarize(m *suggestive.Mesh, cam vec3.T, records bool) *Summary {
	edges, _ := m.EdgeTable()
	_, radius := m.BoundingSphere()
	bb := m.BoundingBox()

	s := &Summary{
		Vertices: m.VertexCount(),
		Faces:    m.FaceCount(),
		Edges:    len(edges),
		Camera:   cam,
		Radius:   radius,
		Bounds: Bounds{
			Min:         bb.Min,
			Max:         bb.Max,
			Center:      bb.Center(),
			LongestAxis: bb.LongestAxis(),
		},
		Kappa1:   rangeOf(m.Kappa1),
		Kappa2:   rangeOf(m.Kappa2),
		Radial:   rangeOf(m.Radial),
	}
	for i := range edges {
		if edges[i].Boundary() {
			s.BoundaryEdges++
		}
	}
	for _, e := range m.Eligible {
		if e {
			s.Eligible++
		}
	}

	if records {
		s.Records = make([]VertexRecord, m.VertexCount())
		for v := range s.Records {
			s.Records[v] = VertexRecord{
				Index:    v,
				Position: m.Points[v],
				Kappa1:   m.Kappa1[v],
				Kappa2:   m.Kappa2[v],
				Radial:   m.Radial[v],
				Eligible: m.Eligible[v],
			}
		}
	}

	return s
}

// Summary summarizes the current mesh, nil before a mesh is set.
func (d *Driver) Summary(records bool) *Summary {
	if d.mesh == nil {
		return nil
	}
	return Summarize(d.mesh, d.camera, records)
}

func rangeOf(values []float64) Range {
	if len(values) == 0 {
		return Range{}
	}

	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, x := range values {
		r.Min = math.Min(r.Min, x)
		r.Max = math.Max(r.Max, x)
		sum += x
	}
	r.Mean = sum / float64(len(values))
	return r
}

// EncodeSummary writes s to w as "yaml", "toml" or "json".
func EncodeSummary(w io.Writer, s *Summary, format string) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(s)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	return fmt.Errorf("pipeline: unknown summary format %q", format)
}

// WriteSummary writes s to path in the format named by its extension.
func WriteSummary(path string, s *Summary) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch format {
	case "yaml", "yml", "toml", "json":
	default:
		return fmt.Errorf("pipeline: unknown summary format %q", format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return EncodeSummary(f, s, format)
}
