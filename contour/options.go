package contour

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrInvalidOptions is returned for thresholds or angles out of range.
	ErrInvalidOptions = errors.New("contour: invalid options")

	// ErrLengthMismatch is returned when the radial curvature slice does not
	// have one value per vertex.
	ErrLengthMismatch = errors.New("contour: radial curvature length mismatch")
)

// Options controls the eligibility classifier.
type Options struct {
	// High is the derivative at or above which a vertex is Strong.
	High float64 `json:"high" yaml:"high" toml:"high"`

	// Low is the derivative at or above which a vertex is Weak.
	Low float64 `json:"low" yaml:"low" toml:"low"`

	// ViewAngle in degrees. Vertices whose normal is within this angle of
	// the view direction are never eligible.
	ViewAngle float64 `json:"view_angle" yaml:"view_angle" toml:"view_angle"`
}

// DefaultOptions returns the thresholds 0.005 and 0.002 and a 20 degree
// view gate.
func DefaultOptions() Options {
	return Options{
		High:      0.005,
		Low:       0.002,
		ViewAngle: 20,
	}
}

// Validate reports ErrInvalidOptions unless Low <= High and the view angle
// lies in [0, 180].
func (o Options) Validate() error {
	switch {
	case math.IsNaN(o.High) || math.IsNaN(o.Low) || math.IsNaN(o.ViewAngle):
		return fmt.Errorf("%w: NaN value", ErrInvalidOptions)
	case o.Low > o.High:
		return fmt.Errorf("%w: low threshold %g above high threshold %g", ErrInvalidOptions, o.Low, o.High)
	case o.ViewAngle < 0 || o.ViewAngle > 180:
		return fmt.Errorf("%w: view angle %g outside [0, 180]", ErrInvalidOptions, o.ViewAngle)
	}
	return nil
}

func (o Options) cosViewAngle() float64 {
	return math.Cos(o.ViewAngle * math.Pi / 180)
}
