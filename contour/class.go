package contour

import "fmt"

// Class is the hysteresis state of a vertex. The only transition after the
// initial thresholding is Weak to Strong.
type Class uint8

const (
	None Class = iota
	Weak
	Strong
)

func (c Class) String() string {
	switch c {
	case None:
		return "none"
	case Weak:
		return "weak"
	case Strong:
		return "strong"
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// threshold maps a directional derivative to its initial class.
func threshold(deriv float64, o *Options) Class {
	switch {
	case deriv >= o.High:
		return Strong
	case deriv >= o.Low:
		return Weak
	}
	return None
}
