package meshio

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrMalformed is matched by every *ParseError.
	ErrMalformed = errors.New("meshio: malformed mesh file")

	// ErrUnknownFormat is returned for a path whose extension names no
	// supported format.
	ErrUnknownFormat = errors.New("meshio: unknown mesh format")
)

// ParseError locates a problem in a mesh file.
type ParseError struct {
	Format string // "off" or "obj"
	Line   int    // 1-based, 0 when the file ended early
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("%s: %v", e.Format, e.Err)
	case e.Token == "":
		return fmt.Sprintf("%s:%d: %v", e.Format, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %q: %v", e.Format, e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrMalformed for every parse error.
func (e *ParseError) Is(target error) bool { return target == ErrMalformed }

var (
	errEOF        = errors.New("unexpected end of file")
	errRange      = errors.New("vertex index out of range")
	errFaceSize   = errors.New("only triangles are supported")
	errCount      = errors.New("element count out of range")
	errFaceTokens = errors.New("face needs at least three vertices")
	errVertex     = errors.New("vertex needs three coordinates")
)
