package suggestive

import "cogentcore.org/core/base/errors"

// ErrInvalidMesh is wrapped by every mesh validation failure.
var ErrInvalidMesh = errors.New("invalid mesh")
