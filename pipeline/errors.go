package pipeline

import "cogentcore.org/core/base/errors"

var errNoMesh = errors.New("pipeline: no mesh loaded")
