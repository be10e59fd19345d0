package internal

const (
	// Epsilon bounds relative round-off in determinant tests.
	Epsilon = 1e-10

	// DegenerateArea is the smallest |cross(e1, e2)| a face may have before
	// gradient computations skip it.
	DegenerateArea = 1e-8
)
