package internal

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve2 solves the 2x2 system
//
//	a x + b y = f
//	c x + d y = s
//
// and reports false when the determinant is negligible against the scale of
// the matrix entries.
func Solve2(a, b, c, d, f, s float64) (x, y float64, ok bool) {
	det := a*d - b*c
	scale := math.Max(math.Abs(a*d), math.Abs(b*c))
	if scale == 0 || math.Abs(det) <= Epsilon*scale {
		return 0, 0, false
	}

	x = (f*d - b*s) / det
	y = (a*s - c*f) / det
	return x, y, true
}

// SymEigen2 decomposes the symmetric matrix [[a, b], [b, d]].
//
// **returns**
// + the eigenvalues in ascending order
// + the matching unit eigenvectors, vecs[i] belongs to vals[i]
// + false if the factorization failed
func SymEigen2(a, b, d float64) (vals [2]float64, vecs [2][2]float64, ok bool) {
	sym := mat.NewSymDense(2, []float64{
		a, b,
		b, d,
	})

	var eigen mat.EigenSym
	if !eigen.Factorize(sym, true) {
		return vals, vecs, false
	}

	values := eigen.Values(nil)
	var vectors mat.Dense
	eigen.VectorsTo(&vectors)

	// Eigenvalues are in ascending order, eigenvectors are the columns.
	for i := 0; i < 2; i++ {
		vals[i] = values[i]
		vecs[i] = [2]float64{vectors.At(0, i), vectors.At(1, i)}
	}

	return vals, vecs, true
}
