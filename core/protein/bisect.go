// Package protein computes physicochemical properties of amino-acid sequences.
package protein

import (
	"math"

	"biosci-core/seq"
)

// Bisect finds a root of a monotonic f on [lo, hi]. The interval must
// bracket a sign change. It stops once the bracket is narrower than tol and
// fails with NonConvergent after maxIter halvings.
func Bisect(f func(float64) float64, lo, hi, tol float64, maxIter int) (float64, error) {
	if lo > hi {
		lo, hi = hi, lo
	}
	flo, fhi := f(lo), f(hi)
	switch {
	case flo == 0:
		return lo, nil
	case fhi == 0:
		return hi, nil
	case math.Signbit(flo) == math.Signbit(fhi):
		return 0, seq.Errorf(seq.InvalidArgument, "f(%g)=%g and f(%g)=%g do not bracket a root", lo, flo, hi, fhi)
	}
	for i := 0; i < maxIter; i++ {
		mid := lo + (hi-lo)/2
		if hi-lo < tol {
			return mid, nil
		}
		fm := f(mid)
		if fm == 0 {
			return mid, nil
		}
		if math.Signbit(fm) == math.Signbit(flo) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return 0, seq.Errorf(seq.NonConvergent, "no root within %g after %d iterations", tol, maxIter)
}
