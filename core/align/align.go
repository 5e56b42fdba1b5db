// Package align implements pairwise global and local alignment with linear
// or affine gap costs. Scores are kept in two rolling rows; only the
// traceback is stored for every cell, one byte each.
package align

// Global aligns a and b end to end under DefaultLimits.
func Global(a, b []byte, s Scheme) (Result, error) {
	return Align(a, b, s, GlobalMode, DefaultLimits)
}

// Local finds the best-scoring pair of substrings under DefaultLimits.
func Local(a, b []byte, s Scheme) (Result, error) {
	return Align(a, b, s, LocalMode, DefaultLimits)
}

// Align dispatches on mode and on whether the gap model is affine.
func Align(a, b []byte, s Scheme, mode Mode, lim Limits) (Result, error) {
	if err := lim.check(a, b); err != nil {
		return Result{}, err
	}
	sub, err := s.Validate()
	if err != nil {
		return Result{}, err
	}
	local := mode == LocalMode
	var r Result
	if s.Affine() {
		r = gotoh(a, b, sub, s.GapOpen, s.GapExtend, local)
	} else {
		r = linear(a, b, sub, s.GapOpen, local)
	}
	r.Mode = mode
	return r, nil
}

// negInf leaves headroom so adding penalties never wraps.
const negInf = -1 << 30
