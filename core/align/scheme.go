package align

import "biosci-core/seq"

// Mode is global (Needleman–Wunsch) or local (Smith–Waterman).
type Mode int

const (
	GlobalMode Mode = iota
	LocalMode
)

func (m Mode) String() string {
	if m == LocalMode {
		return "local"
	}
	return "global"
}

// ParseMode accepts "global", "local" or "" (global).
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "global":
		return GlobalMode, nil
	case "local":
		return LocalMode, nil
	}
	return GlobalMode, seq.Errorf(seq.InvalidArgument, "unknown alignment mode %q; want global or local", s)
}

// Scheme scores an alignment. A gap of length k costs
// GapOpen + (k-1)*GapExtend; equal values give linear gaps. When Matrix
// names a substitution matrix, Match and Mismatch are ignored.
type Scheme struct {
	Match     int
	Mismatch  int
	GapOpen   int
	GapExtend int
	Matrix    string
}

// DefaultScheme is +1/-1 with linear -1 gaps.
var DefaultScheme = Scheme{Match: 1, Mismatch: -1, GapOpen: -1, GapExtend: -1}

// Affine reports whether opening a gap costs differently from extending it.
func (s Scheme) Affine() bool { return s.GapOpen != s.GapExtend }

// Validate checks the scheme and returns its substitution function.
func (s Scheme) Validate() (func(x, y byte) int, error) {
	if s.GapOpen > 0 || s.GapExtend > 0 {
		return nil, seq.Errorf(seq.InvalidArgument, "gap penalties must be <= 0, got open %d extend %d", s.GapOpen, s.GapExtend)
	}
	if s.Matrix != "" {
		m, ok := LookupMatrix(s.Matrix)
		if !ok {
			return nil, seq.Errorf(seq.InvalidArgument, "unknown substitution matrix %q", s.Matrix)
		}
		return m.Score, nil
	}
	if s.Match <= s.Mismatch {
		return nil, seq.Errorf(seq.InvalidArgument, "match score %d must exceed mismatch %d", s.Match, s.Mismatch)
	}
	match, mismatch := s.Match, s.Mismatch
	return func(x, y byte) int {
		if x == y {
			return match
		}
		return mismatch
	}, nil
}

// Limits bounds the quadratic cost of an alignment.
type Limits struct {
	MaxCombinedLength int // 0 disables the check
}

// DefaultLimits caps len(a)+len(b) at 10 000.
var DefaultLimits = Limits{MaxCombinedLength: 10000}

func (l Limits) check(a, b []byte) error {
	if l.MaxCombinedLength > 0 && len(a)+len(b) > l.MaxCombinedLength {
		return seq.Errorf(seq.SizeLimitExceeded, "combined length %d exceeds limit %d", len(a)+len(b), l.MaxCombinedLength)
	}
	return nil
}
