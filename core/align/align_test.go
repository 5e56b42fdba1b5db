package align

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"biosci-core/seq"
)

// rescore recomputes an alignment's score column by column.
func rescore(r Result, s Scheme) int {
	sub, _ := s.Validate()
	total := 0
	inA, inB := false, false
	for i := 0; i < len(r.AlignedA); i++ {
		x, y := r.AlignedA[i], r.AlignedB[i]
		switch {
		case y == Gap:
			if inA {
				total += s.GapExtend
			} else {
				total += s.GapOpen
			}
			inA, inB = true, false
		case x == Gap:
			if inB {
				total += s.GapExtend
			} else {
				total += s.GapOpen
			}
			inA, inB = false, true
		default:
			total += sub(x, y)
			inA, inB = false, false
		}
	}
	return total
}

func degap(s string) string { return strings.ReplaceAll(s, "-", "") }

func TestGlobalKnownAlignment(t *testing.T) {
	r, err := Global([]byte("ACGTACGT"), []byte("ACGTCGT"), DefaultScheme)
	if err != nil {
		t.Fatal(err)
	}
	if r.Score != 6 || r.AlignedA != "ACGTACGT" || r.AlignedB != "ACGT-CGT" {
		t.Fatalf("got %d %s/%s", r.Score, r.AlignedA, r.AlignedB)
	}
	if r.Gaps != 1 || r.Matches != 7 || r.Mode != GlobalMode {
		t.Fatalf("gaps %d matches %d mode %v", r.Gaps, r.Matches, r.Mode)
	}
	if r.StartA != 0 || r.EndA != 8 || r.StartB != 0 || r.EndB != 7 {
		t.Fatalf("spans %+v", r)
	}
}

func TestGlobalIdentical(t *testing.T) {
	s := Scheme{Match: 2, Mismatch: -1, GapOpen: -2, GapExtend: -2}
	r, _ := Global([]byte("GATTACA"), []byte("GATTACA"), s)
	if r.Score != 14 || r.Identity() != 1 {
		t.Fatalf("score %d identity %v", r.Score, r.Identity())
	}
}

func TestLocal(t *testing.T) {
	r, err := Local([]byte("AAACGTAAA"), []byte("CCCCGTCC"), DefaultScheme)
	if err != nil {
		t.Fatal(err)
	}
	if r.Score != 3 || r.AlignedA != "CGT" || r.AlignedB != "CGT" {
		t.Fatalf("got %d %s/%s", r.Score, r.AlignedA, r.AlignedB)
	}
	if r.StartA != 3 || r.EndA != 6 || r.StartB != 3 || r.EndB != 6 || r.Mode != LocalMode {
		t.Fatalf("spans %+v", r)
	}

	none, err := Local([]byte("AAAA"), []byte("TTTT"), DefaultScheme)
	if err != nil {
		t.Fatal(err)
	}
	if none.Score != 0 || none.AlignedA != "" || none.AlignedB != "" {
		t.Fatalf("want empty alignment, got %+v", none)
	}
}

func TestAffinePrefersOneGap(t *testing.T) {
	s := Scheme{Match: 2, Mismatch: -1, GapOpen: -5, GapExtend: -1}
	r, err := Global([]byte("AAAGGGTTT"), []byte("AAATTT"), s)
	if err != nil {
		t.Fatal(err)
	}
	if r.Score != 5 || r.AlignedB != "AAA---TTT" {
		t.Fatalf("got %d %s/%s", r.Score, r.AlignedA, r.AlignedB)
	}

	s = Scheme{Match: 1, Mismatch: -1, GapOpen: -3, GapExtend: -1}
	r, _ = Global([]byte("AAAA"), []byte("AA"), s)
	if r.Score != -2 || r.Gaps != 2 || rescore(r, s) != r.Score {
		t.Fatalf("got %d %s/%s", r.Score, r.AlignedA, r.AlignedB)
	}
}

func TestBLOSUM62(t *testing.T) {
	tests := []struct {
		x, y byte
		want int
	}{
		{'W', 'W', 11},
		{'A', 'R', -1},
		{'C', 'C', 9},
		{'B', 'D', 4},
		{'A', '*', -4},
		{'*', '*', 0},
		{'a', 'A', BLOSUM62.Score('X', 'A')},
	}
	for _, tc := range tests {
		if got := BLOSUM62.Score(tc.x, tc.y); got != tc.want {
			t.Errorf("Score(%c, %c) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
	if BLOSUM62.Score('J', 'A') != BLOSUM62.Score('X', 'A') {
		t.Fatalf("unknown symbols should score as X")
	}
	const syms = "ARNDCQEGHILKMFPSTWYVBZX*"
	for i := 0; i < len(syms); i++ {
		for j := 0; j < len(syms); j++ {
			if BLOSUM62.Score(syms[i], syms[j]) != BLOSUM62.Score(syms[j], syms[i]) {
				t.Fatalf("asymmetric at %c/%c", syms[i], syms[j])
			}
		}
	}
	r, err := Global([]byte("MKV"), []byte("MKV"), Scheme{Matrix: "BLOSUM62", GapOpen: -11, GapExtend: -1})
	if err != nil || r.Score != 14 {
		t.Fatalf("score %d, %v", r.Score, err)
	}
}

func TestSchemeValidation(t *testing.T) {
	bad := []Scheme{
		{Match: 1, Mismatch: 1, GapOpen: -1, GapExtend: -1},
		{Match: 1, Mismatch: -1, GapOpen: 1, GapExtend: -1},
		{Match: 1, Mismatch: -1, GapOpen: -1, GapExtend: 2},
		{Matrix: "pam250", GapOpen: -1, GapExtend: -1},
	}
	for _, s := range bad {
		if _, err := Global([]byte("A"), []byte("A"), s); !errors.Is(err, seq.ErrInvalidArgument) {
			t.Errorf("%+v: %v", s, err)
		}
	}
	if _, err := ParseMode("semi"); !errors.Is(err, seq.ErrInvalidArgument) {
		t.Errorf("ParseMode: %v", err)
	}
}

func TestSizeLimit(t *testing.T) {
	a := []byte(strings.Repeat("A", 6))
	if _, err := Align(a, a, DefaultScheme, GlobalMode, Limits{MaxCombinedLength: 10}); !errors.Is(err, seq.ErrSizeLimitExceeded) {
		t.Fatalf("got %v", err)
	}
	big := []byte(strings.Repeat("A", 5001))
	if _, err := Local(big, big[:5000], DefaultScheme); !errors.Is(err, seq.ErrSizeLimitExceeded) {
		t.Fatalf("default limit: %v", err)
	}
	if _, err := Align(a, a, DefaultScheme, GlobalMode, Limits{}); err != nil {
		t.Fatalf("zero limit disables the check: %v", err)
	}
}

func TestEmptyInputs(t *testing.T) {
	r, err := Global(nil, []byte("ACG"), DefaultScheme)
	if err != nil || r.Score != -3 || r.AlignedA != "---" || r.AlignedB != "ACG" {
		t.Fatalf("got %+v, %v", r, err)
	}
	r, _ = Global(nil, nil, DefaultScheme)
	if r.Score != 0 || r.AlignedA != "" {
		t.Fatalf("got %+v", r)
	}
}

func TestAlignmentInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randSeq := func(n int) []byte {
		b := make([]byte, n)
		for i := range b {
			b[i] = "ACGT"[rng.Intn(4)]
		}
		return b
	}
	schemes := []Scheme{
		DefaultScheme,
		{Match: 2, Mismatch: -1, GapOpen: -2, GapExtend: -2},
		{Match: 2, Mismatch: -3, GapOpen: -5, GapExtend: -2},
		{Match: 1, Mismatch: -2, GapOpen: -3, GapExtend: 0},
	}
	for iter := 0; iter < 200; iter++ {
		a, b := randSeq(rng.Intn(30)), randSeq(rng.Intn(30))
		for _, s := range schemes {
			g, err := Global(a, b, s)
			if err != nil {
				t.Fatal(err)
			}
			if len(g.AlignedA) != len(g.AlignedB) || degap(g.AlignedA) != string(a) || degap(g.AlignedB) != string(b) {
				t.Fatalf("global %s/%s: %s/%s", a, b, g.AlignedA, g.AlignedB)
			}
			if rescore(g, s) != g.Score {
				t.Fatalf("global %s/%s %+v: rescored %d, reported %d", a, b, s, rescore(g, s), g.Score)
			}

			l, err := Local(a, b, s)
			if err != nil {
				t.Fatal(err)
			}
			if len(l.AlignedA) != len(l.AlignedB) ||
				degap(l.AlignedA) != string(a[l.StartA:l.EndA]) ||
				degap(l.AlignedB) != string(b[l.StartB:l.EndB]) {
				t.Fatalf("local %s/%s: %+v", a, b, l)
			}
			if l.Score < 0 || rescore(l, s) != l.Score || l.Score < g.Score {
				t.Fatalf("local %s/%s %+v: score %d rescored %d global %d", a, b, s, l.Score, rescore(l, s), g.Score)
			}
		}

		// Gotoh with equal penalties must agree with the single-matrix score.
		sub, _ := DefaultScheme.Validate()
		if got, want := gotoh(a, b, sub, -1, -1, false).Score, linear(a, b, sub, -1, false).Score; got != want {
			t.Fatalf("%s/%s: gotoh %d linear %d", a, b, got, want)
		}
		if got, want := gotoh(a, b, sub, -1, -1, true).Score, linear(a, b, sub, -1, true).Score; got != want {
			t.Fatalf("%s/%s local: gotoh %d linear %d", a, b, got, want)
		}
	}
}
