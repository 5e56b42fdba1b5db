package composition

import (
	"errors"
	"testing"

	"biosci-core/seq"
)

func mustTm(t *testing.T, s string, o TmOptions) Thermo {
	t.Helper()
	r, err := MeltingTemp(seq.MustValidate(s, seq.DNA), o)
	if err != nil {
		t.Fatalf("MeltingTemp(%s): %v", s, err)
	}
	return r
}

func TestMeltingTemp_Sums(t *testing.T) {
	// init + 3×AA/TT + two terminal AT pairs
	r := mustTm(t, "AAAA", TmOptions{})
	if !approx(r.DH, -18.2, 1e-9) || !approx(r.DS, -55.8, 1e-9) {
		t.Fatalf("ΔH=%v ΔS=%v", r.DH, r.DS)
	}
	if r.SelfComp {
		t.Fatalf("AAAA is not self-complementary")
	}
}

func TestMeltingTemp_ReverseComplementSymmetric(t *testing.T) {
	a := mustTm(t, "ACGTTGCAAGGCT", TmOptions{})
	b := mustTm(t, "AGCCTTGCAACGT", TmOptions{})
	if !approx(a.DH, b.DH, 1e-9) || !approx(a.TmC, b.TmC, 1e-9) {
		t.Fatalf("strand choice changed the duplex: %+v vs %+v", a, b)
	}
}

func TestMeltingTemp_Trends(t *testing.T) {
	gc := mustTm(t, "GCGCGCGCGCGC", TmOptions{})
	at := mustTm(t, "ATATATATATAT", TmOptions{})
	if !gc.SelfComp || !at.SelfComp {
		t.Fatalf("both probes are palindromic")
	}
	if gc.TmC <= at.TmC {
		t.Errorf("GC-rich Tm %.2f should exceed AT-rich %.2f", gc.TmC, at.TmC)
	}

	lo := mustTm(t, "AGCGGATAACAATTTCACACAGGA", TmOptions{Na: 0.01})
	hi := mustTm(t, "AGCGGATAACAATTTCACACAGGA", TmOptions{Na: 1})
	if hi.TmC <= lo.TmC {
		t.Errorf("more salt should stabilise: %.2f vs %.2f", hi.TmC, lo.TmC)
	}
	if hi.TmC < 30 || hi.TmC > 90 {
		t.Errorf("implausible primer Tm %.2f", hi.TmC)
	}
}

func TestMeltingTemp_Errors(t *testing.T) {
	tests := []struct {
		name string
		s    seq.Sequence
		o    TmOptions
		want error
	}{
		{"short", seq.MustValidate("A", seq.DNA), TmOptions{}, seq.ErrSequenceTooShort},
		{"ambiguous", seq.MustValidate("ACNT", seq.DNA), TmOptions{}, seq.ErrInvalidSymbol},
		{"rna", seq.MustValidate("ACGU", seq.RNA), TmOptions{}, seq.ErrInvalidArgument},
		{"negative salt", seq.MustValidate("ACGT", seq.DNA), TmOptions{Na: -1}, seq.ErrInvalidArgument},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := MeltingTemp(tc.s, tc.o); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
