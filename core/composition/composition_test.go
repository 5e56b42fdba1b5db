package composition

import (
	"errors"
	"math"
	"testing"

	"biosci-core/seq"
)

func approx(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestGCContent(t *testing.T) {
	tests := []struct {
		in    string
		alpha seq.Alphabet
		want  float64
	}{
		{"GCATGCATGCAT", seq.DNA, 0.5},
		{"GGCCAATTGGCC", seq.DNA, 8.0 / 12},
		{"AAAA", seq.DNA, 0},
		{"GCGC", seq.DNA, 1},
		{"GCAU", seq.RNA, 0.5},
		{"SNNN", seq.DNA, 0}, // ambiguity codes only dilute
	}
	for _, tc := range tests {
		got, err := GCContent(seq.MustValidate(tc.in, tc.alpha))
		if err != nil {
			t.Fatal(err)
		}
		if !approx(got, tc.want, 1e-12) {
			t.Errorf("GCContent(%s) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGCContentErrors(t *testing.T) {
	if _, err := GCContent(seq.New("", seq.DNA)); !errors.Is(err, seq.ErrEmptySequence) {
		t.Errorf("empty: %v", err)
	}
	if _, err := GCContent(seq.MustValidate("MKV", seq.Protein)); !errors.Is(err, seq.ErrInvalidArgument) {
		t.Errorf("protein: %v", err)
	}
}

func TestMolecularWeight(t *testing.T) {
	tests := []struct {
		name string
		in   string
		a    seq.Alphabet
		mono bool
		want float64
	}{
		{"dna", "ATGC", seq.DNA, false, 1253.8027},
		{"dna single", "A", seq.DNA, false, 331.2218},
		{"dna mono", "A", seq.DNA, true, 331.06817},
		{"rna", "AU", seq.RNA, false, 347.2212 + 324.1813 - 18.0153},
		{"protein", "GG", seq.Protein, false, 132.1179},
		{"protein mono", "GA", seq.Protein, true, 75.032028 + 89.047678 - 18.010565},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MolecularWeight(seq.MustValidate(tc.in, tc.a), WeightOptions{Monoisotopic: tc.mono})
			if err != nil {
				t.Fatal(err)
			}
			if !approx(got, tc.want, 1e-6) {
				t.Fatalf("got %.6f, want %.6f", got, tc.want)
			}
		})
	}
}

func TestMolecularWeightAmbiguous(t *testing.T) {
	_, err := MolecularWeight(seq.MustValidate("ACNT", seq.DNA), WeightOptions{})
	var e *seq.Error
	if !errors.As(err, &e) || e.Kind != seq.InvalidSymbol || e.Pos != 2 {
		t.Fatalf("want InvalidSymbol at 2, got %v", err)
	}
	if _, err := MolecularWeight(seq.MustValidate("MK*", seq.Protein), WeightOptions{}); !errors.Is(err, seq.ErrInvalidSymbol) {
		t.Fatalf("stop symbol: %v", err)
	}
}

func TestAminoAcidComposition(t *testing.T) {
	comp, err := AminoAcidComposition(seq.MustValidate("AAGX", seq.Protein))
	if err != nil {
		t.Fatal(err)
	}
	if comp['A'] != 50 || comp['G'] != 25 || comp['X'] != 25 {
		t.Fatalf("comp = %v", comp)
	}
	if v, ok := comp['W']; !ok || v != 0 {
		t.Fatalf("standard residues should be listed with zero, W=%v ok=%v", v, ok)
	}
	if len(comp) != 21 {
		t.Fatalf("want 20 standard + X, got %d entries", len(comp))
	}

	comp, _ = AminoAcidComposition(seq.MustValidate("MKTAYIAKQRQISFVKSHFSRQ", seq.Protein))
	var sum float64
	for _, v := range comp {
		sum += v
	}
	if !approx(sum, 100, 1e-9) {
		t.Fatalf("percentages sum to %v", sum)
	}
}

func TestAminoAcidCompositionNeedsProtein(t *testing.T) {
	if _, err := AminoAcidComposition(seq.MustValidate("ACGT", seq.DNA)); !errors.Is(err, seq.ErrInvalidArgument) {
		t.Fatalf("got %v", err)
	}
}
