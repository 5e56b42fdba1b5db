package distance

import (
	"errors"
	"testing"

	"biosci-core/seq"
)

func TestHamming(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"ACGTACGT", "ACGTACGT", 0},
		{"ACGTACGT", "TCGTACGA", 2},
		{"AAAA", "TTTT", 4},
		{"ACGN", "ACGT", 1},
		{"", "", 0},
	}
	for _, tc := range tests {
		got, err := Hamming([]byte(tc.a), []byte(tc.b))
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("Hamming(%q,%q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		back, _ := Hamming([]byte(tc.b), []byte(tc.a))
		if back != got {
			t.Errorf("Hamming is not symmetric for %q,%q", tc.a, tc.b)
		}
	}
}

func TestMismatches(t *testing.T) {
	tests := []struct {
		window, probe string
		want          int
	}{
		{"ACGT", "ACGT", 0},
		{"ACGT", "NNNN", 0},
		{"ACGT", "RRRR", 2},
		{"ACGT", "TTTT", 3},
	}
	for _, tc := range tests {
		got, err := Mismatches([]byte(tc.window), []byte(tc.probe), seq.DNA)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("Mismatches(%q,%q) = %d, want %d", tc.window, tc.probe, got, tc.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	s, err := Similarity([]byte("ACGTACGT"), []byte("ACGTACGA"))
	if err != nil || s != 0.875 {
		t.Fatalf("Similarity = %v, %v", s, err)
	}
	p, _ := PDistance([]byte("ACGTACGT"), []byte("ACGTACGA"))
	if p != 0.125 {
		t.Fatalf("PDistance = %v", p)
	}
}

func TestDistanceErrors(t *testing.T) {
	if _, err := Hamming([]byte("AAA"), []byte("AA")); !errors.Is(err, seq.ErrLengthMismatch) {
		t.Errorf("Hamming: %v", err)
	}
	if _, err := Mismatches([]byte("AAA"), []byte("AA"), seq.DNA); !errors.Is(err, seq.ErrLengthMismatch) {
		t.Errorf("Mismatches: %v", err)
	}
	if _, err := Similarity(nil, nil); !errors.Is(err, seq.ErrEmptySequence) {
		t.Errorf("Similarity: %v", err)
	}
}
