// Package distance compares equal-length sequences position by position.
package distance

import "biosci-core/seq"

func sameLength(a, b []byte) error {
	if len(a) != len(b) {
		return seq.Errorf(seq.LengthMismatch, "lengths differ: %d vs %d", len(a), len(b))
	}
	return nil
}

// Hamming counts positions whose symbols differ literally.
func Hamming(a, b []byte) (int, error) {
	if err := sameLength(a, b); err != nil {
		return 0, err
	}
	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d, nil
}

// Mismatches counts positions whose IUPAC symbol sets are disjoint, so N
// matches anything and R matches A or G.
func Mismatches(a, b []byte, alpha seq.Alphabet) (int, error) {
	if err := sameLength(a, b); err != nil {
		return 0, err
	}
	d := 0
	for i := range a {
		if !seq.SymbolsIntersect(alpha, a[i], b[i]) {
			d++
		}
	}
	return d, nil
}

// PDistance is the proportion of differing sites, d/len.
func PDistance(a, b []byte) (float64, error) {
	d, err := Hamming(a, b)
	if err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, seq.Errorf(seq.EmptySequence, "empty sequences")
	}
	return float64(d) / float64(len(a)), nil
}

// Similarity is 1 - PDistance.
func Similarity(a, b []byte) (float64, error) {
	p, err := PDistance(a, b)
	if err != nil {
		return 0, err
	}
	return 1 - p, nil
}
