// Package composition computes whole-sequence counts and masses.
package composition

import "biosci-core/seq"

// GCContent returns (G+C)/length for a nucleic sequence as a ratio in [0,1].
// Ambiguity codes count toward the length only.
func GCContent(s seq.Sequence) (float64, error) {
	if !s.Alphabet().IsNucleic() {
		return 0, seq.Errorf(seq.InvalidArgument, "gc content needs dna or rna, got %s", s.Alphabet())
	}
	if s.Len() == 0 {
		return 0, seq.Errorf(seq.EmptySequence, "empty sequence")
	}
	gc := 0
	for i := 0; i < s.Len(); i++ {
		switch s.At(i) {
		case 'G', 'C':
			gc++
		}
	}
	return float64(gc) / float64(s.Len()), nil
}
