package composition

import "biosci-core/seq"

// AminoAcidComposition reports the percentage of each residue over the full
// length. The 20 standard residues are always present, possibly as zero.
func AminoAcidComposition(s seq.Sequence) (map[byte]float64, error) {
	if s.Alphabet() != seq.Protein {
		return nil, seq.Errorf(seq.InvalidArgument, "amino-acid composition needs protein, got %s", s.Alphabet())
	}
	if s.Len() == 0 {
		return nil, seq.Errorf(seq.EmptySequence, "empty sequence")
	}
	var counts [256]int
	for i := 0; i < s.Len(); i++ {
		counts[s.At(i)]++
	}
	out := make(map[byte]float64, 20)
	for _, c := range []byte(seq.StandardResidues()) {
		out[c] = 0
	}
	n := float64(s.Len())
	for c, k := range counts {
		if k > 0 {
			out[byte(c)] = 100 * float64(k) / n
		}
	}
	return out, nil
}
