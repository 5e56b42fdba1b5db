// core/transform/rc.go
package transform

import "biosci-core/seq"

// IUPAC complements; zero means no complement.
var complement = [256]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
	'R': 'Y', 'Y': 'R',
	'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K',
	'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D',
	'N': 'N',
}

func complementByte(b byte, rna bool) byte {
	if b == 'U' {
		b = 'T'
	}
	c := complement[b]
	if rna && c == 'T' {
		c = 'U'
	}
	return c
}

// RevComp reverse-complements raw IUPAC nucleotides. Symbols without a
// complement come back as 0 so callers can locate them.
func RevComp(s []byte, rna bool) []byte {
	n := len(s)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complementByte(s[n-1-i], rna)
	}
	return out
}

// ReverseComplement returns the reverse complement of a DNA or RNA sequence.
func ReverseComplement(s seq.Sequence) (seq.Sequence, error) {
	out, err := complementSeq(s)
	if err != nil {
		return seq.Sequence{}, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return seq.New(string(out), s.Alphabet()), nil
}

// Complement returns the base-wise complement without reversing.
func Complement(s seq.Sequence) (seq.Sequence, error) {
	out, err := complementSeq(s)
	if err != nil {
		return seq.Sequence{}, err
	}
	return seq.New(string(out), s.Alphabet()), nil
}

func complementSeq(s seq.Sequence) ([]byte, error) {
	if !s.Alphabet().IsNucleic() {
		return nil, seq.Errorf(seq.InvalidArgument, "cannot complement a %s sequence", s.Alphabet())
	}
	rna := s.Alphabet() == seq.RNA
	out := make([]byte, s.Len())
	for i := 0; i < s.Len(); i++ {
		c := complementByte(s.At(i), rna)
		if c == 0 {
			return nil, seq.SymbolError(i, s.At(i), s.Alphabet())
		}
		out[i] = c
	}
	return out, nil
}
