// core/seq/alphabet.go
package seq

import "strings"

// Alphabet is the symbol set a Sequence is validated against.
type Alphabet int

const (
	Unknown Alphabet = iota
	DNA
	RNA
	Protein
)

func (a Alphabet) String() string {
	switch a {
	case DNA:
		return "dna"
	case RNA:
		return "rna"
	case Protein:
		return "protein"
	default:
		return "unknown"
	}
}

// IsNucleic reports whether a is DNA or RNA.
func (a Alphabet) IsNucleic() bool { return a == DNA || a == RNA }

// ParseAlphabet maps "dna", "rna" or "protein" (any case) to an Alphabet.
// The empty string yields Unknown, meaning "infer".
func ParseAlphabet(s string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Unknown, nil
	case "dna":
		return DNA, nil
	case "rna":
		return RNA, nil
	case "protein", "aa", "peptide":
		return Protein, nil
	}
	return Unknown, Errorf(InvalidArgument, "unknown alphabet %q; want dna, rna or protein", s)
}

const (
	nucleotideAmbiguity = "RYSWKMBDHVN"
	proteinStandard     = "ACDEFGHIKLMNPQRSTVWY"
	proteinExtra        = "BZJXUO*"
	// Symbols that can only be amino acids (or a stop).
	proteinOnly = "EFILPQJOZX*"
)

var members [4][256]bool

func init() {
	for _, c := range []byte("ACGT" + nucleotideAmbiguity) {
		members[DNA][c] = true
	}
	for _, c := range []byte("ACGU" + nucleotideAmbiguity) {
		members[RNA][c] = true
	}
	for _, c := range []byte(proteinStandard + proteinExtra) {
		members[Protein][c] = true
	}
}

// Contains reports whether c is a symbol of alphabet a.
func (a Alphabet) Contains(c byte) bool {
	if a <= Unknown || a > Protein {
		return false
	}
	return members[a][c]
}

// IsStandardResidue reports whether c is one of the 20 standard amino acids.
func IsStandardResidue(c byte) bool {
	return strings.IndexByte(proteinStandard, c) >= 0
}

// StandardResidues returns the 20 standard amino-acid letters in order.
func StandardResidues() string { return proteinStandard }

// Classification is the tagged result of alphabet inference.
type Classification struct {
	Alphabet  Alphabet // Unknown when Ambiguous is set or Pos >= 0
	Ambiguous bool
	Pos       int // first symbol outside every alphabet, or -1
}

// Classify infers the alphabet of normalized text.
//
//	empty                          → Ambiguous
//	any protein-only symbol        → Protein
//	both T and U                   → Ambiguous
//	U                              → RNA
//	otherwise                      → DNA
func Classify(text string) Classification {
	if text == "" {
		return Classification{Ambiguous: true, Pos: -1}
	}
	var hasT, hasU, protein bool
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !members[DNA][c] && !members[RNA][c] && !members[Protein][c] {
			return Classification{Pos: i}
		}
		switch {
		case c == 'T':
			hasT = true
		case c == 'U':
			hasU = true
		case strings.IndexByte(proteinOnly, c) >= 0:
			protein = true
		}
	}
	switch {
	case protein:
		return Classification{Alphabet: Protein, Pos: -1}
	case hasT && hasU:
		return Classification{Ambiguous: true, Pos: -1}
	case hasU:
		return Classification{Alphabet: RNA, Pos: -1}
	default:
		return Classification{Alphabet: DNA, Pos: -1}
	}
}
