// core/seq/iupac.go
package seq

/* -------------------------- IUPAC lookup tables -------------------------- */

var nucMask [256]byte // bit0=A bit1=C bit2=G bit3=T/U

// residueMask uses bit (c-'A') for letters and bit 26 for the stop symbol.
var residueMask [256]uint32

const stopBit = 1 << 26

func init() {
	set := func(c byte, bits byte) { nucMask[c] = bits }
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // RNA reads U where DNA reads T
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any

	bit := func(c byte) uint32 { return 1 << (c - 'A') }
	for _, c := range []byte(proteinStandard + "UO") {
		residueMask[c] = bit(c)
	}
	residueMask['B'] = bit('D') | bit('N')
	residueMask['Z'] = bit('E') | bit('Q')
	residueMask['J'] = bit('I') | bit('L')
	residueMask['X'] = (1 << 26) - 1
	residueMask['*'] = stopBit
}

// NucleotideMask returns the base set of a nucleotide symbol as a bitmask
// (A=1, C=2, G=4, T/U=8); 0 means the symbol is not a nucleotide code.
func NucleotideMask(c byte) byte { return nucMask[c] }

// ExpandNucleotide lists the concrete bases (in ACGT order, T spelled as
// given by rna) that an ambiguity code stands for.
func ExpandNucleotide(c byte, rna bool) []byte {
	m := nucMask[c]
	out := make([]byte, 0, 4)
	four := [4]byte{'A', 'C', 'G', 'T'}
	if rna {
		four[3] = 'U'
	}
	for i := 0; i < 4; i++ {
		if m&(1<<i) != 0 {
			out = append(out, four[i])
		}
	}
	return out
}

// SymbolsIntersect reports whether two symbols of alphabet a can denote the
// same residue. Literal equality always matches.
func SymbolsIntersect(a Alphabet, x, y byte) bool {
	if x == y {
		return true
	}
	if a == Protein {
		return residueMask[x]&residueMask[y] != 0
	}
	return nucMask[x]&nucMask[y] != 0
}
