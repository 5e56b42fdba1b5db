package composition

import "biosci-core/seq"

// WeightOptions selects the mass table.
type WeightOptions struct {
	Monoisotopic bool
}

const (
	waterAverage      = 18.0153
	waterMonoisotopic = 18.010565
)

// Nucleotide monophosphate and free amino-acid masses (Da).
var (
	dnaAverage = map[byte]float64{'A': 331.2218, 'C': 307.1971, 'G': 347.2212, 'T': 322.2085}
	rnaAverage = map[byte]float64{'A': 347.2212, 'C': 323.1965, 'G': 363.2206, 'U': 324.1813}
	aaAverage  = map[byte]float64{
		'A': 89.0932, 'C': 121.1582, 'D': 133.1027, 'E': 147.1293, 'F': 165.1891,
		'G': 75.0666, 'H': 155.1546, 'I': 131.1729, 'K': 146.1876, 'L': 131.1729,
		'M': 149.2113, 'N': 132.1179, 'O': 255.3134, 'P': 115.1305, 'Q': 146.1445,
		'R': 174.201, 'S': 105.0926, 'T': 119.1192, 'U': 168.0532, 'V': 117.1463,
		'W': 204.2252, 'Y': 181.1885,
	}

	dnaMono = map[byte]float64{'A': 331.06817, 'C': 307.056936, 'G': 347.063084, 'T': 322.056602}
	rnaMono = map[byte]float64{'A': 347.063084, 'C': 323.051851, 'G': 363.057999, 'U': 324.035867}
	aaMono  = map[byte]float64{
		'A': 89.047678, 'C': 121.019749, 'D': 133.037508, 'E': 147.053158, 'F': 165.078979,
		'G': 75.032028, 'H': 155.069477, 'I': 131.094629, 'K': 146.105528, 'L': 131.094629,
		'M': 149.051049, 'N': 132.053492, 'O': 255.158292, 'P': 115.063329, 'Q': 146.069142,
		'R': 174.111676, 'S': 105.042593, 'T': 119.058243, 'U': 168.964203, 'V': 117.078979,
		'W': 204.089878, 'Y': 181.073893,
	}
)

func massTable(a seq.Alphabet, mono bool) map[byte]float64 {
	switch {
	case a == seq.DNA && mono:
		return dnaMono
	case a == seq.DNA:
		return dnaAverage
	case a == seq.RNA && mono:
		return rnaMono
	case a == seq.RNA:
		return rnaAverage
	case a == seq.Protein && mono:
		return aaMono
	case a == seq.Protein:
		return aaAverage
	}
	return nil
}

// MolecularWeight sums residue masses and removes one water per bond.
// Symbols without a defined mass (ambiguity codes, X, *) are rejected.
func MolecularWeight(s seq.Sequence, o WeightOptions) (float64, error) {
	table := massTable(s.Alphabet(), o.Monoisotopic)
	if table == nil {
		return 0, seq.Errorf(seq.InvalidArgument, "no mass table for %s", s.Alphabet())
	}
	if s.Len() == 0 {
		return 0, seq.Errorf(seq.EmptySequence, "empty sequence")
	}
	water := waterAverage
	if o.Monoisotopic {
		water = waterMonoisotopic
	}
	var w float64
	for i := 0; i < s.Len(); i++ {
		m, ok := table[s.At(i)]
		if !ok {
			return 0, &seq.Error{
				Kind: seq.InvalidSymbol,
				Msg:  "symbol '" + string(s.At(i)) + "' has no defined mass",
				Pos:  i,
			}
		}
		w += m
	}
	return w - float64(s.Len()-1)*water, nil
}
