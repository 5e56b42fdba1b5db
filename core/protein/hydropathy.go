package protein

import "biosci-core/seq"

// Kyte & Doolittle (1982) hydropathy scale.
var kyteDoolittle = map[byte]float64{
	'A': 1.8, 'R': -4.5, 'N': -3.5, 'D': -3.5, 'C': 2.5,
	'Q': -3.5, 'E': -3.5, 'G': -0.4, 'H': -3.2, 'I': 4.5,
	'L': 3.8, 'K': -3.9, 'M': 1.9, 'F': 2.8, 'P': -1.6,
	'S': -0.8, 'T': -0.7, 'W': -0.9, 'Y': -1.3, 'V': 4.2,
}

// Gravy is the grand average of hydropathy.
func Gravy(p seq.Sequence) (float64, error) {
	if err := needProtein(p); err != nil {
		return 0, err
	}
	if err := standardOnly(p); err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < p.Len(); i++ {
		sum += kyteDoolittle[p.At(i)]
	}
	return sum / float64(p.Len()), nil
}

// Aromaticity is the relative frequency of F, W and Y.
func Aromaticity(p seq.Sequence) (float64, error) {
	if err := needProtein(p); err != nil {
		return 0, err
	}
	return fraction(p, "FWY"), nil
}

// Structure holds the fraction of residues that favour each conformation.
// The residue sets overlap, so the three need not sum to 1.
type Structure struct {
	Helix float64
	Turn  float64
	Sheet float64
}

// SecondaryStructureFraction counts helix (VIYFWL), turn (NPGS) and sheet
// (EMAL) formers.
func SecondaryStructureFraction(p seq.Sequence) (Structure, error) {
	if err := needProtein(p); err != nil {
		return Structure{}, err
	}
	return Structure{
		Helix: fraction(p, "VIYFWL"),
		Turn:  fraction(p, "NPGS"),
		Sheet: fraction(p, "EMAL"),
	}, nil
}

func fraction(p seq.Sequence, set string) float64 {
	var in [256]bool
	for i := 0; i < len(set); i++ {
		in[set[i]] = true
	}
	n := 0
	for i := 0; i < p.Len(); i++ {
		if in[p.At(i)] {
			n++
		}
	}
	return float64(n) / float64(p.Len())
}
