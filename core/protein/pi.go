package protein

import (
	"math"

	"biosci-core/seq"
)

// pK values follow the EMBOSS/Biopython set, including the terminal
// adjustments that depend on the first and last residue.
var (
	positivePK = []ionizable{{'K', 10.0}, {'R', 12.0}, {'H', 5.98}}
	negativePK = []ionizable{{'D', 4.05}, {'E', 4.45}, {'C', 9.0}, {'Y', 10.0}}

	nTermPK = map[byte]float64{'A': 7.59, 'M': 7.0, 'S': 6.93, 'P': 8.36, 'T': 6.82, 'V': 7.44, 'E': 7.7}
	cTermPK = map[byte]float64{'D': 4.55, 'E': 4.75}
)

type ionizable struct {
	aa byte
	pK float64
}

const (
	defaultNTermPK = 9.0
	defaultCTermPK = 2.0
)

// Charge returns the net charge of p at the given pH.
func Charge(p seq.Sequence, pH float64) float64 {
	return chargeFunc(p)(pH)
}

func chargeFunc(p seq.Sequence) func(float64) float64 {
	var counts [256]int
	for i := 0; i < p.Len(); i++ {
		counts[p.At(i)]++
	}
	nPK, cPK := defaultNTermPK, defaultCTermPK
	if p.Len() > 0 {
		if v, ok := nTermPK[p.At(0)]; ok {
			nPK = v
		}
		if v, ok := cTermPK[p.At(p.Len()-1)]; ok {
			cPK = v
		}
	}
	pos := func(pH, pK float64) float64 { return 1 / (math.Pow(10, pH-pK) + 1) }
	neg := func(pH, pK float64) float64 { return 1 / (math.Pow(10, pK-pH) + 1) }

	return func(pH float64) float64 {
		q := pos(pH, nPK) - neg(pH, cPK)
		for _, g := range positivePK {
			if n := counts[g.aa]; n > 0 {
				q += float64(n) * pos(pH, g.pK)
			}
		}
		for _, g := range negativePK {
			if n := counts[g.aa]; n > 0 {
				q -= float64(n) * neg(pH, g.pK)
			}
		}
		return q
	}
}

// IsoelectricPoint is the pH in [0,14] at which the net charge is zero.
func IsoelectricPoint(p seq.Sequence) (float64, error) {
	if err := needProtein(p); err != nil {
		return 0, err
	}
	return Bisect(chargeFunc(p), 0, 14, 1e-4, 100)
}

func needProtein(p seq.Sequence) error {
	if p.Alphabet() != seq.Protein {
		return seq.Errorf(seq.InvalidArgument, "needs protein, got %s", p.Alphabet())
	}
	if p.Len() == 0 {
		return seq.Errorf(seq.EmptySequence, "empty sequence")
	}
	return nil
}
