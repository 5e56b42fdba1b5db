package protein

import (
	"strings"

	"biosci-core/seq"
)

const diwvOrder = "ACDEFGHIKLMNPQRSTVWY"

// Guruprasad et al. (1990) dipeptide instability weights, row = first
// residue, column = second residue, both in diwvOrder.
var diwv = [20][20]float64{
	/* A */ {1, 44.94, -7.49, 1, 1, 1, -7.49, 1, 1, 1, 1, 1, 20.26, 1, 1, 1, 1, 1, 1, 1},
	/* C */ {1, 1, 20.26, 1, 1, 1, 33.60, 1, 1, 20.26, 33.60, 1, 20.26, -6.54, 1, 1, 33.60, -6.54, 24.68, 1},
	/* D */ {1, 1, 1, 1, -6.54, 1, 1, 1, -7.49, 1, 1, 1, 1, 1, -6.54, 20.26, -14.03, 1, 1, 1},
	/* E */ {1, 44.94, 20.26, 33.60, 1, 1, -6.54, 20.26, 1, 1, 1, 1, 20.26, 20.26, 1, 20.26, 1, 1, -14.03, 1},
	/* F */ {1, 1, 13.34, 1, 1, 1, 1, 1, -14.03, 1, 1, 1, 20.26, 1, 1, 1, 1, 1, 1, 33.601},
	/* G */ {-7.49, 1, 1, -6.54, 1, 13.34, 1, -7.49, -7.49, 1, 1, -7.49, 1, 1, 1, 1, -7.49, 1, 13.34, -7.49},
	/* H */ {1, 1, 1, 1, -9.37, -9.37, 1, 44.94, 24.68, 1, 1, 24.68, -1.88, 1, 1, 1, -6.54, 1, -1.88, 44.94},
	/* I */ {1, 1, 1, 44.94, 1, 1, 13.34, 1, -7.49, 20.26, 1, 1, -1.88, 1, 1, 1, 1, -7.49, 1, 1},
	/* K */ {1, 1, 1, 1, 1, -7.49, 1, -7.49, 1, -7.49, 33.60, 1, -6.54, 24.64, 33.60, 1, 1, -7.49, 1, 1},
	/* L */ {1, 1, 1, 1, 1, 1, 1, 1, -7.49, 1, 1, 1, 20.26, 33.60, 20.26, 1, 1, 1, 24.68, 1},
	/* M */ {13.34, 1, 1, 1, 1, 1, 58.28, 1, 1, 1, -1.88, 1, 44.94, -6.54, -6.54, 44.94, -1.88, 1, 1, 24.68},
	/* N */ {1, -1.88, 1, 1, -14.03, -14.03, 1, 44.94, 24.68, 1, 1, 1, -1.88, -6.54, 1, 1, -7.49, 1, -9.37, 1},
	/* P */ {20.26, -6.54, -6.54, 18.38, 20.26, 1, 1, 1, 1, 1, -6.54, 1, 20.26, 20.26, -6.54, 20.26, 1, 20.26, -1.88, 1},
	/* Q */ {1, -6.54, 20.26, 20.26, -6.54, 1, 1, 1, 1, 1, 1, 1, 20.26, 20.26, 1, 44.94, 1, -6.54, 1, -6.54},
	/* R */ {1, 1, 1, 1, 1, -7.49, 20.26, 1, 1, 1, 1, 13.34, 20.26, 20.26, 58.28, 44.94, 1, 1, 58.28, -6.54},
	/* S */ {1, 33.60, 1, 20.26, 1, 1, 1, 1, 1, 1, 1, 1, 44.94, 20.26, 20.26, 20.26, 1, 1, 1, 1},
	/* T */ {1, 1, 1, 20.26, 13.34, -7.49, 1, 1, 1, 1, 1, -14.03, 1, -6.54, 1, 1, 1, 1, -14.03, 1},
	/* V */ {1, 1, -14.03, 1, 1, -7.49, 1, 1, -1.88, 1, 1, 1, 20.26, 1, 1, 1, -7.49, 1, 1, -6.54},
	/* W */ {-14.03, 1, 1, 1, 1, -9.37, 24.68, 1, 1, 13.34, 24.68, 13.34, 1, 1, 1, 1, -14.03, -7.49, 1, 1},
	/* Y */ {24.68, 1, 24.68, -6.54, 1, -7.49, 13.34, 1, 1, 1, 44.94, 1, 13.34, 1, -15.91, 1, -7.49, 1, -9.37, 13.34},
}

var diwvIndex [256]int8

func init() {
	for i := range diwvIndex {
		diwvIndex[i] = -1
	}
	for i := 0; i < len(diwvOrder); i++ {
		diwvIndex[diwvOrder[i]] = int8(i)
	}
}

// InstabilityIndex sums the dipeptide weights of every consecutive pair and
// scales by 10/(length-1). Values above 40 suggest an unstable protein.
func InstabilityIndex(p seq.Sequence) (float64, error) {
	if err := needProtein(p); err != nil {
		return 0, err
	}
	if p.Len() < 2 {
		return 0, seq.Errorf(seq.SequenceTooShort, "instability index needs at least 2 residues, got %d", p.Len())
	}
	if err := standardOnly(p); err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i+1 < p.Len(); i++ {
		sum += diwv[diwvIndex[p.At(i)]][diwvIndex[p.At(i+1)]]
	}
	return 10 / float64(p.Len()-1) * sum, nil
}

func standardOnly(p seq.Sequence) error {
	for i := 0; i < p.Len(); i++ {
		if strings.IndexByte(diwvOrder, p.At(i)) < 0 {
			return &seq.Error{Kind: seq.InvalidSymbol, Msg: "residue '" + string(p.At(i)) + "' is not a standard amino acid", Pos: i}
		}
	}
	return nil
}
