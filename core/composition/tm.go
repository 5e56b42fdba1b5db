// Nearest-neighbor melting temperature for a DNA strand against its perfect
// complement (SantaLucia & Hicks 2004 unified set).
// Units: ΔH in kcal/mol, ΔS in cal/(K·mol), Tm in °C.
//
//  1. Sum initiation, per-stack ΔH/ΔS, terminal AT penalties and symmetry.
//  2. Salt-correct ΔS for monovalent ions: ΔS += 0.368·(n−1)·ln[Na+].
//  3. Two-state Tm = ΔH·1000 / (ΔS + R·ln(CT/x)) − 273.15.

package composition

import (
	"math"

	"biosci-core/seq"
)

// Rcal is the gas constant in cal/(K·mol).
const Rcal = 1.9872

type nnParams struct {
	DH float64
	DS float64
}

// Stacks keyed by the top-strand dinucleotide 5'→3'. Each pair of
// reverse-complement dinucleotides shares one entry of Table 1.
var stacks = map[string]nnParams{
	"AA": {-7.6, -21.3}, "TT": {-7.6, -21.3},
	"AT": {-7.2, -20.4},
	"TA": {-7.2, -21.3},
	"CA": {-8.5, -22.7}, "TG": {-8.5, -22.7},
	"GT": {-8.4, -22.4}, "AC": {-8.4, -22.4},
	"CT": {-7.8, -21.0}, "AG": {-7.8, -21.0},
	"GA": {-8.2, -22.2}, "TC": {-8.2, -22.2},
	"CG": {-10.6, -27.2},
	"GC": {-9.8, -24.4},
	"GG": {-8.0, -19.9}, "CC": {-8.0, -19.9},
}

var (
	initDH, initDS     = +0.2, -5.7
	termATDH, termATDS = +2.2, +6.9
	symmDS             = -1.4
)

// TmOptions describes the solution. Zero fields take the defaults.
type TmOptions struct {
	Na float64 // monovalent cations, mol/L (default 0.05)
	CT float64 // total strand concentration, mol/L (default 500 nM)
}

// DefaultTmOptions matches a typical PCR primer setup.
var DefaultTmOptions = TmOptions{Na: 0.05, CT: 500e-9}

// Thermo reports the duplex parameters behind a melting temperature.
type Thermo struct {
	DH       float64 // kcal/mol
	DS       float64 // cal/(K·mol) at 1 M Na+
	DSSalt   float64 // cal/(K·mol) at the requested [Na+]
	TmC      float64
	SelfComp bool
}

// MeltingTemp computes Tm for s paired with its exact complement.
func MeltingTemp(s seq.Sequence, o TmOptions) (Thermo, error) {
	var out Thermo
	if s.Alphabet() != seq.DNA {
		return out, seq.Errorf(seq.InvalidArgument, "melting temperature needs dna, got %s", s.Alphabet())
	}
	n := s.Len()
	if n < 2 {
		return out, seq.Errorf(seq.SequenceTooShort, "need at least 2 bases, got %d", n)
	}
	if o.Na == 0 {
		o.Na = DefaultTmOptions.Na
	}
	if o.CT == 0 {
		o.CT = DefaultTmOptions.CT
	}
	if o.Na < 0 || o.CT < 0 {
		return out, seq.Errorf(seq.InvalidArgument, "concentrations must be positive")
	}
	p := s.String()
	for i := 0; i < n; i++ {
		switch p[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return out, &seq.Error{Kind: seq.InvalidSymbol, Msg: "melting temperature needs A/C/G/T only", Pos: i}
		}
	}

	dh, ds := initDH, initDS
	for i := 0; i+1 < n; i++ {
		prm := stacks[p[i:i+2]]
		dh += prm.DH
		ds += prm.DS
	}
	for _, end := range []byte{p[0], p[n-1]} {
		if end == 'A' || end == 'T' {
			dh += termATDH
			ds += termATDS
		}
	}
	x := 4.0
	if isSelfComplementary(p) {
		ds += symmDS
		x = 1
		out.SelfComp = true
	}

	dsNa := ds + 0.368*float64(n-1)*math.Log(o.Na)
	tmK := dh * 1000 / (dsNa + Rcal*math.Log(o.CT/x))

	out.DH = dh
	out.DS = ds
	out.DSSalt = dsNa
	out.TmC = tmK - 273.15
	return out, nil
}

func isSelfComplementary(p string) bool {
	for i, j := 0, len(p)-1; i <= j; i, j = i+1, j-1 {
		if pairOf(p[i]) != p[j] {
			return false
		}
	}
	return true
}

func pairOf(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	}
	return 0
}
