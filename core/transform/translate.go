package transform

import (
	"biosci-core/seq"
)

// Options controls Translate.
type Options struct {
	Frame           int    // 1, 2 or 3; 0 means 1
	Table           *Table // nil means Standard
	StopAtFirstStop bool
}

// Translate reads non-overlapping codons from the frame offset and maps them
// through the genetic code. A trailing partial codon is dropped. Ambiguous
// codons translate to the single residue all their expansions agree on, or X.
func Translate(s seq.Sequence, o Options) (seq.Sequence, error) {
	if !s.Alphabet().IsNucleic() {
		return seq.Sequence{}, seq.Errorf(seq.InvalidArgument, "translation needs dna or rna, got %s", s.Alphabet())
	}
	frame := o.Frame
	if frame == 0 {
		frame = 1
	}
	if frame < 1 || frame > 3 {
		return seq.Sequence{}, seq.Errorf(seq.InvalidArgument, "frame must be 1, 2 or 3, got %d", o.Frame)
	}
	t := o.Table
	if t == nil {
		t = Standard
	}
	nt := s.Bytes()
	if frame-1 >= len(nt) {
		return seq.New("", seq.Protein), nil
	}
	return seq.New(string(TranslateBytes(nt[frame-1:], t, o.StopAtFirstStop)), seq.Protein), nil
}

// TranslateBytes is the frame-0 kernel shared with ORF search.
func TranslateBytes(nt []byte, t *Table, stopAtFirstStop bool) []byte {
	out := make([]byte, 0, len(nt)/3)
	for i := 0; i+3 <= len(nt); i += 3 {
		aa := t.Resolve(nt[i], nt[i+1], nt[i+2])
		if aa == '*' && stopAtFirstStop {
			break
		}
		out = append(out, aa)
	}
	return out
}

// Resolve translates a possibly ambiguous codon.
func (t *Table) Resolve(a, b, c byte) byte {
	if aa, ok := t.Lookup(a, b, c); ok {
		return aa
	}
	xs := seq.ExpandNucleotide(a, false)
	ys := seq.ExpandNucleotide(b, false)
	zs := seq.ExpandNucleotide(c, false)
	if len(xs) == 0 || len(ys) == 0 || len(zs) == 0 {
		return 'X'
	}
	var got byte
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				aa, _ := t.Lookup(x, y, z)
				if got == 0 {
					got = aa
				} else if aa != got {
					return 'X'
				}
			}
		}
	}
	return got
}
