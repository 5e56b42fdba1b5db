package pattern

import (
	"sort"

	"biosci-core/seq"
	"biosci-core/transform"
)

// Mode decides which ATGs open a reading frame.
type Mode int

const (
	// All reports every ATG up to the next in-frame stop, so nested ORFs
	// sharing a stop are each listed.
	All Mode = iota
	// Longest reports only the first ATG after the previous stop.
	Longest
)

func (m Mode) String() string {
	if m == Longest {
		return "longest"
	}
	return "all"
}

// ParseMode accepts "all", "longest" or "" (all).
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "all":
		return All, nil
	case "longest":
		return Longest, nil
	}
	return All, seq.Errorf(seq.InvalidArgument, "unknown orf mode %q; want all or longest", s)
}

// ORFOptions controls FindORFs. Frames selects a subset of +1..+3/-1..-3;
// empty means all six.
type ORFOptions struct {
	MinLength int
	Frames    []int
	Mode      Mode
}

// ORF is one reading frame from ATG through the stop codon. Start and End
// are 0-based half-open forward-strand coordinates; Length includes the
// stop and Protein excludes it.
type ORF struct {
	Start   int
	End     int
	Frame   int
	Strand  byte
	Length  int
	Protein string
}

var frameRank = map[int]int{1: 0, 2: 1, 3: 2, -1: 3, -2: 4, -3: 5}

// FindORFs scans three forward frames and three frames of the reverse
// complement. Starts are ATG only; stops are TAA, TAG and TGA. ORFs that run
// off the end without a stop are not reported.
func FindORFs(s seq.Sequence, o ORFOptions) ([]ORF, error) {
	if !s.Alphabet().IsNucleic() {
		return nil, seq.Errorf(seq.InvalidArgument, "orf search needs dna or rna, got %s", s.Alphabet())
	}
	if o.MinLength < 0 {
		return nil, seq.Errorf(seq.InvalidArgument, "min length must be >= 0, got %d", o.MinLength)
	}
	want := map[int]bool{}
	for _, f := range o.Frames {
		if _, ok := frameRank[f]; !ok {
			return nil, seq.Errorf(seq.InvalidArgument, "frame %d is not one of ±1, ±2, ±3", f)
		}
		want[f] = true
	}
	if len(want) == 0 {
		for f := range frameRank {
			want[f] = true
		}
	}

	fwd := s.Bytes()
	for i, c := range fwd {
		if c == 'U' {
			fwd[i] = 'T'
		}
	}
	rev := transform.RevComp(fwd, false)
	n := len(fwd)

	out := []ORF{}
	for off := 0; off < 3; off++ {
		if want[off+1] {
			for _, r := range scanFrame(fwd, off, o) {
				r.Frame, r.Strand = off+1, '+'
				out = append(out, r)
			}
		}
		if want[-(off + 1)] {
			for _, r := range scanFrame(rev, off, o) {
				r.Start, r.End = n-r.End, n-r.Start
				r.Frame, r.Strand = -(off + 1), '-'
				out = append(out, r)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Frame != b.Frame {
			return frameRank[a.Frame] < frameRank[b.Frame]
		}
		return a.End < b.End
	})
	return out, nil
}

// scanFrame returns ORFs in t's own coordinates.
func scanFrame(t []byte, off int, o ORFOptions) []ORF {
	var (
		open []int
		out  []ORF
	)
	for i := off; i+3 <= len(t); i += 3 {
		a, b, c := t[i], t[i+1], t[i+2]
		if a == 'A' && b == 'T' && c == 'G' {
			if o.Mode == All || len(open) == 0 {
				open = append(open, i)
			}
			continue
		}
		if !transform.Standard.IsStop(a, b, c) {
			continue
		}
		end := i + 3
		for _, st := range open {
			if end-st < o.MinLength {
				continue
			}
			out = append(out, ORF{
				Start:   st,
				End:     end,
				Length:  end - st,
				Protein: string(transform.TranslateBytes(t[st:i], transform.Standard, false)),
			})
		}
		open = open[:0]
	}
	return out
}
