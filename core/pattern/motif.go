// Package pattern finds motifs and open reading frames.
package pattern

import (
	"bytes"

	"biosci-core/seq"
)

// FindMotif returns every 0-based offset where pattern occurs in s,
// overlapping matches included. With allowAmbiguity, IUPAC codes on either
// side match when their symbol sets intersect; otherwise comparison is
// literal.
func FindMotif(s seq.Sequence, pattern string, allowAmbiguity bool) ([]int, error) {
	p, err := compilePattern(s.Alphabet(), pattern)
	if err != nil {
		return nil, err
	}
	return findAll(s.Bytes(), p, s.Alphabet(), allowAmbiguity), nil
}

func compilePattern(a seq.Alphabet, raw string) ([]byte, error) {
	p := []byte(seq.Normalize(raw))
	if len(p) == 0 {
		return nil, seq.Errorf(seq.InvalidPattern, "empty pattern")
	}
	for i, c := range p {
		if !a.Contains(c) {
			return nil, &seq.Error{
				Kind: seq.InvalidPattern,
				Msg:  "pattern symbol '" + string(c) + "' is not valid for " + a.String(),
				Pos:  i,
			}
		}
	}
	return p, nil
}

func findAll(s, p []byte, a seq.Alphabet, ambiguous bool) []int {
	pl := len(p)
	if len(s) < pl {
		return []int{}
	}
	out := make([]int, 0, 8)

	if !ambiguous {
		for i := 0; ; {
			j := bytes.Index(s[i:], p)
			if j < 0 {
				break
			}
			out = append(out, i+j)
			i += j + 1
		}
		return out
	}

window:
	for pos := 0; pos+pl <= len(s); pos++ {
		for j := 0; j < pl; j++ {
			if !seq.SymbolsIntersect(a, s[pos+j], p[j]) {
				continue window
			}
		}
		out = append(out, pos)
	}
	return out
}
