// Package pretty renders human-readable blocks for text output.
package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"biosci-core/seq"

	"biosci/pkg/api"
)

// Options control the ASCII rendering.
type Options struct {
	// Alignment columns per block. If <=0, use default (60).
	Width int

	// Glyphs for the match line between the two aligned rows.
	ExactGlyph    string // identical symbols, default "|"
	PartialGlyph  string // IUPAC-compatible symbols, default "¦"
	MismatchGlyph string // mismatch or gap, default " "
}

// DefaultOptions is a 60-column layout.
var DefaultOptions = Options{
	Width:         60,
	ExactGlyph:    "|",
	PartialGlyph:  "¦",
	MismatchGlyph: " ",
}

const linePrefix = "# "

func (o Options) width() int {
	if o.Width <= 0 {
		return DefaultOptions.Width
	}
	return o.Width
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// RenderAlignment prints a with DefaultOptions.
func RenderAlignment(a api.AlignmentV1) string {
	return RenderAlignmentWithOptions(a, DefaultOptions)
}

// RenderAlignmentWithOptions prints a summary line, then blocks of two
// aligned rows with a match line between them. Row coordinates are 1-based
// and inclusive; a row with no residues repeats the previous position.
func RenderAlignmentWithOptions(a api.AlignmentV1, opt Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s score=%d identity=%.1f%% gaps=%d\n", linePrefix, a.Mode, a.Score, a.Identity*100, a.Gaps)
	n := len(a.AlignedA)
	if n == 0 || len(a.AlignedB) != n {
		fmt.Fprintf(&b, "%s(empty alignment)\n#\n", linePrefix)
		return b.String()
	}

	alpha, _ := seq.ParseAlphabet(a.Alphabet)
	exact := orDefault(opt.ExactGlyph, DefaultOptions.ExactGlyph)
	partial := orDefault(opt.PartialGlyph, DefaultOptions.PartialGlyph)
	miss := orDefault(opt.MismatchGlyph, DefaultOptions.MismatchGlyph)

	last := a.EndA
	if a.EndB > last {
		last = a.EndB
	}
	w := len(strconv.Itoa(last))
	pad := strings.Repeat(" ", 2+w+1)

	posA, posB := a.StartA, a.StartB
	step := opt.width()
	for off := 0; off < n; off += step {
		end := off + step
		if end > n {
			end = n
		}
		ca, cb := a.AlignedA[off:end], a.AlignedB[off:end]
		na, nb := residues(ca), residues(cb)

		var marks strings.Builder
		for i := 0; i < len(ca); i++ {
			x, y := ca[i], cb[i]
			switch {
			case x == '-' || y == '-':
				marks.WriteString(miss)
			case x == y:
				marks.WriteString(exact)
			case seq.SymbolsIntersect(alpha, x, y):
				marks.WriteString(partial)
			default:
				marks.WriteString(miss)
			}
		}

		fmt.Fprintf(&b, "%sA %*d %s %d\n", linePrefix, w, first(posA, na), ca, posA+na)
		fmt.Fprintf(&b, "%s%s%s\n", linePrefix, pad, marks.String())
		fmt.Fprintf(&b, "%sB %*d %s %d\n", linePrefix, w, first(posB, nb), cb, posB+nb)
		b.WriteString("#\n")
		posA += na
		posB += nb
	}
	return b.String()
}

func residues(row string) int {
	return len(row) - strings.Count(row, "-")
}

func first(pos, n int) int {
	if n == 0 {
		return pos
	}
	return pos + 1
}

// Wrap breaks s into lines of at most width symbols, each ending in a
// newline. width <= 0 prints s on one line.
func Wrap(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s + "\n"
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/width + 1)
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteByte('\n')
		s = s[width:]
	}
	if s != "" {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return b.String()
}
