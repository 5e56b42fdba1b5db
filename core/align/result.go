package align

// Gap is the symbol written into aligned strings.
const Gap = '-'

// Result is one pairwise alignment. Spans are 0-based half-open over the
// inputs; for global alignments they cover both inputs entirely.
type Result struct {
	AlignedA string
	AlignedB string
	Score    int
	Mode     Mode
	StartA   int
	EndA     int
	StartB   int
	EndB     int
	Matches  int
	Gaps     int
}

// Identity is the fraction of alignment columns holding identical symbols.
func (r Result) Identity() float64 {
	if len(r.AlignedA) == 0 {
		return 0
	}
	return float64(r.Matches) / float64(len(r.AlignedA))
}

// builder collects columns during traceback, last column first.
type builder struct {
	a, b []byte
}

func (w *builder) push(x, y byte) {
	w.a = append(w.a, x)
	w.b = append(w.b, y)
}

func (w *builder) finish(r *Result) {
	reverse(w.a)
	reverse(w.b)
	r.AlignedA, r.AlignedB = string(w.a), string(w.b)
	for i := range w.a {
		switch {
		case w.a[i] == Gap || w.b[i] == Gap:
			r.Gaps++
		case w.a[i] == w.b[i]:
			r.Matches++
		}
	}
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
