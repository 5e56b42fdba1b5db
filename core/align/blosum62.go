package align

import (
	"strings"

	"github.com/BurntSushi/cablastp/blosum"
)

// Matrix is a symmetric substitution table indexed by uppercase symbol.
// Symbols outside the matrix alphabet score as X.
type Matrix struct {
	Name  string
	index [256]int8
	score [][]int
}

// Score returns the substitution score for x against y.
func (m *Matrix) Score(x, y byte) int {
	return m.score[m.index[x]][m.index[y]]
}

// BLOSUM62 is cablastp's table. Its rows follow blosum.Alphabet62 and
// one trailing row scores the stop symbol '*'.
var BLOSUM62 = newMatrix("blosum62", blosum.Alphabet62+"*", blosum.Matrix62)

var matrices = map[string]*Matrix{"blosum62": BLOSUM62}

// LookupMatrix resolves a matrix name, case-insensitively.
func LookupMatrix(name string) (*Matrix, bool) {
	m, ok := matrices[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

func newMatrix(name, alphabet string, score [][]int) *Matrix {
	x := strings.IndexByte(alphabet, 'X')
	if x < 0 || len(score) != len(alphabet) {
		panic("matrix " + name + ": alphabet does not match its rows")
	}
	m := &Matrix{Name: name, score: score}
	for i := range m.index {
		m.index[i] = int8(x)
	}
	for i := 0; i < len(alphabet); i++ {
		m.index[alphabet[i]] = int8(i)
	}
	return m
}
