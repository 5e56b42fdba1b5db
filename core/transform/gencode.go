// core/transform/gencode.go
package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"biosci-core/seq"

	"github.com/bebop/poly/synthesis/codon"
)

// Table is an immutable genetic code: 64 codons in NCBI TCAG order.
type Table struct {
	ID     int // NCBI id; 0 for custom tables
	Name   string
	aa     [64]byte
	starts []string
}

const standardAAs = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"

// Standard is NCBI table 1, built in.
var Standard = mustTable(1, "standard", standardAAs, []string{"TTG", "CTG", "ATG"})

var tcag [256]int8

func init() {
	for i := range tcag {
		tcag[i] = -1
	}
	tcag['T'], tcag['U'], tcag['C'], tcag['A'], tcag['G'] = 0, 0, 1, 2, 3
}

func codonIndex(a, b, c byte) int {
	x, y, z := tcag[a], tcag[b], tcag[c]
	if x < 0 || y < 0 || z < 0 {
		return -1
	}
	return int(x)*16 + int(y)*4 + int(z)
}

// Codons lists the 64 DNA codons in table order.
func Codons() []string {
	const b = "TCAG"
	out := make([]string, 0, 64)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				out = append(out, string([]byte{b[i], b[j], b[k]}))
			}
		}
	}
	return out
}

func newTable(id int, name, aas string, starts []string) (*Table, error) {
	if len(aas) != 64 {
		return nil, seq.Errorf(seq.InvalidArgument, "table %q: want 64 amino acids, got %d", name, len(aas))
	}
	t := &Table{ID: id, Name: name, starts: starts}
	for i := 0; i < 64; i++ {
		c := aas[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if !seq.Protein.Contains(c) {
			return nil, seq.Errorf(seq.InvalidArgument, "table %q: %q at %d is not an amino acid", name, c, i)
		}
		t.aa[i] = c
	}
	return t, nil
}

func mustTable(id int, name, aas string, starts []string) *Table {
	t, err := newTable(id, name, aas, starts)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup translates one concrete codon (A/C/G/T/U only); ok is false otherwise.
func (t *Table) Lookup(a, b, c byte) (aa byte, ok bool) {
	i := codonIndex(a, b, c)
	if i < 0 {
		return 0, false
	}
	return t.aa[i], true
}

// IsStop reports whether the concrete codon is a stop in t.
func (t *Table) IsStop(a, b, c byte) bool {
	aa, ok := t.Lookup(a, b, c)
	return ok && aa == '*'
}

// StartCodons returns the table's initiation codons.
func (t *Table) StartCodons() []string { return append([]string(nil), t.starts...) }

// StopCodons returns every codon that maps to '*'.
func (t *Table) StopCodons() []string {
	var out []string
	for i, c := range Codons() {
		if t.aa[i] == '*' {
			out = append(out, c)
		}
	}
	return out
}

// String renders the table in NCBI's 64-letter form.
func (t *Table) String() string { return string(t.aa[:]) }

/* ----------------------------- NCBI tables ------------------------------ */

var ncbiNames = map[string]int{
	"standard":                           1,
	"sgc0":                               1,
	"vertebrate mitochondrial":           2,
	"yeast mitochondrial":                3,
	"mold mitochondrial":                 4,
	"protozoan mitochondrial":            4,
	"mycoplasma":                         4,
	"invertebrate mitochondrial":         5,
	"ciliate nuclear":                    6,
	"echinoderm mitochondrial":           9,
	"flatworm mitochondrial":             9,
	"euplotid nuclear":                   10,
	"bacterial":                          11,
	"archaeal":                           11,
	"plant plastid":                      11,
	"alternative yeast nuclear":          12,
	"ascidian mitochondrial":             13,
	"alternative flatworm mitochondrial": 14,
	"blepharisma macronuclear":           15,
	"chlorophycean mitochondrial":        16,
	"trematode mitochondrial":            21,
	"scenedesmus obliquus mitochondrial": 22,
	"thraustochytrium mitochondrial":     23,
	"pterobranchia mitochondrial":        24,
	"candidate division sr1":             25,
	"gracilibacteria":                    25,
	"pachysolen tannophilus nuclear":     26,
	"karyorelict nuclear":                27,
	"condylostoma nuclear":               28,
	"mesodinium nuclear":                 29,
	"peritrich nuclear":                  30,
	"blastocrithidia nuclear":            31,
	"cephalodiscidae mitochondrial":      33,
}

// Tables poly does not ship. Amino acids in TCAG order and start codons
// as published by NCBI.
var localTables = map[int]struct {
	aas    string
	starts []string
}{
	15: {"FFLLSSSSYY*QCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG", []string{"ATG"}},
}

var ncbiTables = map[int]func() (*Table, error){}

func init() {
	ids := map[int]string{}
	for name, id := range ncbiNames {
		if cur, ok := ids[id]; !ok || name < cur {
			ids[id] = name
		}
	}
	ids[1] = "standard"
	for id, name := range ids {
		id, name := id, name
		if id == 1 {
			ncbiTables[id] = func() (*Table, error) { return Standard, nil }
			continue
		}
		if lt, ok := localTables[id]; ok {
			ncbiTables[id] = sync.OnceValues(func() (*Table, error) {
				return newTable(id, name, lt.aas, lt.starts)
			})
			continue
		}
		ncbiTables[id] = sync.OnceValues(func() (*Table, error) { return fromPoly(id, name) })
	}
}

// fromPoly builds an NCBI table from poly's translation tables.
// NewTranslationTable panics on an id it does not know.
func fromPoly(id int, name string) (t *Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, fmt.Errorf("genetic code %d: not available", id)
		}
	}()
	pt, err := codon.NewTranslationTable(id)
	if err != nil {
		return nil, fmt.Errorf("genetic code %d: %w", id, err)
	}
	var aas [64]byte
	for i, c := range Codons() {
		aa := pt.TranslationMap[c]
		if len(aa) != 1 {
			return nil, fmt.Errorf("genetic code %d: no amino acid for %s", id, c)
		}
		aas[i] = aa[0]
	}
	return newTable(id, name, string(aas[:]), append([]string(nil), pt.StartCodons...))
}

/* ------------------------------- Registry -------------------------------- */

// Registry resolves table names: built-in standard, NCBI names and ids, and
// custom tables supplied at construction. It is read-only after New.
type Registry struct {
	custom map[string]*Table
}

// NewRegistry validates custom tables (name → 64-letter NCBI string).
func NewRegistry(custom map[string]string) (*Registry, error) {
	r := &Registry{custom: map[string]*Table{}}
	for name, aas := range custom {
		key := normalizeName(name)
		if _, clash := ncbiNames[key]; clash {
			return nil, seq.Errorf(seq.InvalidArgument, "custom table %q shadows an NCBI table", name)
		}
		t, err := newTable(0, key, aas, []string{"ATG"})
		if err != nil {
			return nil, err
		}
		r.custom[key] = t
	}
	return r, nil
}

// DefaultRegistry knows only the built-in and NCBI tables.
var DefaultRegistry = &Registry{custom: map[string]*Table{}}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// Lookup resolves name; "" means standard.
func (r *Registry) Lookup(name string) (*Table, error) {
	key := normalizeName(name)
	if key == "" {
		return Standard, nil
	}
	if t, ok := r.custom[key]; ok {
		return t, nil
	}
	id, ok := ncbiNames[key]
	if !ok {
		n, err := strconv.Atoi(key)
		if err != nil {
			return nil, seq.Errorf(seq.InvalidArgument, "unknown genetic code table %q", name)
		}
		id = n
	}
	build, ok := ncbiTables[id]
	if !ok {
		return nil, seq.Errorf(seq.InvalidArgument, "unknown NCBI genetic code id %d", id)
	}
	t, err := build()
	if err != nil {
		return nil, seq.Errorf(seq.InvalidArgument, "%v", err)
	}
	return t, nil
}

// Names lists every resolvable table name, sorted.
func (r *Registry) Names() []string {
	var out []string
	for n := range ncbiNames {
		out = append(out, n)
	}
	for n := range r.custom {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
