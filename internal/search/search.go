// Package search runs remote similarity searches as cancellable background
// tasks. Reports are read-only results; nothing here feeds back into the
// analysis engines.
package search

import (
	"context"
	"strings"

	"biosci-core/seq"
)

// Query is one search submission.
type Query struct {
	Sequence string
	Program  string // blastn, blastp, blastx, tblastn or tblastx
	Database string
	MaxHits  int // 0 means the service default
}

// Hit is the best-scoring HSP of one database sequence.
type Hit struct {
	Accession string
	Title     string
	Length    int
	BitScore  float64
	EValue    float64
	Identity  int // identical positions in the HSP
	AlignLen  int
}

// Report is a finished search.
type Report struct {
	RID      string
	Program  string
	Database string
	Hits     []Hit
}

// Searcher runs a query to completion or until ctx is done.
type Searcher interface {
	Search(ctx context.Context, q Query) (Report, error)
}

var programs = map[string]seq.Alphabet{
	"blastn":  seq.DNA,
	"blastx":  seq.DNA,
	"tblastx": seq.DNA,
	"blastp":  seq.Protein,
	"tblastn": seq.Protein,
}

// Validate normalizes the query sequence and checks it suits the program.
func (q Query) Validate() (Query, error) {
	q.Program = strings.ToLower(strings.TrimSpace(q.Program))
	want, ok := programs[q.Program]
	if !ok {
		return q, seq.Errorf(seq.InvalidArgument, "unknown search program %q", q.Program)
	}
	if strings.TrimSpace(q.Database) == "" {
		return q, seq.Errorf(seq.InvalidArgument, "search database is required")
	}
	if q.MaxHits < 0 {
		return q, seq.Errorf(seq.InvalidArgument, "max hits must be >= 0, got %d", q.MaxHits)
	}
	s, err := seq.Validate(q.Sequence, seq.Unknown)
	if err != nil {
		return q, err
	}
	if s.Alphabet().IsNucleic() != want.IsNucleic() {
		return q, seq.Errorf(seq.InvalidArgument, "%s needs a %s query, got %s", q.Program, want, s.Alphabet())
	}
	q.Sequence = s.String()
	return q, nil
}
