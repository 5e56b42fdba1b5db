// internal/ops/dispatch.go
package ops

import (
	"fmt"

	"biosci-core/align"
	"biosci-core/composition"
	"biosci-core/distance"
	"biosci-core/pattern"
	"biosci-core/protein"
	"biosci-core/seq"
	"biosci-core/transform"
)

// Env carries the configured defaults every call falls back to. Zero fields
// take the built-in defaults, except Limits where zero disables the check.
type Env struct {
	Tables *transform.Registry // nil means transform.DefaultRegistry
	Table  string              // default genetic code name
	Scheme align.Scheme
	Limits align.Limits
	ORF    pattern.ORFOptions
	Tm     composition.TmOptions
}

// DefaultEnv mirrors the built-in configuration defaults.
func DefaultEnv() Env {
	return Env{
		Tables: transform.DefaultRegistry,
		Table:  "standard",
		Scheme: align.DefaultScheme,
		Limits: align.DefaultLimits,
		Tm:     composition.DefaultTmOptions,
	}
}

func (e Env) registry() *transform.Registry {
	if e.Tables == nil {
		return transform.DefaultRegistry
	}
	return e.Tables
}

func (e Env) scheme() align.Scheme {
	if e.Scheme == (align.Scheme{}) {
		return align.DefaultScheme
	}
	return e.Scheme
}

// Dispatch runs r and returns its pkg/api v1 result record.
func Dispatch(env Env, r Request) (any, error) {
	switch r := r.(type) {
	case ReverseComplement:
		return env.reverseComplement(r)
	case Transcribe:
		return env.transcribe(r)
	case Translate:
		return env.translate(r)
	case GCContent:
		return env.gcContent(r)
	case MolecularWeight:
		return env.molecularWeight(r)
	case FindMotif:
		return env.findMotif(r)
	case FindORFs:
		return env.findORFs(r)
	case ProteinAnalysis:
		return env.proteinAnalysis(r)
	case PairwiseAlignment:
		return env.pairwiseAlignment(r)
	case SequenceDistance:
		return env.sequenceDistance(r)
	case MeltingTemperature:
		return env.meltingTemperature(r)
	default:
		panic(fmt.Sprintf("ops: unhandled request type %T", r))
	}
}

func (e Env) reverseComplement(r ReverseComplement) (any, error) {
	s, err := seq.Validate(r.Sequence, seq.Unknown)
	if err != nil {
		return nil, err
	}
	out, err := transform.ReverseComplement(s)
	if err != nil {
		return nil, err
	}
	return toSequenceV1(out), nil
}

func (e Env) transcribe(r Transcribe) (any, error) {
	s, err := seq.Validate(r.Sequence, seq.Unknown)
	if err != nil {
		return nil, err
	}
	out, err := transform.Transcribe(s)
	if err != nil {
		return nil, err
	}
	return toSequenceV1(out), nil
}

func (e Env) translate(r Translate) (any, error) {
	frame := 1
	if r.Frame != nil {
		frame = *r.Frame
		if frame < 1 || frame > 3 {
			return nil, seq.Errorf(seq.InvalidArgument, "frame must be 1, 2 or 3, got %d", frame)
		}
	}
	name := e.Table
	if r.Table != nil {
		name = *r.Table
	}
	tab, err := e.registry().Lookup(name)
	if err != nil {
		return nil, err
	}
	s, err := seq.Validate(r.Sequence, seq.Unknown)
	if err != nil {
		return nil, err
	}
	out, err := transform.Translate(s, transform.Options{Frame: frame, Table: tab, StopAtFirstStop: r.StopAtFirstStop})
	if err != nil {
		return nil, err
	}
	v := toSequenceV1(out)
	v.Frame, v.Table = frame, tab.Name
	return v, nil
}

func (e Env) gcContent(r GCContent) (any, error) {
	s, err := seq.Validate(r.Sequence, seq.Unknown)
	if err != nil {
		return nil, err
	}
	gc, err := composition.GCContent(s)
	if err != nil {
		return nil, err
	}
	return toGCContentV1(gc, s.Len()), nil
}

func (e Env) molecularWeight(r MolecularWeight) (any, error) {
	alpha, err := seq.ParseAlphabet(r.Alphabet)
	if err != nil {
		return nil, err
	}
	s, err := seq.Validate(r.Sequence, alpha)
	if err != nil {
		return nil, err
	}
	w, err := composition.MolecularWeight(s, composition.WeightOptions{Monoisotopic: r.Monoisotopic})
	if err != nil {
		return nil, err
	}
	return toWeightV1(w, s, r.Monoisotopic), nil
}

func (e Env) findMotif(r FindMotif) (any, error) {
	alpha, err := seq.ParseAlphabet(r.Alphabet)
	if err != nil {
		return nil, err
	}
	s, err := seq.Validate(r.Sequence, alpha)
	if err != nil {
		return nil, err
	}
	ambiguous := true
	if r.AllowAmbiguity != nil {
		ambiguous = *r.AllowAmbiguity
	}
	pos, err := pattern.FindMotif(s, r.Pattern, ambiguous)
	if err != nil {
		return nil, err
	}
	return toMotifV1(seq.Normalize(r.Pattern), pos), nil
}

func (e Env) findORFs(r FindORFs) (any, error) {
	o := e.ORF
	if r.MinLength != nil {
		o.MinLength = *r.MinLength
	}
	if r.Mode != "" {
		m, err := pattern.ParseMode(r.Mode)
		if err != nil {
			return nil, err
		}
		o.Mode = m
	}
	if len(r.Frames) > 0 {
		o.Frames = r.Frames
	}
	s, err := seq.Validate(r.Sequence, seq.Unknown)
	if err != nil {
		return nil, err
	}
	orfs, err := pattern.FindORFs(s, o)
	if err != nil {
		return nil, err
	}
	return toORFListV1(orfs), nil
}

func (e Env) proteinAnalysis(r ProteinAnalysis) (any, error) {
	s, err := seq.Validate(r.Sequence, seq.Protein)
	if err != nil {
		return nil, err
	}
	p, err := protein.Analyze(s)
	if err != nil {
		return nil, err
	}
	return toProteinProfileV1(p), nil
}

func (e Env) pairwiseAlignment(r PairwiseAlignment) (any, error) {
	mode, err := align.ParseMode(r.Mode)
	if err != nil {
		return nil, err
	}
	sc := e.scheme()
	for _, o := range []struct {
		dst *int
		src *int
	}{{&sc.Match, r.Match}, {&sc.Mismatch, r.Mismatch}, {&sc.GapOpen, r.GapOpen}, {&sc.GapExtend, r.GapExtend}} {
		if o.src != nil {
			*o.dst = *o.src
		}
	}
	if r.Matrix != "" {
		sc.Matrix = r.Matrix
	}
	a, b, err := validatePair(r.SeqA, r.SeqB)
	if err != nil {
		return nil, err
	}
	res, err := align.Align(a.Bytes(), b.Bytes(), sc, mode, e.Limits)
	if err != nil {
		return nil, err
	}
	return toAlignmentV1(res, a.Alphabet()), nil
}

func (e Env) sequenceDistance(r SequenceDistance) (any, error) {
	a, b, err := validatePair(r.SeqA, r.SeqB)
	if err != nil {
		return nil, err
	}
	x, y := a.Bytes(), b.Bytes()
	d, err := distance.Hamming(x, y)
	if err != nil {
		return nil, err
	}
	p, err := distance.PDistance(x, y)
	if err != nil {
		return nil, err
	}
	mm, err := distance.Mismatches(x, y, a.Alphabet())
	if err != nil {
		return nil, err
	}
	return toDistanceV1(d, p, mm, len(x)), nil
}

func (e Env) meltingTemperature(r MeltingTemperature) (any, error) {
	o := e.Tm
	if o == (composition.TmOptions{}) {
		o = composition.DefaultTmOptions
	}
	if r.NaMM != nil {
		if *r.NaMM <= 0 {
			return nil, seq.Errorf(seq.InvalidArgument, "na_mm must be > 0, got %g", *r.NaMM)
		}
		o.Na = *r.NaMM / 1e3
	}
	if r.PrimerNM != nil {
		if *r.PrimerNM <= 0 {
			return nil, seq.Errorf(seq.InvalidArgument, "primer_nm must be > 0, got %g", *r.PrimerNM)
		}
		o.CT = *r.PrimerNM * 1e-9
	}
	s, err := seq.Validate(r.Sequence, seq.DNA)
	if err != nil {
		return nil, err
	}
	t, err := composition.MeltingTemp(s, o)
	if err != nil {
		return nil, err
	}
	return toMeltingTempV1(t, o), nil
}

// validatePair classifies both inputs together so a DNA/protein pair is read
// as protein and a T/U mix is refused.
func validatePair(rawA, rawB string) (seq.Sequence, seq.Sequence, error) {
	na, nb := seq.Normalize(rawA), seq.Normalize(rawB)
	if na == "" || nb == "" {
		return seq.Sequence{}, seq.Sequence{}, seq.Errorf(seq.EmptySequence, "seq_a and seq_b must both be non-empty")
	}
	c := seq.Classify(na + nb)
	switch {
	case c.Pos >= 0:
		side, pos := "seq_a", c.Pos
		if pos >= len(na) {
			side, pos = "seq_b", pos-len(na)
		}
		return seq.Sequence{}, seq.Sequence{}, &seq.Error{
			Kind: seq.InvalidSymbol,
			Msg:  fmt.Sprintf("%s: symbol %q belongs to no alphabet", side, (na + nb)[c.Pos]),
			Pos:  pos,
		}
	case c.Ambiguous:
		return seq.Sequence{}, seq.Sequence{}, seq.Errorf(seq.AmbiguousAlphabet, "seq_a and seq_b mix T and U")
	}
	a, err := seq.Validate(na, c.Alphabet)
	if err != nil {
		return seq.Sequence{}, seq.Sequence{}, err
	}
	b, err := seq.Validate(nb, c.Alphabet)
	if err != nil {
		return seq.Sequence{}, seq.Sequence{}, err
	}
	return a, b, nil
}
