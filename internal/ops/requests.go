// internal/ops/requests.go
package ops

// Request is one operation call with typed arguments. The set is closed:
// only types in this package implement it, and Dispatch switches over all
// of them.
type Request interface {
	Op() string
	sealed()
}

// Operation names as they appear on the wire.
const (
	OpReverseComplement  = "reverse_complement"
	OpTranscribe         = "transcribe"
	OpTranslate          = "translate"
	OpGCContent          = "gc_content"
	OpMolecularWeight    = "molecular_weight"
	OpFindMotif          = "find_motif"
	OpFindORFs           = "find_orfs"
	OpProteinAnalysis    = "protein_analysis"
	OpPairwiseAlignment  = "pairwise_alignment"
	OpSequenceDistance   = "calculate_sequence_distance"
	OpMeltingTemperature = "melting_temperature"
)

type ReverseComplement struct {
	Sequence string `json:"sequence"`
}

type Transcribe struct {
	Sequence string `json:"sequence"`
}

// Translate: nil Frame means 1, nil Table means the configured default.
type Translate struct {
	Sequence        string  `json:"sequence"`
	Frame           *int    `json:"frame,omitempty"`
	Table           *string `json:"table,omitempty"`
	StopAtFirstStop bool    `json:"stop_at_first_stop,omitempty"`
}

type GCContent struct {
	Sequence string `json:"sequence"`
}

// MolecularWeight: an empty Alphabet is inferred from the sequence.
type MolecularWeight struct {
	Sequence     string `json:"sequence"`
	Alphabet     string `json:"alphabet,omitempty"`
	Monoisotopic bool   `json:"monoisotopic,omitempty"`
}

// FindMotif: nil AllowAmbiguity means true.
type FindMotif struct {
	Sequence       string `json:"sequence"`
	Pattern        string `json:"pattern"`
	Alphabet       string `json:"alphabet,omitempty"`
	AllowAmbiguity *bool  `json:"allow_ambiguity,omitempty"`
}

// FindORFs: unset fields fall back to the configured ORF options.
type FindORFs struct {
	Sequence  string `json:"sequence"`
	MinLength *int   `json:"min_length,omitempty"`
	Mode      string `json:"mode,omitempty"`
	Frames    []int  `json:"frames,omitempty"`
}

// ProteinAnalysis always reads its input as protein, so "ACG" is
// Ala-Cys-Gly rather than DNA.
type ProteinAnalysis struct {
	Sequence string `json:"sequence"`
}

// PairwiseAlignment: nil scores fall back to the configured scheme.
type PairwiseAlignment struct {
	SeqA      string `json:"seq_a"`
	SeqB      string `json:"seq_b"`
	Mode      string `json:"mode,omitempty"`
	Match     *int   `json:"match,omitempty"`
	Mismatch  *int   `json:"mismatch,omitempty"`
	GapOpen   *int   `json:"gap_open,omitempty"`
	GapExtend *int   `json:"gap_extend,omitempty"`
	Matrix    string `json:"matrix,omitempty"`
}

type SequenceDistance struct {
	SeqA string `json:"seq_a"`
	SeqB string `json:"seq_b"`
}

// MeltingTemperature concentrations: sodium in mM, primer in nM.
type MeltingTemperature struct {
	Sequence string   `json:"sequence"`
	NaMM     *float64 `json:"na_mm,omitempty"`
	PrimerNM *float64 `json:"primer_nm,omitempty"`
}

func (ReverseComplement) Op() string  { return OpReverseComplement }
func (Transcribe) Op() string         { return OpTranscribe }
func (Translate) Op() string          { return OpTranslate }
func (GCContent) Op() string          { return OpGCContent }
func (MolecularWeight) Op() string    { return OpMolecularWeight }
func (FindMotif) Op() string          { return OpFindMotif }
func (FindORFs) Op() string           { return OpFindORFs }
func (ProteinAnalysis) Op() string    { return OpProteinAnalysis }
func (PairwiseAlignment) Op() string  { return OpPairwiseAlignment }
func (SequenceDistance) Op() string   { return OpSequenceDistance }
func (MeltingTemperature) Op() string { return OpMeltingTemperature }

func (ReverseComplement) sealed()  {}
func (Transcribe) sealed()         {}
func (Translate) sealed()          {}
func (GCContent) sealed()          {}
func (MolecularWeight) sealed()    {}
func (FindMotif) sealed()          {}
func (FindORFs) sealed()           {}
func (ProteinAnalysis) sealed()    {}
func (PairwiseAlignment) sealed()  {}
func (SequenceDistance) sealed()   {}
func (MeltingTemperature) sealed() {}
