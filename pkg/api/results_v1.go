// pkg/api/results_v1.go
package api

// Stable JSON/JSONL schemas for operation results.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".

// SequenceV1 is a transformed sequence (reverse complement, transcript,
// translation).
type SequenceV1 struct {
	Sequence string `json:"sequence"`
	Alphabet string `json:"alphabet"` // "dna" | "rna" | "protein"
	Length   int    `json:"length"`
	Frame    int    `json:"frame,omitempty"`
	Table    string `json:"table,omitempty"`
}

// GCContentV1 is a G+C ratio in [0,1].
type GCContentV1 struct {
	GCContent float64 `json:"gc_content"`
	Length    int     `json:"length"`
}

// WeightV1 is a molecular weight in Daltons.
type WeightV1 struct {
	MolecularWeight float64 `json:"molecular_weight"`
	Alphabet        string  `json:"alphabet"`
	Monoisotopic    bool    `json:"monoisotopic"`
	Length          int     `json:"length"`
}

// MotifV1 lists 0-based motif start offsets.
type MotifV1 struct {
	Pattern   string `json:"pattern"`
	Positions []int  `json:"positions"`
	Count     int    `json:"count"`
}

// ORFV1 is one open reading frame; Start/End are 0-based half-open on the
// forward strand.
type ORFV1 struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Frame   int    `json:"frame"`  // +1..+3, -1..-3
	Strand  string `json:"strand"` // "+" | "-"
	Length  int    `json:"length"`
	Protein string `json:"protein"`
}

type ORFListV1 struct {
	ORFs  []ORFV1 `json:"orfs"`
	Count int     `json:"count"`
}

type SecondaryStructureV1 struct {
	Helix float64 `json:"helix"`
	Turn  float64 `json:"turn"`
	Sheet float64 `json:"sheet"`
}

// ProteinProfileV1 carries every protein metric. Composition is keyed by
// one-letter residue code, values in percent.
type ProteinProfileV1 struct {
	Length             int                  `json:"length"`
	MolecularWeight    float64              `json:"molecular_weight"`
	IsoelectricPoint   float64              `json:"isoelectric_point"`
	InstabilityIndex   float64              `json:"instability_index"`
	Stable             bool                 `json:"stable"`
	Aromaticity        float64              `json:"aromaticity"`
	Gravy              float64              `json:"gravy"`
	Composition        map[string]float64   `json:"amino_acid_composition"`
	SecondaryStructure SecondaryStructureV1 `json:"secondary_structure"`
}

// AlignmentV1 is a pairwise alignment with '-' for gaps.
type AlignmentV1 struct {
	AlignedA string  `json:"aligned_a"`
	AlignedB string  `json:"aligned_b"`
	Score    int     `json:"score"`
	Mode     string  `json:"mode"` // "global" | "local"
	Alphabet string  `json:"alphabet"`
	StartA   int     `json:"start_a"`
	EndA     int     `json:"end_a"`
	StartB   int     `json:"start_b"`
	EndB     int     `json:"end_b"`
	Identity float64 `json:"identity"`
	Gaps     int     `json:"gaps"`
}

// DistanceV1 compares two equal-length sequences.
type DistanceV1 struct {
	Hamming         int     `json:"hamming_distance"`
	Similarity      float64 `json:"similarity"`
	PDistance       float64 `json:"p_distance"`
	IUPACMismatches int     `json:"iupac_mismatches"`
	Length          int     `json:"length"`
}

// MeltingTempV1 is a nearest-neighbor Tm against the perfect complement.
type MeltingTempV1 struct {
	TmC               float64 `json:"tm_c"`
	DeltaH            float64 `json:"delta_h_kcal"`
	DeltaS            float64 `json:"delta_s_cal"`
	SelfComplementary bool    `json:"self_complementary"`
	NaMM              float64 `json:"na_mm"`
	PrimerNM          float64 `json:"primer_nm"`
}

// GeneticCodeV1 describes one translation table.
type GeneticCodeV1 struct {
	Name   string   `json:"name"`
	ID     int      `json:"id,omitempty"`
	Table  string   `json:"table"`
	Starts []string `json:"starts"`
	Stops  []string `json:"stops"`
}

// SearchHitV1 is the best HSP of one database hit.
type SearchHitV1 struct {
	Accession string  `json:"accession"`
	Title     string  `json:"title"`
	Length    int     `json:"length"`
	BitScore  float64 `json:"bit_score"`
	EValue    float64 `json:"evalue"`
	Identity  int     `json:"identity"`
	AlignLen  int     `json:"align_len"`
}

// SearchReportV1 is the outcome of a remote similarity search.
type SearchReportV1 struct {
	RID      string        `json:"rid"`
	Program  string        `json:"program"`
	Database string        `json:"database"`
	Hits     []SearchHitV1 `json:"hits"`
}
