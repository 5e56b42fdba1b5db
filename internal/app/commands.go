// internal/app/commands.go
package app

import (
	"errors"

	"github.com/spf13/cobra"

	"biosci/internal/ops"
)

// seqCommand builds a command that runs one request per input sequence.
// build is called after flag parsing.
func seqCommand(st *state, use, short string, build func(cmd *cobra.Command, s string) ops.Request) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   use + " [SEQUENCE]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := st.open()
			err := eachInput(cmd, args, path, func(in input) error {
				s.run(in.id, build(cmd, in.seq))
				return nil
			})
			return s.close(err)
		},
	}
	addFastaFlag(cmd, &path)
	return cmd
}

func newRevCompCmd(st *state) *cobra.Command {
	return seqCommand(st, "revcomp", "Reverse complement a DNA or RNA sequence",
		func(_ *cobra.Command, s string) ops.Request { return ops.ReverseComplement{Sequence: s} })
}

func newTranscribeCmd(st *state) *cobra.Command {
	return seqCommand(st, "transcribe", "Transcribe DNA to RNA",
		func(_ *cobra.Command, s string) ops.Request { return ops.Transcribe{Sequence: s} })
}

func newGCCmd(st *state) *cobra.Command {
	return seqCommand(st, "gc", "GC content of a nucleotide sequence",
		func(_ *cobra.Command, s string) ops.Request { return ops.GCContent{Sequence: s} })
}

func newProteinCmd(st *state) *cobra.Command {
	return seqCommand(st, "protein", "Physico-chemical profile of a protein",
		func(_ *cobra.Command, s string) ops.Request { return ops.ProteinAnalysis{Sequence: s} })
}

func newTranslateCmd(st *state) *cobra.Command {
	var (
		frame int
		table string
		stop  bool
	)
	cmd := seqCommand(st, "translate", "Translate DNA or RNA to protein",
		func(cmd *cobra.Command, s string) ops.Request {
			r := ops.Translate{Sequence: s, StopAtFirstStop: stop}
			if cmd.Flags().Changed("frame") {
				r.Frame = &frame
			}
			if cmd.Flags().Changed("table") {
				r.Table = &table
			}
			return r
		})
	cmd.Flags().IntVar(&frame, "frame", 1, "reading frame 1, 2 or 3")
	cmd.Flags().StringVar(&table, "table", "", "genetic code name or NCBI id (default translate.table)")
	cmd.Flags().BoolVar(&stop, "stop", false, "stop at the first stop codon")
	return cmd
}

func newWeightCmd(st *state) *cobra.Command {
	var (
		alphabet string
		mono     bool
	)
	cmd := seqCommand(st, "weight", "Molecular weight of a sequence",
		func(_ *cobra.Command, s string) ops.Request {
			return ops.MolecularWeight{Sequence: s, Alphabet: alphabet, Monoisotopic: mono}
		})
	cmd.Flags().StringVar(&alphabet, "alphabet", "", "dna, rna or protein (default detected)")
	cmd.Flags().BoolVar(&mono, "monoisotopic", false, "use monoisotopic masses")
	return cmd
}

func newORFsCmd(st *state) *cobra.Command {
	var (
		minLen int
		mode   string
		frames []int
	)
	cmd := seqCommand(st, "orfs", "Find open reading frames on both strands",
		func(cmd *cobra.Command, s string) ops.Request {
			r := ops.FindORFs{Sequence: s, Frames: frames}
			if cmd.Flags().Changed("min-length") {
				r.MinLength = &minLen
			}
			if cmd.Flags().Changed("mode") {
				r.Mode = mode
			}
			return r
		})
	cmd.Flags().IntVar(&minLen, "min-length", 0, "minimum ORF length in nucleotides, stop included (default orf.min_length)")
	cmd.Flags().StringVar(&mode, "mode", "", "all or longest (default orf.mode)")
	cmd.Flags().IntSliceVar(&frames, "frames", nil, "frames to scan, e.g. 1,2,-1 (default all six)")
	return cmd
}

func newTmCmd(st *state) *cobra.Command {
	var naMM, primerNM float64
	cmd := seqCommand(st, "tm", "Nearest-neighbour melting temperature of a DNA oligo",
		func(cmd *cobra.Command, s string) ops.Request {
			r := ops.MeltingTemperature{Sequence: s}
			if cmd.Flags().Changed("na-mm") {
				r.NaMM = &naMM
			}
			if cmd.Flags().Changed("primer-nm") {
				r.PrimerNM = &primerNM
			}
			return r
		})
	cmd.Flags().Float64Var(&naMM, "na-mm", 50, "monovalent cation concentration in mM (default tm.na_mm)")
	cmd.Flags().Float64Var(&primerNM, "primer-nm", 500, "strand concentration in nM (default tm.primer_nm)")
	return cmd
}

func newMotifCmd(st *state) *cobra.Command {
	var (
		path     string
		alphabet string
		exact    bool
	)
	cmd := &cobra.Command{
		Use:   "motif PATTERN [SEQUENCE]",
		Short: "Find every occurrence of a motif, overlaps included",
		Long: `Find every occurrence of PATTERN in a sequence. IUPAC ambiguity codes in
the pattern match their expansions unless --exact is given. Positions are
0-based.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pat := args[0]
			s := st.open()
			err := eachInput(cmd, args[1:], path, func(in input) error {
				r := ops.FindMotif{Sequence: in.seq, Pattern: pat, Alphabet: alphabet}
				if cmd.Flags().Changed("exact") {
					amb := !exact
					r.AllowAmbiguity = &amb
				}
				s.run(in.id, r)
				return nil
			})
			return s.close(err)
		},
	}
	addFastaFlag(cmd, &path)
	cmd.Flags().StringVar(&alphabet, "alphabet", "", "dna, rna or protein (default detected)")
	cmd.Flags().BoolVar(&exact, "exact", false, "match pattern letters literally")
	return cmd
}

// pairCommand runs one request per sequence pair: A and B as arguments, or
// the first FASTA record against each later one.
func pairCommand(st *state, use, short string, build func(cmd *cobra.Command, a, b string) ops.Request) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   use + " [A B]",
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return usageErr(errors.New("want two sequences, or none with --fasta"))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				if path != "" {
					return usageErr(errors.New("give two sequence arguments or --fasta, not both"))
				}
				s := st.open()
				s.run("", build(cmd, args[0], args[1]))
				return s.close(nil)
			}
			if path == "" {
				return usageErr(errors.New("missing sequences (two arguments or --fasta)"))
			}
			recs, err := readRecords(cmd, path)
			if err != nil {
				return err
			}
			if len(recs) < 2 {
				return usageErr(errors.New("--fasta needs at least two records"))
			}
			s := st.open()
			ref := recs[0]
			for _, rec := range recs[1:] {
				if err := cmd.Context().Err(); err != nil {
					return s.close(err)
				}
				s.run(ref.id+"/"+rec.id, build(cmd, ref.seq, rec.seq))
			}
			return s.close(nil)
		},
	}
	addFastaFlag(cmd, &path)
	return cmd
}

func newDistanceCmd(st *state) *cobra.Command {
	return pairCommand(st, "distance", "Hamming distance, similarity and p-distance of two sequences",
		func(_ *cobra.Command, a, b string) ops.Request { return ops.SequenceDistance{SeqA: a, SeqB: b} })
}

func newAlignCmd(st *state) *cobra.Command {
	var (
		mode, matrix       string
		match, mismatch    int
		gapOpen, gapExtend int
	)
	cmd := pairCommand(st, "align", "Global or local pairwise alignment",
		func(cmd *cobra.Command, a, b string) ops.Request {
			r := ops.PairwiseAlignment{SeqA: a, SeqB: b, Mode: mode, Matrix: matrix}
			f := cmd.Flags()
			if f.Changed("match") {
				r.Match = &match
			}
			if f.Changed("mismatch") {
				r.Mismatch = &mismatch
			}
			if f.Changed("gap-open") {
				r.GapOpen = &gapOpen
			}
			if f.Changed("gap-extend") {
				r.GapExtend = &gapExtend
			}
			return r
		})
	f := cmd.Flags()
	f.StringVar(&mode, "mode", "global", "global or local")
	f.IntVar(&match, "match", 1, "match score (default align.match)")
	f.IntVar(&mismatch, "mismatch", -1, "mismatch score (default align.mismatch)")
	f.IntVar(&gapOpen, "gap-open", -1, "gap open penalty, <= 0 (default align.gap_open)")
	f.IntVar(&gapExtend, "gap-extend", -1, "gap extend penalty, <= 0 (default align.gap_extend)")
	f.StringVar(&matrix, "matrix", "", "substitution matrix, e.g. BLOSUM62 (default align.matrix)")
	return cmd
}
