// internal/writers/text.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"biosci/internal/pretty"
	"biosci/pkg/api"
)

// SequenceWidth is the line width for sequences in text output.
const SequenceWidth = 60

func init() {
	Register(FormatText, func(w io.Writer, in <-chan api.ResponseV1) error {
		bw := bufio.NewWriter(w)
		for r := range in {
			if _, err := bw.WriteString(RenderText(r)); err != nil {
				return err
			}
		}
		return bw.Flush()
	})
}

// RenderText formats one response. Responses with an id get a "# id" header.
func RenderText(r api.ResponseV1) string {
	var b strings.Builder
	if r.ID != "" {
		fmt.Fprintf(&b, "# %s\n", r.ID)
	}
	if r.Error != nil {
		fmt.Fprintf(&b, "error\t%s\t%s", r.Error.Kind, r.Error.Message)
		if r.Error.Position != nil {
			fmt.Fprintf(&b, "\tposition=%d", *r.Error.Position)
		}
		b.WriteByte('\n')
		return b.String()
	}
	switch v := r.Result.(type) {
	case api.SequenceV1:
		b.WriteString(pretty.Wrap(v.Sequence, SequenceWidth))
	case api.GCContentV1:
		kv(&b, "gc_content", f4(v.GCContent))
	case api.WeightV1:
		kv(&b, "molecular_weight", f4(v.MolecularWeight))
	case api.MotifV1:
		kv(&b, "count", strconv.Itoa(v.Count))
		kv(&b, "positions", joinInts(v.Positions))
	case api.ORFListV1:
		b.WriteString("start\tend\tframe\tstrand\tlength\tprotein\n")
		for _, o := range v.ORFs {
			fmt.Fprintf(&b, "%d\t%d\t%+d\t%s\t%d\t%s\n", o.Start, o.End, o.Frame, o.Strand, o.Length, o.Protein)
		}
	case api.ProteinProfileV1:
		writeProfile(&b, v)
	case api.AlignmentV1:
		b.WriteString(pretty.RenderAlignment(v))
	case api.DistanceV1:
		kv(&b, "hamming_distance", strconv.Itoa(v.Hamming))
		kv(&b, "similarity", f4(v.Similarity))
		kv(&b, "p_distance", f4(v.PDistance))
		kv(&b, "iupac_mismatches", strconv.Itoa(v.IUPACMismatches))
	case api.MeltingTempV1:
		kv(&b, "tm_c", f2(v.TmC))
		kv(&b, "delta_h_kcal", f2(v.DeltaH))
		kv(&b, "delta_s_cal", f2(v.DeltaS))
		kv(&b, "self_complementary", strconv.FormatBool(v.SelfComplementary))
	case []api.GeneticCodeV1:
		b.WriteString("id\tname\tstops\n")
		for _, g := range v {
			fmt.Fprintf(&b, "%d\t%s\t%s\n", g.ID, g.Name, strings.Join(g.Stops, ","))
		}
	case api.SearchReportV1:
		fmt.Fprintf(&b, "# rid=%s program=%s database=%s\n", v.RID, v.Program, v.Database)
		b.WriteString("accession\ttitle\tlength\tbit_score\tevalue\tidentity\talign_len\n")
		for _, h := range v.Hits {
			fmt.Fprintf(&b, "%s\t%s\t%d\t%.1f\t%g\t%d\t%d\n", h.Accession, h.Title, h.Length, h.BitScore, h.EValue, h.Identity, h.AlignLen)
		}
	default:
		fmt.Fprintf(&b, "%v\n", v)
	}
	return b.String()
}

func writeProfile(b *strings.Builder, p api.ProteinProfileV1) {
	kv(b, "length", strconv.Itoa(p.Length))
	kv(b, "molecular_weight", f4(p.MolecularWeight))
	kv(b, "isoelectric_point", f4(p.IsoelectricPoint))
	kv(b, "instability_index", f4(p.InstabilityIndex))
	kv(b, "stable", strconv.FormatBool(p.Stable))
	kv(b, "aromaticity", f4(p.Aromaticity))
	kv(b, "gravy", f4(p.Gravy))
	kv(b, "helix_fraction", f4(p.SecondaryStructure.Helix))
	kv(b, "turn_fraction", f4(p.SecondaryStructure.Turn))
	kv(b, "sheet_fraction", f4(p.SecondaryStructure.Sheet))
	keys := make([]string, 0, len(p.Composition))
	for k := range p.Composition {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		kv(b, "percent_"+k, f4(p.Composition[k]))
	}
}

func kv(b *strings.Builder, k, v string) {
	b.WriteString(k)
	b.WriteByte('\t')
	b.WriteString(v)
	b.WriteByte('\n')
}

func f4(x float64) string { return strconv.FormatFloat(x, 'f', 4, 64) }
func f2(x float64) string { return strconv.FormatFloat(x, 'f', 2, 64) }

func joinInts(xs []int) string {
	ss := make([]string, len(xs))
	for i, x := range xs {
		ss[i] = strconv.Itoa(x)
	}
	return strings.Join(ss, ",")
}
