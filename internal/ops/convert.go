// internal/ops/convert.go
package ops

import (
	"biosci-core/align"
	"biosci-core/composition"
	"biosci-core/pattern"
	"biosci-core/protein"
	"biosci-core/seq"

	"biosci/pkg/api"
)

func toSequenceV1(s seq.Sequence) api.SequenceV1 {
	return api.SequenceV1{Sequence: s.String(), Alphabet: s.Alphabet().String(), Length: s.Len()}
}

func toGCContentV1(gc float64, n int) api.GCContentV1 {
	return api.GCContentV1{GCContent: gc, Length: n}
}

func toWeightV1(w float64, s seq.Sequence, mono bool) api.WeightV1 {
	return api.WeightV1{MolecularWeight: w, Alphabet: s.Alphabet().String(), Monoisotopic: mono, Length: s.Len()}
}

func toMotifV1(pat string, pos []int) api.MotifV1 {
	if pos == nil {
		pos = []int{}
	}
	return api.MotifV1{Pattern: pat, Positions: pos, Count: len(pos)}
}

func toORFListV1(orfs []pattern.ORF) api.ORFListV1 {
	out := api.ORFListV1{ORFs: make([]api.ORFV1, 0, len(orfs)), Count: len(orfs)}
	for _, o := range orfs {
		out.ORFs = append(out.ORFs, api.ORFV1{
			Start:   o.Start,
			End:     o.End,
			Frame:   o.Frame,
			Strand:  string(o.Strand),
			Length:  o.Length,
			Protein: o.Protein,
		})
	}
	return out
}

func toProteinProfileV1(p protein.Profile) api.ProteinProfileV1 {
	comp := make(map[string]float64, len(p.Composition))
	for aa, pct := range p.Composition {
		comp[string(aa)] = pct
	}
	return api.ProteinProfileV1{
		Length:           p.Length,
		MolecularWeight:  p.MolecularWeight,
		IsoelectricPoint: p.IsoelectricPoint,
		InstabilityIndex: p.InstabilityIndex,
		Stable:           p.Stable(),
		Aromaticity:      p.Aromaticity,
		Gravy:            p.Gravy,
		Composition:      comp,
		SecondaryStructure: api.SecondaryStructureV1{
			Helix: p.Structure.Helix,
			Turn:  p.Structure.Turn,
			Sheet: p.Structure.Sheet,
		},
	}
}

func toAlignmentV1(r align.Result, alpha seq.Alphabet) api.AlignmentV1 {
	return api.AlignmentV1{
		AlignedA: r.AlignedA,
		AlignedB: r.AlignedB,
		Score:    r.Score,
		Mode:     r.Mode.String(),
		Alphabet: alpha.String(),
		StartA:   r.StartA,
		EndA:     r.EndA,
		StartB:   r.StartB,
		EndB:     r.EndB,
		Identity: r.Identity(),
		Gaps:     r.Gaps,
	}
}

func toDistanceV1(d int, p float64, iupac, n int) api.DistanceV1 {
	return api.DistanceV1{Hamming: d, Similarity: 1 - p, PDistance: p, IUPACMismatches: iupac, Length: n}
}

func toMeltingTempV1(t composition.Thermo, o composition.TmOptions) api.MeltingTempV1 {
	return api.MeltingTempV1{
		TmC:               t.TmC,
		DeltaH:            t.DH,
		DeltaS:            t.DSSalt,
		SelfComplementary: t.SelfComp,
		NaMM:              o.Na * 1e3,
		PrimerNM:          o.CT * 1e9,
	}
}
