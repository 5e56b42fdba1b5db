package protein

import (
	"strings"

	"biosci-core/composition"
	"biosci-core/seq"
)

// Profile gathers every per-protein metric.
type Profile struct {
	Length           int
	MolecularWeight  float64
	IsoelectricPoint float64
	InstabilityIndex float64
	Aromaticity      float64
	Gravy            float64
	Composition      map[byte]float64
	Structure        Structure
}

// Stable reports the usual instability-index cutoff.
func (p Profile) Stable() bool { return p.InstabilityIndex <= 40 }

// Analyze computes a Profile. A single trailing stop, as left by
// translation, is dropped first.
func Analyze(p seq.Sequence) (Profile, error) {
	if err := needProtein(p); err != nil {
		return Profile{}, err
	}
	if strings.HasSuffix(p.String(), "*") {
		p = seq.New(strings.TrimSuffix(p.String(), "*"), seq.Protein)
		if p.Len() == 0 {
			return Profile{}, seq.Errorf(seq.EmptySequence, "sequence is only a stop")
		}
	}

	var (
		out Profile
		err error
	)
	out.Length = p.Len()
	if out.MolecularWeight, err = composition.MolecularWeight(p, composition.WeightOptions{}); err != nil {
		return Profile{}, err
	}
	if out.IsoelectricPoint, err = IsoelectricPoint(p); err != nil {
		return Profile{}, err
	}
	if out.InstabilityIndex, err = InstabilityIndex(p); err != nil {
		return Profile{}, err
	}
	if out.Aromaticity, err = Aromaticity(p); err != nil {
		return Profile{}, err
	}
	if out.Gravy, err = Gravy(p); err != nil {
		return Profile{}, err
	}
	if out.Composition, err = composition.AminoAcidComposition(p); err != nil {
		return Profile{}, err
	}
	if out.Structure, err = SecondaryStructureFraction(p); err != nil {
		return Profile{}, err
	}
	return out, nil
}
