// internal/app/env.go
package app

import (
	"biosci-core/align"
	"biosci-core/composition"
	"biosci-core/pattern"
	"biosci-core/transform"

	"biosci/internal/config"
	"biosci/internal/ops"
)

// buildEnv turns configured defaults into an ops.Env, rejecting values the
// engines would refuse on every call.
func buildEnv(c config.Config) (ops.Env, error) {
	reg, err := transform.NewRegistry(c.Translate.Tables)
	if err != nil {
		return ops.Env{}, err
	}
	if _, err := reg.Lookup(c.Translate.Table); err != nil {
		return ops.Env{}, err
	}
	mode, err := pattern.ParseMode(c.ORF.Mode)
	if err != nil {
		return ops.Env{}, err
	}
	scheme := align.Scheme{
		Match:     c.Align.Match,
		Mismatch:  c.Align.Mismatch,
		GapOpen:   c.Align.GapOpen,
		GapExtend: c.Align.GapExtend,
		Matrix:    c.Align.Matrix,
	}
	if _, err := scheme.Validate(); err != nil {
		return ops.Env{}, err
	}
	return ops.Env{
		Tables: reg,
		Table:  c.Translate.Table,
		Scheme: scheme,
		Limits: align.Limits{MaxCombinedLength: c.Align.MaxCombinedLength},
		ORF:    pattern.ORFOptions{MinLength: c.ORF.MinLength, Mode: mode},
		Tm: composition.TmOptions{
			Na: c.Tm.NaMM / 1e3,
			CT: c.Tm.PrimerNM * 1e-9,
		},
	}, nil
}
