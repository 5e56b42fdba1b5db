// internal/app/blast.go
package app

import (
	"errors"

	"github.com/spf13/cobra"

	"biosci-core/seq"

	"biosci/internal/ops"
	"biosci/internal/search"
	"biosci/pkg/api"
)

const opBlast = "blast"

func newBlastCmd(st *state) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "blast [SEQUENCE]",
		Short: "Search a sequence against a remote BLAST database",
		Long: `Submit each sequence to a QBLAST endpoint (NCBI by default), poll until the
search finishes and report the best HSP of each hit. Searches run one at a
time; interrupting cancels the one in flight.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := st.cfg.Search
			client := &search.Client{
				Endpoint:     c.Endpoint,
				PollInterval: c.PollInterval,
				Timeout:      c.Timeout,
				Logger:       st.log,
			}
			s := st.open()
			err := eachInput(cmd, args, path, func(in input) error {
				q := search.Query{Sequence: in.seq, Program: c.Program, Database: c.Database, MaxHits: c.MaxHits}
				task := search.Start(ctx, client, q)
				rep, err := task.Wait(ctx)
				if err != nil && ctx.Err() != nil {
					task.Cancel()
					return ctx.Err()
				}
				resp := api.ResponseV1{ID: in.id, Op: opBlast}
				if err != nil {
					resp.Error = toSearchError(err)
				} else {
					resp.OK, resp.Result = true, toSearchReportV1(rep)
				}
				s.send(resp)
				return nil
			})
			return s.close(err)
		},
	}
	addFastaFlag(cmd, &path)
	f := cmd.Flags()
	f.String("program", "blastn", "blastn, blastp, blastx, tblastn or tblastx (default search.program)")
	f.String("database", "nt", "database name (default search.database)")
	f.Int("max-hits", 5, "hits to report (default search.max_hits)")
	f.String("endpoint", "", "QBLAST URL (default search.endpoint)")
	f.Duration("poll-interval", 0, "time between status checks (default search.poll_interval)")
	f.Duration("timeout", 0, "give up after this long (default search.timeout)")
	bind(st.v, f, map[string]string{
		"search.program":       "program",
		"search.database":      "database",
		"search.max_hits":      "max-hits",
		"search.endpoint":      "endpoint",
		"search.poll_interval": "poll-interval",
		"search.timeout":       "timeout",
	})
	return cmd
}

// toSearchError keeps query validation errors in the core taxonomy and
// reports transport and service failures as SearchFailed.
func toSearchError(err error) *api.ErrorV1 {
	var se *seq.Error
	if errors.As(err, &se) {
		return ops.ToErrorV1(err)
	}
	return &api.ErrorV1{Kind: "SearchFailed", Message: err.Error()}
}

func toSearchReportV1(r search.Report) api.SearchReportV1 {
	out := api.SearchReportV1{
		RID:      r.RID,
		Program:  r.Program,
		Database: r.Database,
		Hits:     make([]api.SearchHitV1, 0, len(r.Hits)),
	}
	for _, h := range r.Hits {
		out.Hits = append(out.Hits, api.SearchHitV1{
			Accession: h.Accession,
			Title:     h.Title,
			Length:    h.Length,
			BitScore:  h.BitScore,
			EValue:    h.EValue,
			Identity:  h.Identity,
			AlignLen:  h.AlignLen,
		})
	}
	return out
}
