// internal/app/requests.go
package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"biosci-core/fasta"

	"biosci/internal/batch"
	"biosci/internal/ops"
	"biosci/pkg/api"
)

func newCallCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "call OP [ARGS_JSON|-]",
		Short: "Run one operation from a JSON argument object",
		Long: `Run one operation with its arguments given as a JSON object, or read from
stdin when ARGS_JSON is "-". Operations: ` + strings.Join(ops.Names(), ", ") + `.`,
		Example: `  biosci call gc_content '{"sequence":"ATGC"}'
  echo '{"seq_a":"GATTACA","seq_b":"GCATGCU"}' | biosci call pairwise_alignment -`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.RequestV1{Op: args[0]}
			if len(args) == 2 {
				raw := []byte(args[1])
				if args[1] == "-" {
					b, err := io.ReadAll(cmd.InOrStdin())
					if err != nil {
						return ioErr(fmt.Errorf("read stdin: %w", err))
					}
					raw = b
				}
				req.Args = json.RawMessage(raw)
			}
			s := st.open()
			s.send(ops.Handle(st.env, req))
			return s.close(nil)
		},
	}
}

func newBatchCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Run a stream of JSON requests, one per line",
		Long: `Run JSON requests read one per line from FILE or stdin, each of the form
{"id":"...","op":"...","args":{...}}. Requests run in parallel; responses
are written in input order. Blank lines and lines starting with '#' are
skipped. Failed requests are reported in their response and do not change
the exit status.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			r, err := fasta.Open(path, cmd.InOrStdin())
			if err != nil {
				return ioErr(err)
			}
			defer r.Close()

			s := st.open()
			stats, err := batch.Run(cmd.Context(), r, batch.Options{
				Threads: st.cfg.Batch.Threads,
				Env:     st.env,
				Logger:  st.log,
			}, func(resp api.ResponseV1) error {
				s.in <- resp
				return nil
			})
			if err != nil && cmd.Context().Err() == nil {
				err = ioErr(err)
			}
			st.log.Info("batch finished", "requests", stats.Requests, "failed", stats.Failed)
			return s.close(err)
		},
	}
	cmd.Flags().Int("threads", 0, "worker goroutines (default one per CPU)")
	bind(st.v, cmd.Flags(), map[string]string{"batch.threads": "threads"})
	return cmd
}
