// internal/app/input.go
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"biosci-core/fasta"

	"biosci/internal/logging"
	"biosci/internal/ops"
	"biosci/internal/writers"
	"biosci/pkg/api"
)

// input is one sequence from the command line or a FASTA record.
type input struct {
	id  string // empty for positional arguments
	seq string
}

// addFastaFlag registers --fasta on cmd.
func addFastaFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVar(path, "fasta", "", "read sequences from a FASTA file (\"-\" for stdin, .gz accepted)")
}

// eachInput calls fn for the positional sequence, or for every record of
// the FASTA file when path is set. Exactly one of the two must be given;
// "-" reads the command's stdin.
func eachInput(cmd *cobra.Command, args []string, path string, fn func(input) error) error {
	switch {
	case path != "" && len(args) > 0:
		return usageErr(errors.New("give a sequence argument or --fasta, not both"))
	case path == "" && len(args) == 0:
		return usageErr(errors.New("missing sequence (argument or --fasta)"))
	case path == "":
		return fn(input{seq: args[0]})
	}
	rc, err := fasta.Open(path, cmd.InOrStdin())
	if err != nil {
		return ioErr(fmt.Errorf("open %s: %w", path, err))
	}
	defer rc.Close()

	var fnErr error
	err = fasta.Scan(cmd.Context(), rc, func(r fasta.Record) error {
		if fnErr = fn(input{id: r.ID, seq: string(r.Seq)}); fnErr != nil {
			return fnErr
		}
		return nil
	})
	if err != nil && err != fnErr && !errors.Is(err, context.Canceled) {
		return ioErr(fmt.Errorf("read %s: %w", path, err))
	}
	return err
}

// readRecords loads every record of a FASTA file.
func readRecords(cmd *cobra.Command, path string) ([]input, error) {
	var out []input
	err := eachInput(cmd, nil, path, func(in input) error {
		out = append(out, in)
		return nil
	})
	return out, err
}

// session streams responses to the configured writer and counts failures.
type session struct {
	st     *state
	in     chan<- api.ResponseV1
	errCh  <-chan error
	failed int
}

func (st *state) open() *session {
	in, errCh := writers.Start(st.stdout, st.cfg.Output, 0)
	return &session{st: st, in: in, errCh: errCh}
}

// run dispatches r and sends its response.
func (s *session) run(id string, r ops.Request) {
	resp := api.ResponseV1{ID: id, Op: r.Op()}
	res, err := ops.Dispatch(s.st.env, r)
	if err != nil {
		resp.Error = ops.ToErrorV1(err)
	} else {
		resp.OK, resp.Result = true, res
	}
	s.send(resp)
}

func (s *session) send(resp api.ResponseV1) {
	if resp.Error != nil {
		s.failed++
		label := resp.Op
		if resp.ID != "" {
			label += " " + resp.ID
		}
		logging.Warnf(s.st.stderr, s.st.cfg.Quiet, "%s: %s: %s", label, resp.Error.Kind, resp.Error.Message)
	}
	s.in <- resp
}

// close waits for the writer. err, when set, takes precedence; otherwise a
// write failure is an I/O error and any failed response is errFailed.
func (s *session) close(err error) error {
	close(s.in)
	werr := <-s.errCh
	switch {
	case err != nil:
		return err
	case werr != nil:
		return ioErr(werr)
	case s.failed > 0:
		return errFailed
	}
	return nil
}
