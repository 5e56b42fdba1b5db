// Package batch runs a JSONL stream of operation requests over a bounded
// worker pool and emits the responses in input order.
package batch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"biosci/internal/logging"
	"biosci/internal/ops"
	"biosci/pkg/api"
)

// Options controls Run.
type Options struct {
	Threads int // worker goroutines; <=0 means runtime.NumCPU()
	Env     ops.Env
	Logger  *slog.Logger // nil discards
}

// Stats counts emitted responses.
type Stats struct {
	Requests int
	Failed   int
}

const maxLine = 64 << 20

// Run reads one api.RequestV1 per line from r. Blank lines and lines
// starting with '#' are skipped. A line that does not parse becomes an
// InvalidArgument response; a request without an id is given its 1-based
// line number. emit is called from a single goroutine, in input order; its
// first error stops the run.
func Run(ctx context.Context, r io.Reader, o Options, emit func(api.ResponseV1) error) (Stats, error) {
	threads := o.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	lg := o.Logger
	if lg == nil {
		lg = logging.Discard()
	}

	var st Stats
	order := make(chan chan api.ResponseV1, threads*2)
	g, gctx := errgroup.WithContext(ctx)

	// Emitter: waits on each slot in turn so output order is input order.
	g.Go(func() error {
		for slot := range order {
			var resp api.ResponseV1
			select {
			case resp = <-slot:
			case <-gctx.Done():
				return gctx.Err()
			}
			if err := emit(resp); err != nil {
				return err
			}
			st.Requests++
			if !resp.OK {
				st.Failed++
			}
		}
		return nil
	})

	// Reader: one slot per request, handled on the worker pool.
	g.Go(func() error {
		defer close(order)
		var work errgroup.Group
		work.SetLimit(threads)
		defer func() { _ = work.Wait() }()

		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64<<10), maxLine)
		line := 0
		for sc.Scan() {
			line++
			if err := gctx.Err(); err != nil {
				return err
			}
			text := bytes.TrimSpace(sc.Bytes())
			if len(text) == 0 || text[0] == '#' {
				continue
			}
			slot := make(chan api.ResponseV1, 1)
			select {
			case order <- slot:
			case <-gctx.Done():
				return gctx.Err()
			}
			req, bad := parseRequest(text, line)
			if bad != nil {
				lg.Warn("unparsable request", "line", line, "error", bad.Error.Message)
				slot <- *bad
				continue
			}
			work.Go(func() error {
				resp := ops.Handle(o.Env, req)
				lg.Debug("request", "id", resp.ID, "op", resp.Op, "ok", resp.OK)
				slot <- resp
				return nil
			})
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read requests: %w", err)
		}
		return nil
	})

	err := g.Wait()
	return st, err
}

func parseRequest(text []byte, line int) (api.RequestV1, *api.ResponseV1) {
	var req api.RequestV1
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, &api.ResponseV1{
			ID: strconv.Itoa(line),
			Error: &api.ErrorV1{
				Kind:    "InvalidArgument",
				Message: fmt.Sprintf("line %d: %v", line, err),
			},
		}
	}
	if req.ID == "" {
		req.ID = strconv.Itoa(line)
	}
	return req, nil
}
