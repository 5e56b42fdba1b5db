package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"biosci/internal/ops"
	"biosci/pkg/api"
)

func requests(n int) string {
	var b strings.Builder
	seqs := []string{"ACGT", "GGCCAATTGGCC", "ATGCCGATGATGTTTATGTAA", "AC1G", "MKWVTFISLL"}
	for i := 0; i < n; i++ {
		s := seqs[i%len(seqs)]
		switch i % 3 {
		case 0:
			fmt.Fprintf(&b, `{"id":"r%d","op":"gc_content","args":{"sequence":%q}}`+"\n", i, s)
		case 1:
			fmt.Fprintf(&b, `{"id":"r%d","op":"reverse_complement","args":{"sequence":%q}}`+"\n", i, s)
		default:
			fmt.Fprintf(&b, `{"id":"r%d","op":"find_orfs","args":{"sequence":%q}}`+"\n", i, s)
		}
	}
	return b.String()
}

func collect(t *testing.T, in string, threads int) ([]api.ResponseV1, Stats) {
	t.Helper()
	var out []api.ResponseV1
	st, err := Run(context.Background(), strings.NewReader(in), Options{Threads: threads, Env: ops.DefaultEnv()}, func(r api.ResponseV1) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return out, st
}

func TestRunPreservesOrder(t *testing.T) {
	out, st := collect(t, requests(300), 8)
	if len(out) != 300 || st.Requests != 300 {
		t.Fatalf("got %d responses, stats %+v", len(out), st)
	}
	for i, r := range out {
		if r.ID != fmt.Sprintf("r%d", i) {
			t.Fatalf("response %d has id %s", i, r.ID)
		}
	}
	// two of the five sequences (a bad symbol, a protein) fail every op
	if st.Failed != 120 {
		t.Errorf("failed = %d, want 120", st.Failed)
	}
}

func TestSerialEqualsParallel(t *testing.T) {
	in := requests(120)
	encode := func(rs []api.ResponseV1) []byte {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		for _, r := range rs {
			if err := enc.Encode(r); err != nil {
				t.Fatal(err)
			}
		}
		return buf.Bytes()
	}
	serial, _ := collect(t, in, 1)
	parallel, _ := collect(t, in, 16)
	if !bytes.Equal(encode(serial), encode(parallel)) {
		t.Fatal("serial and parallel output differ")
	}
}

func TestRunLineHandling(t *testing.T) {
	in := strings.Join([]string{
		`# comment`,
		``,
		`{"op":"gc_content","args":{"sequence":"GCAT"}}`,
		`{not json`,
		`{"id":"named","op":"gc_content","args":{"sequence":"GG"}}`,
		`{"op":"gc_content","extra":1}`,
	}, "\n")
	out, st := collect(t, in, 2)
	if len(out) != 4 {
		t.Fatalf("want 4 responses, got %d: %+v", len(out), out)
	}
	if out[0].ID != "3" || !out[0].OK {
		t.Errorf("missing id should become line number: %+v", out[0])
	}
	if out[1].ID != "4" || out[1].OK || out[1].Error == nil || out[1].Error.Kind != "InvalidArgument" {
		t.Errorf("malformed line: %+v", out[1])
	}
	if out[2].ID != "named" || !out[2].OK {
		t.Errorf("named: %+v", out[2])
	}
	if out[3].ID != "6" || out[3].OK {
		t.Errorf("unknown envelope field: %+v", out[3])
	}
	if st.Requests != 4 || st.Failed != 2 {
		t.Errorf("stats = %+v", st)
	}
}

func TestRunStopsOnEmitError(t *testing.T) {
	boom := errors.New("boom")
	n := 0
	_, err := Run(context.Background(), strings.NewReader(requests(500)), Options{Threads: 4}, func(api.ResponseV1) error {
		n++
		if n == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if n != 3 {
		t.Fatalf("emit called %d times after failure", n)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, strings.NewReader(requests(50)), Options{Threads: 2}, func(api.ResponseV1) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}
