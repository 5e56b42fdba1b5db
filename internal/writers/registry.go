// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"biosci/pkg/api"
)

// Format names.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// WriteFunc drains in and serializes each response to w.
type WriteFunc func(w io.Writer, in <-chan api.ResponseV1) error

var registry = map[string]WriteFunc{}

// Register adds or replaces the writer for format.
func Register(format string, fn WriteFunc) { registry[format] = fn }

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, in <-chan api.ResponseV1) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, in)
}

// Start spins up a writer goroutine. The error channel yields one value after
// the input channel is closed; the input is always drained, even when the
// format is unknown or the output fails.
func Start(out io.Writer, format string, bufSize int) (chan<- api.ResponseV1, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.ResponseV1, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := Write(format, out, in)
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}

// IsBrokenPipe reports whether err comes from a consumer (like `head`)
// closing its end early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
