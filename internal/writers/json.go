// internal/writers/json.go
package writers

import (
	"encoding/json"
	"io"

	"biosci/internal/jsonlutil"
	"biosci/pkg/api"
)

func init() {
	Register(FormatJSON, writeJSON)
	Register(FormatJSONL, writeJSONL)
}

// writeJSON buffers the whole stream into one indented array.
func writeJSON(w io.Writer, in <-chan api.ResponseV1) error {
	list := make([]api.ResponseV1, 0, 16)
	for r := range in {
		list = append(list, r)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

func writeJSONL(w io.Writer, in <-chan api.ResponseV1) error {
	pipe, done := StartJSONL(w, 64)
	for r := range in {
		pipe <- r
	}
	close(pipe)
	return <-done
}

// StartJSONL streams each response as one JSON line.
func StartJSONL(out io.Writer, bufSize int) (chan<- api.ResponseV1, <-chan error) {
	return jsonlutil.Start[api.ResponseV1](out, bufSize,
		func(enc *json.Encoder, r api.ResponseV1) error { return enc.Encode(r) },
		IsBrokenPipe,
	)
}
