package api

import "encoding/json"

// RequestV1 is one call in a JSON/JSONL request stream.
type RequestV1 struct {
	ID   string          `json:"id,omitempty"`
	Op   string          `json:"op"`
	Args json.RawMessage `json:"args,omitempty"`
}

// ErrorV1 is the wire form of a failed call. Position is a 0-based index
// into the normalized input and is present only for symbol errors.
type ErrorV1 struct {
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Position *int   `json:"position,omitempty"`
}

// ResponseV1 answers one RequestV1. Exactly one of Result and Error is set.
type ResponseV1 struct {
	ID     string   `json:"id,omitempty"`
	Op     string   `json:"op"`
	OK     bool     `json:"ok"`
	Result any      `json:"result,omitempty"`
	Error  *ErrorV1 `json:"error,omitempty"`
}
