// Package writers serializes operation responses.
//
// Every format consumes a stream of api.ResponseV1 values:
//   - json: one indented array, written after the stream closes
//   - jsonl: one compact envelope per line, streamed
//   - text: human-readable blocks, streamed
//
// Writers own all presentation; ops stays domain-only.
package writers
