// internal/ops/decode.go
package ops

import (
	"bytes"
	"encoding/json"
	"sort"

	"biosci-core/seq"
)

// decoders maps every operation name to a decoder for its argument struct.
var decoders = map[string]func(json.RawMessage) (Request, error){
	OpReverseComplement:  decodeAs[ReverseComplement],
	OpTranscribe:         decodeAs[Transcribe],
	OpTranslate:          decodeAs[Translate],
	OpGCContent:          decodeAs[GCContent],
	OpMolecularWeight:    decodeAs[MolecularWeight],
	OpFindMotif:          decodeAs[FindMotif],
	OpFindORFs:           decodeAs[FindORFs],
	OpProteinAnalysis:    decodeAs[ProteinAnalysis],
	OpPairwiseAlignment:  decodeAs[PairwiseAlignment],
	OpSequenceDistance:   decodeAs[SequenceDistance],
	OpMeltingTemperature: decodeAs[MeltingTemperature],
}

// Names lists every operation name, sorted.
func Names() []string {
	out := make([]string, 0, len(decoders))
	for n := range decoders {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Decode parses args for the named operation. Unknown names, unknown fields
// and malformed JSON are InvalidArgument errors.
func Decode(op string, args json.RawMessage) (Request, error) {
	dec, ok := decoders[op]
	if !ok {
		return nil, seq.Errorf(seq.InvalidArgument, "unknown operation %q", op)
	}
	return dec(args)
}

func decodeAs[T Request](raw json.RawMessage) (Request, error) {
	var v T
	if len(bytes.TrimSpace(raw)) == 0 {
		return v, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, seq.Errorf(seq.InvalidArgument, "%s args: %v", v.Op(), err)
	}
	return v, nil
}
