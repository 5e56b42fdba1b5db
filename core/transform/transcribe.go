package transform

import (
	"strings"

	"biosci-core/seq"
)

// Transcribe rewrites a DNA sequence as RNA (T→U). Length is preserved.
func Transcribe(s seq.Sequence) (seq.Sequence, error) {
	if s.Alphabet() != seq.DNA {
		return seq.Sequence{}, seq.Errorf(seq.InvalidArgument, "transcription needs dna, got %s", s.Alphabet())
	}
	return seq.New(strings.ReplaceAll(s.String(), "T", "U"), seq.RNA), nil
}

// BackTranscribe rewrites an RNA sequence as DNA (U→T).
func BackTranscribe(s seq.Sequence) (seq.Sequence, error) {
	if s.Alphabet() != seq.RNA {
		return seq.Sequence{}, seq.Errorf(seq.InvalidArgument, "back-transcription needs rna, got %s", s.Alphabet())
	}
	return seq.New(strings.ReplaceAll(s.String(), "U", "T"), seq.DNA), nil
}
