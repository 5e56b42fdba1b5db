// core/seq/errors.go
package seq

import "fmt"

// Kind classifies every failure the analysis engines can report.
type Kind int

const (
	InvalidSymbol Kind = iota + 1
	AmbiguousAlphabet
	EmptySequence
	LengthMismatch
	SequenceTooShort
	InvalidPattern
	NonConvergent
	SizeLimitExceeded
	InvalidArgument
)

var kindNames = map[Kind]string{
	InvalidSymbol:     "InvalidSymbol",
	AmbiguousAlphabet: "AmbiguousAlphabet",
	EmptySequence:     "EmptySequence",
	LengthMismatch:    "LengthMismatch",
	SequenceTooShort:  "SequenceTooShort",
	InvalidPattern:    "InvalidPattern",
	NonConvergent:     "NonConvergent",
	SizeLimitExceeded: "SizeLimitExceeded",
	InvalidArgument:   "InvalidArgument",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the single structured error type returned by the core.
// Pos is a 0-based index into the normalized sequence, or -1.
type Error struct {
	Kind Kind
	Msg  string
	Pos  int
}

func (e *Error) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s at %d: %s", e.Kind, e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is matches any *Error of the same Kind, so the sentinels below work with
// errors.Is regardless of message or position.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidSymbol     = &Error{Kind: InvalidSymbol, Pos: -1}
	ErrAmbiguousAlphabet = &Error{Kind: AmbiguousAlphabet, Pos: -1}
	ErrEmptySequence     = &Error{Kind: EmptySequence, Pos: -1}
	ErrLengthMismatch    = &Error{Kind: LengthMismatch, Pos: -1}
	ErrSequenceTooShort  = &Error{Kind: SequenceTooShort, Pos: -1}
	ErrInvalidPattern    = &Error{Kind: InvalidPattern, Pos: -1}
	ErrNonConvergent     = &Error{Kind: NonConvergent, Pos: -1}
	ErrSizeLimitExceeded = &Error{Kind: SizeLimitExceeded, Pos: -1}
	ErrInvalidArgument   = &Error{Kind: InvalidArgument, Pos: -1}
)

// Errorf builds an *Error without a position.
func Errorf(k Kind, format string, a ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, a...), Pos: -1}
}

// SymbolError reports an offending symbol at pos.
func SymbolError(pos int, sym byte, a Alphabet) *Error {
	return &Error{
		Kind: InvalidSymbol,
		Msg:  fmt.Sprintf("symbol %q is not valid for %s", sym, a),
		Pos:  pos,
	}
}
