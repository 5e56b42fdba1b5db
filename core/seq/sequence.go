// core/seq/sequence.go
package seq

import (
	"unicode"
)

// Sequence is an immutable, validated biological sequence.
type Sequence struct {
	text     string
	alphabet Alphabet
}

// Normalize removes whitespace and quote characters and uppercases letters.
func Normalize(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		if r < unicode.MaxASCII {
			out = append(out, byte(unicode.ToUpper(r)))
			continue
		}
		// Non-ASCII can never validate; keep a placeholder byte so positions
		// still point at the offending rune.
		out = append(out, 0)
	}
	return string(out)
}

// Validate normalizes raw text and checks it against declared, or against
// the inferred alphabet when declared is Unknown.
func Validate(raw string, declared Alphabet) (Sequence, error) {
	s := Normalize(raw)
	a := declared
	if a == Unknown {
		c := Classify(s)
		switch {
		case c.Pos >= 0:
			return Sequence{}, &Error{Kind: InvalidSymbol, Msg: "symbol " + quoteByte(s[c.Pos]) + " belongs to no alphabet", Pos: c.Pos}
		case c.Ambiguous && s == "":
			return Sequence{}, Errorf(AmbiguousAlphabet, "empty input; cannot infer alphabet")
		case c.Ambiguous:
			return Sequence{}, Errorf(AmbiguousAlphabet, "input mixes T and U; declare an alphabet")
		}
		a = c.Alphabet
	}
	if s == "" {
		return Sequence{}, Errorf(EmptySequence, "empty %s sequence", a)
	}
	for i := 0; i < len(s); i++ {
		if !a.Contains(s[i]) {
			return Sequence{}, SymbolError(i, s[i], a)
		}
	}
	return Sequence{text: s, alphabet: a}, nil
}

// MustValidate is Validate for literals known to be valid; it panics otherwise.
func MustValidate(raw string, declared Alphabet) Sequence {
	s, err := Validate(raw, declared)
	if err != nil {
		panic(err)
	}
	return s
}

// New wraps engine output derived from validated input without re-checking it.
func New(text string, a Alphabet) Sequence { return Sequence{text: text, alphabet: a} }

func (s Sequence) String() string     { return s.text }
func (s Sequence) Alphabet() Alphabet { return s.alphabet }
func (s Sequence) Len() int           { return len(s.text) }
func (s Sequence) IsZero() bool       { return s.alphabet == Unknown }

// At returns the symbol at i.
func (s Sequence) At(i int) byte { return s.text[i] }

// Bytes returns a copy of the symbols.
func (s Sequence) Bytes() []byte { return []byte(s.text) }

func quoteByte(b byte) string {
	if b == 0 {
		return "non-ASCII"
	}
	return "'" + string(b) + "'"
}
