// core/transform/rc_test.go
package transform

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"biosci-core/seq"
)

func TestRevCompSimple(t *testing.T) {
	got := RevComp([]byte("AGTC"), false)
	want := []byte("GACT")
	if !bytes.Equal(got, want) {
		t.Errorf("RevComp(AGTC) = %s, want %s", got, want)
	}
}

func TestRevCompEmpty(t *testing.T) {
	if RevComp(nil, false) != nil {
		t.Errorf("RevComp(nil) should return nil")
	}
}

// Snapshot: the full ambiguity alphabet + ACGT.
func TestComplementTable_Snapshot(t *testing.T) {
	s := seq.MustValidate("RYSWKMBDHVNACGT", seq.DNA)
	got, err := ReverseComplement(s)
	if err != nil {
		t.Fatal(err)
	}
	if want := "ACGTNBDHVKMWSRY"; got.String() != want {
		t.Fatalf("complement table changed:\n got  %s\n want %s", got, want)
	}
}

func TestReverseComplementRNA(t *testing.T) {
	got, err := ReverseComplement(seq.MustValidate("AUGGC", seq.RNA))
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "GCCAU" || got.Alphabet() != seq.RNA {
		t.Fatalf("got %s (%v)", got, got.Alphabet())
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	const sym = "ACGTRYSWKMBDHVN"
	for n := 1; n < 200; n++ {
		b := make([]byte, n)
		for i := range b {
			b[i] = sym[r.Intn(len(sym))]
		}
		s := seq.MustValidate(string(b), seq.DNA)
		once, err := ReverseComplement(s)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := ReverseComplement(once)
		if err != nil {
			t.Fatal(err)
		}
		if twice.String() != s.String() {
			t.Fatalf("rc(rc(%s)) = %s", s, twice)
		}
	}
}

func TestReverseComplementProtein(t *testing.T) {
	_, err := ReverseComplement(seq.MustValidate("MKLV", seq.Protein))
	if !errors.Is(err, seq.ErrInvalidArgument) {
		t.Fatalf("want InvalidArgument, got %v", err)
	}
}

func TestComplement(t *testing.T) {
	got, err := Complement(seq.MustValidate("AACG", seq.DNA))
	if err != nil || got.String() != "TTGC" {
		t.Fatalf("Complement = %s, %v", got, err)
	}
}

func TestTranscribe(t *testing.T) {
	s := seq.MustValidate("ATGCTTTA", seq.DNA)
	rna, err := Transcribe(s)
	if err != nil {
		t.Fatal(err)
	}
	if rna.String() != "AUGCUUUA" || rna.Len() != s.Len() || bytes.IndexByte(rna.Bytes(), 'T') >= 0 {
		t.Fatalf("Transcribe = %s", rna)
	}
	back, err := BackTranscribe(rna)
	if err != nil || back.String() != s.String() {
		t.Fatalf("BackTranscribe = %s, %v", back, err)
	}
	if _, err := Transcribe(rna); !errors.Is(err, seq.ErrInvalidArgument) {
		t.Fatalf("transcribing rna: want InvalidArgument, got %v", err)
	}
}
