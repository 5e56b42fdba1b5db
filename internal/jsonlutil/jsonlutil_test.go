package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func never(error) bool { return false }

func TestStartWritesLines(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[int](&buf, 1, func(enc *json.Encoder, v int) error { return enc.Encode(v) }, never)
	for i := 1; i <= 3; i++ {
		in <- i
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if buf.String() != "1\n2\n3\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestStartDrainsAfterError(t *testing.T) {
	boom := errors.New("boom")
	var buf bytes.Buffer
	in, done := Start[int](&buf, 1, func(enc *json.Encoder, v int) error {
		if v == 2 {
			return boom
		}
		return enc.Encode(v)
	}, never)
	for i := 1; i <= 100; i++ {
		in <- i // must not block after the failure
	}
	close(in)
	if err := <-done; !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestStartSuppressesBrokenPipe(t *testing.T) {
	pipe := errors.New("pipe closed")
	in, done := Start[int](&bytes.Buffer{}, 1, func(*json.Encoder, int) error { return pipe }, func(err error) bool { return errors.Is(err, pipe) })
	in <- 1
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("broken pipe should be nil, got %v", err)
	}
}
