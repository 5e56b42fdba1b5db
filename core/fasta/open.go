package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

var gzipMagic = []byte{0x1f, 0x8b}

// source is an opened input. Closers run innermost first.
type source struct {
	io.Reader
	closers []io.Closer
}

func (s *source) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open returns a reader for path, or for stdin when path is "-" (nil stdin
// means os.Stdin). Gzip input is recognised by its header on files and
// stdin alike, whatever the name. Closing never closes stdin.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	s := &source{}
	raw := stdin
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		raw = fh
		s.closers = append(s.closers, fh)
	} else if raw == nil {
		raw = os.Stdin
	}

	br := bufio.NewReader(raw)
	s.Reader = br
	if head, _ := br.Peek(len(gzipMagic)); bytes.Equal(head, gzipMagic) {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		s.Reader = gr
		s.closers = append([]io.Closer{gr}, s.closers...)
	}
	return s, nil
}
