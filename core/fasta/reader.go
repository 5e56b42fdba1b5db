// Package fasta streams FASTA records from files, gzip files or stdin.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one FASTA entry. Seq holds the residues with line breaks and
// surrounding whitespace removed; case is preserved.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// Scan parses FASTA from r and calls emit for each record in file order.
// Lines starting with ';' are comments. Sequence text before the first
// header becomes a record with an empty ID. Returning an error from emit
// stops the scan and is passed through; ctx is checked between lines.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // single-line genomes
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		cur    Record
		seen   bool
		seqBuf = make([]byte, 0, 1<<16)
	)
	flush := func() error {
		if !seen && len(seqBuf) == 0 {
			return nil
		}
		cur.Seq = append([]byte(nil), seqBuf...)
		return emit(cur)
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			cur = parseHeader(line[1:])
			seen = true
			seqBuf = seqBuf[:0]
			continue
		}
		seqBuf = append(seqBuf, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ScanPath opens path ("-" for stdin, gzip detected) and scans it.
func ScanPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path, nil)
	if err != nil {
		return err
	}
	defer rc.Close()
	return Scan(ctx, rc, emit)
}

// ReadAll collects every record of path.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := ScanPath(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

func parseHeader(hdr []byte) Record {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return Record{ID: string(hdr[:i]), Description: string(bytes.TrimSpace(hdr[i+1:]))}
	}
	return Record{ID: string(hdr)}
}
