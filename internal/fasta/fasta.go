// Package fasta contains minimal helpers to parse FASTA formatted data
// for the motif CLI. It keeps parsing simple and conservative: no
// sequence validation or sanitisation happens here.
package fasta

import (
	"bufio"
	"io"
	"strings"
)

// Record represents a single FASTA record (header and sequence).
type Record struct {
	Header   string
	Sequence string
}

// Parse reads FASTA records from r. Lines beginning with '>' denote
// headers; subsequent sequence lines are concatenated. Lines before the
// first header are ignored.
func Parse(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var records []Record
	var header string
	var seq strings.Builder
	inRecord := false

	flush := func() {
		if inRecord {
			records = append(records, Record{Header: header, Sequence: seq.String()})
		}
		seq.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			flush()
			header = strings.TrimSpace(line[1:])
			inRecord = true
			continue
		}
		if inRecord {
			seq.WriteString(strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return records, nil
}
