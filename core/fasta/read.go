// core/fasta/read.go
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads FASTA records from r. Headers start with '>'; sequence
// lines between headers are concatenated. Wrapped sequences are allowed
// on input even though Write never produces them.
//
// Non-blank content before the first header is an error.
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs []Record
		cur  Record
		open bool
		ln   int
	)
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if open {
				recs = append(recs, cur)
			}
			cur = Record{ID: strings.TrimSpace(line[1:])}
			open = true
			continue
		}
		if !open {
			return nil, fmt.Errorf("fasta: line %d: sequence data before first header", ln)
		}
		cur.Seq += line
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	if open {
		recs = append(recs, cur)
	}
	return recs, nil
}
