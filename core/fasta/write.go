// core/fasta/write.go
package fasta

import (
	"fmt"
	"io"
	"strings"
)

// Write emits records as `>ID\nSeq\n` blocks, in order.
// Records with an empty sequence are skipped.
func Write(w io.Writer, recs []Record) error {
	for _, r := range recs {
		if r.Seq == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", r.ID, r.Seq); err != nil {
			return err
		}
	}
	return nil
}

// Text renders records to a string via Write.
func Text(recs []Record) string {
	var b strings.Builder
	_ = Write(&b, recs)
	return b.String()
}
