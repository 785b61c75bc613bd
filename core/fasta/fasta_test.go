// core/fasta/fasta_test.go
package fasta

import (
	"bytes"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	recs := []Record{
		{ID: "Epitope_1", Seq: "ACD"},
		{ID: "Epitope_2", Seq: "LMN"},
	}
	var buf bytes.Buffer
	if err := Write(&buf, recs); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := ">Epitope_1\nACD\n>Epitope_2\nLMN\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteSkipsEmptySeq(t *testing.T) {
	out := Text([]Record{{ID: "a", Seq: ""}, {ID: "b", Seq: "CC"}})
	if out != ">b\nCC\n" {
		t.Fatalf("got %q", out)
	}
}

func TestParse(t *testing.T) {
	in := ">Epitope_1\nACD\n>Epitope_2 extra note\nLM\nNP\n"
	recs, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].ID != "Epitope_1" || recs[0].Seq != "ACD" {
		t.Fatalf("bad first record: %+v", recs[0])
	}
	// Wrapped sequence lines concatenate.
	if recs[1].Seq != "LMNP" {
		t.Fatalf("bad wrapped sequence: %q", recs[1].Seq)
	}
}

func TestParseBlankLinesIgnored(t *testing.T) {
	recs, err := Parse(strings.NewReader("\n>a\n\nGG\n\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 1 || recs[0].Seq != "GG" {
		t.Fatalf("bad records: %+v", recs)
	}
}

func TestParseRejectsHeaderlessData(t *testing.T) {
	if _, err := Parse(strings.NewReader("ACDEF\n>a\nGG\n")); err == nil {
		t.Fatal("expected error for sequence before first header")
	}
}

func TestParseEmptyInput(t *testing.T) {
	recs, err := Parse(strings.NewReader(""))
	if err != nil || len(recs) != 0 {
		t.Fatalf("want no records, no error; got %v, %v", recs, err)
	}
}
