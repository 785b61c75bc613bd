// core/fasta/fasta.go
package fasta

// Record is a single FASTA record: one header, one sequence.
type Record struct {
	ID  string
	Seq string
}
