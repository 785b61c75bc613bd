// pkg/api/inspect_v1.go

// Package api holds the stable wire structs for machine-readable output.
// Fields are additive-only; renames require a new version.
package api

// InspectReportV1 describes a parsed FASTA file.
type InspectReportV1 struct {
	Source  string           `json:"source"`
	Records int              `json:"records"`
	Entries []InspectEntryV1 `json:"entries,omitempty"`
}

// InspectEntryV1 is one record in an inspect report.
type InspectEntryV1 struct {
	ID     string `json:"id"`
	Length int    `json:"length"`
}
