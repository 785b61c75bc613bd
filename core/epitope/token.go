// core/epitope/token.go
package epitope

import (
	"fmt"
	"strings"
)

// WarningKind classifies non-fatal conversion notes.
type WarningKind int

const (
	WarnEmptyToken WarningKind = iota
	WarnDuplicate
)

// Warning records a token that was skipped or removed during conversion.
// Position is the 1-based ordinal of the candidate in the split input.
type Warning struct {
	Kind     WarningKind
	Position int
	Token    string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnDuplicate:
		return fmt.Sprintf("duplicate token %q removed at position %d", w.Token, w.Position)
	default:
		return fmt.Sprintf("empty token skipped at position %d", w.Position)
	}
}

// splitCandidates normalizes line endings and splits raw input on the
// full separator set. Commas and newlines are honored simultaneously, so
// a comma-separated line may itself be split further by line breaks.
// Empty candidates are kept; Convert needs their ordinals for warnings.
func splitCandidates(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	raw = strings.ReplaceAll(raw, ",", "\n")
	return strings.Split(raw, "\n")
}
