// core/epitope/validate.go
package epitope

import (
	"fmt"
	"strings"
	"unicode"
)

// The 20 standard amino-acid letters.
const residues = "ACDEFGHIKLMNPQRSTVWY"

// ValidResidues reports whether every character of tok is a standard
// amino-acid letter. The check is case-insensitive.
func ValidResidues(tok string) bool {
	for _, r := range tok {
		if !strings.ContainsRune(residues, unicode.ToUpper(r)) {
			return false
		}
	}
	return true
}

// InvalidTokenError reports tokens that failed residue validation.
type InvalidTokenError struct {
	Tokens []string
}

func (e *InvalidTokenError) Error() string {
	var b strings.Builder
	b.WriteString("invalid epitope sequence(s): ")
	n := len(e.Tokens)
	show := n
	if show > 5 {
		show = 5
	}
	for i := 0; i < show; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", e.Tokens[i])
	}
	if n > show {
		fmt.Fprintf(&b, " and %d more", n-show)
	}
	fmt.Fprintf(&b, "; allowed letters: %s", residues)
	return b.String()
}
