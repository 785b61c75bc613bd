// core/epitope/validate_test.go
package epitope

import (
	"strings"
	"testing"
)

func TestValidResidues(t *testing.T) {
	cases := []struct {
		tok string
		ok  bool
	}{
		{"ACDEFGHIKLMNPQRSTVWY", true},
		{"acdefghik", true}, // case-insensitive
		{"MiXeD", true},
		{"VWXYZ", false}, // X, Z are not standard residues
		{"AC-D", false},
		{"AC D", false},
		{"", true}, // vacuously valid; empties never reach validation
	}
	for _, c := range cases {
		if got := ValidResidues(c.tok); got != c.ok {
			t.Errorf("ValidResidues(%q) = %v, want %v", c.tok, got, c.ok)
		}
	}
}

func TestInvalidTokenErrorTruncatesList(t *testing.T) {
	e := &InvalidTokenError{Tokens: []string{"X1", "X2", "X3", "X4", "X5", "X6", "X7"}}
	msg := e.Error()
	if !strings.Contains(msg, `"X5"`) {
		t.Fatalf("fifth offender missing: %s", msg)
	}
	if strings.Contains(msg, `"X6"`) {
		t.Fatalf("sixth offender should be elided: %s", msg)
	}
	if !strings.Contains(msg, "and 2 more") {
		t.Fatalf("missing elision tail: %s", msg)
	}
}

func TestInvalidTokenErrorShortList(t *testing.T) {
	e := &InvalidTokenError{Tokens: []string{"B@D"}}
	msg := e.Error()
	if !strings.Contains(msg, `"B@D"`) || strings.Contains(msg, "more") {
		t.Fatalf("bad message: %s", msg)
	}
}
