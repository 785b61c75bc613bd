// core/epitope/convert.go

// Package epitope converts lists of epitope sequences into FASTA records.
//
// Input is plain text using commas and/or line breaks as separators.
// Conversion is pure and deterministic: the same input and options always
// yield the same result, and a converter call holds no state between
// invocations, so it is safe to call from any number of goroutines.
package epitope

import (
	"errors"
	"fmt"
	"strings"

	"epitizer-core/fasta"
)

// DefaultHeaderPrefix is used when Options.HeaderPrefix is empty.
const DefaultHeaderPrefix = "Epitope"

// Options controls a single conversion.
type Options struct {
	// Dedupe drops tokens identical to an earlier surviving token
	// (case-sensitive exact match); the first occurrence wins.
	Dedupe bool
	// Validate rejects tokens containing non amino-acid letters.
	Validate bool
	// HeaderPrefix overrides the generated header prefix.
	HeaderPrefix string
}

// Result is an ordered list of FASTA records plus any non-fatal warnings
// collected along the way.
type Result struct {
	Records  []fasta.Record
	Warnings []Warning
}

// Text renders the records as a single FASTA blob.
func (r Result) Text() string { return fasta.Text(r.Records) }

// ErrEmptyInput is returned when no valid tokens survive splitting and
// trimming. There is nothing to retry without new input.
var ErrEmptyInput = errors.New("no valid epitopes in input")

// Convert splits raw into epitope tokens and emits one FASTA record per
// surviving token, headers numbered by 1-based output position
// (post-dedupe). Tokens are trimmed; case is preserved verbatim.
func Convert(raw string, opts Options) (Result, error) {
	prefix := opts.HeaderPrefix
	if prefix == "" {
		prefix = DefaultHeaderPrefix
	}

	var (
		res       Result
		tokens    []string
		positions []int
	)
	for i, cand := range splitCandidates(raw) {
		tok := strings.TrimSpace(cand)
		if tok == "" {
			res.Warnings = append(res.Warnings, Warning{Kind: WarnEmptyToken, Position: i + 1})
			continue
		}
		tokens = append(tokens, tok)
		positions = append(positions, i+1)
	}
	if len(tokens) == 0 {
		return Result{}, ErrEmptyInput
	}

	if opts.Validate {
		var bad []string
		for _, tok := range tokens {
			if !ValidResidues(tok) {
				bad = append(bad, tok)
			}
		}
		if len(bad) > 0 {
			return Result{}, &InvalidTokenError{Tokens: bad}
		}
	}

	if opts.Dedupe {
		seen := make(map[string]struct{}, len(tokens))
		kept := make([]string, 0, len(tokens))
		for i, tok := range tokens {
			if _, dup := seen[tok]; dup {
				res.Warnings = append(res.Warnings, Warning{Kind: WarnDuplicate, Position: positions[i], Token: tok})
				continue
			}
			seen[tok] = struct{}{}
			kept = append(kept, tok)
		}
		tokens = kept
	}

	res.Records = make([]fasta.Record, len(tokens))
	for i, tok := range tokens {
		res.Records[i] = fasta.Record{
			ID:  fmt.Sprintf("%s_%d", prefix, i+1),
			Seq: tok,
		}
	}
	return res, nil
}
