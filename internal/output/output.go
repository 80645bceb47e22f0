// Package output renders a scan result as structured JSON for downstream
// consumers. A successful scan serializes as the array of tokens; a failed
// scan as the single error object.
package output

import (
	"encoding/json"
	"io"

	"github.com/minicc-lang/minicc/internal/lexer"
)

// Result holds the outcome of a scan: the complete token list or exactly one
// lexical error, never both.
type Result struct {
	Tokens []lexer.Token
	Err    *lexer.Error
}

// FromScan builds a Result from the lexer's Tokenize return values.
func FromScan(tokens []lexer.Token, err error) Result {
	if err != nil {
		if lexErr, ok := err.(*lexer.Error); ok {
			return Result{Err: lexErr}
		}
		// Tokenize only ever returns *lexer.Error; keep a defensive shape
		// for anything else.
		return Result{Err: &lexer.Error{Kind: lexer.NoMatch}}
	}
	return Result{Tokens: tokens}
}

// Ok reports whether the scan succeeded.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Encode writes the result as JSON followed by a newline. With compact false
// the output is indented for human consumption.
func (r Result) Encode(w io.Writer, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	if r.Err != nil {
		return enc.Encode(r.Err)
	}
	tokens := r.Tokens
	if tokens == nil {
		// An empty scan is still a success: serialize as [] rather than null
		tokens = []lexer.Token{}
	}
	return enc.Encode(tokens)
}
