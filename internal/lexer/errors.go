package lexer

import "fmt"

// ErrorKind identifies the class of lexical error.
type ErrorKind int

const (
	// UnexpectedCharacter means the byte at the error position does not
	// start any recognized pattern.
	UnexpectedCharacter ErrorKind = iota

	// InvalidInteger means a digit run was recognized but does not fit
	// in a 32-bit signed integer.
	InvalidInteger

	// NoMatch is a defensive fallback for a non-empty remainder that
	// yields no decodable character. Unreachable in correct operation;
	// it exists so recognition is total over every input.
	NoMatch
)

// Error is a lexical error with its byte position in the input. Lexing is
// fail-fast: the first Error aborts the scan and no tokens are returned
// alongside it.
type Error struct {
	Kind  ErrorKind
	Char  rune   // UnexpectedCharacter: the offending codepoint
	Value string // InvalidInteger: the verbatim digit text
	Pos   int    // 0-based byte offset into the input
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("Unexpected character '%c' at position %d", e.Char, e.Pos)
	case InvalidInteger:
		return fmt.Sprintf("Invalid integer constant '%s' at position %d", e.Value, e.Pos)
	case NoMatch:
		return fmt.Sprintf("No token matched at position %d", e.Pos)
	default:
		return fmt.Sprintf("Unknown lexer error at position %d", e.Pos)
	}
}
