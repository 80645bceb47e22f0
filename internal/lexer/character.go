package lexer

// ASCII character lookup tables for fast classification (zero-allocation)
//
// Performance: use inline bounds-checked lookups:
//
//	if ch < 128 && isIdentStart[ch] { ... }
//
// Characters >= 128 never start a token in this language; they surface as
// UnexpectedCharacter with the full codepoint decoded at the error site.
var (
	isWhitespace [128]bool // Space, tab, carriage return, newline, form feed, vertical tab
	isDigit      [128]bool // 0-9
	isIdentStart [128]bool // a-z, A-Z, _
	isIdentPart  [128]bool // a-z, A-Z, 0-9, _
)

func init() {
	// Pre-compute ASCII character classification tables
	for i := 0; i < 128; i++ {
		ch := byte(i)

		// Whitespace is trivia here, newlines included
		isWhitespace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v'

		isDigit[i] = '0' <= ch && ch <= '9'

		// Identifiers: [a-zA-Z_][a-zA-Z0-9_]*, ASCII only
		isIdentStart[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
		isIdentPart[i] = isIdentStart[i] || isDigit[i]
	}
}
