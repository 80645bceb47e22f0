// Package lexer implements the lexical front end of the minicc compiler. It
// converts source text into an ordered sequence of typed tokens, or a single
// positioned error. Lexing is fail-fast: the scan stops at the first error and
// returns no tokens alongside it.
package lexer

import (
	"strconv"
	"unicode/utf8"
)

// Lexer scans a single input buffer. The buffer is held by reference for the
// whole scan and never copied or mutated; the position only moves forward.
// A Lexer owns its cursor exclusively, so separate Lexer instances may scan
// different inputs concurrently.
type Lexer struct {
	input    []byte
	position int
}

// New creates a lexer for the given source text.
func New(input string) *Lexer {
	l := &Lexer{}
	l.Init([]byte(input))
	return l
}

// Init resets the lexer with new input (following Go scanner pattern).
func (l *Lexer) Init(input []byte) {
	l.input = input
	l.position = 0
}

// Tokenize is a convenience wrapper that scans source in one call.
func Tokenize(source string) ([]Token, error) {
	return New(source).Tokenize()
}

// Tokenize scans the whole input and returns the complete token list, or the
// first lexical error. On error previously recognized tokens are discarded:
// the result is all tokens or exactly one error, never a mix.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// next returns the next token, or ok=false at end of input. The trivia skip
// runs first, so an input that is nothing but whitespace and comments is a
// successful empty scan.
func (l *Lexer) next() (Token, bool, error) {
	l.skipTrivia()

	if l.position >= len(l.input) {
		return Token{}, false, nil
	}

	tok, err := l.recognize()
	if err != nil {
		return Token{}, false, err
	}
	return tok, true, nil
}

// skipTrivia advances past whitespace, line comments (// to end of line,
// newline not consumed) and block comments (/* to the first */). It repeats
// until one full pass finds nothing to skip.
//
// An unterminated block comment is not an error: the scan consumes through
// end of input and terminates successfully with whatever tokens preceded it.
func (l *Lexer) skipTrivia() {
	for {
		start := l.position

		// Whitespace run
		for l.position < len(l.input) {
			ch := l.input[l.position]
			if ch >= 128 || !isWhitespace[ch] {
				break
			}
			l.position++
		}

		// Line comment: // to end of line, exclusive of the newline
		if l.position+1 < len(l.input) && l.input[l.position] == '/' && l.input[l.position+1] == '/' {
			l.position += 2
			for l.position < len(l.input) && l.input[l.position] != '\n' {
				l.position++
			}
		}

		// Block comment: /* to the first */, no nesting
		if l.position+1 < len(l.input) && l.input[l.position] == '/' && l.input[l.position+1] == '*' {
			l.position += 2
			closed := false
			for l.position < len(l.input) {
				if l.input[l.position] == '*' && l.position+1 < len(l.input) && l.input[l.position+1] == '/' {
					l.position += 2
					closed = true
					break
				}
				l.position++
			}
			if !closed {
				// Unterminated: consumed through end of input
				l.position = len(l.input)
			}
		}

		if l.position == start {
			return
		}
	}
}

// recognize produces exactly one token or one error from the current
// position, which must be at a non-trivia byte. Matchers are tried in fixed
// priority order: punctuation, identifier/keyword, integer constant. The
// position is only advanced on a successful match; error cases leave the
// cursor at the token start since the scan terminates anyway.
func (l *Lexer) recognize() (Token, error) {
	start := l.position
	ch := l.input[l.position]

	// Single character punctuation
	if ch < 128 {
		if tokenType, ok := SingleCharTokens[ch]; ok {
			l.position++
			return Token{Type: tokenType, Pos: start}, nil
		}
	}

	// Identifier or keyword: maximal munch ends at the first byte that is
	// not a letter, digit or underscore, so the word boundary holds by
	// construction.
	if ch < 128 && isIdentStart[ch] {
		end := start + 1
		for end < len(l.input) {
			c := l.input[end]
			if c >= 128 || !isIdentPart[c] {
				break
			}
			end++
		}
		text := string(l.input[start:end])
		l.position = end
		if keyword, ok := Keywords[text]; ok {
			return Token{Type: keyword, Pos: start}, nil
		}
		return Token{Type: Identifier, Text: text, Pos: start}, nil
	}

	// Integer constant: one or more digits terminated by a word boundary.
	// A trailing identifier character fails the whole match, so "123bar"
	// falls through to UnexpectedCharacter at the first digit rather than
	// producing Constant(123).
	if ch < 128 && isDigit[ch] {
		end := start + 1
		for end < len(l.input) {
			c := l.input[end]
			if c >= 128 || !isDigit[c] {
				break
			}
			end++
		}
		if end < len(l.input) && l.input[end] < 128 && isIdentPart[l.input[end]] {
			return Token{}, l.unexpectedCharacter(start)
		}
		text := string(l.input[start:end])
		value, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return Token{}, &Error{Kind: InvalidInteger, Value: text, Pos: start}
		}
		l.position = end
		return Token{Type: Constant, Value: int32(value), Pos: start}, nil
	}

	return Token{}, l.unexpectedCharacter(start)
}

// unexpectedCharacter builds the error for an unrecognized leading byte,
// decoding the full codepoint so multi-byte characters are reported whole.
func (l *Lexer) unexpectedCharacter(pos int) *Error {
	r, size := utf8.DecodeRune(l.input[pos:])
	if size == 0 {
		// Non-empty remainder with no decodable character. Unreachable,
		// kept so recognition is total.
		return &Error{Kind: NoMatch, Pos: pos}
	}
	return &Error{Kind: UnexpectedCharacter, Char: r, Pos: pos}
}
