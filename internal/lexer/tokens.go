package lexer

import "fmt"

// TokenType classifies a lexical token of the minicc language.
type TokenType int

const (
	// Keywords
	KwInt    TokenType = iota // int
	KwVoid                    // void
	KwReturn                  // return

	// Literals
	Identifier // main, counter, _tmp1
	Constant   // 123, 0

	// Punctuation
	OpenParen  // (
	CloseParen // )
	OpenBrace  // {
	CloseBrace // }
	Semicolon  // ;
)

// Token represents a single lexical token with its decoded payload.
// Text is only set for Identifier tokens and Value only for Constant
// tokens; keyword and punctuation tokens are self-identifying.
type Token struct {
	Type  TokenType
	Text  string // Identifier spelling
	Value int32  // Constant value
	Pos   int    // 0-based byte offset of the token start
}

// String returns a string representation of the token type.
func (t TokenType) String() string {
	switch t {
	case KwInt:
		return "KwInt"
	case KwVoid:
		return "KwVoid"
	case KwReturn:
		return "KwReturn"
	case Identifier:
		return "Identifier"
	case Constant:
		return "Constant"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	case OpenBrace:
		return "OpenBrace"
	case CloseBrace:
		return "CloseBrace"
	case Semicolon:
		return "Semicolon"
	default:
		return "UNKNOWN"
	}
}

// String returns the token with its payload (for testing and debugging).
func (t Token) String() string {
	switch t.Type {
	case Identifier:
		return fmt.Sprintf("Identifier(%q)", t.Text)
	case Constant:
		return fmt.Sprintf("Constant(%d)", t.Value)
	default:
		return t.Type.String()
	}
}

// Keywords maps reserved spellings to their token types. An identifier
// match is checked against this table first, so an Identifier token
// never carries a reserved spelling.
var Keywords = map[string]TokenType{
	"int":    KwInt,
	"void":   KwVoid,
	"return": KwReturn,
}

// SingleCharTokens maps single-byte punctuation to its token type.
var SingleCharTokens = map[byte]TokenType{
	'(': OpenParen,
	')': CloseParen,
	'{': OpenBrace,
	'}': CloseBrace,
	';': Semicolon,
}
