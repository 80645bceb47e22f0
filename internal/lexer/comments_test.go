package lexer

import "testing"

// TestLineComments tests // comment elision
func TestLineComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:     "comment_only",
			input:    "// just a comment",
			expected: nil,
		},
		{
			name:  "comment_then_newline_then_code",
			input: "// header\nreturn",
			expected: []tokenExpectation{
				{KwReturn, "", 0, 10},
			},
		},
		{
			name:  "trailing_comment",
			input: "return 0; // done",
			expected: []tokenExpectation{
				{KwReturn, "", 0, 0},
				{Constant, "", 0, 7},
				{Semicolon, "", 0, 8},
			},
		},
		{
			name:     "comment_at_eof_without_newline",
			input:    "// no trailing newline",
			expected: nil,
		},
		{
			name:  "slashes_inside_comment",
			input: "// a // b // c\nx",
			expected: []tokenExpectation{
				{Identifier, "x", 0, 15},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

// TestBlockComments tests /* */ comment elision
func TestBlockComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:     "block_only",
			input:    "/* comment */",
			expected: nil,
		},
		{
			name:  "block_between_tokens",
			input: "int/*c*/main",
			expected: []tokenExpectation{
				{KwInt, "", 0, 0},
				{Identifier, "main", 0, 8},
			},
		},
		{
			name:  "multiline_block",
			input: "/* line one\nline two */ return",
			expected: []tokenExpectation{
				{KwReturn, "", 0, 24},
			},
		},
		{
			name:  "non_greedy_close",
			input: "/* a */ x /* b */",
			expected: []tokenExpectation{
				{Identifier, "x", 0, 8},
			},
		},
		{
			name:  "no_nesting",
			input: "/* outer /* inner */ x",
			expected: []tokenExpectation{
				// The first */ closes the comment; /* inside is plain text
				{Identifier, "x", 0, 21},
			},
		},
		{
			name:  "stars_inside_block",
			input: "/* ** * **/ x",
			expected: []tokenExpectation{
				{Identifier, "x", 0, 12},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

// TestUnterminatedBlockComment documents the permissive policy: a /* with no
// closing */ consumes through end of input and the scan still succeeds.
func TestUnterminatedBlockComment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:     "unterminated_only",
			input:    "/* never closed",
			expected: nil,
		},
		{
			name:  "tokens_before_unterminated",
			input: "return 0; /* dangling",
			expected: []tokenExpectation{
				{KwReturn, "", 0, 0},
				{Constant, "", 0, 7},
				{Semicolon, "", 0, 8},
			},
		},
		{
			name:     "bare_open_marker",
			input:    "/*",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

// TestTriviaTransparency verifies that comments and whitespace are fully
// transparent: the commented program tokenizes identically to the spaced one.
func TestTriviaTransparency(t *testing.T) {
	spaced := "int main ( ) { return 0 ; }"
	commented := "int/*c*/ main ( )//line\n{ return 0 ; }"

	want, err := Tokenize(spaced)
	if err != nil {
		t.Fatalf("unexpected error for spaced input: %v", err)
	}
	got, err := Tokenize(commented)
	if err != nil {
		t.Fatalf("unexpected error for commented input: %v", err)
	}

	if len(want) != len(got) {
		t.Fatalf("token count mismatch: %d vs %d", len(want), len(got))
	}
	for i := range want {
		// Positions differ between the two spellings; the token kinds and
		// payloads must not.
		if want[i].Type != got[i].Type || want[i].Text != got[i].Text || want[i].Value != got[i].Value {
			t.Errorf("token %d mismatch: %v vs %v", i, want[i], got[i])
		}
	}
}

// TestSingleSlashIsError verifies that a lone '/' is not an operator in this
// language and fails as an unexpected character rather than trivia.
func TestSingleSlashIsError(t *testing.T) {
	assertLexError(t, "/", &Error{Kind: UnexpectedCharacter, Char: '/', Pos: 0})
	assertLexError(t, "a / b", &Error{Kind: UnexpectedCharacter, Char: '/', Pos: 2})
}
