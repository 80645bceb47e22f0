package lexer

import (
	"strings"
	"testing"
)

// generateRealisticInput creates source with mixed token and trivia kinds
func generateRealisticInput(functionCount int) string {
	var parts []string
	for i := 0; i < functionCount; i++ {
		parts = append(parts,
			"// next function",
			"int main (void) {",
			"    /* body */",
			"    return 2147483647;",
			"}",
		)
	}
	return strings.Join(parts, "\n")
}

// BenchmarkTokenize measures full-scan performance across input shapes.
// Runtime must stay linear in input length.
func BenchmarkTokenize(b *testing.B) {
	scenarios := map[string]string{
		"minimal":   "int main ( ) { return 0 ; }",
		"dense":     "int main(){return 0;}",
		"trivia":    "/* a */ // b\n/* c */ int x ;",
		"realistic": generateRealisticInput(50),
	}

	for name, input := range scenarios {
		b.Run(name, func(b *testing.B) {
			inputBytes := []byte(input)
			l := &Lexer{}

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				l.Init(inputBytes)
				if _, err := l.Tokenize(); err != nil {
					b.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}
}

// BenchmarkTokenizeScaling verifies linear scaling across input sizes
func BenchmarkTokenizeScaling(b *testing.B) {
	sizes := map[string]int{
		"10_functions":  10,
		"100_functions": 100,
		"500_functions": 500,
	}

	for name, count := range sizes {
		input := []byte(generateRealisticInput(count))
		b.Run(name, func(b *testing.B) {
			l := &Lexer{}
			b.SetBytes(int64(len(input)))
			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				l.Init(input)
				if _, err := l.Tokenize(); err != nil {
					b.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}
}
