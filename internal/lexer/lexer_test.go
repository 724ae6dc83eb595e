package lexer

import (
	"testing"

	"github.com/iamZamil/minic/internal/token"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		want   []token.Token
		errors int
	}{
		{
			name:  "minimal program",
			input: "int main() { return 0; }",
			want: []token.Token{
				{Type: token.Keyword, Lexeme: "int", Line: 1, Column: 1},
				{Type: token.Identifier, Lexeme: "main", Line: 1, Column: 5},
				{Type: token.Punct, Lexeme: "(", Line: 1, Column: 9},
				{Type: token.Punct, Lexeme: ")", Line: 1, Column: 10},
				{Type: token.Punct, Lexeme: "{", Line: 1, Column: 12},
				{Type: token.Keyword, Lexeme: "return", Line: 1, Column: 14},
				{Type: token.Number, Lexeme: "0", Line: 1, Column: 21},
				{Type: token.Punct, Lexeme: ";", Line: 1, Column: 22},
				{Type: token.Punct, Lexeme: "}", Line: 1, Column: 24},
				{Type: token.EOF, Lexeme: "", Line: 1, Column: 25},
			},
		},
		{
			name:  "longest match operators",
			input: "a <= b == c",
			want: []token.Token{
				{Type: token.Identifier, Lexeme: "a", Line: 1, Column: 1},
				{Type: token.Operator, Lexeme: "<=", Line: 1, Column: 3},
				{Type: token.Identifier, Lexeme: "b", Line: 1, Column: 6},
				{Type: token.Operator, Lexeme: "==", Line: 1, Column: 8},
				{Type: token.Identifier, Lexeme: "c", Line: 1, Column: 11},
				{Type: token.EOF, Lexeme: "", Line: 1, Column: 12},
			},
		},
		{
			name:  "comments are consumed",
			input: "int x; // trailing\n/* block\ncomment */ float y;",
			want: []token.Token{
				{Type: token.Keyword, Lexeme: "int", Line: 1, Column: 1},
				{Type: token.Identifier, Lexeme: "x", Line: 1, Column: 5},
				{Type: token.Punct, Lexeme: ";", Line: 1, Column: 6},
				{Type: token.Keyword, Lexeme: "float", Line: 3, Column: 12},
				{Type: token.Identifier, Lexeme: "y", Line: 3, Column: 18},
				{Type: token.Punct, Lexeme: ";", Line: 3, Column: 19},
				{Type: token.EOF, Lexeme: "", Line: 3, Column: 20},
			},
		},
		{
			name:   "unexpected character is reported and skipped",
			input:  "int x = 1 @ 2;",
			errors: 1,
		},
		{
			name:  "string literal keeps quotes",
			input: `print("hi\n");`,
			want: []token.Token{
				{Type: token.Keyword, Lexeme: "print", Line: 1, Column: 1},
				{Type: token.Punct, Lexeme: "(", Line: 1, Column: 6},
				{Type: token.String, Lexeme: `"hi\n"`, Line: 1, Column: 7},
				{Type: token.Punct, Lexeme: ")", Line: 1, Column: 13},
				{Type: token.Punct, Lexeme: ";", Line: 1, Column: 14},
				{Type: token.EOF, Lexeme: "", Line: 1, Column: 15},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, errs := Tokenize(tc.input)
			if len(errs) != tc.errors {
				t.Fatalf("got %d lexical errors, want %d: %v", len(errs), tc.errors, errs)
			}
			if tc.want == nil {
				return
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d tokens, want %d\ngot:  %v\nwant: %v", len(got), len(tc.want), got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("token %d: got %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

// TestLexemeMatchesSourcePosition asserts spec.md §8 invariant 2: the
// substring of the source at (line, column) of length lexeme equals the
// lexeme, for every non-synthetic token (EOF has no source substring).
func TestLexemeMatchesSourcePosition(t *testing.T) {
	source := "int factorial(int n) {\n  if (n <= 1) { return 1; }\n  return n * factorial(n - 1);\n}\n"
	tokens, errs := Tokenize(source)
	if len(errs) != 0 {
		t.Fatalf("unexpected lexical errors: %v", errs)
	}
	lines := splitLines(source)
	for _, tok := range tokens {
		if tok.Type == token.EOF {
			continue
		}
		line := lines[tok.Line-1]
		start := tok.Column - 1
		end := start + len(tok.Lexeme)
		if end > len(line) || line[start:end] != tok.Lexeme {
			t.Errorf("token %v does not match source at its position", tok)
		}
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
