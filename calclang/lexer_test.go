package calclang

import (
	"testing"
)

func TestLexer(t *testing.T) {
	type TokenInfo struct {
		Kind   TokenKind
		Offset int
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input: "1+2",
			tokens: []TokenInfo{
				{TokenLiteral, 0},
				{TokenAdd, 1},
				{TokenLiteral, 2},
			},
		},
		{
			input: "  3   *4  ",
			tokens: []TokenInfo{
				{TokenLiteral, 2},
				{TokenMul, 6},
				{TokenLiteral, 7},
			},
		},
		{
			input: "(1-2)/3",
			tokens: []TokenInfo{
				{TokenLeftParen, 0},
				{TokenLiteral, 1},
				{TokenSub, 2},
				{TokenLiteral, 3},
				{TokenRightParen, 4},
				{TokenDiv, 5},
				{TokenLiteral, 6},
			},
		},
		{
			input: "23.23",
			tokens: []TokenInfo{
				{TokenLiteral, 0},
			},
		},
		{
			input: "3.",
			tokens: []TokenInfo{
				{TokenLiteral, 0},
			},
		},
		{
			input: "1\t+ 2", // tab and non-break space are whitespace
			tokens: []TokenInfo{
				{TokenLiteral, 0},
				{TokenAdd, 2},
				{TokenLiteral, 5},
			},
		},
		{
			input:  "",
			tokens: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens, diag := NewLexer(test.input).Scan()
			if diag != nil {
				t.Fatalf("unexpected diagnostic: %v", diag)
			}
			if len(tokens) != len(test.tokens) {
				t.Fatalf("expected %d tokens, got %d", len(test.tokens), len(tokens))
			}
			for i, expected := range test.tokens {
				if tokens[i].Kind != expected.Kind {
					t.Errorf("token %d: expected kind %v, got %v", i, expected.Kind, tokens[i].Kind)
				}
				if tokens[i].Offset != expected.Offset {
					t.Errorf("token %d: expected offset %d, got %d", i, expected.Offset, tokens[i].Offset)
				}
			}
		})
	}
}

func TestLexerLiteralValues(t *testing.T) {
	tests := []struct {
		input string
		value float32
	}{
		{"0", 0},
		{"42", 42},
		{"23.23", 23.23},
		{"3.", 3},
		{"0.5", 0.5},
	}
	for _, test := range tests {
		tokens, diag := NewLexer(test.input).Scan()
		if diag != nil {
			t.Fatalf("%s: %v", test.input, diag)
		}
		if len(tokens) != 1 || tokens[0].Kind != TokenLiteral {
			t.Fatalf("%s: expected one literal, got %v", test.input, tokens)
		}
		if tokens[0].Value != test.value {
			t.Fatalf("%s: expected %v, got %v", test.input, test.value, tokens[0].Value)
		}
	}
}

func TestLexerInvalidCharacter(t *testing.T) {
	tests := []struct {
		input  string
		offset int
	}{
		{"3a", 1},
		{"23.23.3", 5}, // second dot ends the literal, then fails
		{".234", 0},    // a leading dot is not a number
		{"1 + x", 4},
		{"#", 0},
		{"1..2", 2},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens, diag := NewLexer(test.input).Scan()
			if diag == nil {
				t.Fatalf("expected diagnostic, got tokens %v", tokens)
			}
			if diag.Kind != InvalidCharacter {
				t.Fatalf("expected InvalidCharacter, got %v", diag.Kind)
			}
			if diag.Offset != test.offset {
				t.Fatalf("expected offset %d, got %d", test.offset, diag.Offset)
			}
			if diag.Source != test.input {
				t.Fatalf("diagnostic source %q", diag.Source)
			}
		})
	}
}

func TestLexerChainedDotFailure(t *testing.T) {
	// "23.23.3" must lex exactly one literal 23.23 before failing. Verify
	// by scanning the prefix alone.
	tokens, diag := NewLexer("23.23").Scan()
	if diag != nil {
		t.Fatal(diag)
	}
	if len(tokens) != 1 || tokens[0].Value != 23.23 {
		t.Fatalf("got %v", tokens)
	}
}
