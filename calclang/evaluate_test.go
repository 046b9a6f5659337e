package calclang

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	run := func(src string) float32 {
		t.Helper()
		value, diag := EvaluateString(src)
		if diag != nil {
			t.Fatalf("src: %s, diagnostic: %v", src, diag)
		}
		return value
	}

	tests := []struct {
		input string
		value float32
	}{
		{"42", 42},
		{"1+2", 3},
		{"2*3+4", 10},
		{"2+3*4", 14},
		{"(3+3)*2", 12},
		{"(3 + 3) * 2 / (4 - 1)", 4},
		{"10-4-3", 3},
		{"8/4/2", 1},
		{"0.5*4", 2},
		{"23.23", 23.23},
	}
	for _, test := range tests {
		if got := run(test.input); got != test.value {
			t.Fatalf("%s: expected %v, got %v", test.input, test.value, got)
		}
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	value, diag := EvaluateString("1/0")
	if diag != nil {
		t.Fatal(diag)
	}
	if !math.IsInf(float64(value), 1) {
		t.Fatalf("expected +Inf, got %v", value)
	}

	value, diag = EvaluateString("0/0")
	if diag != nil {
		t.Fatal(diag)
	}
	if !math.IsNaN(float64(value)) {
		t.Fatalf("expected NaN, got %v", value)
	}
}

func TestEvaluateSinglePrecision(t *testing.T) {
	// 16777216 is the largest float32 with a next representable integer gap
	// of 2, so adding 1 is a no-op in single precision.
	value, diag := EvaluateString("16777216+1")
	if diag != nil {
		t.Fatal(diag)
	}
	if value != 16777216 {
		t.Fatalf("expected 16777216, got %v", value)
	}
}

func TestEvaluatePure(t *testing.T) {
	tokens, diag := NewLexer("(3 + 3) * 2 / (4 - 1)").Scan()
	if diag != nil {
		t.Fatal(diag)
	}
	n, diag := NewParser("(3 + 3) * 2 / (4 - 1)", tokens).Parse()
	if diag != nil {
		t.Fatal(diag)
	}
	first := n.Evaluate()
	for range 10 {
		if got := n.Evaluate(); got != first {
			t.Fatalf("evaluation is not pure: %v then %v", first, got)
		}
	}
}
