package calclang

import (
	"strings"
	"testing"
)

func TestDiagnosticMessages(t *testing.T) {
	_, diag := EvaluateString("3a")
	if diag == nil {
		t.Fatal("expected diagnostic")
	}
	if !strings.Contains(diag.Message(), "'a'") {
		t.Fatalf("message should name the character: %q", diag.Message())
	}

	_, diag = EvaluateString("3++3")
	if diag == nil {
		t.Fatal("expected diagnostic")
	}
	if diag.Message() != "Error: Unexpected Token" {
		t.Fatalf("got %q", diag.Message())
	}

	_, diag = EvaluateString("(1+2")
	if diag == nil {
		t.Fatal("expected diagnostic")
	}
	if diag.Message() != "Error: Unexpected End Of Stream" {
		t.Fatalf("got %q", diag.Message())
	}
}

func TestDiagnosticRender(t *testing.T) {
	_, diag := EvaluateString("3a")
	if diag == nil {
		t.Fatal("expected diagnostic")
	}
	rendered := diag.Render(4)
	lines := strings.Split(rendered, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), rendered)
	}
	if lines[1] != "    3a" {
		t.Fatalf("source line %q", lines[1])
	}
	// caret aligned under the 'a': 4 margin + 1
	if lines[2] != "     ^---- Here" {
		t.Fatalf("caret line %q", lines[2])
	}
}

func TestDiagnosticRenderEndOfStream(t *testing.T) {
	_, diag := EvaluateString("(1+2")
	if diag == nil {
		t.Fatal("expected diagnostic")
	}
	lines := strings.Split(diag.Render(4), "\n")
	// caret one past the end of the source
	if lines[2] != "        ^---- Here" {
		t.Fatalf("caret line %q", lines[2])
	}
}

func TestDiagnosticError(t *testing.T) {
	_, diag := EvaluateString("23.23.3")
	if diag == nil {
		t.Fatal("expected diagnostic")
	}
	var err error = diag
	if !strings.Contains(err.Error(), "offset 5") {
		t.Fatalf("got %q", err.Error())
	}
}
