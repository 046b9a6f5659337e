package calclang

// EvaluateString runs the full pipeline on one source line: scan, parse,
// evaluate. It holds no state across calls; concurrent calls on distinct
// inputs are safe.
func EvaluateString(source string) (float32, *Diagnostic) {
	tokens, diag := NewLexer(source).Scan()
	if diag != nil {
		return 0, diag
	}
	n, diag := NewParser(source, tokens).Parse()
	if diag != nil {
		return 0, diag
	}
	return n.Evaluate(), nil
}
