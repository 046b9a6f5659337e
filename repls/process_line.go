package repls

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/calc/calclang"
	"github.com/reusee/calc/cmds"
	"github.com/reusee/calc/debugs"
	"github.com/reusee/calc/logs"
)

// ProcessLine handles one input line: trim, check the exit sentinel, then
// run the pipeline and write either the formatted result or the diagnostic
// rendering. It reports whether the caller should stop reading. It is kept
// apart from the readline loop so the loop stays a thin shell.
type ProcessLine func(ctx context.Context, w io.Writer, line string) (exit bool)

var tapFlag = cmds.Switch("-tap")

func (Module) ProcessLine(
	logger logs.Logger,
	prompt Prompt,
	format ResultFormat,
	tap debugs.Tap,
) ProcessLine {
	margin := len(prompt)

	return func(ctx context.Context, w io.Writer, line string) bool {
		line = strings.TrimSpace(line)
		if line == "exit" {
			return true
		}
		if line == "" {
			return false
		}

		// staged rather than calclang.EvaluateString, so the tap can see
		// the intermediates
		tokens, diag := calclang.NewLexer(line).Scan()
		var tree *calclang.Node
		if diag == nil {
			tree, diag = calclang.NewParser(line, tokens).Parse()
		}

		globals := map[string]any{
			"source": line,
			"tokens": tokens,
			"tree":   tree,
			// re-run the pipeline on new input from inside a tap session
			"evaluate": func(source string) string {
				result, diag := calclang.EvaluateString(source)
				if diag != nil {
					return diag.Error()
				}
				return fmt.Sprintf(string(format), result)
			},
		}

		if diag != nil {
			logger.DebugContext(ctx, "diagnostic",
				"kind", diag.Kind,
				"offset", diag.Offset,
			)
			fmt.Fprintln(w, diag.Render(margin))
			globals["diagnostic"] = diag
		} else {
			result := tree.Evaluate()
			fmt.Fprintf(w, string(format)+"\n", result)
			globals["result"] = result
		}

		if *tapFlag {
			tap(ctx, line, globals)
		}
		return false
	}
}
