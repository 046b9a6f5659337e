package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/calc/calclang"
	"github.com/reusee/calc/cmds"
	"github.com/reusee/calc/modes"
	"github.com/reusee/calc/repls"
	"github.com/reusee/dscope"
)

func ce(err error) {
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}
}

func main() {
	args := cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	// non-flag arguments are expressions to evaluate one-shot
	if len(args) > 0 {
		scope.Call(func(
			format repls.ResultFormat,
		) {
			ok := true
			for _, arg := range args {
				result, diag := calclang.EvaluateString(arg)
				if diag != nil {
					fmt.Fprintln(os.Stderr, diag.Render(0))
					ok = false
					continue
				}
				fmt.Printf(string(format)+"\n", result)
			}
			if !ok {
				os.Exit(-1)
			}
		})
		return
	}

	scope.Call(func(
		repl repls.REPL,
	) {
		ce(repl(ctx))
	})
}
