package repls

import (
	"context"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/reusee/calc/logs"
)

// REPL reads expression lines from the terminal until end of input or the
// exit sentinel.
type REPL func(ctx context.Context) error

func (Module) REPL(
	logger logs.Logger,
	prompt Prompt,
	historyFile HistoryFile,
	process ProcessLine,
) REPL {
	return func(ctx context.Context) error {
		fmt.Println("calc: a basic command line calculator")
		fmt.Println("Type 'exit' to exit")

		rl, err := readline.NewEx(&readline.Config{
			Prompt:      string(prompt),
			HistoryFile: string(historyFile),
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		logger.DebugContext(ctx, "repl start",
			"history", string(historyFile),
		)

		for {
			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				return nil
			}
			if process(ctx, os.Stdout, line) {
				return nil
			}
		}
	}
}
