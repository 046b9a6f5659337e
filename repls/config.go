package repls

import (
	"os"
	"path/filepath"

	"github.com/reusee/calc/cmds"
	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/vars"
)

// Prompt is the string printed before each input line. Its width is also the
// left margin of diagnostic renderings, so carets line up with what the user
// typed.
type Prompt string

var promptFlag = cmds.Var[string]("-prompt")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		configs.First[string](loader, "prompt"),
		">>> ",
	))
}

// ResultFormat is the fmt verb used to print a successful result.
type ResultFormat string

var formatFlag = cmds.Var[string]("-format")

func (Module) ResultFormat(
	loader configs.Loader,
) ResultFormat {
	return ResultFormat(vars.FirstNonZero(
		*formatFlag,
		configs.First[string](loader, "format"),
		"%g",
	))
}

// HistoryFile is where readline persists input history. Empty disables it.
type HistoryFile string

var historyFlag = cmds.Var[string]("-history")

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if v := vars.FirstNonZero(
		*historyFlag,
		configs.First[string](loader, "history"),
	); v != "" {
		return HistoryFile(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return HistoryFile(filepath.Join(home, ".calc_history"))
}
