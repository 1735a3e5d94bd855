package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/brackets/foundation/brackets/parser"
	mdwlog "github.com/msto63/brackets/foundation/core/log"
	"github.com/msto63/brackets/internal/tui/repl"
	"github.com/msto63/brackets/pkg/core/version"
)

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"interactive", "i"},
	Short:   "Interactive parser that evaluates as you type",
	Long: `Starts an interactive line editor. The line is parsed on every
keystroke; the tree or the error with a caret under the offending
character is shown below it.

Keys:
  Enter    Commit the line to the history
  Tab      Toggle the tree view
  Ctrl+R   Mirror the line
  Up       Recall from the history
  Esc      Quit`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	a := current

	// Log entries would corrupt the screen, so the REPL parser stays silent
	p, err := parser.New(parser.Options{
		Logger:         mdwlog.NewDiscard(),
		MaxInputLength: a.cfg.Parser.MaxInputLength,
		MaxDepth:       a.cfg.Parser.MaxDepth,
	})
	if err != nil {
		return err
	}

	a.logger.Debug("Starting REPL")
	return repl.Run(repl.Config{
		Parser:    p,
		Version:   version.REPL,
		CharLimit: a.cfg.Parser.MaxInputLength,
	})
}
