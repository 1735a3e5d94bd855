package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/brackets/internal/cases"
)

var (
	checkFailFast   bool
	checkMirror     bool
	checkWatch      bool
	checkShowPassed bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run a file of expressions with expected results",
	Long: `Runs every case of a case file and prints PASS or FAIL for each,
followed by a summary. The exit code is 1 if any case fails.

YAML case files (.yaml, .yml) hold a list of cases:

  - name: simple square
    input: "[[B](A)]"
    want: SQ(SQ(A),RD(A))
  - name: invalid mixed square
    input: "[[A](B)]"
    error: UnexpectedChar
    position: 2

Any other file is read as plain text, one expression per line, with an
optional expectation after "=>" ("!" marks an expected error):

  # comment
  [[B](A)] => SQ(SQ(A),RD(A))
  [[A](B)] => !UnexpectedChar
  "" => !UnexpectedSymbol

Examples:
  brackets check cases.yaml
  brackets check --mirror --fail-fast cases.txt
  brackets check --watch cases.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkFailFast, "fail-fast", false, "stop at the first failing case")
	checkCmd.Flags().BoolVar(&checkMirror, "mirror", false, "also check every case against its mirrored expression")
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "re-run whenever the file changes")
	checkCmd.Flags().BoolVar(&checkShowPassed, "show-passed", false, "print details for passing cases too")
	checkCmd.Flags().StringP("output", "o", "text", "report format (text, json, yaml)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	a := current
	path := args[0]

	runner, err := cases.NewRunner(cases.Options{
		Parser:      a.parser,
		Logger:      a.logger,
		FailFast:    checkFailFast || a.cfg.Check.FailFast,
		CheckMirror: checkMirror,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	if checkWatch {
		return runner.Watch(ctx, path, cases.DefaultDebounce, func(report *cases.Report, err error) {
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return
			}
			if werr := writeReport(out, report, a.cfg.Output.Format, a.styles); werr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", werr)
			}
		})
	}

	if timeout := a.cfg.Check.Timeout.Duration; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	report, runErr := runner.RunFile(ctx, path)
	if report == nil {
		return runErr
	}
	if err := writeReport(out, report, a.cfg.Output.Format, a.styles); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if !report.OK() {
		return errReported
	}
	return nil
}

// writeReport writes a case report as text, JSON or YAML
func writeReport(w io.Writer, report *cases.Report, format string, styles Styles) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, res := range report.Results {
		input := res.Case.Input
		if input == "" {
			input = `""`
		}

		if res.Passed {
			fmt.Fprintf(w, "%s %s  %s\n", styles.Pass.Render("PASS"), res.Case.Name, styles.Muted.Render(input))
			if checkShowPassed {
				detail := res.Got
				if detail == "" {
					detail = res.Error
				}
				fmt.Fprintf(w, "     %s\n", styles.Muted.Render(detail))
			}
			continue
		}

		fmt.Fprintf(w, "%s %s  %s\n", styles.Fail.Render("FAIL"), res.Case.Name, input)
		if res.Case.Line > 0 {
			fmt.Fprintf(w, "     %s\n", styles.Muted.Render(fmt.Sprintf("line %d", res.Case.Line)))
		}
		fmt.Fprintf(w, "     %s\n", styles.Error.Render(res.Reason))
	}

	summary := report.Summary()
	if report.OK() {
		summary = styles.Pass.Render(summary)
	} else {
		summary = styles.Fail.Render(summary)
	}
	fmt.Fprintf(w, "\n%s (%s)\n", summary, report.Elapsed.Round(time.Microsecond))
	return nil
}
