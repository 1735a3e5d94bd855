package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwast "github.com/msto63/brackets/foundation/brackets/ast"
	"github.com/msto63/brackets/foundation/brackets/parser"
	mdwlog "github.com/msto63/brackets/foundation/core/log"
	"github.com/msto63/brackets/internal/tui/repl"
)

var (
	outputFormat string
	showMirror   bool
	showStats    bool
	showTree     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <expression|->",
	Short: "Parse an expression and print its tree",
	Long: `Parses a single expression. The whole input must form exactly one
expression. Use "-" to read the expression from stdin.

On success the rendered tree is printed; on failure the error with its
position, and the exit code is 1.

Examples:
  brackets parse "[[B](((A)[B]))]"
  brackets parse --mirror --stats "((A)[B])"
  brackets parse -o yaml "[[A](B)]"
  echo "[[B](A)]" | brackets parse -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		if input == "-" {
			line, err := readLine(cmd.InOrStdin())
			if err != nil {
				return err
			}
			input = line
		}
		return runParse(cmd, input)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	addParseFlags(parseCmd)
}

func addParseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format (text, json, yaml)")
	cmd.Flags().BoolVar(&showMirror, "mirror", false, "also parse the mirrored expression")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print tree statistics")
	cmd.Flags().BoolVar(&showTree, "tree", false, "print the tree structure with positions")
}

// readLine reads the first line of r without its line ending
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// parseResult is the machine readable outcome of a parse
type parseResult struct {
	Input     string        `json:"input" yaml:"input"`
	OK        bool          `json:"ok" yaml:"ok"`
	Result    string        `json:"result,omitempty" yaml:"result,omitempty"`
	Tree      *mdwast.Tree  `json:"tree,omitempty" yaml:"tree,omitempty"`
	Stats     *mdwast.Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
	Error     *errorInfo    `json:"error,omitempty" yaml:"error,omitempty"`
	Mirror    *parseResult  `json:"mirror,omitempty" yaml:"mirror,omitempty"`
	RequestID string        `json:"request_id,omitempty" yaml:"request_id,omitempty"`

	node mdwast.Node
	err  error
}

// errorInfo describes a parse failure
type errorInfo struct {
	Kind     string `json:"kind" yaml:"kind"`
	Code     string `json:"code" yaml:"code"`
	Message  string `json:"message" yaml:"message"`
	Position int    `json:"position" yaml:"position"`
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`
	Found    string `json:"found,omitempty" yaml:"found,omitempty"`
}

// resultOptions selects the optional parts of a parseResult
type resultOptions struct {
	mirror bool
	stats  bool
	tree   bool
}

// buildResult parses input and collects everything the output formats need
func buildResult(p *parser.Parser, input string, opts resultOptions) *parseResult {
	node, err := p.Parse(input)
	res := &parseResult{Input: input, OK: err == nil, node: node, err: err}

	if err != nil {
		res.Error = newErrorInfo(err)
	} else {
		res.Result = node.String()
		if opts.tree {
			res.Tree = mdwast.ToTree(node)
		}
		if opts.stats {
			stats := mdwast.Measure(node)
			res.Stats = &stats
		}
	}

	if opts.mirror {
		opts.mirror = false
		res.Mirror = buildResult(p, parser.Mirror(input), opts)
	}
	return res
}

func newErrorInfo(err error) *errorInfo {
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		return &errorInfo{Kind: "Unknown", Code: "UNKNOWN", Message: err.Error(), Position: -1}
	}

	info := &errorInfo{
		Kind:     pe.Kind.String(),
		Code:     pe.Kind.Code().String(),
		Message:  pe.Message,
		Position: pe.Position,
	}
	if pe.HasExpected() {
		info.Expected = string(pe.Expected)
	}
	if pe.HasFound() {
		info.Found = string(pe.Found)
	}
	return info
}

// runParse parses input and writes the result in the configured format
func runParse(cmd *cobra.Command, input string) error {
	a := current
	res := buildResult(a.parser, input, resultOptions{
		mirror: showMirror,
		stats:  showStats,
		tree:   showTree || a.cfg.Output.Format != "text",
	})
	res.RequestID = a.requestID

	var pe *parser.ParseError
	if errors.As(res.err, &pe) {
		a.logger.LogError(pe.ToError().WithRequestID(a.requestID))
	}

	if err := writeResult(cmd.OutOrStdout(), res, a.cfg.Output.Format, a.styles); err != nil {
		return err
	}

	if !res.OK {
		return errReported
	}
	a.logger.Debug("Expression parsed", mdwlog.Fields{"result": res.Result})
	return nil
}

// writeResult writes res as text, JSON or YAML
func writeResult(w io.Writer, res *parseResult, format string, styles Styles) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		writeText(w, res, styles)
		return nil
	}
}

// writeText prints the input line followed by the result or the error
func writeText(w io.Writer, res *parseResult, styles Styles) {
	fmt.Fprintln(w, res.Input)

	if res.OK {
		fmt.Fprintf(w, "%s %s\n", styles.Label.Render("Parsed result:"), styles.Result.Render(res.Result))
	} else {
		var pe *parser.ParseError
		if errors.As(res.err, &pe) {
			fmt.Fprintln(w, styles.Caret.Render(repl.Caret(res.Input, pe.Position)))
		}
		fmt.Fprintf(w, "%s %s\n", styles.Label.Render("ParserError:"), styles.Error.Render(res.err.Error()))
	}

	if res.Stats != nil {
		s := res.Stats
		fmt.Fprintln(w, styles.Muted.Render(fmt.Sprintf("Stats: depth=%d nodes=%d atoms=%d pairs=%d square=%d round=%d",
			s.Depth, s.Nodes(), s.Atoms, s.Pairs, s.Squares, s.Rounds)))
	}
	if res.OK && res.Tree != nil {
		fmt.Fprint(w, styles.Muted.Render(strings.TrimRight(mdwast.Dump(res.node), "\n")))
		fmt.Fprintln(w)
	}

	if res.Mirror != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s\n", styles.Label.Render("Mirror:"))
		writeText(w, res.Mirror, styles)
	}
}
