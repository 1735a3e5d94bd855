package cmd

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/brackets/foundation/brackets/parser"
	mdwerror "github.com/msto63/brackets/foundation/core/error"
	mdwlog "github.com/msto63/brackets/foundation/core/log"
	"github.com/msto63/brackets/pkg/core/config"
	"github.com/msto63/brackets/pkg/core/logging"
	"github.com/msto63/brackets/pkg/core/version"
)

var (
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string
	noColor   bool
	maxDepth  int
	maxLength int
)

// errReported signals a failure whose output has already been written.
// It only sets the exit code.
var errReported = errors.New("failure reported")

// app holds what every command needs, built once per invocation
type app struct {
	cfg       *config.Config
	logger    *mdwlog.Logger
	parser    *parser.Parser
	requestID string
	styles    Styles
}

var current *app

var rootCmd = &cobra.Command{
	Use:   "brackets [expression]",
	Short: "Parser for the square/round bracket grammar",
	Long: `brackets parses expressions of a small context-free grammar with two
mutually recursive nonterminals:

  square := 'B' | '[' '[' square ']' '(' round ')' ']'
  round  := 'A' | '(' '(' round ')' '[' square ']' ')'

A valid expression is rendered as its tree, e.g. [[B](A)] as SQ(SQ(A),RD(A)).
An invalid one is reported with the position of the first offending character.

Examples:
  brackets "[[B](A)]"
  brackets parse --output json "((A)[B])"
  brackets check testdata/grammar.yaml
  brackets repl`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runParse(cmd, args[0])
	},
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(rootCmd, err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $BRACKETS_CONFIG or ./brackets.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console, text, json, logfmt)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth, 0 for unlimited")
	rootCmd.PersistentFlags().IntVar(&maxLength, "max-length", 0, "maximum input length in characters, 0 for unlimited")

	addParseFlags(rootCmd)

	rootCmd.Version = version.Info()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// setup loads the configuration, applies flag overrides and builds the
// logger and parser
func setup(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if noColor {
		cfg.Output.Color = false
	}
	if flags.Changed("max-depth") {
		cfg.Parser.MaxDepth = maxDepth
	}
	if flags.Changed("max-length") {
		cfg.Parser.MaxInputLength = maxLength
	}
	if f := flags.Lookup("output"); f != nil && f.Changed {
		cfg.Output.Format = f.Value.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	requestID := uuid.New().String()
	lc := logging.FromConfig(cfg)
	lc.RequestID = requestID
	lc.Output = cmd.ErrOrStderr()
	logger := logging.NewLogger(lc)

	p, err := parser.New(parser.Options{
		Logger:         logger,
		MaxInputLength: cfg.Parser.MaxInputLength,
		MaxDepth:       cfg.Parser.MaxDepth,
	})
	if err != nil {
		return mdwerror.Wrap(err, "invalid parser options").
			WithCode(mdwerror.CodeInvalidConfig).
			WithRequestID(requestID)
	}

	logger.Debug("Configuration loaded", mdwlog.Fields{
		"config":     cfg.Path(),
		"max_depth":  cfg.Parser.MaxDepth,
		"max_length": cfg.Parser.MaxInputLength,
		"output":     cfg.Output.Format,
	})

	current = &app{
		cfg:       cfg,
		logger:    logger,
		parser:    p,
		requestID: requestID,
		styles:    NewStyles(cfg.Output.Color),
	}
	return nil
}

func printError(cmd *cobra.Command, err error) {
	if current != nil {
		current.logger.LogError(err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
