// ============================================================================
// brackets - Bracket Grammar Parser
// ============================================================================
//
// Package:     cases
// Description: Runs cases through the parser and judges the outcome
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	mdwast "github.com/msto63/brackets/foundation/brackets/ast"
	"github.com/msto63/brackets/foundation/brackets/parser"
	mdwerror "github.com/msto63/brackets/foundation/core/error"
	mdwlog "github.com/msto63/brackets/foundation/core/log"
)

// Options configures a Runner
type Options struct {
	Parser *parser.Parser
	Logger *mdwlog.Logger

	// FailFast stops the run at the first failing case
	FailFast bool

	// CheckMirror additionally requires that the mirrored input of every
	// passing case parses to the mirrored tree, or fails at the same
	// position
	CheckMirror bool
}

// Runner executes cases against a parser
type Runner struct {
	parser      *parser.Parser
	logger      *mdwlog.Logger
	failFast    bool
	checkMirror bool
}

// NewRunner creates a new Runner
func NewRunner(opts Options) (*Runner, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Parser == nil {
		p, err := parser.New(parser.Options{Logger: opts.Logger})
		if err != nil {
			return nil, err
		}
		opts.Parser = p
	}

	return &Runner{
		parser:      opts.Parser,
		logger:      opts.Logger.WithField("component", "case-runner"),
		failFast:    opts.FailFast,
		checkMirror: opts.CheckMirror,
	}, nil
}

// RunFile loads and runs a case file
func (r *Runner) RunFile(ctx context.Context, path string) (*Report, error) {
	cases, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	report, err := r.Run(ctx, cases)
	if report != nil {
		report.Source = path
	}
	return report, err
}

// Run executes the cases in order. When ctx ends the partial report is
// returned together with a TIMEOUT or CANCELED error.
func (r *Runner) Run(ctx context.Context, cases []Case) (*Report, error) {
	report := &Report{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
		Results:   make([]Result, 0, len(cases)),
	}
	logger := r.logger.WithRequestID(report.ID)
	timer := logger.StartTimer("case run").WithField("cases", len(cases))

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			report.Elapsed = time.Since(report.StartedAt)
			timer.StopWithError(err)
			return report, interrupted(err, report)
		}

		res := r.runCase(c)
		report.add(res)

		if !res.Passed {
			logger.Debug("Case failed", mdwlog.Fields{
				"case":   c.Name,
				"input":  c.Input,
				"reason": res.Reason,
			})
			if r.failFast {
				break
			}
		}
	}

	report.Elapsed = time.Since(report.StartedAt)
	timer.WithField("passed", report.Passed).
		WithField("failed", report.Failed).
		StopWithResult(report.OK(), nil)
	return report, nil
}

func interrupted(err error, report *Report) error {
	code := mdwerror.CodeCanceled
	if errors.Is(err, context.DeadlineExceeded) {
		code = mdwerror.CodeTimeout
	}
	return mdwerror.Wrap(err, "case run interrupted").
		WithCode(code).
		WithOperation("cases.Run").
		WithRequestID(report.ID).
		WithDetail("completed", report.Total())
}

// runCase parses one case and judges the outcome
func (r *Runner) runCase(c Case) Result {
	start := time.Now()
	node, err := r.parser.Parse(c.Input)
	res := Result{Case: c, Duration: time.Since(start)}

	if node != nil {
		res.Got = node.String()
	}
	var pe *parser.ParseError
	if err != nil {
		res.Error = err.Error()
		if errors.As(err, &pe) {
			res.Position = pe.Position
		}
	}

	res.Passed, res.Reason = judge(c, node, err, pe)
	if res.Passed && r.checkMirror {
		res.Passed, res.Reason = r.mirrorHolds(c, node, pe)
	}
	return res
}

func judge(c Case, node mdwast.Node, err error, pe *parser.ParseError) (bool, string) {
	if !c.ExpectsError() {
		if err != nil {
			return false, "unexpected error: " + err.Error()
		}
		if c.Want != "" && node.String() != c.Want {
			return false, fmt.Sprintf("got %s, want %s", node.String(), c.Want)
		}
		return true, ""
	}

	if err == nil {
		return false, fmt.Sprintf("expected error %q, got %s", c.Error, node.String())
	}
	if !matchesError(c.Error, err, pe) {
		return false, fmt.Sprintf("error %q does not match %q", err.Error(), c.Error)
	}
	if c.Position != nil {
		if pe == nil {
			return false, "error carries no position"
		}
		if pe.Position != *c.Position {
			return false, fmt.Sprintf("error at pos %d, want pos %d", pe.Position, *c.Position)
		}
	}
	return true, ""
}

// matchesError accepts an error kind name or a message fragment
func matchesError(want string, err error, pe *parser.ParseError) bool {
	if pe != nil && strings.EqualFold(pe.Kind.String(), want) {
		return true
	}
	return strings.Contains(err.Error(), want)
}

func (r *Runner) mirrorHolds(c Case, node mdwast.Node, pe *parser.ParseError) (bool, string) {
	mirrored := parser.Mirror(c.Input)
	mnode, err := r.parser.Parse(mirrored)

	if node != nil {
		if err != nil {
			return false, fmt.Sprintf("mirror %q failed: %v", mirrored, err)
		}
		if !mdwast.Equal(mnode, mdwast.Mirror(node)) {
			return false, fmt.Sprintf("mirror %q parsed to %s, want %s", mirrored, mnode, mdwast.Mirror(node))
		}
		return true, ""
	}

	var mpe *parser.ParseError
	if !errors.As(err, &mpe) || pe == nil {
		return false, fmt.Sprintf("mirror %q did not fail like the input", mirrored)
	}
	if mpe.Kind != pe.Kind || mpe.Position != pe.Position {
		return false, fmt.Sprintf("mirror %q failed with %s at pos %d, want %s at pos %d",
			mirrored, mpe.Kind, mpe.Position, pe.Kind, pe.Position)
	}
	return true, ""
}
