// ============================================================================
// brackets - Bracket Grammar Parser
// ============================================================================
//
// Package:     cases
// Description: Case file definitions and run reports
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cases

import (
	"fmt"
	"time"

	mdwerror "github.com/msto63/brackets/foundation/core/error"
)

// Case is a single expression with its expected outcome. A case with
// neither Want nor Error only has to parse.
type Case struct {
	Name  string `yaml:"name" json:"name"`
	Input string `yaml:"input" json:"input"`

	// Want is the expected rendering, e.g. SQ(SQ(A),RD(A))
	Want string `yaml:"want,omitempty" json:"want,omitempty"`

	// Error is an error kind name (UnexpectedChar) or a message fragment
	Error string `yaml:"error,omitempty" json:"error,omitempty"`

	// Position is the expected error position, checked only with Error
	Position *int `yaml:"position,omitempty" json:"position,omitempty"`

	// Line in the source file (not from YAML)
	Line int `yaml:"-" json:"line,omitempty"`
}

// ExpectsError reports whether the case expects the parse to fail
func (c *Case) ExpectsError() bool {
	return c.Error != ""
}

// Validate checks that the expectation is consistent
func (c *Case) Validate() error {
	if c.Want != "" && c.Error != "" {
		return mdwerror.Newf("case %q sets both want and error", c.Name).
			WithCode(mdwerror.CodeValidationFailed).
			WithDetail("line", c.Line)
	}
	if c.Position != nil && c.Error == "" {
		return mdwerror.Newf("case %q sets position without error", c.Name).
			WithCode(mdwerror.CodeValidationFailed).
			WithDetail("line", c.Line)
	}
	return nil
}

// Result is the outcome of running one case
type Result struct {
	Case     Case          `yaml:"case" json:"case"`
	Passed   bool          `yaml:"passed" json:"passed"`
	Got      string        `yaml:"got,omitempty" json:"got,omitempty"`
	Error    string        `yaml:"error,omitempty" json:"error,omitempty"`
	Position int           `yaml:"position,omitempty" json:"position,omitempty"`
	Reason   string        `yaml:"reason,omitempty" json:"reason,omitempty"`
	Duration time.Duration `yaml:"duration" json:"duration"`
}

// Report collects the results of a run
type Report struct {
	ID        string        `yaml:"id" json:"id"`
	Source    string        `yaml:"source,omitempty" json:"source,omitempty"`
	StartedAt time.Time     `yaml:"started_at" json:"started_at"`
	Elapsed   time.Duration `yaml:"elapsed" json:"elapsed"`
	Passed    int           `yaml:"passed" json:"passed"`
	Failed    int           `yaml:"failed" json:"failed"`
	Results   []Result      `yaml:"results" json:"results"`
}

// OK reports whether every case passed
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Total returns the number of cases run
func (r *Report) Total() int {
	return r.Passed + r.Failed
}

// Summary returns a one-line summary
func (r *Report) Summary() string {
	return fmt.Sprintf("%d passed, %d failed, %d total", r.Passed, r.Failed, r.Total())
}

func (r *Report) add(res Result) {
	if res.Passed {
		r.Passed++
	} else {
		r.Failed++
	}
	r.Results = append(r.Results, res)
}
