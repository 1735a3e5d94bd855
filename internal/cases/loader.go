// ============================================================================
// brackets - Bracket Grammar Parser
// ============================================================================
//
// Package:     cases
// Description: Loads case files in YAML or plain text form
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cases

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/brackets/foundation/core/error"
)

// emptyInput spells the empty expression in plain text files
const emptyInput = `""`

// caseFile is the mapping form of a YAML case file
type caseFile struct {
	Cases []Case `yaml:"cases"`
}

// LoadFile loads cases from path. Files ending in .yaml or .yml are read as
// YAML, everything else as plain text.
func LoadFile(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeInternal
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read case file").
			WithCode(code).
			WithOperation("cases.LoadFile").
			WithDetail("path", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseText(bytes.NewReader(data))
	}
}

// ParseYAML parses either a top-level list of cases or a mapping with a
// cases key
func ParseYAML(data []byte) ([]Case, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, invalidYAML(err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	var cases []Case
	if root.Kind == yaml.SequenceNode {
		if err := root.Decode(&cases); err != nil {
			return nil, invalidYAML(err)
		}
	} else {
		var file caseFile
		if err := root.Decode(&file); err != nil {
			return nil, invalidYAML(err)
		}
		cases = file.Cases
	}

	// Line numbers come from the sequence items
	items := root.Content
	if root.Kind != yaml.SequenceNode {
		items = nil
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value == "cases" {
				items = root.Content[i+1].Content
			}
		}
	}

	for i := range cases {
		if i < len(items) {
			cases[i].Line = items[i].Line
		}
		if cases[i].Name == "" {
			cases[i].Name = fmt.Sprintf("case %d", i+1)
		}
		if err := cases[i].Validate(); err != nil {
			return nil, err
		}
	}
	return cases, nil
}

func invalidYAML(err error) error {
	return mdwerror.Wrap(err, "invalid YAML case file").
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("cases.ParseYAML")
}

// ParseText reads one expression per line. Blank lines and lines starting
// with # are skipped. An expectation may follow "=>": a rendering such as
// SQ(A), or "!" and an error kind or message fragment. The empty expression
// is written as "".
//
//	[[B](A)] => SQ(SQ(A),RD(A))
//	[[A](B)] => !UnexpectedChar
func ParseText(r io.Reader) ([]Case, error) {
	var cases []Case

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		c := Case{Line: line}
		input, expect, hasExpect := strings.Cut(text, "=>")
		c.Input = strings.TrimSpace(input)
		if c.Input == emptyInput {
			c.Input = ""
		}

		if hasExpect {
			expect = strings.TrimSpace(expect)
			if strings.HasPrefix(expect, "!") {
				c.Error = strings.TrimSpace(strings.TrimPrefix(expect, "!"))
				if c.Error == "" {
					return nil, mdwerror.Newf("line %d: empty error expectation", line).
						WithCode(mdwerror.CodeInvalidFormat).
						WithOperation("cases.ParseText").
						WithDetail("line", line)
				}
			} else {
				c.Want = expect
			}
		}

		c.Name = fmt.Sprintf("line %d", line)
		cases = append(cases, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "failed to read case file").
			WithCode(mdwerror.CodeInternal).
			WithOperation("cases.ParseText")
	}
	return cases, nil
}
