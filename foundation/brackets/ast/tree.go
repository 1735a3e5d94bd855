// File: tree.go
// Title: Serializable Tree Form
// Description: Plain struct form of the AST used for JSON and YAML output and
//              for reading trees back from structured data.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Initial implementation

package ast

import (
	"fmt"
)

// Tree is the serializable form of a Node. Left and Right are nil for atoms.
type Tree struct {
	Kind     string `json:"kind" yaml:"kind"`
	Rendered string `json:"rendered" yaml:"rendered"`
	Pos      int    `json:"pos" yaml:"pos"`
	Left     *Tree  `json:"left,omitempty" yaml:"left,omitempty"`
	Right    *Tree  `json:"right,omitempty" yaml:"right,omitempty"`
}

// ToTree converts n into its serializable form
func ToTree(n Node) *Tree {
	switch node := n.(type) {
	case *Atom:
		return &Tree{
			Kind:     node.Type.String(),
			Rendered: node.String(),
			Pos:      node.Pos,
		}
	case *Pair:
		return &Tree{
			Kind:     node.Type.String(),
			Rendered: node.String(),
			Pos:      node.Pos,
			Left:     ToTree(node.Left),
			Right:    ToTree(node.Right),
		}
	default:
		return nil
	}
}

// FromTree converts a serialized tree back into nodes and validates the result.
// The Rendered field is ignored.
func FromTree(t *Tree) (Node, error) {
	node, err := fromTree(t)
	if err != nil {
		return nil, err
	}
	if err := node.Validate(); err != nil {
		return nil, err
	}
	return node, nil
}

func fromTree(t *Tree) (Node, error) {
	if t == nil {
		return nil, fmt.Errorf("tree node is nil")
	}

	kind, err := ParseKind(t.Kind)
	if err != nil {
		return nil, err
	}

	if t.Left == nil && t.Right == nil {
		return NewAtom(kind, t.Pos), nil
	}
	if t.Left == nil || t.Right == nil {
		return nil, fmt.Errorf("%s node at pos %d has only one child", kind, t.Pos)
	}

	left, err := fromTree(t.Left)
	if err != nil {
		return nil, err
	}
	right, err := fromTree(t.Right)
	if err != nil {
		return nil, err
	}

	return NewPair(kind, left, right, t.Pos), nil
}

// ParseKind parses "square"/"SQ" or "round"/"RD"
func ParseKind(s string) (Kind, error) {
	switch s {
	case "square", "SQ":
		return Square, nil
	case "round", "RD":
		return Round, nil
	default:
		return Square, fmt.Errorf("unknown node kind %q", s)
	}
}
