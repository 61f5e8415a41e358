// Package astjson decodes the JSON AST interchange format the `check`
// subcommand reads from disk: a plain, fully-typed tree shape an
// external lexer/parser would emit now that this core treats parsing
// as an out-of-scope collaborator (spec.md §1). There is no filesystem
// tree or ad hoc JSON-path query here, so plain encoding/json is the
// idiomatic choice rather than reaching for a streaming or path-query
// library (see DESIGN.md).
package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/emberlang/emberc/internal/ast"
	"github.com/emberlang/emberc/pkg/token"
)

// File is the top-level document: the source buffer every node's
// spans are offsets into, the file name used in diagnostics, and the
// root node.
type File struct {
	Source string `json:"source"`
	File   string `json:"file"`
	Root   Node   `json:"root"`
}

// Node mirrors ast.Node's wire shape: a kind name, a source position,
// an optional name span, an optional decoded literal, and ordered
// children (the interchange format nests children directly rather
// than exposing the in-memory sibling-list encoding).
type Node struct {
	Kind     string          `json:"kind"`
	Line     int             `json:"line"`
	Column   int             `json:"column"`
	Offset   int             `json:"offset"`
	Span     *Span           `json:"span,omitempty"`
	Name     *Span           `json:"name,omitempty"`
	Literal  json.RawMessage `json:"literal,omitempty"`
	Children []Node          `json:"children,omitempty"`
}

// Span is the (start, length) byte-offset pair ast.Node.Span and
// ast.Node.Name use.
type Span struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// Decode parses a JSON AST document and builds the corresponding
// ast.Node tree, ready for semantic.Checker.Check.
func Decode(data []byte) (*File, *ast.Node, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("decode AST document: %w", err)
	}
	root, err := f.Root.build(f.Source)
	if err != nil {
		return nil, nil, err
	}
	return &f, root, nil
}

func (s *Span) toSpan() token.Span {
	if s == nil {
		return token.Span{}
	}
	return token.Span{Start: s.Start, Length: s.Length}
}

func (n Node) build(source string) (*ast.Node, error) {
	kind, ok := ast.KindFromName(n.Kind)
	if !ok {
		return nil, fmt.Errorf("unrecognized AST node kind %q", n.Kind)
	}

	node := &ast.Node{
		Kind:   kind,
		Span:   n.Span.toSpan(),
		Name:   n.Name.toSpan(),
		Pos:    token.Position{Line: n.Line, Column: n.Column, Offset: n.Offset},
		Source: source,
	}

	if len(n.Literal) > 0 {
		lit, err := decodeLiteral(kind, n.Literal)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", n.Kind, err)
		}
		node.Literal = lit
	}

	var firstChild, prevChild *ast.Node
	for _, childWire := range n.Children {
		child, err := childWire.build(source)
		if err != nil {
			return nil, err
		}
		if firstChild == nil {
			firstChild = child
		} else {
			prevChild.NextSibling = child
		}
		prevChild = child
	}
	node.FirstChild = firstChild

	return node, nil
}

// decodeLiteral interprets a literal node's raw JSON payload according
// to its kind, matching the decoded-once-by-the-parser contract
// ast.Node.Literal documents: INT_LIT -> int64, FLOAT_LIT/DOUBLE_LIT ->
// float64, BOOL_LIT -> bool, STRING_LIT -> string.
func decodeLiteral(kind ast.Kind, raw json.RawMessage) (any, error) {
	switch kind {
	case ast.KindIntLit:
		var v int64
		err := json.Unmarshal(raw, &v)
		return v, err
	case ast.KindFloatLit, ast.KindDoubleLit:
		var v float64
		err := json.Unmarshal(raw, &v)
		return v, err
	case ast.KindBoolLit:
		var v bool
		err := json.Unmarshal(raw, &v)
		return v, err
	case ast.KindStringLit:
		var v string
		err := json.Unmarshal(raw, &v)
		return v, err
	default:
		var v any
		err := json.Unmarshal(raw, &v)
		return v, err
	}
}
