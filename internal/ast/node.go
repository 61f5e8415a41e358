package ast

import "github.com/emberlang/emberc/pkg/token"

// Node is the single, generic AST node shape the checker walks. The
// external parser builds trees out of these; the checker never sees a
// typed per-construct node, only Kind plus an intrusive child/sibling
// list. This matches the wire shape the lexer/parser side and the
// semantic core agree on, rather than a closed Go type per production.
type Node struct {
	Kind Kind

	Span token.Span
	Pos  token.Position

	FirstChild  *Node
	NextSibling *Node

	// Name is set on nodes that introduce or reference an identifier
	// (VARIABLE, *_VARIABLE_DEFINITION, FUNCTION_DEFINITION,
	// FUNCTION_CALL, PARAMETER, STRUCT_DEFINITION, STRUCT_FIELD,
	// MEMBER_ACCESS, REF_CUSTOM). It is a span into Source, compared by length then
	// bytes rather than by Go string identity.
	Name token.Span

	// Literal carries the already-decoded value for *_LIT nodes
	// (int64, float64, bool, or string). Re-deriving it from Span.Text
	// on every visit would just re-run the parser's own literal
	// scanning inside the checker, so the parser decodes once and the
	// checker trusts the stored value.
	Literal any

	// Source is the buffer Span and Name are offsets into. It is
	// shared by every node in one tree (set once, at the root, by
	// whoever builds the tree) rather than copied per node.
	Source string
}

// Text returns the source text named by n.Span.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.Span.Text(n.Source)
}

// NameText returns the source text named by n.Name.
func (n *Node) NameText() string {
	if n == nil {
		return ""
	}
	return n.Name.Text(n.Source)
}

// SameName reports whether n and other name the same identifier. It
// compares the two name texts, each read from its own node's Source,
// with Go string equality, which checks length first and then bytes.
func (n *Node) SameName(other *Node) bool {
	if n == nil || other == nil {
		return false
	}
	return n.Name.Text(n.Source) == other.Name.Text(other.Source)
}

// Children returns n's children in source order, walking the sibling
// chain. Most of the checker iterates FirstChild/NextSibling directly;
// this is a convenience for the handful of call sites that want a
// slice (argument lists, field lists).
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// ChildAt returns n's i'th child, or nil if there aren't that many.
func (n *Node) ChildAt(i int) *Node {
	if n == nil {
		return nil
	}
	c := n.FirstChild
	for ; c != nil && i > 0; i-- {
		c = c.NextSibling
	}
	return c
}

// NumChildren counts n's children by walking the sibling chain.
func (n *Node) NumChildren() int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}
