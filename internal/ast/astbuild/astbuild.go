// Package astbuild constructs ast.Node trees by hand, for tests and for
// the `selfcheck` CLI gallery. A real parser threads real byte offsets
// through every node; here we synthesize stable-enough spans so
// diagnostics still carry a position, without standing up a lexer.
package astbuild

import (
	"github.com/emberlang/emberc/internal/ast"
	"github.com/emberlang/emberc/pkg/token"
)

// Builder accumulates source text as nodes are created, so every node
// it returns shares one coherent Source buffer. Nodes made with Named
// get a real Name span into it; no node's Span is set.
type Builder struct {
	source string
	line   int
}

// New returns a Builder starting at line 1.
func New() *Builder {
	return &Builder{line: 1}
}

// Source returns the synthesized source buffer accumulated so far.
func (b *Builder) Source() string {
	return b.source
}

func (b *Builder) intern(text string) token.Span {
	start := len(b.source)
	b.source += text
	return token.Span{Start: start, Length: len(text)}
}

func (b *Builder) pos() token.Position {
	p := token.Position{Line: b.line, Column: 1, Offset: len(b.source)}
	b.line++
	return p
}

// Node creates a bare node of the given kind with no name and no
// children text beyond what callers attach via Connect.
func (b *Builder) Node(kind ast.Kind) *ast.Node {
	n := &ast.Node{Kind: kind, Pos: b.pos(), Source: b.source}
	return n
}

// Named creates a node of the given kind whose Name span covers name,
// e.g. a VARIABLE reference or a *_VARIABLE_DEFINITION's identifier.
func (b *Builder) Named(kind ast.Kind, name string) *ast.Node {
	n := b.Node(kind)
	n.Name = b.intern(name)
	n.Source = b.source
	return n
}

// IntLit creates an INT_LIT node carrying v.
func (b *Builder) IntLit(v int64) *ast.Node {
	n := b.Node(ast.KindIntLit)
	n.Literal = v
	return n
}

// FloatLit creates a FLOAT_LIT node carrying v.
func (b *Builder) FloatLit(v float64) *ast.Node {
	n := b.Node(ast.KindFloatLit)
	n.Literal = v
	return n
}

// DoubleLit creates a DOUBLE_LIT node carrying v.
func (b *Builder) DoubleLit(v float64) *ast.Node {
	n := b.Node(ast.KindDoubleLit)
	n.Literal = v
	return n
}

// BoolLit creates a BOOL_LIT node carrying v.
func (b *Builder) BoolLit(v bool) *ast.Node {
	n := b.Node(ast.KindBoolLit)
	n.Literal = v
	return n
}

// StringLit creates a STRING_LIT node carrying v.
func (b *Builder) StringLit(v string) *ast.Node {
	n := b.Node(ast.KindStringLit)
	n.Literal = v
	return n
}

// Connect appends children to parent in order, wiring FirstChild and
// the NextSibling chain, and returns parent for chaining.
func Connect(parent *ast.Node, children ...*ast.Node) *ast.Node {
	children = nonNil(children)
	if len(children) == 0 {
		return parent
	}
	parent.FirstChild = children[0]
	for i := 0; i+1 < len(children); i++ {
		children[i].NextSibling = children[i+1]
	}
	return parent
}

func nonNil(nodes []*ast.Node) []*ast.Node {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Program builds a PROGRAM node over the given top-level statements.
func (b *Builder) Program(stmts ...*ast.Node) *ast.Node {
	return Connect(b.Node(ast.KindProgram), stmts...)
}

// Block builds a BLOCK_STATEMENT node over the given statements.
func (b *Builder) Block(stmts ...*ast.Node) *ast.Node {
	return Connect(b.Node(ast.KindBlockStatement), stmts...)
}
