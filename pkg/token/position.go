// Package token holds the small set of source-location types shared
// between the external parser and the semantic core. The lexer and
// parser that produce these values are out-of-scope collaborators;
// this package exists only so both sides agree on the wire shape.
package token

import "fmt"

// Position identifies a single point in source text.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String renders "line:column", matching the teacher's diagnostic format.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether p refers to a real location (line >= 1).
func (p Position) IsValid() bool {
	return p.Line >= 1
}

// Span is a borrowed, non-owning view into the source buffer: a byte
// offset and a length. The checker never copies the bytes it names;
// it only compares and, when a diagnostic needs one, materializes a
// short-lived string.
type Span struct {
	Start  int
	Length int
}

// Text returns the slice of source named by the span. The caller-owned
// source string must outlive any use of the result.
func (s Span) Text(source string) string {
	if s.Length <= 0 || s.Start < 0 || s.Start+s.Length > len(source) {
		return ""
	}
	return source[s.Start : s.Start+s.Length]
}

// Equal compares two spans by their (length, byte-content) in source,
// per the core's name-comparison rule: length first, then bytes.
func (s Span) Equal(other Span, source string) bool {
	if s.Length != other.Length {
		return false
	}
	return s.Text(source) == other.Text(source)
}
