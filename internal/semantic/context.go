package semantic

import "github.com/emberlang/emberc/internal/diagnostics"

// Context is the state threaded through every check/typeOf call: the
// current and global scopes, the enclosing function (if any), the
// source buffer and file name for diagnostics, and the reporter that
// accumulates them.
type Context struct {
	Global          *Scope
	Current         *Scope
	CurrentFunction *Symbol

	Source   string
	File     string
	Reporter *diagnostics.Reporter
}

// push opens a child scope and makes it current, returning the
// previous current scope so the caller can restore it on the way out.
func (c *Context) push() *Scope {
	prev := c.Current
	c.Current = Create(c.Current)
	return prev
}

// pop frees the current scope and restores prev as current.
func (c *Context) pop(prev *Scope) {
	c.Current.Free()
	c.Current = prev
}
