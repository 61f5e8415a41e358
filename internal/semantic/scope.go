package semantic

import "errors"

// ErrDuplicateSymbol is returned by Scope.Insert when a symbol with
// the given name already exists in that scope (not its ancestors).
var ErrDuplicateSymbol = errors.New("symbol already declared in this scope")

// Scope is a lexical region: an insertion-ordered symbol collection
// plus an optional parent link. The module (root) scope has Parent ==
// nil and Depth == 0; every child scope's Depth is parent.Depth+1.
//
// A Scope doubles as "the symbol table": the spec's SymbolTable is
// simply the root Scope, and every nested block/function scope is
// itself a Scope reachable from it via Parent.
type Scope struct {
	Parent *Scope
	Depth  int

	order   []*Symbol
	byName  map[string]*Symbol
}

// NewRootScope creates the module-level scope (Depth 0, no parent).
func NewRootScope() *Scope {
	return &Scope{byName: make(map[string]*Symbol)}
}

// Create opens a new child scope of parent.
func Create(parent *Scope) *Scope {
	depth := 0
	if parent != nil {
		depth = parent.Depth + 1
	}
	return &Scope{Parent: parent, Depth: depth, byName: make(map[string]*Symbol)}
}

// Insert adds sym to this scope. It fails with ErrDuplicateSymbol if
// a symbol with sym.Name already exists in this scope only —
// shadowing an outer scope's symbol of the same name is always
// permitted.
func (s *Scope) Insert(sym *Symbol) (*Symbol, error) {
	if _, exists := s.byName[sym.Name]; exists {
		return nil, ErrDuplicateSymbol
	}
	sym.ScopeDepth = s.Depth
	s.byName[sym.Name] = sym
	s.order = append(s.order, sym)
	return sym, nil
}

// LookupLocal searches this scope only.
func (s *Scope) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := s.byName[name]
	return sym, ok
}

// LookupChain searches this scope, then walks Parent until the root.
func (s *Scope) LookupChain(name string) (*Symbol, bool) {
	for scope := s; scope != nil; scope = scope.Parent {
		if sym, ok := scope.byName[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// IsDeclaredLocally reports whether name is bound in this scope only.
func (s *Scope) IsDeclaredLocally(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Free releases the symbols owned by this scope. It does not touch
// Parent: freeing a child scope never affects the symbols still live
// in an enclosing one.
func (s *Scope) Free() {
	s.order = nil
	s.byName = make(map[string]*Symbol)
}

// Flatten returns every symbol visible from this scope, innermost
// first, walking outward through Parent. Symbols shadowed by an inner
// scope's same-named symbol are omitted — a tooling-facing dump of
// what's actually resolvable, grounded on the teacher's AllSymbols()
// LSP accessor.
func (s *Scope) Flatten() []*Symbol {
	seen := make(map[string]bool)
	var out []*Symbol
	for scope := s; scope != nil; scope = scope.Parent {
		for _, sym := range scope.order {
			if seen[sym.Name] {
				continue
			}
			seen[sym.Name] = true
			out = append(out, sym)
		}
	}
	return out
}

// LocalSymbols returns this scope's own symbols in insertion order
// (no walk up Parent).
func (s *Scope) LocalSymbols() []*Symbol {
	return append([]*Symbol(nil), s.order...)
}
