package object

import "sync"

// PlistEntry is one (propname, value) pair in a symbol's property list
// (SPEC_FULL.md glossary: plist).
type PlistEntry struct {
	Name  *Symbol
	Value Object
}

// Symbol is an interned symbol: { name, func cell, plist } per SPEC_FULL.md
// §4.B. Unlike the other heap types it carries no GcMark: symbols are
// owned by the process-wide table in internal/symtab, not by any
// per-goroutine arena, and are never swept — the collector instead treats
// the whole table as an always-reachable implicit root (§4.F) and traces
// *through* each symbol to its function cell and plist.
//
// Func holds a Function, which per the DESIGN NOTES sum type
// ("LispFn | SubrFn | Symbol (indirect function cell)") may itself be
// another *Symbol — fset('g, 'f) really does store the symbol f in g's
// function cell, and FollowIndirect walks that chain to a fixpoint.
type Symbol struct {
	mu    sync.Mutex
	Name  string
	fn    Function
	plist []PlistEntry
}

// NilSymbol is the single canonical nil instance (SPEC_FULL.md §3: "nil is
// a distinguished interned symbol whose identity is the canonical
// false/empty-list value"). internal/symtab special-cases interning the
// name "nil" to return this exact pointer rather than allocating a new
// Symbol, so that object.Object.IsNil() — which must not import
// internal/symtab — can compare against it directly.
var NilSymbol = &Symbol{Name: "nil"}

// Nil returns the tagged nil Object.
func Nil() Object { return SymbolObject(NilSymbol) }

// NewSymbol constructs an unbound, property-less symbol. internal/symtab
// is the only package expected to call this outside of tests — everywhere
// else should go through symtab.Intern to preserve I5 (symbol uniqueness).
func NewSymbol(name string) *Symbol { return &Symbol{Name: name} }

// SymbolObject wraps s as a tagged Object.
func SymbolObject(s *Symbol) Object { return boxed(KindSymbol, s) }

// isFunction marks *Symbol as a Function variant (the indirect-alias
// case): fset may store a bare symbol in another symbol's function cell.
func (*Symbol) isFunction() {}

// HasFunc reports whether s's function cell is bound.
func (s *Symbol) HasFunc() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn != nil
}

// Func returns s's function cell, or nil if unbound.
func (s *Symbol) Func() Function {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn
}

// SetFunc stores def in s's function cell. Called by prims.Fset after it
// has already validated def is nil, a Function, or an indirecting Symbol.
func (s *Symbol) SetFunc(def Function) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = def
}

// UnbindFunc clears s's function cell.
func (s *Symbol) UnbindFunc() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = nil
}

// Get returns the value associated with propname in s's property list, and
// whether it was present.
func (s *Symbol) Get(propname *Symbol) (Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.plist {
		if e.Name == propname {
			return e.Value, true
		}
	}
	return Object{}, false
}

// Put sets propname to value in s's property list, overwriting any
// existing entry for that name.
func (s *Symbol) Put(propname *Symbol, value Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.plist {
		if s.plist[i].Name == propname {
			s.plist[i].Value = value
			return
		}
	}
	s.plist = append(s.plist, PlistEntry{Name: propname, Value: value})
}

// FollowIndirect walks symbol -> symbol aliases (as installed by
// fset/defalias) to a fixpoint, stopping at a non-symbol Function or at an
// unbound symbol. It returns (nil, false) if the chain is unbound, and
// guards against an alias cycle with a bounded visited set rather than
// looping forever.
func (s *Symbol) FollowIndirect() (Function, bool) {
	seen := map[*Symbol]bool{}
	cur := s
	for {
		if seen[cur] {
			return nil, false
		}
		seen[cur] = true
		fn := cur.Func()
		if fn == nil {
			return nil, false
		}
		if next, ok := fn.(*Symbol); ok {
			cur = next
			continue
		}
		return fn, true
	}
}

// Trace enumerates the function cell (if it boxes a *LispFn/*SubrFn/
// *Symbol — all heap references) and every plist value, satisfying
// Tracer. The plist *names* are themselves interned symbols reachable
// from the process-wide table (an implicit root in its own right), so
// they don't need tracing here to stay alive, but pushing them too is
// harmless and keeps this method a complete enumeration of outgoing
// pointers, matching the contract literally.
func (s *Symbol) Trace(push func(Object)) {
	s.mu.Lock()
	fn := s.fn
	plist := append([]PlistEntry(nil), s.plist...)
	s.mu.Unlock()

	switch f := fn.(type) {
	case *LispFn:
		push(boxed(KindLispFn, f))
	case *SubrFn:
		push(boxed(KindSubrFn, f))
	case *Symbol:
		push(boxed(KindSymbol, f))
	}
	for _, e := range plist {
		push(boxed(KindSymbol, e.Name))
		push(e.Value)
	}
}
