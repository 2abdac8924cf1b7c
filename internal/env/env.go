// Package env holds per-run variable bindings and per-symbol property
// lists (SPEC_FULL.md §4.I). It has no direct teacher analogue beyond the
// general "mutate only under a witness" style internal/gc already
// establishes; its shape is grounded on
// original_source/src/core/env.rs/data.rs's env.vars/env.props/
// env.as_mut(cx).
package env

import (
	"sync"

	"github.com/go-elc/elc/internal/gc"
	"github.com/go-elc/elc/internal/object"
)

// Env is the dynamic variable/property environment a single run of the
// interpreter mutates. It is deliberately not arena-owned (variable
// bindings are process/session state, not GC'd heap data), but every
// mutating method still takes a *gc.Context, preserving the "present the
// witness to mutate" discipline uniformly across the codebase so that a
// future change making Env itself arena-owned would not change any
// call site.
type Env struct {
	mu    sync.Mutex
	vars  map[*object.Symbol]object.Object
	props map[*object.Symbol][]object.PlistEntry
}

// New constructs an empty environment.
func New() *Env {
	return &Env{
		vars:  map[*object.Symbol]object.Object{},
		props: map[*object.Symbol][]object.PlistEntry{},
	}
}

// SetVar binds sym to v, returning v (matching original_source's set,
// which returns the value it just stored).
func (e *Env) SetVar(cx *gc.Context, sym *object.Symbol, v object.Object) object.Object {
	_ = cx
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vars[sym] = v
	return v
}

// Var returns sym's current value and whether it is bound.
func (e *Env) Var(cx *gc.Context, sym *object.Symbol) (object.Object, bool) {
	_ = cx
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.vars[sym]
	return v, ok
}

// Unbind removes sym's variable binding (original_source's makunbound).
func (e *Env) Unbind(sym *object.Symbol) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.vars, sym)
}

// Boundp reports whether sym currently has a variable binding.
func (e *Env) Boundp(sym *object.Symbol) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.vars[sym]
	return ok
}

// SetProp sets propname to value on symbol's environment-scoped property
// list (original_source's put), overwriting any existing entry.
func (e *Env) SetProp(cx *gc.Context, symbol, propname *object.Symbol, value object.Object) object.Object {
	_ = cx
	e.mu.Lock()
	defer e.mu.Unlock()
	plist := e.props[symbol]
	for i := range plist {
		if plist[i].Name == propname {
			plist[i].Value = value
			return value
		}
	}
	e.props[symbol] = append(plist, object.PlistEntry{Name: propname, Value: value})
	return value
}

// Prop returns the value stored under propname on symbol's
// environment-scoped property list (original_source's get), and whether
// it was present.
func (e *Env) Prop(symbol, propname *object.Symbol) (object.Object, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, entry := range e.props[symbol] {
		if entry.Name == propname {
			return entry.Value, true
		}
	}
	return object.Object{}, false
}

// compile-time assertion that envAdapter (what Adapt wraps *Env in)
// satisfies object.Environment (the interface BuiltinFn is declared
// against), without internal/object needing to import this package.
var _ object.Environment = envAdapter{}

// envAdapter narrows *Env to the two methods object.Environment names,
// with the signature object.BuiltinFn actually requires (object.Witness,
// not *gc.Context) — *gc.Context satisfies object.Witness structurally,
// so Adapt just forwards.
type envAdapter struct{ e *Env }

// Adapt exposes e as an object.Environment for primitives invoked through
// object.BuiltinFn, which cannot reference *env.Env directly without
// internal/object importing internal/env.
func Adapt(e *Env) object.Environment { return envAdapter{e} }

func (a envAdapter) Var(w object.Witness, sym *object.Symbol) (object.Object, bool) {
	cx, _ := w.(*gc.Context)
	return a.e.Var(cx, sym)
}

func (a envAdapter) SetVar(w object.Witness, sym *object.Symbol, v object.Object) object.Object {
	cx, _ := w.(*gc.Context)
	return a.e.SetVar(cx, sym, v)
}

// Unwrap recovers the concrete *Env an envAdapter wraps, letting prims
// (which cannot type-assert into this package's unexported type) get back
// to a *env.Env for calls like dispatch.Apply/Funcall that take one
// directly rather than the narrower object.Environment interface.
func (a envAdapter) Unwrap() *Env { return a.e }
