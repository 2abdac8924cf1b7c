package prims

import (
	"github.com/go-elc/elc/internal/env"
	"github.com/go-elc/elc/internal/gc"
	"github.com/go-elc/elc/internal/lisperr"
	"github.com/go-elc/elc/internal/object"
	"github.com/go-elc/elc/internal/symtab"
)

// Fset binds symbol's function cell to definition, or unbinds it if
// definition is nil (original_source's fset). definition must already be
// a Function (LispFn, SubrFn, or an indirecting Symbol) or nil.
func Fset(symbol *object.Symbol, definition object.Object) (*object.Symbol, error) {
	if definition.IsNil() {
		symbol.UnbindFunc()
		return symbol, nil
	}
	fn, ok := definition.Ref().(object.Function)
	if !ok {
		return nil, &lisperr.TypeError{Expected: object.KindLispFn, Found: definition.Kind()}
	}
	symbol.SetFunc(fn)
	return symbol, nil
}

// Defalias is fset plus an ignored docstring (original_source's defalias).
func Defalias(symbol *object.Symbol, definition object.Object, _docstring string) (*object.Symbol, error) {
	return Fset(symbol, definition)
}

// Set binds symbol's variable cell to newval in e, returning newval
// (original_source's set).
func Set(symbol *object.Symbol, newval object.Object, e *env.Env, cx *gc.Context) object.Object {
	return e.SetVar(cx, symbol, newval)
}

// Put sets symbol's propname property to value in e, returning value
// (original_source's put).
func Put(symbol, propname *object.Symbol, value object.Object, e *env.Env, cx *gc.Context) object.Object {
	return e.SetProp(cx, symbol, propname, value)
}

// Get returns symbol's propname property in e, or nil if absent
// (original_source's get).
func Get(symbol, propname *object.Symbol, e *env.Env) object.Object {
	v, ok := e.Prop(symbol, propname)
	if !ok {
		return object.Nil()
	}
	return v
}

// SymbolFunction returns symbol's function cell as an Object, or nil if
// unbound (original_source's symbol-function).
func SymbolFunction(symbol *object.Symbol) object.Object {
	switch f := symbol.Func().(type) {
	case *object.LispFn:
		return object.LispFnObject(f)
	case *object.SubrFn:
		return object.SubrFnObject(f)
	case *object.Symbol:
		return object.SymbolObject(f)
	default:
		return object.Nil()
	}
}

// SymbolValue returns symbol's current variable value in e, and whether
// it is bound (original_source's symbol-value).
func SymbolValue(symbol *object.Symbol, e *env.Env, cx *gc.Context) (object.Object, bool) {
	return e.Var(cx, symbol)
}

// SymbolName returns symbol's print name (original_source's symbol-name).
func SymbolName(symbol *object.Symbol) string { return symbol.Name }

// Fboundp reports whether symbol's function cell is bound
// (original_source's fboundp).
func Fboundp(symbol *object.Symbol) bool { return symbol.HasFunc() }

// Fmakunbound unbinds symbol's function cell, returning symbol
// (original_source's fmakunbound).
func Fmakunbound(symbol *object.Symbol) *object.Symbol {
	symbol.UnbindFunc()
	return symbol
}

// Boundp reports whether symbol has a variable binding in e
// (original_source's boundp / default-boundp, which this module treats
// identically since buffer-local bindings are out of scope).
func Boundp(symbol *object.Symbol, e *env.Env) bool { return e.Boundp(symbol) }

// DefaultBoundp is an alias for Boundp (original_source's
// default-boundp).
func DefaultBoundp(symbol *object.Symbol, e *env.Env) bool { return Boundp(symbol, e) }

// Makunbound removes symbol's variable binding in e, returning symbol
// (original_source's makunbound).
func Makunbound(symbol *object.Symbol, e *env.Env, cx *gc.Context) *object.Symbol {
	_ = cx
	e.Unbind(symbol)
	return symbol
}

// Defvar binds symbol to initvalue (or nil) in e unless already bound,
// ignoring the docstring (original_source's defvar).
func Defvar(symbol *object.Symbol, initvalue object.Object, _docstring string, e *env.Env, cx *gc.Context) object.Object {
	if v, ok := e.Var(cx, symbol); ok {
		return v
	}
	return Set(symbol, initvalue, e, cx)
}

// MakeVariableBufferLocal is a no-op passthrough: buffers are not
// modeled by this module (original_source's own "TODO: Implement" stub).
func MakeVariableBufferLocal(variable *object.Symbol) *object.Symbol { return variable }

// Aset stores newval at idx in array (a Vec), requiring a Context
// (original_source's aset).
func Aset(array object.Object, idx int, newval object.Object, cx *gc.Context) (object.Object, error) {
	vec, err := object.As[*object.Vec](array)
	if err != nil {
		return object.Object{}, err
	}
	return vec.Aset(cx, idx, newval)
}

// Aref indexes into a Vec by slot or a Str by rune (original_source's
// aref, which dispatches on the runtime type of array).
func Aref(array object.Object, idx int) (object.Object, error) {
	switch array.Kind() {
	case object.KindVec:
		vec, _ := object.As[*object.Vec](array)
		return vec.Aref(idx)
	case object.KindString:
		s, _ := object.As[*object.Str](array)
		return s.Aref(idx)
	default:
		return object.Object{}, &lisperr.TypeError{Expected: object.KindVec, Found: array.Kind()}
	}
}

// IndirectFunction follows a symbol's function-cell alias chain to a
// fixpoint, or returns obj unchanged if it isn't a symbol
// (original_source's indirect-function).
func IndirectFunction(obj object.Object) object.Object {
	if obj.Kind() != object.KindSymbol {
		return obj
	}
	s, _ := object.As[*object.Symbol](obj)
	fn, ok := s.FollowIndirect()
	if !ok {
		return object.Nil()
	}
	switch f := fn.(type) {
	case *object.LispFn:
		return object.LispFnObject(f)
	case *object.SubrFn:
		return object.SubrFnObject(f)
	default:
		return object.Nil()
	}
}

// Provide registers feature as provided in the process-wide feature
// registry, ignoring subfeatures (original_source's provide).
func Provide(feature *object.Symbol, _subfeatures object.Object) *object.Symbol {
	symtab.Provide(feature)
	return feature
}

// Featurep reports whether feature has been provided (exposed for
// completeness; original_source registers provide but this module also
// needs a reader-facing featurep to make Provide testable end to end).
func Featurep(feature *object.Symbol) bool { return symtab.Featurep(feature) }
