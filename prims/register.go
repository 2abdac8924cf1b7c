package prims

import (
	"github.com/go-elc/elc/internal/env"
	"github.com/go-elc/elc/internal/gc"
	"github.com/go-elc/elc/internal/object"
	"github.com/go-elc/elc/internal/symtab"
)

// Register installs every primitive listed by registry into the symbol
// table's function cells, the Go analogue of original_source/src/data.rs
// and eval.rs's define_symbols!/defsubr! macros (which register a fixed
// list of #[defun]-tagged functions against their symbol names at program
// start). cx is used only to mint the SubrFn allocations; the resulting
// objects are not arena-swept (symbols and their function cells live for
// the process's lifetime, same as internal/symtab's own contents).
func Register(cx *gc.Context) error {
	for _, d := range registry() {
		bound, err := cx.AllocSubrFn(d.name, d.args, d.impl)
		if err != nil {
			return err
		}
		sym := symtab.Intern(d.name)
		fn, _ := object.As[*object.SubrFn](bound.Deref(cx))
		sym.SetFunc(fn)
	}
	return nil
}

type subrDef struct {
	name string
	args object.FnArgs
	impl object.BuiltinFn
}

// boolObj converts a Go bool to the Lisp convention: the symbol t for
// true, nil for false.
func boolObj(b bool) object.Object {
	if b {
		return object.SymbolObject(symtab.Intern("t"))
	}
	return object.Nil()
}

func asSymbol(v object.Object) *object.Symbol {
	s, _ := object.As[*object.Symbol](v)
	return s
}

func envOf(e object.Environment) *env.Env {
	if a, ok := e.(interface{ Unwrap() *env.Env }); ok {
		return a.Unwrap()
	}
	return nil
}

func cxOf(w object.Witness) *gc.Context {
	cx, _ := w.(*gc.Context)
	return cx
}

// registry lists every primitive exposed as a callable SubrFn — the
// predicates (arity 1, no environment needed), eq/equal/eql, the
// function-cell, aref/aset, provide and logand accessors from data.rs,
// and the two eval.rs entries, apply and funcall. The variable and
// property accessors (Set, SymbolValue, Boundp, DefaultBoundp,
// Makunbound, Defvar, Put, Get), Featurep and MakeVariableBufferLocal
// are plain Go functions only and are not registered. Arity-2/3 wrappers close over the
// corresponding exported Go function in this package so the two surfaces
// (direct Go call, and Lisp-visible SubrFn) stay in lockstep by
// construction.
func registry() []subrDef {
	req1 := object.FnArgs{Required: 1}
	req2 := object.FnArgs{Required: 2}

	predicate := func(name string, fn func(object.Object) bool) subrDef {
		return subrDef{name: name, args: req1, impl: func(args []object.Object, _ object.Environment, _ object.Witness) (object.Object, error) {
			return boolObj(fn(args[0])), nil
		}}
	}

	defs := []subrDef{
		predicate("null", Null),
		predicate("listp", Listp),
		predicate("nlistp", Nlistp),
		predicate("symbolp", Symbolp),
		predicate("functionp", Functionp),
		predicate("subrp", Subrp),
		predicate("stringp", Stringp),
		predicate("numberp", Numberp),
		predicate("markerp", Markerp),
		predicate("vectorp", Vectorp),
		predicate("hashtablep", Hashtablep),
		predicate("consp", Consp),
		predicate("keywordp", Keywordp),
		predicate("integerp", Integerp),
		predicate("atom", Atom),
		predicate("byte-code-function-p", ByteCodeFunctionP),
		predicate("bufferp", Bufferp),
		{
			name: "eq", args: req2,
			impl: func(args []object.Object, _ object.Environment, _ object.Witness) (object.Object, error) {
				return boolObj(Eq(args[0], args[1])), nil
			},
		},
		{
			name: "equal", args: req2,
			impl: func(args []object.Object, _ object.Environment, _ object.Witness) (object.Object, error) {
				return boolObj(Equal(args[0], args[1])), nil
			},
		},
		{
			name: "eql", args: req2,
			impl: func(args []object.Object, _ object.Environment, _ object.Witness) (object.Object, error) {
				return boolObj(Eql(args[0], args[1])), nil
			},
		},
		{
			name: "fboundp", args: req1,
			impl: func(args []object.Object, _ object.Environment, _ object.Witness) (object.Object, error) {
				return boolObj(Fboundp(asSymbol(args[0]))), nil
			},
		},
		{
			name: "fmakunbound", args: req1,
			impl: func(args []object.Object, _ object.Environment, _ object.Witness) (object.Object, error) {
				return object.SymbolObject(Fmakunbound(asSymbol(args[0]))), nil
			},
		},
		{
			name: "symbol-name", args: req1,
			impl: func(args []object.Object, _ object.Environment, cx object.Witness) (object.Object, error) {
				c := cxOf(cx)
				b, err := c.AllocStr(SymbolName(asSymbol(args[0])))
				if err != nil {
					return object.Object{}, err
				}
				return b.Deref(cx), nil
			},
		},
		{
			name: "symbol-function", args: req1,
			impl: func(args []object.Object, _ object.Environment, _ object.Witness) (object.Object, error) {
				return SymbolFunction(asSymbol(args[0])), nil
			},
		},
		{
			name: "indirect-function", args: req1,
			impl: func(args []object.Object, _ object.Environment, _ object.Witness) (object.Object, error) {
				return IndirectFunction(args[0]), nil
			},
		},
		{
			name: "fset", args: req2,
			impl: func(args []object.Object, _ object.Environment, _ object.Witness) (object.Object, error) {
				sym, err := Fset(asSymbol(args[0]), args[1])
				if err != nil {
					return object.Object{}, err
				}
				return object.SymbolObject(sym), nil
			},
		},
		{
			name: "defalias", args: object.FnArgs{Required: 2, Optional: 1},
			impl: func(args []object.Object, _ object.Environment, _ object.Witness) (object.Object, error) {
				doc := ""
				if len(args) > 2 && !args[2].IsNil() {
					s, _ := object.As[*object.Str](args[2])
					doc = s.Value
				}
				sym, err := Defalias(asSymbol(args[0]), args[1], doc)
				if err != nil {
					return object.Object{}, err
				}
				return object.SymbolObject(sym), nil
			},
		},
		{
			name: "provide", args: object.FnArgs{Required: 1, Optional: 1},
			impl: func(args []object.Object, _ object.Environment, _ object.Witness) (object.Object, error) {
				sub := object.Nil()
				if len(args) > 1 {
					sub = args[1]
				}
				return object.SymbolObject(Provide(asSymbol(args[0]), sub)), nil
			},
		},
		{
			name: "aref", args: req2,
			impl: func(args []object.Object, _ object.Environment, _ object.Witness) (object.Object, error) {
				return Aref(args[0], int(args[1].IntValue()))
			},
		},
		{
			name: "aset", args: object.FnArgs{Required: 3},
			impl: func(args []object.Object, _ object.Environment, cx object.Witness) (object.Object, error) {
				return Aset(args[0], int(args[1].IntValue()), args[2], cxOf(cx))
			},
		},
		{
			name: "logand", args: object.FnArgs{Rest: true},
			impl: func(args []object.Object, _ object.Environment, _ object.Witness) (object.Object, error) {
				ints := make([]int64, len(args))
				for i, a := range args {
					ints[i] = a.IntValue()
				}
				return object.Int(Logand(ints)), nil
			},
		},
		{
			name: "apply", args: object.FnArgs{Required: 1, Rest: true},
			impl: func(args []object.Object, e object.Environment, cx object.Witness) (object.Object, error) {
				return Apply(args[0], args[1:], envOf(e), cxOf(cx))
			},
		},
		{
			name: "funcall", args: object.FnArgs{Required: 1, Rest: true},
			impl: func(args []object.Object, e object.Environment, cx object.Witness) (object.Object, error) {
				return Funcall(args[0], args[1:], envOf(e), cxOf(cx))
			},
		},
	}
	return defs
}
