package object

import (
	"reflect"

	"github.com/go-elc/elc/internal/lisperr"
)

// Function is the sum type LispFn | SubrFn | Symbol (indirect function
// cell), per the DESIGN NOTES of SPEC_FULL.md §9: "Object and Function are
// tagged unions, not inheritance hierarchies." Implemented as a marker
// interface rather than a closed Rust-style enum because Go has no sum
// types; the marker method keeps arbitrary types from satisfying it by
// accident.
type Function interface {
	isFunction()
}

// FnArgs records a function's argument shape (SPEC_FULL.md §4.G), grounded
// on original_source/src/core/object/func.rs's FnArgs. It is defined here,
// alongside LispFn/SubrFn, rather than in internal/dispatch, because the
// original source co-locates it with the function object types it
// describes; internal/dispatch's FillArgs (the "thin orchestration" layer
// — Call/Apply/Funcall) calls straight through to the FillArgs defined
// below.
type FnArgs struct {
	Required uint16
	Optional uint16
	Rest     bool
	Advice   bool
}

// FillArgs computes how many trailing nils must be appended to an
// argument list of length actual to satisfy fa, or fails with
// *lisperr.ArgError. Grounded verbatim on
// original_source/src/core/object/func.rs's num_of_fill_args.
func FillArgs(fa FnArgs, actual uint16, name string) (uint16, error) {
	if actual < fa.Required {
		return 0, &lisperr.ArgError{Expected: fa.Required, Actual: actual, Name: name}
	}
	total := fa.Required + fa.Optional
	if !fa.Rest && actual > total {
		return 0, &lisperr.ArgError{Expected: total, Actual: actual, Name: name}
	}
	if actual >= total {
		return 0, nil
	}
	return total - actual, nil
}

// CodeVec is opaque byte-compiled opcodes. It has no outgoing references
// and is never traced (the #[no_trace] field in
// original_source/src/core/object/func.rs's Expression).
type CodeVec []byte

// Expression is the non-heap-owned pairing of "opcodes plus constants".
// NewByteCodeBlock takes the same two parts as separate arguments; the
// block, not this struct, is what's GcMark'd and traced. Grounded on
// original_source/src/core/object/func.rs's Expression.
type Expression struct {
	OpCodes   CodeVec
	Constants []Object
}

// LispFn is a function implemented in Lisp and byte-compiled: a function
// shape (FnArgs) wrapping a separately heap-owned ByteCodeBlock. This
// module represents the shape but does not execute it (the byte-code
// interpreter loop is an external collaborator — SPEC_FULL.md §1).
type LispFn struct {
	GcMark
	Body *ByteCodeBlock
	Args FnArgs
}

// NewLispFn boxes a fresh, unmarked LispFn over an already-boxed code
// block.
func NewLispFn(body *ByteCodeBlock, args FnArgs) *LispFn {
	return &LispFn{Body: body, Args: args}
}

// LispFnObject wraps f as a tagged Object.
func LispFnObject(f *LispFn) Object { return boxed(KindLispFn, f) }

func (*LispFn) isFunction() {}

// Trace pushes the code block; the collector reaches its constants pool
// by tracing through that object in turn.
func (f *LispFn) Trace(push func(Object)) {
	if f.Body != nil {
		push(ByteCodeObject(f.Body))
	}
}

// BuiltinFn is a native Go implementation of a subroutine. Its signature
// is the Go analogue of original_source/src/core/object/func.rs's
// BuiltInFn (for<'ob> fn(&[Rt<GcObj<'static>>], &mut Root<Env>, &'ob mut
// Context) -> Result<GcObj<'ob>>): env and w are declared as the
// Environment/Witness interfaces from value.go rather than concrete
// internal/env.Env / internal/gc.Context types, so this package doesn't
// need to import either (which would cycle back).
type BuiltinFn func(args []Object, env Environment, w Witness) (Object, error)

// Environment abstracts "a place variables and properties live" (spec
// component I) far enough that object.BuiltinFn can reference it without
// internal/object importing internal/env.
type Environment interface {
	Var(w Witness, sym *Symbol) (Object, bool)
	SetVar(w Witness, sym *Symbol, v Object) Object
}

// SubrFn is a built-in subroutine descriptor (SPEC_FULL.md §3, §4.B).
// Equality compares the underlying function pointer, matching
// original_source's SubrFn::eq (which casts to *const BuiltInFn).
type SubrFn struct {
	GcMark
	Impl BuiltinFn
	Args FnArgs
	Name string
}

// NewSubrFn boxes a fresh, unmarked SubrFn.
func NewSubrFn(name string, args FnArgs, impl BuiltinFn) *SubrFn {
	return &SubrFn{Impl: impl, Args: args, Name: name}
}

// SubrFnObject wraps f as a tagged Object.
func SubrFnObject(f *SubrFn) Object { return boxed(KindSubrFn, f) }

func (*SubrFn) isFunction() {}

// Equal compares two SubrFns by the address of their native
// implementation, the idiomatic Go substitute for Rust's function-pointer
// cast comparison.
func (f *SubrFn) Equal(other *SubrFn) bool {
	return reflect.ValueOf(f.Impl).Pointer() == reflect.ValueOf(other.Impl).Pointer()
}

// SubrFn has no outgoing heap references of its own (Impl is a native Go
// closure, Name is a plain string) and so does not implement Tracer.

// Functionp reports whether v is a LispFn or SubrFn (not a bare indirect
// symbol — that's what distinguishes "is a function" from "resolves to a
// function through IndirectFunction").
func Functionp(v Object) bool {
	return v.kind == KindLispFn || v.kind == KindSubrFn
}
