// Package prims is the thin external wrapper layer over internal/object,
// internal/gc, internal/env, internal/symtab, and internal/dispatch
// (SPEC_FULL.md §4.J, §6) — NOT the core, as the distilled spec states.
// Each function here is a one-to-one translation of the corresponding
// original_source/src/data.rs or original_source/src/eval.rs function,
// generalized from Rust's #[defun]-registered signatures to plain
// exported Go functions with explicit *gc.Context/*env.Env parameters.
package prims

import (
	"strings"

	"github.com/go-elc/elc/internal/object"
)

// Eq reports pointer/slot identity (original_source's eq).
func Eq(a, b object.Object) bool { return object.PtrEq(a, b) }

// Equal reports structural equality (original_source's equal).
func Equal(a, b object.Object) bool { return object.Equal(a, b) }

// Eql reports identity equality, except floats compare by bit pattern
// (original_source's eql).
func Eql(a, b object.Object) bool { return object.Eql(a, b) }

// Null reports whether obj is nil (original_source's null).
func Null(obj object.Object) bool { return obj.IsNil() }

// Listp reports whether obj is nil or a cons (original_source's listp).
func Listp(obj object.Object) bool { return object.Listp(obj) }

// Nlistp is the negation of Listp (original_source's nlistp).
func Nlistp(obj object.Object) bool { return !Listp(obj) }

// Symbolp reports whether obj is a symbol (original_source's symbolp).
func Symbolp(obj object.Object) bool { return obj.Kind() == object.KindSymbol }

// Functionp reports whether obj is a LispFn or SubrFn, NOT a bare
// indirecting symbol (original_source's functionp).
func Functionp(obj object.Object) bool { return object.Functionp(obj) }

// Subrp reports whether obj is specifically a built-in subroutine
// (original_source's subrp).
func Subrp(obj object.Object) bool { return obj.Kind() == object.KindSubrFn }

// Stringp reports whether obj is a string (original_source's stringp).
func Stringp(obj object.Object) bool { return obj.Kind() == object.KindString }

// Numberp reports whether obj is an int or float (original_source's
// numberp).
func Numberp(obj object.Object) bool {
	return obj.Kind() == object.KindInt || obj.Kind() == object.KindFloat
}

// Markerp always reports false: markers are not modeled by this module,
// matching original_source's own "TODO: implement" stub.
func Markerp(object.Object) bool { return false }

// Hashtablep reports whether obj is a hash table. Supplements the
// distilled spec's predicate family for the boxed hash-table variant
// added alongside Vec and Str in §4.B.
func Hashtablep(obj object.Object) bool { return obj.Kind() == object.KindHashTable }

// Vectorp reports whether obj is a vector (original_source's vectorp).
func Vectorp(obj object.Object) bool { return obj.Kind() == object.KindVec }

// Consp reports whether obj is a cons cell (original_source's consp).
func Consp(obj object.Object) bool { return obj.Kind() == object.KindCons }

// Keywordp reports whether obj is a symbol whose name starts with ':'
// (original_source's keywordp).
func Keywordp(obj object.Object) bool {
	if obj.Kind() != object.KindSymbol {
		return false
	}
	s, err := object.As[*object.Symbol](obj)
	if err != nil {
		return false
	}
	return strings.HasPrefix(s.Name, ":")
}

// Integerp reports whether obj is an int (original_source's integerp).
func Integerp(obj object.Object) bool { return obj.Kind() == object.KindInt }

// Atom is the negation of Consp (original_source's atom).
func Atom(obj object.Object) bool { return !Consp(obj) }

// ByteCodeFunctionP always reports false: it is kept as a reserved stub,
// matching original_source's own stub, and does not inspect obj.
func ByteCodeFunctionP(object.Object) bool { return false }

// Bufferp always reports false: buffers are not modeled by this module,
// matching original_source's own "TODO: implement once buffers are
// added" stub.
func Bufferp(object.Object) bool { return false }

// Logand folds bitwise AND across ints (original_source's logand),
// starting from an accumulator of 0 exactly as data.rs's
// fold(0, |accum, x| accum & x) does — preserved as-is rather than
// "corrected" to the usual AND-fold identity of -1, per the decision to
// keep existing behavior until the semantics are clarified upstream.
func Logand(ints []int64) int64 {
	var accum int64 = 0
	for _, x := range ints {
		accum &= x
	}
	return accum
}
