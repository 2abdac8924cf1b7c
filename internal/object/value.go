package object

import "math"

// Object is the tagged value from SPEC_FULL.md component A. The original
// source packs a discriminant and a payload into one pointer-sized machine
// word (immediates inline, boxed values as a tagged pointer). Go's
// precise, typed collector has no equivalent of pointer tagging without
// unsafe tricks that would make every Object unsafe to hold across a Go
// GC, so Object is instead a small struct: kind tags the variant, i holds
// an inline Int payload, and ref holds the boxed payload for every other
// kind (including Float — see DESIGN.md on why Float is boxed, not
// inlined). This keeps the two properties §4.A actually requires: PtrEq is
// still raw identity/slot equality, and IsNil is still one comparison.
type Object struct {
	kind Kind
	i    int64
	ref  any
}

// Kind returns the variant discriminator of v. Constant-time, as required.
func (v Object) Kind() Kind { return v.kind }

// Int constructs an inline integer Object.
func Int(n int64) Object { return Object{kind: KindInt, i: n} }

// IntValue returns the payload of an Int Object. It does not check the
// kind: for any other kind it returns 0.
func (v Object) IntValue() int64 { return v.i }

// boxed constructs an Object wrapping a heap reference of the given kind.
// Every XObject wrapper (ConsObject, FloatObject, ...) funnels through this.
func boxed(kind Kind, ref any) Object { return Object{kind: kind, ref: ref} }

// Ref returns the boxed payload (nil for Int). Exported for internal/gc,
// which needs to reach the concrete *Cons/*Vec/... to register it in the
// arena's allocation table and to assert object.Marked/object.Tracer on
// it.
func (v Object) Ref() any { return v.ref }

// PtrEq is raw slot equality: same kind and, for boxed kinds, the same
// underlying pointer; for Int, the same embedded value. This is `eq`.
func PtrEq(a, b Object) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == KindInt {
		return a.i == b.i
	}
	return a.ref == b.ref
}

// Eql is eq, except that two Floats compare by bit pattern rather than by
// identity — the one place the spec asks eql to look past pointer
// equality.
func Eql(a, b Object) bool {
	if a.kind == KindFloat && b.kind == KindFloat {
		af, aok := a.ref.(*Float)
		bf, bok := b.ref.(*Float)
		if aok && bok {
			return math.Float64bits(af.Value) == math.Float64bits(bf.Value)
		}
	}
	return PtrEq(a, b)
}

// Equal is structural equality: recurse through cons and vectors, compare
// strings byte-wise, compare floats by bit pattern, otherwise fall back to
// PtrEq. Acyclic by contract (spec testable property 8 is only claimed
// over finite acyclic values); a cyclic structure will recurse until the
// caller's stack gives out, same as the original interpreter's equal.
func Equal(a, b Object) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return math.Float64bits(a.ref.(*Float).Value) == math.Float64bits(b.ref.(*Float).Value)
	case KindString:
		return a.ref.(*Str).Value == b.ref.(*Str).Value
	case KindCons:
		ac, bc := a.ref.(*Cons), b.ref.(*Cons)
		return Equal(ac.car, bc.car) && Equal(ac.cdr, bc.cdr)
	case KindVec:
		av, bv := a.ref.(*Vec), b.ref.(*Vec)
		if len(av.slots) != len(bv.slots) {
			return false
		}
		for i := range av.slots {
			if !Equal(av.slots[i], bv.slots[i]) {
				return false
			}
		}
		return true
	default:
		return PtrEq(a, b)
	}
}

// IsNil reports whether v is the canonical nil symbol. A single pointer
// comparison, as required.
func (v Object) IsNil() bool {
	return v.kind == KindSymbol && v.ref == any(NilSymbol)
}

// Witness stands in for "a live *gc.Context" (SPEC_FULL.md §3.1): every
// operation that mutates a heap object, or that reads a reference out of
// one and wants a fresh epoch stamped on it, must present one. Declaring
// it as a one-method interface here, rather than importing internal/gc's
// concrete Context type, is what keeps internal/object from cycling back
// on internal/gc; gc.Context satisfies this interface structurally.
type Witness interface {
	Epoch() uint64
}

// Bound is a bound handle (SPEC_FULL.md §3, §3.1): a reference tagged with
// the allocation epoch it was read out under. Debug builds
// (-tags elcdebug) reject a Bound read back under a different epoch in
// Deref; release builds skip the check.
type Bound struct {
	epoch uint64
	val   Object
}

// NewBound stamps v with the given epoch. Used by internal/gc, which owns
// the only source of truth for "the current epoch".
func NewBound(epoch uint64, v Object) Bound { return Bound{epoch: epoch, val: v} }

// Epoch returns the epoch this handle was stamped with.
func (b Bound) Epoch() uint64 { return b.epoch }

// Deref returns the underlying Object. In elcdebug builds it panics with
// ErrStaleEpoch if w's current epoch has moved on since b was stamped,
// i.e. a potentially-invalidating allocation happened in between (spec
// invariant I1).
func (b Bound) Deref(w Witness) Object {
	checkEpoch(b.epoch, w)
	return b.val
}
