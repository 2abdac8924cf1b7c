package object

import "github.com/go-elc/elc/internal/lisperr"

// Cons is a pair cell (car . cdr), the list spine element (SPEC_FULL.md
// §3, §4.B). Grounded on original_source's Object::Cons and on the
// teacher's plain-struct style for composite heap values
// (internal/gocore/type.go's Field/Type structs).
type Cons struct {
	GcMark
	car, cdr Object
}

// NewCons boxes a fresh, unmarked Cons. internal/gc is the only caller
// expected to invoke this directly (from Context.AllocCons); prims and dispatch
// go through the arena, not this constructor, to get a properly epoch
// -stamped Bound back.
func NewCons(car, cdr Object) *Cons {
	return &Cons{car: car, cdr: cdr}
}

// ConsObject wraps c as a tagged Object.
func ConsObject(c *Cons) Object { return boxed(KindCons, c) }

// Car returns a bound handle to the car under witness w.
func (c *Cons) Car(w Witness) Bound { return NewBound(w.Epoch(), c.car) }

// Cdr returns a bound handle to the cdr under witness w.
func (c *Cons) Cdr(w Witness) Bound { return NewBound(w.Epoch(), c.cdr) }

// Setcar mutates the car in place. Requires presenting a Witness (spec
// §4.E: "interior mutation through a rooted handle requires presenting
// the Context"), even though this implementation doesn't need the
// epoch value itself — the requirement is the discipline of passing one,
// which every mutation call site in this module honors uniformly.
func (c *Cons) Setcar(w Witness, v Object) {
	_ = w
	c.car = v
}

// Setcdr mutates the cdr in place.
func (c *Cons) Setcdr(w Witness, v Object) {
	_ = w
	c.cdr = v
}

// Trace enumerates car and cdr, satisfying Tracer.
func (c *Cons) Trace(push func(Object)) {
	push(c.car)
	push(c.cdr)
}

// Listp reports whether v is nil or a Cons — the spec's listp predicate,
// kept here (rather than in package prims) because both Equal and the
// cons-cycle-detecting walkers below need it internally.
func Listp(v Object) bool {
	return v.IsNil() || v.kind == KindCons
}

// hasCycle reports whether the cons spine starting at v loops back on
// itself, using Floyd's tortoise-and-hare so no visited-set allocation is
// needed.
func hasCycle(v Object) bool {
	slow, fast := v, v
	for {
		if fast.kind != KindCons {
			return false
		}
		fast = fast.ref.(*Cons).cdr
		if fast.kind != KindCons {
			return false
		}
		fast = fast.ref.(*Cons).cdr
		if slow.kind != KindCons {
			return false
		}
		slow = slow.ref.(*Cons).cdr
		if fast.kind == KindCons && slow.kind == KindCons && fast.ref == slow.ref {
			return true
		}
	}
}

// WalkList calls fn, in order, for each element of a proper or improper
// list starting at v, stopping (without error) at the first non-Cons cdr.
// It returns an *lisperr.ErrCircularList up front, before calling fn at
// all, if the spine loops back on itself — this is the primitive apply's
// "splice the trailing list argument" builds on. (IndirectFunction's alias
// walk uses Symbol.FollowIndirect, not this.)
func WalkList(v Object, fn func(elem Object) error) error {
	if hasCycle(v) {
		return &lisperr.ErrCircularList{Where: "cons list"}
	}
	cur := v
	for cur.kind == KindCons {
		c := cur.ref.(*Cons)
		if err := fn(c.car); err != nil {
			return err
		}
		cur = c.cdr
	}
	return nil
}
