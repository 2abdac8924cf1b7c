package object

import "github.com/go-elc/elc/internal/lisperr"

// Vec is a mutable, length-prefixed, interior-mutable, bounds-checked
// vector (SPEC_FULL.md §3, §4.B). Grounded on original_source/src/data.rs's
// aref/aset (the RefCell<Vec<GcObj>> borrow-checked array), translated
// from Rust's RefCell try_borrow_mut into a simple reader-count guard: the
// mutator is single-threaded (§5), so a full sync.RWMutex would be
// overkill, but the same "someone is reading, refuse to mutate" contract
// is worth keeping because a primitive iterating a vector (e.g. a future
// mapcar) must not have elements shift under it mid-iteration.
type Vec struct {
	GcMark
	slots    []Object
	readers  int
}

// NewVec boxes a fresh, unmarked Vec with the given initial contents. The
// slice is copied so the caller's backing array can't alias it.
func NewVec(initial []Object) *Vec {
	slots := make([]Object, len(initial))
	copy(slots, initial)
	return &Vec{slots: slots}
}

// VecObject wraps vec as a tagged Object.
func VecObject(vec *Vec) Object { return boxed(KindVec, vec) }

// Len returns the vector's length.
func (v *Vec) Len() int { return len(v.slots) }

// Aref returns the idx'th element, or *lisperr.OutOfBounds if idx is out
// of range.
func (v *Vec) Aref(idx int) (Object, error) {
	if idx < 0 || idx >= len(v.slots) {
		return Object{}, &lisperr.OutOfBounds{Idx: idx, Len: len(v.slots)}
	}
	return v.slots[idx], nil
}

// Aset stores newVal at idx, requiring a Witness (interior mutation
// discipline, SPEC_FULL.md §4.E) and failing with *lisperr.OutOfBounds or
// *lisperr.ErrBorrowed per spec §4.B.
func (v *Vec) Aset(w Witness, idx int, newVal Object) (Object, error) {
	_ = w
	if v.readers > 0 {
		return Object{}, &lisperr.ErrBorrowed{What: "vector"}
	}
	if idx < 0 || idx >= len(v.slots) {
		return Object{}, &lisperr.OutOfBounds{Idx: idx, Len: len(v.slots)}
	}
	v.slots[idx] = newVal
	return newVal, nil
}

// Iterate calls fn for every element in order, holding the borrow guard
// for the duration so a concurrent Aset fails with ErrBorrowed rather than
// racing the iteration.
func (v *Vec) Iterate(fn func(Object) error) error {
	v.readers++
	defer func() { v.readers-- }()
	for _, x := range v.slots {
		if err := fn(x); err != nil {
			return err
		}
	}
	return nil
}

// Trace enumerates every slot, satisfying Tracer.
func (v *Vec) Trace(push func(Object)) {
	for _, x := range v.slots {
		push(x)
	}
}
