package gc

import (
	"fmt"
	"sync"

	"github.com/go-elc/elc/internal/object"
)

// Rooted is a mutator-owned slot holding a single object.Object that is
// guaranteed live across any intervening allocation/collection, for as
// long as it stays registered with a RootSet. Grounded on
// internal/gocore/root.go's Root (teacher) generalized from "one root per
// stack slot" to "one root per registered mutator slot", and on
// original_source/src/core/gc/trace.rs's root! macro.
//
// Every object.Object already carries its own boxed payload, so unlike
// the teacher's Root (which type-erases an arbitrary memory region behind
// unsafe.Pointer + a manually-written field walker) a Rooted needs no
// unsafe: rooting a Vec roots its whole element graph for free, because
// Vec already implements object.Tracer.
type Rooted struct {
	val object.Object
}

// Get returns the rooted value.
func (r *Rooted) Get() object.Object { return r.val }

// Set replaces the rooted value. Takes no Witness: a Rooted slot is not a
// heap cell, it's the mutator's own bookkeeping, so no epoch discipline
// applies to simply pointing it at something else.
func (r *Rooted) Set(v object.Object) { r.val = v }

// ErrRootOrder is raised (elcdebug builds only) when a root is
// deregistered out of LIFO order, violating the stacking discipline
// SPEC_FULL.md §4.E requires.
type ErrRootOrder struct {
	Expected, Got *Rooted
}

func (e *ErrRootOrder) Error() string {
	return fmt.Sprintf("gc: root popped out of order: expected %p, got %p", e.Expected, e.Got)
}

// RootSet is the process's (or test's) registry of currently-live rooted
// slots, walked at the start of every mark phase. Grounded on
// internal/gocore/root.go's per-process root table and
// original_source/src/core/gc/trace.rs's RootSet::default() push-on-enter/
// pop-on-exit test.
type RootSet struct {
	mu    sync.Mutex
	roots []*Rooted
}

// push registers r as the newest root.
func (rs *RootSet) push(r *Rooted) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.roots = append(rs.roots, r)
}

// pop deregisters r, asserting (in elcdebug builds) that it is the most
// recently pushed root still registered.
func (rs *RootSet) pop(r *Rooted) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	n := len(rs.roots)
	if n == 0 {
		return
	}
	last := rs.roots[n-1]
	if Debug && last != r {
		panic(&ErrRootOrder{Expected: last, Got: r})
	}
	rs.roots = rs.roots[:n-1]
}

// trace invokes fn for every currently-rooted Object, the first step of
// every mark phase.
func (rs *RootSet) trace(fn func(object.Object)) {
	rs.mu.Lock()
	snapshot := append([]*Rooted(nil), rs.roots...)
	rs.mu.Unlock()
	for _, r := range snapshot {
		fn(r.val)
	}
}

// Root registers initial under cx's root set and returns the rooted
// handle plus a deregistration closure the caller must call exactly once,
// on every exit path. Prefer WithRoot, which calls this for you and
// handles panics.
func Root(cx *Context, initial object.Object) (*Rooted, func()) {
	r := &Rooted{val: initial}
	cx.roots.push(r)
	return r, func() { cx.roots.pop(r) }
}

// WithRoot roots initial, invokes fn with the rooted handle, and
// guarantees deregistration on every exit path including a panic
// (recovered and re-raised after unrooting), matching SPEC_FULL.md §4.E's
// contract verbatim.
func WithRoot(cx *Context, initial object.Object, fn func(r *Rooted) error) (err error) {
	r, unroot := Root(cx, initial)
	defer func() {
		unroot()
		if p := recover(); p != nil {
			panic(p)
		}
	}()
	err = fn(r)
	return err
}
