package gc

import "github.com/go-elc/elc/internal/object"

// State is the mark work-stack (SPEC_FULL.md §4.D), grounded on
// original_source/src/core/gc/trace.rs's GcState and on the `q []Object`
// work queue plus `add` push closure in internal/gocore/object.go's
// markObjects. Unlike the teacher, which marks on enqueue by consulting a
// side bitmap, this collector pushes unconditionally and marks when an
// object is visited (popped, or seen as a root), skipping objects that are
// already marked (object.Marked); that check is what terminates cycles —
// see collect.go.
type State struct {
	stack []object.Object
}

// Push adds o to the work stack. Exported so object.Walk (called from
// Drain) can use it directly as the push callback satisfying Tracer.
func (st *State) Push(o object.Object) {
	st.stack = append(st.stack, o)
}

// Pop removes and returns the most recently pushed object, or the zero
// value and false if the stack is empty.
func (st *State) Pop() (object.Object, bool) {
	if len(st.stack) == 0 {
		return object.Object{}, false
	}
	n := len(st.stack) - 1
	o := st.stack[n]
	st.stack = st.stack[:n]
	return o, true
}

// Drain pops every object off the stack, invoking visit on each, until
// empty. visit is expected to mark the object and then push its outgoing
// references (via object.Walk) back onto the stack if the object wasn't
// already marked — see collect.go's mark phase, which is the only caller.
func (st *State) Drain(visit func(object.Object)) {
	for {
		o, ok := st.Pop()
		if !ok {
			return
		}
		visit(o)
	}
}
