package gc

import "github.com/go-elc/elc/internal/object"

// ImplicitRoots lets a package outside internal/gc (chiefly internal/symtab,
// for the process-wide interned-symbol table) register itself as always
// reachable without internal/gc importing that package — the same
// closure-decoupling trick used for object.Tracer. Each registered
// function is called at the start of every mark phase and should push
// every object it considers a root via the given callback.
//
// internal/symtab appends to this slice from an init() function.
var ImplicitRoots []func(push func(object.Object))

// Stats summarizes one GarbageCollect pass, consumed by internal/telemetry
// and `elc gc --stats`.
type Stats struct {
	Marked  int
	Freed   int
	Reclaim int64
}

// assertAllUnmarked is the elcdebug-only sanity check described in
// SPEC_FULL.md §4.F step 1, mirroring the teacher's own unconditional
// sanity panics (internal/gocore/object.go's panic("object count wrong")).
// It walks the arena and panics if any entry is already marked, which
// would mean the previous sweep failed to clear invariant I3.
func assertAllUnmarked(cx *Context) {
	if !Debug {
		return
	}
	for _, e := range cx.block.entries {
		if m, ok := e.obj.Ref().(object.Marked); ok && m.IsMarked() {
			panic("gc: entry already marked at start of mark phase")
		}
	}
}

// collect runs one mark-and-sweep pass (SPEC_FULL.md §4.F): prepare, mark,
// sweep. Grounded on internal/gocore/object.go's markObjects (roots →
// work-stack drain → mark) generalized from a read-only
// heap-dump walk into a live collector that also frees.
func collect(cx *Context) Stats {
	assertAllUnmarked(cx)

	st := &State{}

	markIfUnmarked := func(o object.Object) {
		m, ok := o.Ref().(object.Marked)
		if !ok {
			// Immediates (Int) and non-arena values (Symbol) have nothing
			// to mark; Symbol is reached transitively from the implicit
			// symbol-table root and isn't swept by this arena anyway.
			return
		}
		if m.IsMarked() {
			return
		}
		m.Mark()
		object.Walk(o, st.Push)
	}

	cx.roots.trace(markIfUnmarked)
	for _, root := range ImplicitRoots {
		root(markIfUnmarked)
	}
	st.Drain(markIfUnmarked)

	marked := 0
	for _, e := range cx.block.entries {
		if m, ok := e.obj.Ref().(object.Marked); ok && m.IsMarked() {
			marked++
		}
	}

	kept := cx.block.entries[:0]
	freed := 0
	var reclaimed int64
	for _, e := range cx.block.entries {
		m, ok := e.obj.Ref().(object.Marked)
		if ok && m.IsMarked() {
			m.Unmark()
			kept = append(kept, e)
			continue
		}
		freed++
		reclaimed += int64(e.bytes)
	}
	cx.block.entries = kept
	cx.block.live -= reclaimed

	return Stats{Marked: marked, Freed: freed, Reclaim: reclaimed}
}
