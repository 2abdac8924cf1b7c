// Package gc implements the allocation arena, root set, and mark-sweep
// collector for the heap object types in internal/object (SPEC_FULL.md §3,
// §4.C–§4.F).
package gc

import "github.com/go-elc/elc/internal/object"

// entry is one allocation the arena is responsible for sweeping. Grounded
// on internal/gocore/object.go's heapInfo bookkeeping (one record per live
// object, reloaded and re-marked on every GC pass) but adapted from a
// side-table-per-page scheme to a flat slice, since this arena owns
// exactly the objects it allocated rather than reverse-engineering an
// external heap's object boundaries.
type entry struct {
	obj   object.Object
	bytes int
}

// approxSize estimates the byte cost an allocation charges against a
// Block's budget. It is deliberately coarse (SPEC_FULL.md's threshold
// policy only needs an approximate budget, not exact accounting) rather
// than using unsafe.Sizeof, which would not account for a Vec's or
// HashTable's backing slice growing after allocation.
func approxSize(k object.Kind) int {
	switch k {
	case object.KindCons:
		return 32
	case object.KindVec, object.KindHashTable:
		return 48
	case object.KindString:
		return 24
	case object.KindFloat:
		return 16
	case object.KindLispFn, object.KindSubrFn, object.KindByteCode:
		return 64
	default:
		return 16
	}
}

// Block is a single allocation arena: every live, arena-owned object plus
// a byte budget used to decide when a collection is due. Grounded on
// internal/gocore/object.go's per-process object table, scaled down to a
// single-owner, single-threaded arena (SPEC_FULL.md §5: "the mutator is
// single-threaded").
type Block struct {
	entries   []entry
	live      int64
	threshold int64
	reservoir *slab
	closed    bool
}

// NewBlock creates an empty Block whose first collection is due once
// threshold bytes of arena-owned allocation have accumulated. The
// reservoir mmap (or its portable fallback) is sized to the same
// threshold; NewBlock panics only if the platform refuses an allocation
// this small, which in practice means the process is already out of
// address space.
func NewBlock(threshold int64) *Block {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	s, err := newSlab(int(threshold))
	if err != nil {
		panic(err)
	}
	return &Block{threshold: threshold, reservoir: s}
}

// Close releases the arena's reservoir. Further Context.AllocX calls
// against this block fail with ErrArenaClosed.
func (b *Block) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	return b.reservoir.close()
}

// DefaultThreshold is the byte budget a freshly constructed Block starts
// with absent an explicit internal/config override.
const DefaultThreshold = 256 * 1024

// track registers obj as a live allocation owned by this block.
func (b *Block) track(obj object.Object) {
	b.entries = append(b.entries, entry{obj: obj, bytes: approxSize(obj.Kind())})
	b.live += int64(approxSize(obj.Kind()))
}

// ShouldCollect reports whether accumulated live bytes have crossed this
// block's threshold, the same "has it been long enough" signal
// SPEC_FULL.md §4.C asks the arena to expose.
func (b *Block) ShouldCollect() bool {
	return b.live >= b.threshold
}

// Live returns the arena's current notion of live byte count.
func (b *Block) Live() int64 { return b.live }

// Count returns the number of allocations currently tracked.
func (b *Block) Count() int { return len(b.entries) }
