package gc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-elc/elc/internal/object"
)

func TestAllocReturnsFreshBoundAtCurrentEpoch(t *testing.T) {
	cx := NewContext(0)
	b, err := cx.AllocCons(object.Int(1), object.Nil())
	require.NoError(t, err)
	assert.Equal(t, cx.Epoch(), b.Epoch())
	assert.Equal(t, 1, cx.block.Count())
}

func TestAllocOnClosedArenaFails(t *testing.T) {
	cx := NewContext(0)
	require.NoError(t, cx.block.Close())
	_, err := cx.AllocFloat(1.0)
	assert.ErrorIs(t, err, ErrArenaClosed)
}

func TestGarbageCollectReclaimsUnreachableCons(t *testing.T) {
	cx := NewContext(0)
	_, err := cx.AllocCons(object.Int(1), object.Nil())
	require.NoError(t, err)
	assert.Equal(t, 1, cx.block.Count())

	stats := cx.GarbageCollect()
	assert.Equal(t, 0, stats.Marked)
	assert.Equal(t, 1, stats.Freed)
	assert.Equal(t, 0, cx.block.Count(), "nothing rooted it, so it must be swept")
}

func TestGarbageCollectKeepsRootedGraph(t *testing.T) {
	cx := NewContext(0)
	tail, err := cx.AllocCons(object.Int(2), object.Nil())
	require.NoError(t, err)
	head, err := cx.AllocCons(object.Int(1), tail.Deref(cx))
	require.NoError(t, err)

	r, unroot := Root(cx, head.Deref(cx))
	defer unroot()

	stats := cx.GarbageCollect()
	assert.Equal(t, 2, stats.Marked)
	assert.Equal(t, 0, stats.Freed)
	assert.Equal(t, 2, cx.block.Count())
	assert.Equal(t, r.Get().Kind(), object.KindCons)
}

func TestGarbageCollectTerminatesOnCyclicCons(t *testing.T) {
	cx := NewContext(0)
	a, err := cx.AllocCons(object.Int(1), object.Nil())
	require.NoError(t, err)
	aObj := a.Deref(cx)
	ac, _ := object.As[*object.Cons](aObj)
	ac.Setcdr(cx, aObj) // a -> a, a self-cycle

	r, unroot := Root(cx, aObj)
	defer unroot()

	stats := cx.GarbageCollect()
	assert.Equal(t, 1, stats.Marked, "the mark phase must not loop forever on a cycle")
	assert.Equal(t, r.Get().Kind(), object.KindCons)
}

func TestGarbageCollectBumpsEpoch(t *testing.T) {
	cx := NewContext(0)
	before := cx.Epoch()
	cx.GarbageCollect()
	assert.Equal(t, before+1, cx.Epoch())
}

func TestCloneInRejectsCyclicStructure(t *testing.T) {
	src := NewContext(0)
	dst := NewContext(0)

	a, err := src.AllocCons(object.Int(1), object.Nil())
	require.NoError(t, err)
	aObj := a.Deref(src)
	ac, _ := object.As[*object.Cons](aObj)
	ac.Setcdr(src, aObj)

	intern := func(name string) *object.Symbol { return object.NewSymbol(name) }
	_, err = src.CloneIn(dst, aObj, intern)
	assert.ErrorIs(t, err, ErrCyclicClone)
}

func TestCloneInCopiesAcyclicList(t *testing.T) {
	src := NewContext(0)
	dst := NewContext(0)

	tail, _ := src.AllocCons(object.Int(2), object.Nil())
	head, _ := src.AllocCons(object.Int(1), tail.Deref(src))

	intern := func(name string) *object.Symbol { return object.NewSymbol(name) }
	cloned, err := src.CloneIn(dst, head.Deref(src), intern)
	require.NoError(t, err)

	assert.True(t, object.Equal(cloned, head.Deref(src)))
	clonedCons, _ := object.As[*object.Cons](cloned)
	origCons, _ := object.As[*object.Cons](head.Deref(src))
	assert.NotSame(t, clonedCons, origCons, "clone must allocate new cells, not alias the source")
}
