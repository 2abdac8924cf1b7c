package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-elc/elc/internal/lisperr"
)

func TestWalkListProper(t *testing.T) {
	c3 := ConsObject(NewCons(Int(3), Nil()))
	c2 := ConsObject(NewCons(Int(2), c3))
	c1 := ConsObject(NewCons(Int(1), c2))

	var got []int64
	err := WalkList(c1, func(elem Object) error {
		got = append(got, elem.IntValue())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, got)
}

func TestWalkListSelfReferentialCycle(t *testing.T) {
	// (setcdr x x): a single cons whose cdr points at itself.
	cell := NewCons(Int(1), Object{})
	x := ConsObject(cell)
	cell.Setcdr(fakeWitness{}, x)

	calls := 0
	err := WalkList(x, func(elem Object) error {
		calls++
		return nil
	})
	var circular *lisperr.ErrCircularList
	assert.ErrorAs(t, err, &circular)
	assert.Zero(t, calls, "fn must not be invoked once a cycle is detected")
}

func TestWalkListLongerCycle(t *testing.T) {
	a := NewCons(Int(1), Object{})
	b := NewCons(Int(2), Object{})
	c := NewCons(Int(3), Object{})
	a.cdr = ConsObject(b)
	b.cdr = ConsObject(c)
	c.cdr = ConsObject(a)

	err := WalkList(ConsObject(a), func(Object) error { return nil })
	var circular *lisperr.ErrCircularList
	assert.ErrorAs(t, err, &circular)
}

func TestListp(t *testing.T) {
	assert.True(t, Listp(Nil()))
	assert.True(t, Listp(ConsObject(NewCons(Int(1), Nil()))))
	assert.False(t, Listp(Int(5)))
}

type fakeWitness struct{}

func (fakeWitness) Epoch() uint64 { return 0 }
