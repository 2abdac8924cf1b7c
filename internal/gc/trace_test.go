package gc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-elc/elc/internal/object"
)

func TestStatePushPopIsLIFO(t *testing.T) {
	st := &State{}
	st.Push(object.Int(1))
	st.Push(object.Int(2))

	o, ok := st.Pop()
	assert.True(t, ok)
	assert.Equal(t, int64(2), o.IntValue())

	o, ok = st.Pop()
	assert.True(t, ok)
	assert.Equal(t, int64(1), o.IntValue())

	_, ok = st.Pop()
	assert.False(t, ok)
}

func TestStateDrainVisitsEveryPushedObject(t *testing.T) {
	st := &State{}
	st.Push(object.Int(1))
	st.Push(object.Int(2))
	st.Push(object.Int(3))

	var seen []int64
	st.Drain(func(o object.Object) { seen = append(seen, o.IntValue()) })
	assert.ElementsMatch(t, []int64{1, 2, 3}, seen)

	_, ok := st.Pop()
	assert.False(t, ok, "Drain must leave the stack empty")
}
