package lisperr

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeKind string

func (f fakeKind) String() string { return string(f) }

func TestKindOf(t *testing.T) {
	err := &TypeError{Expected: fakeKind("Cons"), Found: fakeKind("Int")}
	assert.Equal(t, KindType, KindOf(err))
	assert.Equal(t, KindBounds, KindOf(&OutOfBounds{Idx: 3, Len: 2}))
	assert.Equal(t, Kind(""), KindOf(fmt.Errorf("not ours")))
}

func TestKindOfWrapped(t *testing.T) {
	base := &VoidFunction{Name: "frobnicate"}
	wrapped := errors.Wrap(base, "while calling funcall")
	assert.Equal(t, KindVoidFunc, KindOf(wrapped))
	assert.Contains(t, wrapped.Error(), "frobnicate")
}

func TestErrorStrings(t *testing.T) {
	assert.Equal(t, "foo is borrowed", (&ErrBorrowed{What: "foo"}).Error())
	assert.Equal(t, "x: wrong number of arguments: expected 2, got 3", (&ArgError{Expected: 2, Actual: 3, Name: "x"}).Error())
}
