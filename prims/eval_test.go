package prims

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-elc/elc/internal/env"
	"github.com/go-elc/elc/internal/gc"
	"github.com/go-elc/elc/internal/lisperr"
	"github.com/go-elc/elc/internal/object"
)

func TestFuncallThroughPrimsWrapper(t *testing.T) {
	cx := gc.NewContext(0)
	e := env.New()
	impl := func(args []object.Object, en object.Environment, w object.Witness) (object.Object, error) {
		return object.Int(args[0].IntValue() * 2), nil
	}
	fn := object.NewSubrFn("double", object.FnArgs{Required: 1}, impl)

	result, err := Funcall(object.SubrFnObject(fn), []object.Object{object.Int(21)}, e, cx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.IntValue())
}

func TestApplyThroughPrimsWrapperSplicesLastArg(t *testing.T) {
	cx := gc.NewContext(0)
	e := env.New()
	var captured []int64
	impl := func(args []object.Object, en object.Environment, w object.Witness) (object.Object, error) {
		for _, a := range args {
			captured = append(captured, a.IntValue())
		}
		return object.Nil(), nil
	}
	fn := object.NewSubrFn("collect", object.FnArgs{Rest: true}, impl)

	tail, err := cx.AllocCons(object.Int(2), object.Nil())
	require.NoError(t, err)
	list, err := cx.AllocCons(object.Int(1), tail.Deref(cx))
	require.NoError(t, err)

	_, err = Apply(object.SubrFnObject(fn), []object.Object{object.Int(0), list.Deref(cx)}, e, cx)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2}, captured)
}

func TestFuncallRejectsNonFunction(t *testing.T) {
	cx := gc.NewContext(0)
	e := env.New()
	_, err := Funcall(object.Int(1), nil, e, cx)
	var typeErr *lisperr.TypeError
	assert.ErrorAs(t, err, &typeErr)
}
