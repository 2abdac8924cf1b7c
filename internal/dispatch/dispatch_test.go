package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-elc/elc/internal/env"
	"github.com/go-elc/elc/internal/gc"
	"github.com/go-elc/elc/internal/object"
)

func addTwo(args []object.Object, e object.Environment, w object.Witness) (object.Object, error) {
	return object.Int(args[0].IntValue() + args[1].IntValue()), nil
}

func TestFuncallInvokesSubrFn(t *testing.T) {
	cx := gc.NewContext(0)
	e := env.New()
	fn := object.NewSubrFn("add-two", object.FnArgs{Required: 2}, addTwo)

	result, err := Funcall(fn, []object.Object{object.Int(2), object.Int(3)}, e, cx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.IntValue())
}

func TestFuncallFillsOptionalArgsWithNil(t *testing.T) {
	cx := gc.NewContext(0)
	e := env.New()
	var captured int
	countArgs := func(args []object.Object, e object.Environment, w object.Witness) (object.Object, error) {
		captured = len(args)
		return object.Nil(), nil
	}
	fn := object.NewSubrFn("count", object.FnArgs{Required: 1, Optional: 2}, countArgs)

	_, err := Funcall(fn, []object.Object{object.Int(1)}, e, cx)
	require.NoError(t, err)
	assert.Equal(t, 3, captured, "two optional slots must be nil-filled")
}

func TestCallOnLispFnReturnsErrNoInterpreter(t *testing.T) {
	cx := gc.NewContext(0)
	e := env.New()
	block := object.NewByteCodeBlock(object.CodeVec{0}, nil)
	fn := object.NewLispFn(block, object.FnArgs{})

	_, err := Funcall(fn, nil, e, cx)
	assert.ErrorIs(t, err, ErrNoInterpreter)
}

func TestApplySplicesTrailingList(t *testing.T) {
	cx := gc.NewContext(0)
	e := env.New()
	var captured []int64
	sumAll := func(args []object.Object, e object.Environment, w object.Witness) (object.Object, error) {
		for _, a := range args {
			captured = append(captured, a.IntValue())
		}
		return object.Nil(), nil
	}
	fn := object.NewSubrFn("sum-all", object.FnArgs{Rest: true}, sumAll)

	tail, err := cx.AllocCons(object.Int(2), object.Nil())
	require.NoError(t, err)
	list, err := cx.AllocCons(object.Int(1), tail.Deref(cx))
	require.NoError(t, err)

	_, err = Apply(fn, []object.Object{object.Int(0)}, list.Deref(cx), e, cx)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2}, captured)
}

func TestFillArgsRejectsNonFunction(t *testing.T) {
	_, err := FillArgs(nil, 0, "x")
	assert.Error(t, err)
}
