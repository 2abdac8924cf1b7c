package prims

import (
	"github.com/go-elc/elc/internal/dispatch"
	"github.com/go-elc/elc/internal/env"
	"github.com/go-elc/elc/internal/gc"
	"github.com/go-elc/elc/internal/lisperr"
	"github.com/go-elc/elc/internal/object"
)

// Apply calls function with arguments, splicing the elements of the final
// argument (which must be a proper list) onto the end of the positional
// arguments (original_source/src/eval.rs's apply).
func Apply(function object.Object, arguments []object.Object, e *env.Env, cx *gc.Context) (object.Object, error) {
	fn, ok := function.Ref().(object.Function)
	if !ok {
		return object.Object{}, &lisperr.TypeError{Expected: object.KindSubrFn, Found: function.Kind()}
	}
	if len(arguments) == 0 {
		return dispatch.Apply(fn, nil, object.Nil(), e, cx)
	}
	last := arguments[len(arguments)-1]
	return dispatch.Apply(fn, arguments[:len(arguments)-1], last, e, cx)
}

// Funcall calls function with arguments directly, no splicing
// (original_source/src/eval.rs's funcall).
func Funcall(function object.Object, arguments []object.Object, e *env.Env, cx *gc.Context) (object.Object, error) {
	fn, ok := function.Ref().(object.Function)
	if !ok {
		return object.Object{}, &lisperr.TypeError{Expected: object.KindSubrFn, Found: function.Kind()}
	}
	return dispatch.Funcall(fn, arguments, e, cx)
}
