// Package dispatch implements function invocation over internal/object's
// Function sum type: fill-argument orchestration, Call, Apply, and
// Funcall (SPEC_FULL.md §4.G). Grounded on
// original_source/src/core/object/func.rs's FnArgs::num_of_fill_args and
// SubrFn::call, and on original_source/src/eval.rs's apply/funcall.
package dispatch

import (
	"errors"

	"github.com/go-elc/elc/internal/env"
	"github.com/go-elc/elc/internal/gc"
	"github.com/go-elc/elc/internal/object"
)

// ErrNoInterpreter is returned by Call when asked to invoke a *object.LispFn:
// running byte-compiled Lisp requires a byte-code interpreter loop, which
// is an external collaborator out of this module's scope (SPEC_FULL.md
// §1's explicit boundary) — this package stops at "hand the arguments to
// the interpreter".
var ErrNoInterpreter = errors.New("dispatch: byte-code interpreter not available in this module")

// FillArgs computes how many trailing nils must be appended to satisfy
// fn's argument shape, a thin pass-through to object.FillArgs (which owns
// the FnArgs type, co-located with LispFn/SubrFn to avoid an
// object<->dispatch import cycle).
func FillArgs(fn object.Function, actual uint16, name string) (uint16, error) {
	switch f := fn.(type) {
	case *object.LispFn:
		return object.FillArgs(f.Args, actual, name)
	case *object.SubrFn:
		return object.FillArgs(f.Args, actual, name)
	default:
		return 0, errors.New("dispatch: not a callable function")
	}
}

// Call invokes fn with args (a rooted argument vector — args.Get() must
// be a KindVec Object), filling in trailing nils per FillArgs. For a
// *object.SubrFn it runs the native Go implementation directly; for a
// *object.LispFn it returns ErrNoInterpreter.
func Call(fn object.Function, args *gc.Rooted, e *env.Env, cx *gc.Context) (object.Object, error) {
	vec, err := object.As[*object.Vec](args.Get())
	if err != nil {
		return object.Object{}, err
	}

	var fa object.FnArgs
	switch fn.(type) {
	case *object.LispFn:
		fa = fn.(*object.LispFn).Args
	case *object.SubrFn:
		fa = fn.(*object.SubrFn).Args
	default:
		return object.Object{}, errors.New("dispatch: not a callable function")
	}

	name := fnName(fn)
	fillCount, err := object.FillArgs(fa, uint16(vec.Len()), name)
	if err != nil {
		return object.Object{}, err
	}
	actual := make([]object.Object, vec.Len())
	for i := 0; i < vec.Len(); i++ {
		actual[i], _ = vec.Aref(i)
	}
	for i := uint16(0); i < fillCount; i++ {
		actual = append(actual, object.Nil())
	}

	switch f := fn.(type) {
	case *object.SubrFn:
		return f.Impl(actual, env.Adapt(e), cx)
	case *object.LispFn:
		return object.Object{}, ErrNoInterpreter
	default:
		return object.Object{}, errors.New("dispatch: not a callable function")
	}
}

func fnName(fn object.Function) string {
	switch f := fn.(type) {
	case *object.SubrFn:
		return f.Name
	default:
		_ = f
		return ""
	}
}

// Apply calls fn with positional followed by the elements of last (which
// must be a proper list), matching original_source/src/eval.rs's apply:
// "the final argument may be a list whose elements are spliced onto the
// end of the argument list". The combined argument vector is rooted
// before Call is invoked.
func Apply(fn object.Function, positional []object.Object, last object.Object, e *env.Env, cx *gc.Context) (object.Object, error) {
	all := append([]object.Object(nil), positional...)
	if err := object.WalkList(last, func(elem object.Object) error {
		all = append(all, elem)
		return nil
	}); err != nil {
		return object.Object{}, err
	}
	return callWithSlice(fn, all, e, cx)
}

// Funcall calls fn directly with args, with no splicing, matching
// original_source/src/eval.rs's funcall.
func Funcall(fn object.Function, args []object.Object, e *env.Env, cx *gc.Context) (object.Object, error) {
	return callWithSlice(fn, args, e, cx)
}

func callWithSlice(fn object.Function, args []object.Object, e *env.Env, cx *gc.Context) (object.Object, error) {
	vec, err := cx.AllocVec(args)
	if err != nil {
		return object.Object{}, err
	}
	var result object.Object
	rerr := gc.WithRoot(cx, vec.Deref(cx), func(r *gc.Rooted) error {
		res, err := Call(fn, r, e, cx)
		result = res
		return err
	})
	if rerr != nil {
		return object.Object{}, rerr
	}
	return result, nil
}
