package gc

import (
	"github.com/go-elc/elc/internal/object"
)

// Context is the mutable witness to a Block (SPEC_FULL.md §4.C):
// everything that allocates, mutates a heap cell, or wants a fresh-epoch
// bound handle presents a *Context. It satisfies object.Witness
// structurally, which is what lets internal/object's Bound/Deref logic
// exist without importing this package.
type Context struct {
	block *Block
	epoch uint64
	roots RootSet
}

// NewContext creates a Context over a fresh Block with the given
// collection threshold (bytes). A threshold of 0 uses DefaultThreshold.
func NewContext(threshold int64) *Context {
	return &Context{block: NewBlock(threshold)}
}

// Epoch returns the context's current allocation epoch. Satisfies
// object.Witness.
func (cx *Context) Epoch() uint64 { return cx.epoch }

// Var and SetVar are not implemented by Context; internal/env.Env
// satisfies object.Environment instead. Listed here only to document why
// Context itself is deliberately *not* an Environment: the witness that
// authorizes mutation and the place that owns variable bindings are
// different responsibilities in this design, mirroring how a *gc.Context
// and an *env.Env are always threaded as two separate parameters through
// internal/dispatch and prims.

// alloc is the shared tail of every exported AllocX helper: track the
// freshly boxed object in the block and hand back a Bound stamped with
// the context's current epoch. No allocation path starts a collection:
// collections run only when GarbageCollect is called.
func (cx *Context) alloc(v object.Object) (object.Bound, error) {
	if cx.block.closed {
		return object.Bound{}, ErrArenaClosed
	}
	cx.block.track(v)
	return object.NewBound(cx.epoch, v), nil
}

// AllocCons allocates a fresh cons cell.
func (cx *Context) AllocCons(car, cdr object.Object) (object.Bound, error) {
	return cx.alloc(object.ConsObject(object.NewCons(car, cdr)))
}

// AllocFloat allocates a fresh boxed float.
func (cx *Context) AllocFloat(f float64) (object.Bound, error) {
	return cx.alloc(object.FloatObject(object.NewFloat(f)))
}

// AllocStr allocates a fresh immutable string.
func (cx *Context) AllocStr(s string) (object.Bound, error) {
	return cx.alloc(object.StrObject(object.NewStr(s)))
}

// AllocVec allocates a fresh vector with the given initial contents.
func (cx *Context) AllocVec(initial []object.Object) (object.Bound, error) {
	return cx.alloc(object.VecObject(object.NewVec(initial)))
}

// AllocHashTable allocates a fresh, empty hash table.
func (cx *Context) AllocHashTable() (object.Bound, error) {
	return cx.alloc(object.HashTableObject(object.NewHashTable()))
}

// AllocByteCode allocates a fresh compiled code block.
func (cx *Context) AllocByteCode(opcodes object.CodeVec, constants []object.Object) (object.Bound, error) {
	return cx.alloc(object.ByteCodeObject(object.NewByteCodeBlock(opcodes, constants)))
}

// AllocLispFn allocates a fresh Lisp-implemented function wrapping an
// already-boxed code block.
func (cx *Context) AllocLispFn(body *object.ByteCodeBlock, args object.FnArgs) (object.Bound, error) {
	return cx.alloc(object.LispFnObject(object.NewLispFn(body, args)))
}

// AllocSubrFn allocates a fresh built-in subroutine descriptor. Unlike the
// other AllocX helpers this one is typically called once at process
// startup per primitive (see prims.Register), not per mutator step.
func (cx *Context) AllocSubrFn(name string, args object.FnArgs, impl object.BuiltinFn) (object.Bound, error) {
	return cx.alloc(object.SubrFnObject(object.NewSubrFn(name, args, impl)))
}

// ForEachLive calls fn once for every allocation currently tracked by
// cx's arena, in allocation order. Used by cmd/elc's objgraph command to
// walk the whole live set, not just what's reachable from the current
// root set (grounded on internal/gocore/object.go's ForEachObject, a
// linear walk over every allocation the process table knows about).
func (cx *Context) ForEachLive(fn func(object.Object)) {
	for _, e := range cx.block.entries {
		fn(e.obj)
	}
}

// Roots returns a snapshot of the currently-registered rooted objects,
// used by cmd/elc's objgraph command to seed the graph the same way
// collect's mark phase seeds the work stack.
func (cx *Context) Roots() []object.Object {
	var out []object.Object
	cx.roots.trace(func(o object.Object) { out = append(out, o) })
	return out
}

// Bind re-stamps a rooted handle's value with the context's current
// epoch. A no-op beyond that re-tagging: Rooted already survives
// collection by virtue of being walked from the root set.
func (cx *Context) Bind(r *Rooted) object.Bound {
	return object.NewBound(cx.epoch, r.Get())
}

// GarbageCollect runs a full mark-and-sweep pass against the current root
// set and bumps the epoch, invalidating every Bound minted before this
// call (checked in elcdebug builds via object.Bound.Deref).
func (cx *Context) GarbageCollect() Stats {
	stats := collect(cx)
	cx.epoch++
	return stats
}

// CloneIn deep-copies the object graph rooted at x into dst, re-interning
// any symbols encountered through intern (normally symtab.Intern) so the
// clone participates in the destination arena's symbol table rather than
// referencing the source table's pointers. Rejects cyclic cons structures
// with ErrCyclicClone (SPEC_FULL.md's resolution of the original spec's
// open question — see DESIGN.md) using a visited-by-pointer-identity map,
// the same shape as object.hasCycle but generalized to a DAG instead of a
// single linked list.
func (cx *Context) CloneIn(dst *Context, x object.Object, intern func(name string) *object.Symbol) (object.Object, error) {
	visited := map[any]object.Object{}
	return cloneObject(dst, x, intern, visited)
}

func cloneObject(dst *Context, x object.Object, intern func(string) *object.Symbol, visited map[any]object.Object) (object.Object, error) {
	switch x.Kind() {
	case object.KindInt:
		return x, nil
	case object.KindFloat:
		f, _ := object.As[*object.Float](x)
		b, err := dst.AllocFloat(f.Value)
		return derefOrZero(b, dst, err)
	case object.KindString:
		s, _ := object.As[*object.Str](x)
		b, err := dst.AllocStr(s.Value)
		return derefOrZero(b, dst, err)
	case object.KindSymbol:
		s, _ := object.As[*object.Symbol](x)
		if s == object.NilSymbol {
			return object.Nil(), nil
		}
		return object.SymbolObject(intern(s.Name)), nil
	case object.KindCons:
		c, _ := object.As[*object.Cons](x)
		if _, ok := visited[c]; ok {
			return object.Object{}, ErrCyclicClone
		}
		visited[c] = object.Object{}
		car, err := cloneObject(dst, c.Car(dst).Deref(dst), intern, visited)
		if err != nil {
			return object.Object{}, err
		}
		cdr, err := cloneObject(dst, c.Cdr(dst).Deref(dst), intern, visited)
		if err != nil {
			return object.Object{}, err
		}
		delete(visited, c)
		b, err := dst.AllocCons(car, cdr)
		return derefOrZero(b, dst, err)
	case object.KindVec:
		v, _ := object.As[*object.Vec](x)
		if _, ok := visited[v]; ok {
			return object.Object{}, ErrCyclicClone
		}
		visited[v] = object.Object{}
		cloned := make([]object.Object, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, _ := v.Aref(i)
			c, err := cloneObject(dst, elem, intern, visited)
			if err != nil {
				return object.Object{}, err
			}
			cloned[i] = c
		}
		delete(visited, v)
		b, err := dst.AllocVec(cloned)
		return derefOrZero(b, dst, err)
	default:
		// Functions, hash tables, and compiled code blocks are cloned by
		// reference: re-running a byte-code interpreter or rebuilding a
		// native function pointer across arenas is out of scope.
		return x, nil
	}
}

func derefOrZero(b object.Bound, w object.Witness, err error) (object.Object, error) {
	if err != nil {
		return object.Object{}, err
	}
	return b.Deref(w), nil
}
