package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolFuncCellAndIndirection(t *testing.T) {
	impl := func(args []Object, e Environment, w Witness) (Object, error) { return Nil(), nil }
	f := NewSubrFn("f", FnArgs{}, impl)

	g := NewSymbol("g")
	h := NewSymbol("h")
	g.SetFunc(f)
	h.SetFunc(g) // h -> g -> f, an indirect alias chain (fset/defalias)

	assert.True(t, h.HasFunc())
	resolved, ok := h.FollowIndirect()
	require.True(t, ok)
	assert.Same(t, f, resolved)
}

func TestSymbolFollowIndirectDetectsCycle(t *testing.T) {
	a := NewSymbol("a")
	b := NewSymbol("b")
	a.SetFunc(b)
	b.SetFunc(a)

	_, ok := a.FollowIndirect()
	assert.False(t, ok, "an alias cycle must not loop forever")
}

func TestSymbolPlist(t *testing.T) {
	s := NewSymbol("s")
	prop := NewSymbol("color")

	_, ok := s.Get(prop)
	assert.False(t, ok)

	s.Put(prop, StrObject(NewStr("blue")))
	v, ok := s.Get(prop)
	require.True(t, ok)
	str, _ := As[*Str](v)
	assert.Equal(t, "blue", str.Value)

	s.Put(prop, StrObject(NewStr("red")))
	v, _ = s.Get(prop)
	str, _ = As[*Str](v)
	assert.Equal(t, "red", str.Value, "Put overwrites an existing entry for the same propname")
}

func TestNilSymbolIdentity(t *testing.T) {
	assert.True(t, Nil().IsNil())
	assert.False(t, SymbolObject(NewSymbol("nil")).IsNil(), "only the canonical NilSymbol instance counts, not any symbol spelled \"nil\"")
}
