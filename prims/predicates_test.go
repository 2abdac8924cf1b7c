package prims

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-elc/elc/internal/object"
)

func TestEqVsEqlVsEqual(t *testing.T) {
	a := object.ConsObject(object.NewCons(object.Int(1), object.Nil()))
	b := object.ConsObject(object.NewCons(object.Int(1), object.Nil()))
	assert.False(t, Eq(a, b))
	assert.True(t, Equal(a, b))

	f1 := object.FloatObject(object.NewFloat(1.0))
	f2 := object.FloatObject(object.NewFloat(1.0))
	assert.False(t, Eq(f1, f2))
	assert.True(t, Eql(f1, f2))
}

func TestNullAndListp(t *testing.T) {
	assert.True(t, Null(object.Nil()))
	assert.False(t, Null(object.Int(0)))

	assert.True(t, Listp(object.Nil()))
	assert.True(t, Listp(object.ConsObject(object.NewCons(object.Int(1), object.Nil()))))
	assert.False(t, Listp(object.Int(1)))
	assert.True(t, Nlistp(object.Int(1)))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, Symbolp(object.SymbolObject(object.NewSymbol("x"))))
	assert.True(t, Stringp(object.StrObject(object.NewStr("s"))))
	assert.True(t, Numberp(object.Int(1)))
	assert.True(t, Numberp(object.FloatObject(object.NewFloat(1.0))))
	assert.True(t, Vectorp(object.VecObject(object.NewVec(nil))))
	assert.True(t, Consp(object.ConsObject(object.NewCons(object.Int(1), object.Nil()))))
	assert.True(t, Integerp(object.Int(1)))
	assert.False(t, Integerp(object.FloatObject(object.NewFloat(1.0))))
	assert.True(t, Hashtablep(object.HashTableObject(object.NewHashTable())))
	assert.False(t, ByteCodeFunctionP(object.ByteCodeObject(object.NewByteCodeBlock(nil, nil))), "byte-code-function-p is a reserved stub")
}

func TestKeywordp(t *testing.T) {
	assert.True(t, Keywordp(object.SymbolObject(object.NewSymbol(":foo"))))
	assert.False(t, Keywordp(object.SymbolObject(object.NewSymbol("foo"))))
	assert.False(t, Keywordp(object.Int(1)))
}

func TestAtomIsNegationOfConsp(t *testing.T) {
	assert.True(t, Atom(object.Int(1)))
	assert.False(t, Atom(object.ConsObject(object.NewCons(object.Int(1), object.Nil()))))
}

func TestMarkerpAndBufferpAlwaysFalse(t *testing.T) {
	assert.False(t, Markerp(object.Int(1)))
	assert.False(t, Bufferp(object.Int(1)))
}

func TestLogandSingleInputFoldsAgainstZero(t *testing.T) {
	// accum starts at 0, matching data.rs's fold(0, |accum, x| accum & x)
	// verbatim: any single input ANDs against 0 and yields 0.
	assert.Equal(t, int64(0), Logand([]int64{12}))
}

func TestLogandFoldsAcrossMultipleInts(t *testing.T) {
	assert.Equal(t, int64(0), Logand([]int64{0b1100, 0b1010}))
}

func TestLogandNoArgsReturnsZero(t *testing.T) {
	assert.Equal(t, int64(0), Logand(nil))
}

func TestFunctionpAndSubrp(t *testing.T) {
	impl := func(args []object.Object, e object.Environment, w object.Witness) (object.Object, error) {
		return object.Nil(), nil
	}
	fn := object.NewSubrFn("f", object.FnArgs{}, impl)
	obj := object.SubrFnObject(fn)
	assert.True(t, Functionp(obj))
	assert.True(t, Subrp(obj))
	assert.False(t, Functionp(object.Int(1)))
}
