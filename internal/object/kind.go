// Package object implements the tagged-value heap representation described
// in SPEC_FULL.md components A and B: a pointer-sized-in-spirit Object that
// discriminates immediates from boxed references, and the boxed heap types
// themselves (Cons, Vec, Str, Symbol, LispFn, SubrFn, HashTable,
// ByteCodeBlock).
//
// The Kind enum and the switch-by-kind dispatch style below are grounded on
// golang.org/x/debug/internal/gocore's Kind (type.go) and its use in
// DynamicType to pick apart a tagged union without subclassing.
package object

// Kind discriminates the variant a tagged Object carries.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindSymbol
	KindString
	KindCons
	KindVec
	KindLispFn
	KindSubrFn
	KindHashTable
	KindByteCode
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindSymbol:
		return "Symbol"
	case KindString:
		return "String"
	case KindCons:
		return "Cons"
	case KindVec:
		return "Vec"
	case KindLispFn:
		return "LispFn"
	case KindSubrFn:
		return "SubrFn"
	case KindHashTable:
		return "HashTable"
	case KindByteCode:
		return "ByteCode"
	default:
		return "Kind(?)"
	}
}
