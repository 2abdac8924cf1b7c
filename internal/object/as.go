package object

import "github.com/go-elc/elc/internal/lisperr"

// refKind maps a boxed Go type to the Kind it is tagged with, so As can
// report a precise TypeError without a type switch at every call site.
func refKind(ref any) Kind {
	switch ref.(type) {
	case *Float:
		return KindFloat
	case *Symbol:
		return KindSymbol
	case *Str:
		return KindString
	case *Cons:
		return KindCons
	case *Vec:
		return KindVec
	case *LispFn:
		return KindLispFn
	case *SubrFn:
		return KindSubrFn
	case *HashTable:
		return KindHashTable
	case *ByteCodeBlock:
		return KindByteCode
	default:
		return KindInt
	}
}

// As unpacks v's boxed payload as T, or fails with a *lisperr.TypeError
// when v's tag disagrees. This is the Go generic stand-in for the
// original source's family of as_<variant> accessors (one per variant);
// Go generics let one function serve every boxed kind.
//
//	cons, err := object.As[*Cons](v)
func As[T any](v Object) (T, error) {
	if t, ok := v.ref.(T); ok {
		return t, nil
	}
	var zero T
	return zero, &lisperr.TypeError{Expected: kindOfType[T](), Found: v.kind}
}

// kindOfType reports the Kind a generic accessor for T is asking for, by
// probing a nil T against refKind. This only needs to handle the boxed
// pointer types declared in this package.
func kindOfType[T any]() Kind {
	var zero T
	return refKind(any(zero))
}
