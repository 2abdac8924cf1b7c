package object

import (
	"unicode/utf8"

	"github.com/go-elc/elc/internal/lisperr"
)

// Str is an immutable UTF-8 byte sequence (SPEC_FULL.md §3, §4.B).
// Grounded on original_source/src/data.rs's aref on Object::String, which
// indexes by *character*, not byte offset (spec testable property 9).
type Str struct {
	GcMark
	Value string
}

// NewStr boxes a fresh, unmarked Str.
func NewStr(s string) *Str { return &Str{Value: s} }

// StrObject wraps s as a tagged Object.
func StrObject(s *Str) Object { return boxed(KindString, s) }

// Aref returns the idx'th Unicode code point as an Int, walking by rune
// (not byte) index as required. Fails with *lisperr.OutOfBounds if idx is
// past the last rune.
func (s *Str) Aref(idx int) (Object, error) {
	if idx < 0 {
		return Object{}, &lisperr.OutOfBounds{Idx: idx, Len: utf8.RuneCountInString(s.Value)}
	}
	i := 0
	for _, r := range s.Value {
		if i == idx {
			return Int(int64(r)), nil
		}
		i++
	}
	return Object{}, &lisperr.OutOfBounds{Idx: idx, Len: i}
}

// Str has no outgoing references and therefore does not implement Tracer;
// it traces as a no-op by omission, per SPEC_FULL.md §4.D.
