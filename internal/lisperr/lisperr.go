// Package lisperr defines the structured error kinds raised by the object
// model and garbage collector. Every kind has a narrow set of payload fields
// rather than a free-form message, so a caller (the byte-code interpreter's
// condition-case analogue, or the elc CLI) can switch on Kind() without
// parsing text.
//
// This package is intentionally dependency-free: it must not import
// internal/object, because internal/object constructs these errors directly
// (Vec.Aset raises OutOfBounds and ErrBorrowed itself). Fields that would
// otherwise need an object.Kind or an *object.Symbol are typed fmt.Stringer
// or string instead, so the caller supplies an object.Kind (which already
// implements String()) without this package needing to know what it is.
package lisperr

import (
	"errors"
	"fmt"
)

// Kind names the error taxonomy from spec §7.
type Kind string

const (
	KindType       Kind = "type-error"
	KindArg        Kind = "arg-error"
	KindBounds     Kind = "out-of-bounds"
	KindVoidVar    Kind = "void-variable"
	KindVoidFunc   Kind = "void-function"
	KindBorrowed   Kind = "borrowed"
	KindCircular   Kind = "circular-list"
	KindMisc       Kind = "misc"
)

// TypeError reports that a value did not match the expected variant.
// Expected/Found are fmt.Stringer rather than a concrete enum type so that
// this package stays free of a dependency on internal/object; pass an
// object.Kind value directly, it already satisfies fmt.Stringer.
type TypeError struct {
	Expected fmt.Stringer
	Found    fmt.Stringer
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("wrong type: expected %s, found %s", e.Expected, e.Found)
}

func (e *TypeError) Kind() Kind { return KindType }

// ArgError reports a function called with the wrong number of arguments.
type ArgError struct {
	Expected uint16
	Actual   uint16
	Name     string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("%s: wrong number of arguments: expected %d, got %d", e.Name, e.Expected, e.Actual)
}

func (e *ArgError) Kind() Kind { return KindArg }

// OutOfBounds reports an array or string index past the end.
type OutOfBounds struct {
	Idx int
	Len int
}

func (e *OutOfBounds) Error() string {
	return fmt.Sprintf("index %d out of bounds, length %d", e.Idx, e.Len)
}

func (e *OutOfBounds) Kind() Kind { return KindBounds }

// VoidVariable reports a symbol with no value cell bound.
type VoidVariable struct {
	Name string
}

func (e *VoidVariable) Error() string { return fmt.Sprintf("symbol's value as variable is void: %s", e.Name) }

func (e *VoidVariable) Kind() Kind { return KindVoidVar }

// VoidFunction reports a symbol with no function cell bound.
type VoidFunction struct {
	Name string
}

func (e *VoidFunction) Error() string { return fmt.Sprintf("symbol's function definition is void: %s", e.Name) }

func (e *VoidFunction) Kind() Kind { return KindVoidFunc }

// ErrBorrowed reports an interior-mutability conflict: something is
// currently iterating a vector or hash-table that another call tried to
// mutate.
type ErrBorrowed struct {
	What string
}

func (e *ErrBorrowed) Error() string { return fmt.Sprintf("%s is borrowed", e.What) }

func (e *ErrBorrowed) Kind() Kind { return KindBorrowed }

// ErrCircularList reports a cons or property-list traversal that detected a
// cycle where the caller cannot tolerate one.
type ErrCircularList struct {
	Where string
}

func (e *ErrCircularList) Error() string { return fmt.Sprintf("circular list detected in %s", e.Where) }

func (e *ErrCircularList) Kind() Kind { return KindCircular }

// Misc is the catch-all for anything else originating from a built-in.
type Misc struct {
	Message string
}

func (e *Misc) Error() string { return e.Message }

func (e *Misc) Kind() Kind { return KindMisc }

// kinded is satisfied by every error type in this package.
type kinded interface {
	error
	Kind() Kind
}

var (
	_ kinded = (*TypeError)(nil)
	_ kinded = (*ArgError)(nil)
	_ kinded = (*OutOfBounds)(nil)
	_ kinded = (*VoidVariable)(nil)
	_ kinded = (*VoidFunction)(nil)
	_ kinded = (*ErrBorrowed)(nil)
	_ kinded = (*ErrCircularList)(nil)
	_ kinded = (*Misc)(nil)
)

// KindOf extracts the structured Kind from err, if err (or something it
// wraps, per errors.As) is one of this package's kinds. It returns "" if
// err is nil or not one of ours.
func KindOf(err error) Kind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ""
}
