package object

// Float is a boxed 64-bit IEEE-754 value (SPEC_FULL.md §3). It is boxed,
// not inlined into Object the way Int is, because eq/PtrEq must treat two
// separately-constructed floats as distinct (identity, not value) while
// eql specifically reaches past identity to compare bit patterns — see
// DESIGN.md for the full argument. Grounded on original_source's
// Object::Float as a boxed reference.
type Float struct {
	GcMark
	Value float64
}

// NewFloat boxes a fresh, unmarked Float.
func NewFloat(f float64) *Float { return &Float{Value: f} }

// FloatObject wraps f as a tagged Object.
func FloatObject(f *Float) Object { return boxed(KindFloat, f) }

// Float has no outgoing references; it traces as a no-op by omission.
