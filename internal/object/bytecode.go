package object

// ByteCodeBlock is the compiled body of a Lisp function: an opcode stream
// plus its constants pool (SPEC_FULL.md §3 lists ByteCodeBlock as its own
// heap kind, distinct from LispFn, because the reader can construct one
// directly from the `#[...]` literal syntax before any LispFn wraps it).
// Grounded on original_source/src/core/object/func.rs's Expression, but
// split out as its own GcMark-bearing, independently sweepable object
// rather than an inline field of LispFn.
type ByteCodeBlock struct {
	GcMark
	OpCodes   CodeVec
	Constants []Object
}

// NewByteCodeBlock boxes a fresh, unmarked ByteCodeBlock.
func NewByteCodeBlock(opcodes CodeVec, constants []Object) *ByteCodeBlock {
	return &ByteCodeBlock{OpCodes: opcodes, Constants: constants}
}

// ByteCodeObject wraps b as a tagged Object.
func ByteCodeObject(b *ByteCodeBlock) Object { return boxed(KindByteCode, b) }

// Trace enumerates the constants pool; OpCodes is opaque raw bytes and
// carries no object references.
func (b *ByteCodeBlock) Trace(push func(Object)) {
	for _, c := range b.Constants {
		push(c)
	}
}
