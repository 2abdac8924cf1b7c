package gc

import "errors"

// ErrArenaClosed is returned by the Context.AllocX helpers after the owning Block has
// been closed (its slab released).
var ErrArenaClosed = errors.New("gc: allocation on closed arena")

// ErrCyclicClone is returned by Context.CloneIn when the source graph
// contains a cons cycle, resolving the spec's open question on CloneIn
// cycle semantics in favor of rejection over silent non-termination (see
// DESIGN.md).
var ErrCyclicClone = errors.New("gc: cannot clone a cyclic structure")
