//go:build elcdebug

package gc

// Debug enables the collector's debug-only sanity assertions (root-order
// checking, pre-mark-phase "all unmarked" walk), mirroring
// internal/object's own elcdebug gate.
const Debug = true
