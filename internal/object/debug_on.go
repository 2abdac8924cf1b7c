//go:build elcdebug

package object

import "fmt"

// Debug reports whether this binary was built with -tags elcdebug. This
// package's epoch check is gated on it, and internal/gc gates its
// root-order assertion on the same tag through its own gc.Debug; both are
// expensive or programmer-error-only assertions,
// matching the teacher's own posture that these are sanity checks for
// development, not part of the normal error-return surface (see
// internal/gocore's unconditional-but-rare panics for the same idea
// applied without a build tag, which is affordable there because that
// code never runs in an allocation hot path).
const Debug = true

// ErrStaleEpoch is the panic value raised when a Bound is dereferenced
// under a Witness whose epoch has moved past the one it was stamped with.
type ErrStaleEpoch struct {
	StampedEpoch, CurrentEpoch uint64
}

func (e ErrStaleEpoch) String() string {
	return fmt.Sprintf("stale bound handle: stamped at epoch %d, now at %d", e.StampedEpoch, e.CurrentEpoch)
}

func checkEpoch(stamped uint64, w Witness) {
	if cur := w.Epoch(); cur != stamped {
		panic(ErrStaleEpoch{StampedEpoch: stamped, CurrentEpoch: cur})
	}
}
