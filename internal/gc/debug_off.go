//go:build !elcdebug

package gc

// Debug is off by default; the collector's sanity assertions are
// compiled out for speed, matching the teacher's "panics only describe
// programmer error, and are skippable in the fast path" posture.
const Debug = false
