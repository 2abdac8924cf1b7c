// Package config holds the small set of tunables internal/gc and cmd/elc
// share (SPEC_FULL.md §4.M): arena collection thresholds. Grounded on the
// teacher's gocore.Flags plain-option-struct style
// (cmd/viewcore/main.go's `var flags gocore.Flags`), generalized from
// stdlib flag to cobra/pflag persistent flags since this module adopts
// cobra for cmd/elc.
package config

import "github.com/spf13/pflag"

// Thresholds describes the arena's collection policy: high-water-mark by
// byte count, with a doubling schedule (Next/Reset) layered on top.
// cmd/elc passes only InitialBytes to gc.NewContext; internal/gc does not
// apply GrowthFactor, Next or Reset, and allocation does not start a
// collection by itself.
type Thresholds struct {
	InitialBytes int64
	GrowthFactor float64
}

// DefaultThresholds matches internal/gc.DefaultThreshold with a doubling
// schedule.
func DefaultThresholds() Thresholds {
	return Thresholds{InitialBytes: 256 * 1024, GrowthFactor: 2.0}
}

// Next returns the threshold that should apply after a collection that
// found the arena still over budget (the doubling half of the schedule);
// a collection that freed enough to drop well under budget should instead
// call Reset.
func (t Thresholds) Next() Thresholds {
	return Thresholds{InitialBytes: int64(float64(t.InitialBytes) * t.GrowthFactor), GrowthFactor: t.GrowthFactor}
}

// Reset returns the threshold schedule back to its initial byte budget,
// keeping the configured growth factor.
func (t Thresholds) Reset(initial int64) Thresholds {
	return Thresholds{InitialBytes: initial, GrowthFactor: t.GrowthFactor}
}

// BindFlags registers Thresholds as persistent flags on fs, consumed by
// cmd/elc's root command.
func BindFlags(fs *pflag.FlagSet, t *Thresholds) {
	fs.Int64Var(&t.InitialBytes, "gc-threshold-bytes", t.InitialBytes, "initial arena collection threshold, in bytes")
	fs.Float64Var(&t.GrowthFactor, "gc-growth-factor", t.GrowthFactor, "threshold growth factor used by Thresholds.Next (not applied by the arena)")
}
