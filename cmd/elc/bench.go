package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-elc/elc/internal/object"
	"github.com/go-elc/elc/internal/telemetry"
)

// newBenchCmd implements `elc bench alloc -n N`, the CLI-facing version of
// SPEC_FULL.md §8 end-to-end scenario 1: allocate N cons cells with no
// roots held, force a collection, and report freed/live counts.
func newBenchCmd() *cobra.Command {
	bench := &cobra.Command{
		Use:   "bench",
		Short: "allocation and collection benchmarks",
	}

	var n int
	alloc := &cobra.Command{
		Use:   "alloc",
		Short: "allocate N cons cells with no roots held, then force a collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWorld(thresholds)
			if err != nil {
				return err
			}
			start := time.Now()
			for i := 0; i < n; i++ {
				if _, err := w.cx.AllocCons(object.Int(int64(i)), object.Nil()); err != nil {
					return err
				}
			}
			allocElapsed := time.Since(start)

			gcStart := time.Now()
			stats := w.cx.GarbageCollect()
			gcElapsed := time.Since(gcStart)
			telemetry.RecordCollection(stats, gcElapsed)

			fmt.Printf("allocated=%d alloc_elapsed=%s marked=%d freed=%d reclaimed_bytes=%d gc_elapsed=%s\n",
				n, allocElapsed, stats.Marked, stats.Freed, stats.Reclaim, gcElapsed)
			return nil
		},
	}
	alloc.Flags().IntVarP(&n, "n", "n", 100_000, "number of cons cells to allocate")
	bench.AddCommand(alloc)
	return bench
}
