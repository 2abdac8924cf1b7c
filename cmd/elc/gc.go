package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-elc/elc/internal/telemetry"
)

func newGCCmd() *cobra.Command {
	var stats bool
	cmd := &cobra.Command{
		Use:   "gc",
		Short: "force a collection against a fresh arena and report what happened",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWorld(thresholds)
			if err != nil {
				return err
			}
			start := time.Now()
			result := w.cx.GarbageCollect()
			telemetry.RecordCollection(result, time.Since(start))

			if stats {
				snap := telemetry.Global().Snapshot()
				fmt.Printf("marked=%d freed=%d reclaimed_bytes=%d elapsed=%s\n",
					result.Marked, result.Freed, result.Reclaim, time.Since(start))
				fmt.Printf("lifetime: collections=%d marked=%d freed=%d reclaimed_bytes=%d\n",
					snap.Collections, snap.Marked, snap.Freed, snap.Reclaimed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", true, "print collection counters")
	return cmd
}
