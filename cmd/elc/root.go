// Command elc is the development CLI for the heap/collector module: a
// REPL, forced-collection stats printer, an allocation benchmark, and an
// object-graph dumper. Grounded directly on cmd/viewcore/main.go's command
// dispatch, generalized into a full cobra.Command tree — the teacher's
// own use of cobra (cmd/viewcore/objref.go) is a single handler with no
// root command of its own, so this module completes the pattern cobra
// itself prescribes rather than the teacher's partial instance of it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-elc/elc/internal/config"
	"github.com/go-elc/elc/internal/telemetry"
)

var thresholds = config.DefaultThresholds()
var devLogging bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "elc",
		Short:         "exercise the elc heap/collector module from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := telemetry.NewLogger(devLogging)
			return err
		},
	}
	root.PersistentFlags().BoolVar(&devLogging, "dev-log", true, "use human-readable development logging instead of JSON")
	config.BindFlags(root.PersistentFlags(), &thresholds)

	root.AddCommand(newReplCmd())
	root.AddCommand(newGCCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newObjgraphCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
