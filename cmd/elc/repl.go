package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/go-elc/elc/internal/gc"
	"github.com/go-elc/elc/internal/object"
	"github.com/go-elc/elc/internal/symtab"
)

// newReplCmd implements `elc repl`: an interactive shell over a toy
// command language for manually exercising the arena during development
// (SPEC_FULL.md §4.K). Built on github.com/chzyer/readline, a dependency
// present in the teacher's go.mod but never exercised by any retrieved
// teacher source — wired here for its obvious purpose, line-edited
// interactive input.
func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "interactive shell for exercising the arena: (intern \"x\"), (gc), (roots), (alloc-cons 1 2)",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWorld(thresholds)
			if err != nil {
				return err
			}
			rl, err := readline.New("elc> ")
			if err != nil {
				return err
			}
			defer rl.Close()

			var roots []*gc.Rooted
			for {
				line, err := rl.Readline()
				if err == io.EOF || err == readline.ErrInterrupt {
					return nil
				}
				if err != nil {
					return err
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				out, err := evalReplLine(w, &roots, line)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
		},
	}
}

// evalReplLine interprets one toy-language line. This is intentionally
// not a real reader: it recognizes a fixed handful of forms by their
// leading token, enough to poke at allocation, rooting, and collection
// interactively without pulling the (out-of-scope) byte-code interpreter
// into this module.
func evalReplLine(w *world, roots *[]*gc.Rooted, line string) (string, error) {
	line = strings.TrimPrefix(line, "(")
	line = strings.TrimSuffix(line, ")")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	switch fields[0] {
	case "intern":
		if len(fields) < 2 {
			return "", fmt.Errorf("usage: (intern \"name\")")
		}
		name := strings.Trim(fields[1], `"`)
		sym := symtab.Intern(name)
		return fmt.Sprintf("%s (fbound=%v)", sym.Name, sym.HasFunc()), nil

	case "alloc-cons":
		if len(fields) < 3 {
			return "", fmt.Errorf("usage: (alloc-cons car cdr)")
		}
		car, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return "", err
		}
		cdr, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return "", err
		}
		bound, err := w.cx.AllocCons(object.Int(car), object.Int(cdr))
		if err != nil {
			return "", err
		}
		r, _ := gc.Root(w.cx, bound.Deref(w.cx))
		*roots = append(*roots, r)
		return fmt.Sprintf("rooted cons #%d", len(*roots)-1), nil

	case "roots":
		return fmt.Sprintf("%d rooted handle(s)", len(*roots)), nil

	case "gc":
		stats := w.cx.GarbageCollect()
		return fmt.Sprintf("marked=%d freed=%d reclaimed_bytes=%d", stats.Marked, stats.Freed, stats.Reclaim), nil

	default:
		return "", fmt.Errorf("unrecognized form: %s", fields[0])
	}
}
