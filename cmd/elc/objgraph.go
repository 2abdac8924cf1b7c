package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-elc/elc/internal/gc"
	"github.com/go-elc/elc/internal/object"
)

// newObjgraphCmd implements `elc objgraph`: dump the graph of every live
// allocation plus every rooted object to Graphviz dot. Directly grounded on
// cmd/viewcore/objref.go's genUniqueRefTree/ObjNode node-graph
// construction (visited-set keyed by identity, recursive depth-first
// expansion), repurposed from "ELF core object graph" to "Lisp
// heap object graph": nodes are objects, edges are Trace's outgoing
// references, and there is no DWARF type name to print, so nodes are
// labeled by object.Kind plus a synthetic identity instead of a Go type
// name.
func newObjgraphCmd() *cobra.Command {
	var out string
	var seed int
	cmd := &cobra.Command{
		Use:   "objgraph",
		Short: "dump the graph of all live allocations and rooted objects to a Graphviz dot file",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWorld(thresholds)
			if err != nil {
				return err
			}
			// Seed the arena with a handful of rooted structures so the
			// graph has something in it when run standalone, matching
			// the bench command's synthetic allocation loop.
			for i := 0; i < seed; i++ {
				b, err := w.cx.AllocCons(object.Int(int64(i)), object.Nil())
				if err != nil {
					return err
				}
				// Left rooted for the life of the command: we want
				// these reachable when the graph is dumped below.
				gc.Root(w.cx, b.Deref(w.cx))
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			return writeObjgraph(f, w)
		},
	}
	cmd.Flags().StringVar(&out, "out", "tmp.dot", "output dot file path")
	cmd.Flags().IntVar(&seed, "seed", 0, "allocate N rooted cons cells before dumping, for a non-empty demo graph")
	return cmd
}

type objNode struct {
	id    int
	kind  object.Kind
	edges []*objNode
}

// writeObjgraph walks every live allocation's Trace edges (not just the
// reachable subset — matching the teacher's own ForEachObject-driven
// objref, which dumps the whole table) plus every currently-rooted
// object, assigning each distinct boxed pointer a stable node id the
// first time it's seen.
func writeObjgraph(f *os.File, w *world) error {
	ids := map[any]*objNode{}
	var order []*objNode
	nextID := 0

	nodeFor := func(o object.Object) *objNode {
		key := any(o.Ref())
		if key == nil {
			key = o // Int values are distinguished by their own value
		}
		if n, ok := ids[key]; ok {
			return n
		}
		n := &objNode{id: nextID, kind: o.Kind()}
		nextID++
		ids[key] = n
		order = append(order, n)
		return n
	}

	seen := map[any]bool{}
	var visit func(o object.Object, n *objNode)
	visit = func(o object.Object, n *objNode) {
		key := any(o.Ref())
		if key == nil || seen[key] {
			return
		}
		seen[key] = true
		object.Walk(o, func(child object.Object) {
			cn := nodeFor(child)
			n.edges = append(n.edges, cn)
			visit(child, cn)
		})
	}

	w.cx.ForEachLive(func(o object.Object) {
		visit(o, nodeFor(o))
	})
	for _, r := range w.cx.Roots() {
		visit(r, nodeFor(r))
	}

	fmt.Fprintln(f, "digraph heap {")
	for _, n := range order {
		fmt.Fprintf(f, "  n%d [label=%q];\n", n.id, n.kind.String())
		for _, e := range n.edges {
			fmt.Fprintf(f, "  n%d -> n%d;\n", n.id, e.id)
		}
	}
	fmt.Fprintln(f, "}")
	return nil
}
