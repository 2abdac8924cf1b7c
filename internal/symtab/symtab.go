// Package symtab is the process-wide interned symbol table and feature
// registry (SPEC_FULL.md §4.H), grounded on
// original_source/src/data.rs's lazy_static! FEATURES: Mutex<HashSet<Symbol>>
// and on internal/gocore/dwarf.go's mutex-guarded package-level caches
// (e.g. the typ/typByAddr maps built once and read repeatedly).
package symtab

import (
	"sync"

	"github.com/go-elc/elc/internal/gc"
	"github.com/go-elc/elc/internal/object"
)

var (
	mu      sync.Mutex
	symbols = map[string]*object.Symbol{"nil": object.NilSymbol}

	featMu   sync.Mutex
	features = map[*object.Symbol]bool{}
)

func init() {
	gc.ImplicitRoots = append(gc.ImplicitRoots, traceAll)
}

// Intern returns the unique *object.Symbol for name, allocating it on
// first use. Interning "nil" always returns object.NilSymbol, preserving
// the single canonical nil instance IsNil compares against.
func Intern(name string) *object.Symbol {
	mu.Lock()
	defer mu.Unlock()
	if s, ok := symbols[name]; ok {
		return s
	}
	s := object.NewSymbol(name)
	symbols[name] = s
	return s
}

// Lookup returns the already-interned symbol for name without allocating
// one, reporting whether it existed.
func Lookup(name string) (*object.Symbol, bool) {
	mu.Lock()
	defer mu.Unlock()
	s, ok := symbols[name]
	return s, ok
}

// Nil returns the tagged nil object, the same value object.Nil() returns;
// exposed here too since most callers reach the symbol table through this
// package rather than internal/object directly.
func Nil() object.Object { return object.Nil() }

// Provide registers feature as provided, the grounding for
// original_source/src/data.rs's provide defun.
func Provide(feature *object.Symbol) {
	featMu.Lock()
	defer featMu.Unlock()
	features[feature] = true
}

// Featurep reports whether feature has been provided.
func Featurep(feature *object.Symbol) bool {
	featMu.Lock()
	defer featMu.Unlock()
	return features[feature]
}

// traceAll is symtab's implicit-root contribution: every interned symbol
// is always reachable, and tracing through it in turn reaches its
// function cell and property list (object.Symbol.Trace).
func traceAll(push func(object.Object)) {
	mu.Lock()
	snapshot := make([]*object.Symbol, 0, len(symbols))
	for _, s := range symbols {
		snapshot = append(snapshot, s)
	}
	mu.Unlock()

	for _, s := range snapshot {
		obj := object.SymbolObject(s)
		push(obj)
		s.Trace(push)
	}
}
