package object

import "github.com/go-elc/elc/internal/lisperr"

// HashTable is a mutable, interior-mutable, bounds-checked associative
// array keyed by Eql identity (SPEC_FULL.md §3, §4.B). Grounded on
// original_source/src/data.rs's gethash/puthash/remhash over a
// RefCell<HashMap<GcObj, GcObj>>, translated into the same
// single-threaded reader-count guard used by Vec rather than a full
// RWMutex, since the mutator is single-threaded (§5) and the only
// invariant worth enforcing is "don't resize the map out from under an
// in-progress maphash".
//
// Keys are compared by Eql rather than Go's native map equality (which
// would use PtrEq semantics for any non-comparable boxed type and panic
// outright on slice-backed Vec keys), so entries live in a plain slice
// instead of a Go map.
type HashTable struct {
	GcMark
	entries []htEntry
	readers int
}

type htEntry struct {
	key   Object
	value Object
}

// NewHashTable boxes a fresh, empty, unmarked HashTable.
func NewHashTable() *HashTable { return &HashTable{} }

// HashTableObject wraps h as a tagged Object.
func HashTableObject(h *HashTable) Object { return boxed(KindHashTable, h) }

// Len returns the number of entries.
func (h *HashTable) Len() int { return len(h.entries) }

// Get returns the value stored under key (compared by Eql), and whether
// it was present.
func (h *HashTable) Get(key Object) (Object, bool) {
	for _, e := range h.entries {
		if Eql(e.key, key) {
			return e.value, true
		}
	}
	return Object{}, false
}

// Put stores value under key, overwriting any existing entry whose key is
// Eql to it. Fails with *lisperr.ErrBorrowed if a Maphash pass is
// currently in progress.
func (h *HashTable) Put(w Witness, key, value Object) (Object, error) {
	_ = w
	if h.readers > 0 {
		return Object{}, &lisperr.ErrBorrowed{What: "hash-table"}
	}
	for i := range h.entries {
		if Eql(h.entries[i].key, key) {
			h.entries[i].value = value
			return value, nil
		}
	}
	h.entries = append(h.entries, htEntry{key: key, value: value})
	return value, nil
}

// Remove deletes the entry whose key is Eql to key, reporting whether one
// was found. Fails with *lisperr.ErrBorrowed during an in-progress
// Maphash.
func (h *HashTable) Remove(w Witness, key Object) (bool, error) {
	_ = w
	if h.readers > 0 {
		return false, &lisperr.ErrBorrowed{What: "hash-table"}
	}
	for i := range h.entries {
		if Eql(h.entries[i].key, key) {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Maphash calls fn for every (key, value) pair in insertion order, guarded
// against concurrent mutation the same way Vec.Iterate is.
func (h *HashTable) Maphash(fn func(key, value Object) error) error {
	h.readers++
	defer func() { h.readers-- }()
	for _, e := range h.entries {
		if err := fn(e.key, e.value); err != nil {
			return err
		}
	}
	return nil
}

// Trace enumerates every key and value, satisfying Tracer.
func (h *HashTable) Trace(push func(Object)) {
	for _, e := range h.entries {
		push(e.key)
		push(e.value)
	}
}
