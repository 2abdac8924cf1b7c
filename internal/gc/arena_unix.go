//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package gc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// slab is the arena's byte-budget reservoir: an anonymous, private mmap
// sized to the block's threshold, mapped by NewBlock and released by
// Block.Close. Block.ShouldCollect and the byte counts `elc gc --stats`
// prints come from Block.live's approximate per-kind sizes (approxSize),
// not from this mapping. Actual object.Object values are still
// ordinary Go heap allocations tracked by Block.entries (see DESIGN.md's
// "arena layers atop Go's own collector" decision); nothing is placed
// inside this slab.
//
// Build constraint reused verbatim from the teacher's
// internal/gocore/gocore_test.go, which mmaps a core file on exactly this
// platform set.
type slab struct {
	mem []byte
}

func newSlab(size int) (*slab, error) {
	if size <= 0 {
		size = DefaultThreshold
	}
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("gc: mmap arena reservoir: %w", err)
	}
	return &slab{mem: mem}, nil
}

func (s *slab) close() error {
	if s.mem == nil {
		return nil
	}
	err := unix.Munmap(s.mem)
	s.mem = nil
	return err
}

func (s *slab) size() int { return len(s.mem) }
