//go:build elcdebug

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// staleWitness reports a different epoch than the Bound was stamped with.
type staleWitness struct{ epoch uint64 }

func (w staleWitness) Epoch() uint64 { return w.epoch }

func TestBoundDerefPanicsOnStaleEpoch(t *testing.T) {
	b := NewBound(1, Int(42))
	assert.Panics(t, func() {
		b.Deref(staleWitness{epoch: 2})
	})
}
