//go:build elcdebug

package gc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-elc/elc/internal/object"
)

func TestUnrootOutOfOrderPanics(t *testing.T) {
	cx := NewContext(0)
	_, unroot1 := Root(cx, object.Int(1))
	_, unroot2 := Root(cx, object.Int(2))

	assert.Panics(t, func() {
		unroot1() // popping the outer root before the inner one violates LIFO
	})
	unroot2()
}
