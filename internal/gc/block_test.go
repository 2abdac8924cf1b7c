package gc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-elc/elc/internal/object"
)

func TestNewBlockUsesDefaultThresholdWhenZero(t *testing.T) {
	b := NewBlock(0)
	defer b.Close()
	assert.Equal(t, int64(DefaultThreshold), b.threshold)
}

func TestBlockTrackAccumulatesLiveBytes(t *testing.T) {
	b := NewBlock(1000)
	defer b.Close()

	b.track(object.Int(1))
	assert.Equal(t, 1, b.Count())
	assert.Greater(t, b.Live(), int64(0))
}

func TestBlockShouldCollectCrossesThreshold(t *testing.T) {
	b := NewBlock(10)
	defer b.Close()
	assert.False(t, b.ShouldCollect())

	b.track(object.StrObject(object.NewStr("x")))
	assert.True(t, b.ShouldCollect(), "a single tracked allocation already exceeds a 10-byte budget")
}

func TestBlockCloseIsIdempotent(t *testing.T) {
	b := NewBlock(0)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
}
