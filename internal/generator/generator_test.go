package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickEmpty(t *testing.T) {
	_, err := NewSeeded(1).Pick(nil)
	require.ErrorIs(t, err, ErrNoWords)
}

func TestPickDeterministicWithSeed(t *testing.T) {
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	a, b := NewSeeded(42), NewSeeded(42)
	for i := 0; i < 20; i++ {
		wa, err := a.Pick(words)
		require.NoError(t, err)
		wb, err := b.Pick(words)
		require.NoError(t, err)
		assert.Equal(t, wa, wb)
		assert.Contains(t, words, wa)
	}
}

func TestLocalSource(t *testing.T) {
	src := NewLocalSource([]string{"only"}, NewSeeded(7))
	rec, err := src.FetchRandomWord(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "only", rec.Spelling)
	assert.Empty(t, rec.Definition)
	assert.Empty(t, rec.Pronunciation)
}

func TestLocalSourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLocalSource([]string{"word"}, nil).FetchRandomWord(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
