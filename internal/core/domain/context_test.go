package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextOptionsNormalised(t *testing.T) {
	t.Run("zero value gets all defaults", func(t *testing.T) {
		got := ContextOptions{}.Normalised()

		assert.Equal(t, DefaultSearchK, got.SearchK)
		assert.Equal(t, DefaultTopExcerpts, got.TopExcerpts)
		require.NotNil(t, got.ScoreThreshold)
		assert.Equal(t, DefaultScoreThreshold, *got.ScoreThreshold)
	})

	t.Run("explicit zero threshold is honoured", func(t *testing.T) {
		got := ContextOptions{ScoreThreshold: Float64(0)}.Normalised()

		require.NotNil(t, got.ScoreThreshold)
		assert.Equal(t, 0.0, *got.ScoreThreshold)
	})

	t.Run("negative threshold is honoured", func(t *testing.T) {
		got := ContextOptions{ScoreThreshold: Float64(-0.5)}.Normalised()

		require.NotNil(t, got.ScoreThreshold)
		assert.Equal(t, -0.5, *got.ScoreThreshold)
	})

	t.Run("set values pass through", func(t *testing.T) {
		got := ContextOptions{
			SearchK:        12,
			ScoreThreshold: Float64(0.4),
			TopExcerpts:    5,
		}.Normalised()

		assert.Equal(t, 12, got.SearchK)
		assert.Equal(t, 0.4, *got.ScoreThreshold)
		assert.Equal(t, 5, got.TopExcerpts)
	})
}
