package flat

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helix-labs/helix-hr/internal/core/domain"
)

// buildTestIndex writes a small index and reopens it.
func buildTestIndex(t *testing.T, chunks []domain.Chunk, embeddings [][]float32) *Index {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, NewWriter(dir).Write(context.Background(), chunks, embeddings))

	idx, err := Open(context.Background(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestOpenMissingArtifacts(t *testing.T) {
	_, err := Open(context.Background(), t.TempDir())
	require.ErrorIs(t, err, domain.ErrMissingIndex)
}

func TestOpenCorruptVectors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewWriter(dir).Write(context.Background(),
		[]domain.Chunk{{Text: "a", Source: "a.md"}},
		[][]float32{{1, 0}},
	))
	require.NoError(t, os.WriteFile(filepath.Join(dir, VectorsFile), []byte("bogus"), 0o600))

	_, err := Open(context.Background(), dir)
	require.ErrorIs(t, err, domain.ErrInvalidIndex)
}

func TestOpenCountMismatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewWriter(dir).Write(context.Background(),
		[]domain.Chunk{
			{Text: "a", Source: "a.md"},
			{Text: "b", Source: "b.md"},
		},
		[][]float32{{1, 0}, {0, 1}},
	))

	// Overwrite the vectors with a single row; the chunk store keeps two.
	require.NoError(t, os.WriteFile(filepath.Join(dir, VectorsFile),
		encodeVectors([][]float32{{1, 0}}, 2), 0o600))

	_, err := Open(context.Background(), dir)
	require.ErrorIs(t, err, domain.ErrInvalidIndex)
	assert.Contains(t, err.Error(), "1 vectors but 2 chunks")
}

func TestSearchOrdersByScore(t *testing.T) {
	idx := buildTestIndex(t,
		[]domain.Chunk{
			{Text: "leave policy", Source: "leave.md"},
			{Text: "remote policy", Source: "remote.md"},
			{Text: "dress code", Source: "dress.md"},
		},
		[][]float32{
			{1, 0},
			{0, 1},
			{0.7071, 0.7071},
		},
	)

	hits, err := idx.Search(context.Background(), []float32{1, 0}, 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)

	assert.Equal(t, "leave policy", hits[0].Text)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-5)
	assert.Equal(t, "dress code", hits[1].Text)
	assert.InDelta(t, 0.7071, hits[1].Score, 1e-3)
	assert.Equal(t, "remote policy", hits[2].Text)

	for i := 1; i < len(hits); i++ {
		assert.LessOrEqual(t, hits[i].Score, hits[i-1].Score)
	}
}

func TestSearchCapsAtK(t *testing.T) {
	idx := buildTestIndex(t,
		[]domain.Chunk{
			{Text: "a", Source: "a.md"},
			{Text: "b", Source: "b.md"},
			{Text: "c", Source: "c.md"},
		},
		[][]float32{{1, 0}, {0, 1}, {0.5, 0.5}},
	)

	hits, err := idx.Search(context.Background(), []float32{1, 0}, 2)
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	hits, err = idx.Search(context.Background(), []float32{1, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, hits, 3, "k beyond corpus size returns everything")
}

func TestSearchDimensionMismatch(t *testing.T) {
	idx := buildTestIndex(t,
		[]domain.Chunk{{Text: "a", Source: "a.md"}},
		[][]float32{{1, 0}},
	)

	_, err := idx.Search(context.Background(), []float32{1, 0, 0}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension")
}

func TestSize(t *testing.T) {
	idx := buildTestIndex(t,
		[]domain.Chunk{
			{Text: "a", Source: "a.md"},
			{Text: "b", Source: "b.md"},
		},
		[][]float32{{1, 0}, {0, 1}},
	)
	assert.Equal(t, 2, idx.Size())
}

func TestWriterValidation(t *testing.T) {
	w := NewWriter(t.TempDir())
	ctx := context.Background()

	t.Run("count mismatch", func(t *testing.T) {
		err := w.Write(ctx, []domain.Chunk{{Text: "a"}}, [][]float32{{1}, {2}})
		require.Error(t, err)
	})

	t.Run("empty index refused", func(t *testing.T) {
		err := w.Write(ctx, nil, nil)
		require.Error(t, err)
	})

	t.Run("ragged dimensions", func(t *testing.T) {
		err := w.Write(ctx,
			[]domain.Chunk{{Text: "a"}, {Text: "b"}},
			[][]float32{{1, 0}, {1}})
		require.Error(t, err)
	})
}

func TestWriterRebuildReplaces(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	require.NoError(t, NewWriter(dir).Write(ctx,
		[]domain.Chunk{
			{Text: "old a", Source: "a.md"},
			{Text: "old b", Source: "b.md"},
		},
		[][]float32{{1, 0}, {0, 1}},
	))
	require.NoError(t, NewWriter(dir).Write(ctx,
		[]domain.Chunk{{Text: "fresh", Source: "c.md"}},
		[][]float32{{0, 1}},
	))

	idx, err := Open(ctx, dir)
	require.NoError(t, err)
	defer idx.Close()

	assert.Equal(t, 1, idx.Size())
	hits, err := idx.Search(ctx, []float32{0, 1}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "fresh", hits[0].Text)
}
