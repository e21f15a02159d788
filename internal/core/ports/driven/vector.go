package driven

import (
	"context"

	"github.com/helix-labs/helix-hr/internal/core/domain"
)

// PolicyIndex provides semantic similarity search over the precomputed
// policy embedding index and its co-indexed chunk store. Implementations
// are loaded once at startup and read-only thereafter.
type PolicyIndex interface {
	// Search finds the k most similar chunks to the query embedding and
	// returns them ordered by non-increasing similarity, each hit carrying
	// the chunk text and source label resolved by position.
	Search(ctx context.Context, embedding []float32, k int) ([]domain.SearchHit, error)

	// Size returns the number of indexed chunks.
	Size() int

	// Close releases resources.
	Close() error
}

// IndexWriter persists the policy index artifacts produced by an index
// build: the embedding store and the positionally aligned chunk store.
type IndexWriter interface {
	// Write stores chunks and their embeddings. Both slices must be the
	// same length; position i of one corresponds to position i of the other.
	Write(ctx context.Context, chunks []domain.Chunk, embeddings [][]float32) error
}
