// Package flat implements the policy index as a brute-force flat
// inner-product index. Vectors are L2-normalised at build time, so the
// inner product equals cosine similarity. At the corpus sizes an HR
// policy handbook reaches, a linear scan beats any approximate
// structure on both simplicity and recall.
package flat

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/helix-labs/helix-hr/internal/adapters/driven/storage/sqlite"
	"github.com/helix-labs/helix-hr/internal/core/domain"
	"github.com/helix-labs/helix-hr/internal/core/ports/driven"
	"github.com/helix-labs/helix-hr/internal/logger"
)

// Ensure Index implements the interface.
var _ driven.PolicyIndex = (*Index)(nil)

// Artifact names inside the data directory.
const (
	VectorsFile = "policy_vectors.bin"
	ChunksFile  = "policy_chunks.db"
)

// Index is the in-memory flat index: one vector per chunk, aligned by
// position with the chunk store rows.
type Index struct {
	vectors [][]float32
	chunks  []domain.Chunk
	dim     int
}

// Open loads both index artifacts from dataDir. A missing artifact is a
// missing index; an empty or inconsistent pair is a corrupt one. Both
// are fatal at startup.
func Open(ctx context.Context, dataDir string) (*Index, error) {
	vectorsPath := filepath.Join(dataDir, VectorsFile)
	chunksPath := filepath.Join(dataDir, ChunksFile)

	for _, path := range []string{vectorsPath, chunksPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrMissingIndex)
		}
	}

	vectors, dim, err := decodeVectors(vectorsPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", vectorsPath, err, domain.ErrInvalidIndex)
	}

	store, err := sqlite.NewChunkStore(chunksPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", chunksPath, err, domain.ErrInvalidIndex)
	}
	chunks, err := store.All(ctx)
	store.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", chunksPath, err, domain.ErrInvalidIndex)
	}

	if len(vectors) == 0 {
		return nil, fmt.Errorf("index is empty: %w", domain.ErrInvalidIndex)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("%d vectors but %d chunks: %w",
			len(vectors), len(chunks), domain.ErrInvalidIndex)
	}

	logger.Debug("Policy index loaded: %d vectors, dim %d", len(vectors), dim)
	return &Index{vectors: vectors, chunks: chunks, dim: dim}, nil
}

// Search scores every stored vector against the query embedding and
// returns up to k hits by non-increasing score.
func (idx *Index) Search(_ context.Context, embedding []float32, k int) ([]domain.SearchHit, error) {
	if len(embedding) != idx.dim {
		return nil, fmt.Errorf("query dimension %d does not match index dimension %d",
			len(embedding), idx.dim)
	}
	if k <= 0 {
		return nil, nil
	}

	scores := make([]float64, len(idx.vectors))
	order := make([]int, len(idx.vectors))
	for i, vec := range idx.vectors {
		scores[i] = innerProduct(vec, embedding)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}
	hits := make([]domain.SearchHit, 0, k)
	for _, i := range order[:k] {
		hits = append(hits, domain.SearchHit{
			Score:  scores[i],
			Text:   idx.chunks[i].Text,
			Source: idx.chunks[i].Source,
		})
	}
	return hits, nil
}

// Size returns the number of indexed chunks.
func (idx *Index) Size() int {
	return len(idx.vectors)
}

// Close releases the index. The flat index holds everything in memory,
// so there is nothing to release.
func (idx *Index) Close() error {
	return nil
}

func innerProduct(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
