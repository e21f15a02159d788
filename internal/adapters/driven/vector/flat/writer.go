package flat

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/helix-labs/helix-hr/internal/adapters/driven/storage/sqlite"
	"github.com/helix-labs/helix-hr/internal/core/domain"
	"github.com/helix-labs/helix-hr/internal/core/ports/driven"
	"github.com/helix-labs/helix-hr/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.IndexWriter = (*Writer)(nil)

// Writer persists both index artifacts for an index build.
type Writer struct {
	dataDir string
}

// NewWriter creates a writer that stores artifacts under dataDir.
func NewWriter(dataDir string) *Writer {
	return &Writer{dataDir: dataDir}
}

// Write replaces the index artifacts with the given chunks and their
// embeddings. The vector file is written to a temp file and renamed so
// a crash mid-build never leaves a half-written artifact behind.
func (w *Writer) Write(ctx context.Context, chunks []domain.Chunk, embeddings [][]float32) error {
	if len(chunks) != len(embeddings) {
		return fmt.Errorf("%d chunks but %d embeddings", len(chunks), len(embeddings))
	}
	if len(chunks) == 0 {
		return fmt.Errorf("refusing to write an empty index")
	}

	dim := len(embeddings[0])
	for i, emb := range embeddings {
		if len(emb) != dim {
			return fmt.Errorf("embedding %d has dimension %d, expected %d", i, len(emb), dim)
		}
	}

	if err := os.MkdirAll(w.dataDir, 0700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	vectorsPath := filepath.Join(w.dataDir, VectorsFile)
	tmpPath := vectorsPath + ".tmp"
	if err := os.WriteFile(tmpPath, encodeVectors(embeddings, dim), 0600); err != nil {
		return fmt.Errorf("writing vectors: %w", err)
	}
	if err := os.Rename(tmpPath, vectorsPath); err != nil {
		return fmt.Errorf("replacing vectors: %w", err)
	}

	store, err := sqlite.NewChunkStore(filepath.Join(w.dataDir, ChunksFile))
	if err != nil {
		return fmt.Errorf("opening chunk store: %w", err)
	}
	defer store.Close()

	if err := store.Replace(ctx, chunks); err != nil {
		return fmt.Errorf("storing chunks: %w", err)
	}

	logger.Debug("Wrote %d vectors (dim %d) and chunks to %s", len(embeddings), dim, w.dataDir)
	return nil
}
