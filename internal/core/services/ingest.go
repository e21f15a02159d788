package services

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/time/rate"

	"github.com/helix-labs/helix-hr/internal/chunker"
	"github.com/helix-labs/helix-hr/internal/core/domain"
	"github.com/helix-labs/helix-hr/internal/core/ports/driven"
	"github.com/helix-labs/helix-hr/internal/core/ports/driving"
	"github.com/helix-labs/helix-hr/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// embedBatchSize is the number of chunks sent per embedding request.
const embedBatchSize = 16

// defaultEmbedRate caps embedding requests per second during an index
// build, which keeps local and hosted embedding backends responsive.
const defaultEmbedRate = 5

// IndexService builds the policy index from a directory of documents:
// normalise, chunk, embed, persist. Builds are full rebuilds; the
// writer replaces any existing artifacts.
type IndexService struct {
	normalisers map[string]driven.Normaliser
	splitter    *chunker.Splitter
	embedder    driven.EmbeddingService
	writer      driven.IndexWriter
	limiter     *rate.Limiter
}

// NewIndexService creates an index service. Normalisers are selected
// by file extension; files with no matching normaliser are skipped.
func NewIndexService(
	normalisers []driven.Normaliser,
	splitter *chunker.Splitter,
	embedder driven.EmbeddingService,
	writer driven.IndexWriter,
) *IndexService {
	byExt := make(map[string]driven.Normaliser)
	for _, n := range normalisers {
		for _, ext := range n.Extensions() {
			byExt[ext] = n
		}
	}
	return &IndexService{
		normalisers: byExt,
		splitter:    splitter,
		embedder:    embedder,
		writer:      writer,
		limiter:     rate.NewLimiter(rate.Limit(defaultEmbedRate), 1),
	}
}

// BuildIndex walks docsDir, chunks every supported document, embeds the
// chunks and persists the index artifacts.
func (s *IndexService) BuildIndex(ctx context.Context, docsDir string) (*domain.IndexStats, error) {
	logger.Section("Index Build")

	info, err := os.Stat(docsDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("docs dir %s: %w", docsDir, domain.ErrSourceMissing)
	}

	chunks, docs, err := s.collectChunks(docsDir)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no indexable documents under %s: %w",
			docsDir, domain.ErrSourceMissing)
	}
	logger.Info("Collected %d chunks from %d documents", len(chunks), docs)

	embeddings, err := s.embedChunks(ctx, chunks)
	if err != nil {
		return nil, err
	}

	if err := s.writer.Write(ctx, chunks, embeddings); err != nil {
		return nil, fmt.Errorf("write index: %w", err)
	}

	logger.Info("Index built: %d documents, %d chunks", docs, len(chunks))
	return &domain.IndexStats{Documents: docs, Chunks: len(chunks)}, nil
}

// collectChunks walks the docs dir and normalises and chunks every
// supported file. Unsupported extensions are skipped silently.
func (s *IndexService) collectChunks(docsDir string) ([]domain.Chunk, int, error) {
	var chunks []domain.Chunk
	docs := 0

	err := filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		normaliser, ok := s.normalisers[strings.ToLower(filepath.Ext(path))]
		if !ok {
			logger.Debug("Skipping unsupported file: %s", path)
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		doc, err := normaliser.Normalise(path, content)
		if err != nil {
			return fmt.Errorf("normalise %s: %w", path, err)
		}

		split := s.splitter.Split(doc.Content, filepath.Base(path))
		logger.Debug("Document %s: %d chunks", doc.Title, len(split))
		if len(split) > 0 {
			docs++
			chunks = append(chunks, split...)
		}
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walk docs dir: %w", err)
	}
	return chunks, docs, nil
}

// embedChunks embeds all chunks in rate-limited batches and
// L2-normalises each vector so inner product equals cosine at query
// time.
func (s *IndexService) embedChunks(
	ctx context.Context, chunks []domain.Chunk,
) ([][]float32, error) {
	embeddings := make([][]float32, 0, len(chunks))

	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		texts := make([]string, 0, end-start)
		for _, c := range chunks[start:end] {
			texts = append(texts, c.Text)
		}

		batch, err := s.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("embed chunks %d-%d: %w", start, end-1, err)
		}
		if len(batch) != len(texts) {
			return nil, fmt.Errorf("embed chunks %d-%d: got %d embeddings for %d texts",
				start, end-1, len(batch), len(texts))
		}

		for _, emb := range batch {
			embeddings = append(embeddings, domain.NormalizeL2(emb))
		}
		logger.Debug("Embedded chunks %d-%d", start, end-1)
	}

	return embeddings, nil
}
