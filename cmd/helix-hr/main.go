// Command helix-hr is the entry point for the HR context assistant.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/helix-labs/helix-hr/internal/adapters/driven/ai"
	"github.com/helix-labs/helix-hr/internal/adapters/driven/config/file"
	"github.com/helix-labs/helix-hr/internal/adapters/driven/storage/tabular"
	"github.com/helix-labs/helix-hr/internal/adapters/driven/vector/flat"
	"github.com/helix-labs/helix-hr/internal/adapters/driving/cli"
	"github.com/helix-labs/helix-hr/internal/chunker"
	"github.com/helix-labs/helix-hr/internal/core/domain"
	"github.com/helix-labs/helix-hr/internal/core/ports/driven"
	"github.com/helix-labs/helix-hr/internal/core/services"
	"github.com/helix-labs/helix-hr/internal/logger"
	"github.com/helix-labs/helix-hr/internal/normalisers/markdown"
	"github.com/helix-labs/helix-hr/internal/normalisers/plaintext"
)

// Build-time variables, set via ldflags.
var version = "dev"

// defaultDataDir is used when data.dir is not configured.
const defaultDataDir = "./data"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	dataDir := cfg.GetString("data.dir")
	if dataDir == "" {
		dataDir = defaultDataDir
	}

	embedder, err := ai.CreateEmbeddingService(ctx, cfg)
	if err != nil {
		logger.Warn("embeddings unavailable: %v", err)
	}
	llm, err := ai.CreateLLMService(ctx, cfg)
	if err != nil {
		logger.Warn("answer generation unavailable: %v", err)
	}

	wired := cli.Services{Config: cfg}

	// The index builder only needs the embedder and a writer, so
	// `helix-hr index` works before any query-side state exists.
	if embedder != nil {
		wired.Index = services.NewIndexService(
			[]driven.Normaliser{markdown.New(), plaintext.New()},
			chunker.New(),
			embedder,
			flat.NewWriter(dataDir),
		)
	}

	// The query pipeline needs the structured tables and the index.
	// Either missing leaves the query commands unwired; configure and
	// index still run so the user can bootstrap.
	store, storeErr := tabular.NewStore(dataDir)
	if storeErr != nil {
		logger.Debug("structured store unavailable: %v", storeErr)
	}
	index, indexErr := flat.Open(ctx, dataDir)
	if indexErr != nil {
		logger.Debug("policy index unavailable: %v", indexErr)
	}

	if store != nil && index != nil && embedder != nil {
		contexts := services.NewContextService(store, index, embedder, contextOptions(cfg))
		wired.Context = contexts
		wired.Search = contexts
		if llm != nil {
			wired.Answer = services.NewAnswerService(contexts, llm)
		}
	}

	cli.SetServices(wired)
	cli.SetVersion(version)
	return cli.Execute()
}

// contextOptions reads retrieval tuning from config; unset keys fall
// back to the service defaults.
func contextOptions(cfg driven.ConfigStore) domain.ContextOptions {
	opts := domain.ContextOptions{
		SearchK:     cfg.GetInt("search.k"),
		TopExcerpts: cfg.GetInt("search.top_excerpts"),
	}
	// A configured threshold of zero is a real value, not "unset".
	if _, ok := cfg.Get("search.score_threshold"); ok {
		opts.ScoreThreshold = domain.Float64(cfg.GetFloat("search.score_threshold"))
	}
	return opts
}

