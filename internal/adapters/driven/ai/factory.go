// Package ai builds the embedding and LLM adapters selected by
// configuration. Providers: ollama (local, default) and gemini (hosted,
// key required).
package ai

import (
	"context"
	"fmt"
	"time"

	geminiembed "github.com/helix-labs/helix-hr/internal/adapters/driven/embedding/gemini"
	ollamaembed "github.com/helix-labs/helix-hr/internal/adapters/driven/embedding/ollama"
	geminillm "github.com/helix-labs/helix-hr/internal/adapters/driven/llm/gemini"
	ollamallm "github.com/helix-labs/helix-hr/internal/adapters/driven/llm/ollama"
	"github.com/helix-labs/helix-hr/internal/core/domain"
	"github.com/helix-labs/helix-hr/internal/core/ports/driven"
)

// pingTimeout bounds the connectivity check.
const pingTimeout = 5 * time.Second

// Config keys the factory reads.
const (
	KeyEmbeddingProvider = "embedding.provider"
	KeyEmbeddingBaseURL  = "embedding.base_url"
	KeyEmbeddingModel    = "embedding.model"
	KeyLLMProvider       = "llm.provider"
	KeyLLMBaseURL        = "llm.base_url"
	KeyLLMModel          = "llm.model"
	KeyGeminiAPIKey      = "gemini.api_key"
)

// CreateEmbeddingService builds the configured embedding adapter. An
// unset provider defaults to ollama; the same provider and model must
// be used for index builds and queries.
func CreateEmbeddingService(ctx context.Context, cfg driven.ConfigStore) (driven.EmbeddingService, error) {
	provider := cfg.GetString(KeyEmbeddingProvider)
	switch provider {
	case "", "ollama":
		return ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL: cfg.GetString(KeyEmbeddingBaseURL),
			Model:   cfg.GetString(KeyEmbeddingModel),
		}), nil

	case "gemini":
		return geminiembed.NewEmbeddingService(ctx, geminiembed.Config{
			APIKey: cfg.GetString(KeyGeminiAPIKey),
			Model:  cfg.GetString(KeyEmbeddingModel),
		})

	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}

// CreateLLMService builds the configured LLM adapter. An unset provider
// means answer generation is disabled and returns nil without error.
func CreateLLMService(ctx context.Context, cfg driven.ConfigStore) (driven.LLMService, error) {
	provider := cfg.GetString(KeyLLMProvider)
	switch provider {
	case "", "none":
		return nil, nil

	case "ollama":
		return ollamallm.NewLLMService(ollamallm.Config{
			BaseURL: cfg.GetString(KeyLLMBaseURL),
			Model:   cfg.GetString(KeyLLMModel),
		}), nil

	case "gemini":
		return geminillm.NewLLMService(ctx, geminillm.Config{
			APIKey: cfg.GetString(KeyGeminiAPIKey),
			Model:  cfg.GetString(KeyLLMModel),
		})

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

// ValidateEmbedding builds the configured embedding adapter and pings
// it, so misconfiguration surfaces at configure time rather than on the
// first index build.
func ValidateEmbedding(ctx context.Context, cfg driven.ConfigStore) error {
	svc, err := CreateEmbeddingService(ctx, cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrEmbeddingUnavailable, err)
	}
	return nil
}
