package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/helix-labs/helix-hr/internal/core/domain"
	"github.com/helix-labs/helix-hr/internal/core/ports/driven"
	"github.com/helix-labs/helix-hr/internal/core/ports/driving"
	"github.com/helix-labs/helix-hr/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// systemPrompt is the never-invent-facts contract the model answers under.
const systemPrompt = `You are the Helix HR assistant.
RULES:
1) Answer ONLY using the provided CONTEXT.
2) If context is insufficient, reply starting with: ` + domain.InsufficientDataMarker + `.
3) Add citations like [source] for each key statement.
4) Do NOT invent numbers, employee facts, or policy rules.`

// AnswerService turns an assembled context into a grounded, cited answer
// via the configured LLM. It consumes the context pipeline's output and
// never reaches into the stores itself.
type AnswerService struct {
	contexts driving.ContextService
	llm      driven.LLMService
}

// NewAnswerService creates an answer service. The LLM is required;
// without one, use the context service directly.
func NewAnswerService(contexts driving.ContextService, llm driven.LLMService) *AnswerService {
	return &AnswerService{contexts: contexts, llm: llm}
}

// Answer assembles context for the query and prompts the LLM. An
// insufficient-data result from assembly is returned verbatim as the
// answer text; it is the contract's terminal signal, not an internal
// error. Responses that carry no citations are refused.
func (s *AnswerService) Answer(ctx context.Context, query, employeeID string) (string, error) {
	if s.llm == nil {
		return "", domain.ErrLLMUnavailable
	}

	result, err := s.contexts.Build(ctx, query, employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientData) {
			logger.Info("No context assembled: %v", err)
			return err.Error(), nil
		}
		return "", err
	}

	prompt := buildPrompt(query, result.Blocks)
	logger.Debug("Prompting %s with %d context blocks", s.llm.ModelName(), len(result.Blocks))

	text, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		SystemPrompt: systemPrompt,
		Temperature:  0,
		TopP:         0.1,
		MaxTokens:    512,
	})
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	text = strings.TrimSpace(text)

	// Guardrail: an answer without citations is not grounded.
	if !strings.Contains(text, domain.InsufficientDataMarker) &&
		(!strings.Contains(text, "[") || !strings.Contains(text, "]")) {
		logger.Warn("Model response missing citations, refusing")
		return domain.InsufficientDataMarker + ": model response missing citations", nil
	}

	return text, nil
}

// buildPrompt renders the context blocks and the question into the user
// prompt. Each block carries its source so the model can cite it.
func buildPrompt(query string, blocks []domain.ContextBlock) string {
	var b strings.Builder
	b.WriteString("CONTEXT:\n")
	for _, block := range blocks {
		fmt.Fprintf(&b, "\n---\nSOURCE: %s\nTITLE: %s\nTEXT:\n%s\n",
			block.Source, block.Title, block.Text)
	}
	fmt.Fprintf(&b, "\nQUESTION:\n%s\n\nAnswer with citations.", query)
	return b.String()
}
