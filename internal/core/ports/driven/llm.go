package driven

import "context"

// GenerateOptions configures a single LLM completion.
type GenerateOptions struct {
	// SystemPrompt is the system instruction, empty for none.
	SystemPrompt string

	// Temperature controls sampling randomness. Answer generation uses 0
	// so the model sticks to the provided context.
	Temperature float64

	// TopP is the nucleus sampling parameter.
	TopP float64

	// MaxTokens caps the response length. Zero means provider default.
	MaxTokens int
}

// LLMService generates text from prompts. This is an optional service;
// when nil, answer generation is disabled and only context assembly is
// available.
type LLMService interface {
	// Generate produces a completion for the prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}
