package mcp

import (
	"github.com/helix-labs/helix-hr/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Context assembles grounded HR context for queries.
	Context driving.ContextService

	// Search provides raw semantic search over the policy index.
	Search driving.SearchService

	// Answer generates cited answers. Optional; without an LLM the
	// ask tool is simply not registered.
	Answer driving.AnswerService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Context == nil {
		return ErrMissingContextService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
