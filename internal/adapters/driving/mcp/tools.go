package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/helix-labs/helix-hr/internal/core/domain"
)

// BuildContextInput is the input schema for the build_context tool.
type BuildContextInput struct {
	Query      string `json:"query" jsonschema:"the HR question to assemble context for"`
	EmployeeID string `json:"employee_id,omitempty" jsonschema:"employee identifier to ground the context on (e.g. EMP1001)"`
}

// BuildContextOutput is the output schema for the build_context tool.
type BuildContextOutput struct {
	QueryID   string                `json:"query_id"`
	Intent    string                `json:"intent"`
	Blocks    []domain.ContextBlock `json:"blocks"`
	Citations []domain.Citation     `json:"citations"`
}

// SearchPoliciesInput is the input schema for the search_policies tool.
type SearchPoliciesInput struct {
	Query string `json:"query" jsonschema:"the text to search the policy index for"`
	K     int    `json:"k,omitempty" jsonschema:"maximum number of hits to return (default from config)"`
}

// SearchPoliciesOutput is the output schema for the search_policies tool.
type SearchPoliciesOutput struct {
	Hits  []domain.SearchHit `json:"hits"`
	Count int                `json:"count"`
}

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Query      string `json:"query" jsonschema:"the HR question to answer"`
	EmployeeID string `json:"employee_id,omitempty" jsonschema:"employee identifier to ground the answer on"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer string `json:"answer"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "build_context",
		Description: "Assemble grounded, citable context for an HR question",
	}, s.handleBuildContext)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_policies",
		Description: "Semantic search over the indexed policy documents",
	}, s.handleSearchPolicies)

	if s.ports.Answer != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "ask",
			Description: "Answer an HR question with citations, grounded on assembled context",
		}, s.handleAsk)
	}
}

// handleBuildContext handles the build_context tool invocation. An
// insufficient-data failure surfaces as a tool error whose message
// starts with the INSUFFICIENT_DATA marker.
func (s *Server) handleBuildContext(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BuildContextInput,
) (*mcp.CallToolResult, BuildContextOutput, error) {
	result, err := s.ports.Context.Build(ctx, input.Query, input.EmployeeID)
	if err != nil {
		return nil, BuildContextOutput{}, err
	}

	return nil, BuildContextOutput{
		QueryID:   result.QueryID,
		Intent:    string(result.Intent),
		Blocks:    result.Blocks,
		Citations: result.Citations,
	}, nil
}

// handleSearchPolicies handles the search_policies tool invocation.
func (s *Server) handleSearchPolicies(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchPoliciesInput,
) (*mcp.CallToolResult, SearchPoliciesOutput, error) {
	hits, err := s.ports.Search.SearchPolicies(ctx, input.Query, input.K)
	if err != nil {
		return nil, SearchPoliciesOutput{}, err
	}

	return nil, SearchPoliciesOutput{Hits: hits, Count: len(hits)}, nil
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Answer.Answer(ctx, input.Query, input.EmployeeID)
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{Answer: answer}, nil
}
