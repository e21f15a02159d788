package mcp

import (
	"context"

	"github.com/helix-labs/helix-hr/internal/core/domain"
)

// mockContextService is a mock implementation of driving.ContextService.
type mockContextService struct {
	result *domain.ContextResult
	err    error
}

func (m *mockContextService) Build(_ context.Context, _, _ string) (*domain.ContextResult, error) {
	return m.result, m.err
}

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	hits []domain.SearchHit
	err  error
	gotK int
}

func (m *mockSearchService) SearchPolicies(_ context.Context, _ string, k int) ([]domain.SearchHit, error) {
	m.gotK = k
	return m.hits, m.err
}

// mockAnswerService is a mock implementation of driving.AnswerService.
type mockAnswerService struct {
	answer string
	err    error
}

func (m *mockAnswerService) Answer(_ context.Context, _, _ string) (string, error) {
	return m.answer, m.err
}
