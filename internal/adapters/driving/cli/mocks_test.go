package cli

import (
	"context"

	"github.com/helix-labs/helix-hr/internal/core/domain"
)

type mockContextService struct {
	result *domain.ContextResult
	err    error

	gotQuery    string
	gotEmployee string
}

func (m *mockContextService) Build(_ context.Context, query, employeeID string) (*domain.ContextResult, error) {
	m.gotQuery = query
	m.gotEmployee = employeeID
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockSearchService struct {
	hits []domain.SearchHit
	err  error

	gotQuery string
	gotK     int
}

func (m *mockSearchService) SearchPolicies(_ context.Context, query string, k int) ([]domain.SearchHit, error) {
	m.gotQuery = query
	m.gotK = k
	if m.err != nil {
		return nil, m.err
	}
	return m.hits, nil
}

type mockAnswerService struct {
	text string
	err  error

	gotQuery    string
	gotEmployee string
}

func (m *mockAnswerService) Answer(_ context.Context, query, employeeID string) (string, error) {
	m.gotQuery = query
	m.gotEmployee = employeeID
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

type mockIndexService struct {
	stats *domain.IndexStats
	err   error

	gotDocsDir string
}

func (m *mockIndexService) BuildIndex(_ context.Context, docsDir string) (*domain.IndexStats, error) {
	m.gotDocsDir = docsDir
	if m.err != nil {
		return nil, m.err
	}
	return m.stats, nil
}

type mockConfigStore struct {
	values map[string]any
	setErr error
	path   string
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: map[string]any{}, path: "/tmp/config.toml"}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if s, ok := m.values[key].(string); ok {
		return s
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	if n, ok := m.values[key].(int); ok {
		return n
	}
	return 0
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	if f, ok := m.values[key].(float64); ok {
		return f
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if b, ok := m.values[key].(bool); ok {
		return b
	}
	return false
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Path() string {
	return m.path
}

// testServices holds the mocks injected for one test.
type testServices struct {
	contexts *mockContextService
	search   *mockSearchService
	answers  *mockAnswerService
	index    *mockIndexService
	config   *mockConfigStore
}

// setupTestServices injects mock services and returns them with a
// cleanup that restores the previous wiring.
func setupTestServices() (*testServices, func()) {
	prev := Services{
		Context: contextService,
		Search:  searchService,
		Answer:  answerService,
		Index:   indexService,
		Config:  configStore,
	}

	s := &testServices{
		contexts: &mockContextService{result: &domain.ContextResult{
			QueryID: "q-test",
			Intent:  domain.IntentGeneral,
			Blocks: []domain.ContextBlock{
				{Title: "Policy excerpt #1 (score=0.81)", Text: "Annual leave quota is 15 days.", Source: "leave_policy.md"},
			},
			Citations: []domain.Citation{
				{Source: "policy-index", Note: "leave_policy.md"},
			},
		}},
		search: &mockSearchService{hits: []domain.SearchHit{
			{Score: 0.81, Text: "Annual leave quota is 15 days.", Source: "leave_policy.md"},
		}},
		answers: &mockAnswerService{text: "You have 15 days of annual leave. [leave_policy.md]"},
		index:   &mockIndexService{stats: &domain.IndexStats{Documents: 2, Chunks: 9}},
		config:  newMockConfigStore(),
	}
	SetServices(Services{
		Context: s.contexts,
		Search:  s.search,
		Answer:  s.answers,
		Index:   s.index,
		Config:  s.config,
	})

	return s, func() { SetServices(prev) }
}
