package services

import (
	"context"

	"github.com/helix-labs/helix-hr/internal/core/domain"
	"github.com/helix-labs/helix-hr/internal/core/ports/driven"
)

// --- Mock implementations of the driven ports ---

// mockStructuredStore implements driven.StructuredStore for testing.
type mockStructuredStore struct {
	employee      domain.EmployeeRecord
	employeeErr   error
	leaveRows     []domain.LeaveRow
	leaveErr      error
	attendance    []domain.AttendanceEvent
	attendanceErr error
}

func (m *mockStructuredStore) GetEmployee(_ context.Context, _ string) (domain.EmployeeRecord, error) {
	if m.employeeErr != nil {
		return nil, m.employeeErr
	}
	return m.employee, nil
}

func (m *mockStructuredStore) GetLeaveRows(_ context.Context, _ string) ([]domain.LeaveRow, error) {
	if m.leaveErr != nil {
		return nil, m.leaveErr
	}
	return m.leaveRows, nil
}

func (m *mockStructuredStore) GetAttendance(_ context.Context, _ string) ([]domain.AttendanceEvent, error) {
	if m.attendanceErr != nil {
		return nil, m.attendanceErr
	}
	return m.attendance, nil
}

// mockPolicyIndex implements driven.PolicyIndex for testing.
type mockPolicyIndex struct {
	hits      []domain.SearchHit
	searchErr error
	gotK      int
}

func (m *mockPolicyIndex) Search(_ context.Context, _ []float32, k int) ([]domain.SearchHit, error) {
	m.gotK = k
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if k < len(m.hits) {
		return m.hits[:k], nil
	}
	return m.hits, nil
}

func (m *mockPolicyIndex) Size() int { return len(m.hits) }

func (m *mockPolicyIndex) Close() error { return nil }

// mockEmbeddingService implements driven.EmbeddingService for testing.
type mockEmbeddingService struct {
	embedding []float32
	embedErr  error
	calls     int
}

func (m *mockEmbeddingService) Embed(_ context.Context, _ string) ([]float32, error) {
	m.calls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	out := make([]float32, len(m.embedding))
	copy(out, m.embedding)
	return out, nil
}

func (m *mockEmbeddingService) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, len(texts))
	for i := range texts {
		emb, err := m.Embed(context.TODO(), texts[i])
		if err != nil {
			return nil, err
		}
		result[i] = emb
	}
	return result, nil
}

func (m *mockEmbeddingService) Dimensions() int { return len(m.embedding) }

func (m *mockEmbeddingService) ModelName() string { return "mock-embed" }

func (m *mockEmbeddingService) Ping(_ context.Context) error { return nil }

func (m *mockEmbeddingService) Close() error { return nil }

// mockIndexWriter implements driven.IndexWriter for testing.
type mockIndexWriter struct {
	chunks     []domain.Chunk
	embeddings [][]float32
	err        error
}

func (m *mockIndexWriter) Write(_ context.Context, chunks []domain.Chunk, embeddings [][]float32) error {
	if m.err != nil {
		return m.err
	}
	m.chunks = chunks
	m.embeddings = embeddings
	return nil
}

// mockLLMService implements driven.LLMService for testing.
type mockLLMService struct {
	response  string
	err       error
	gotPrompt string
	gotSystem string
}

func (m *mockLLMService) Generate(_ context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	m.gotPrompt = prompt
	m.gotSystem = opts.SystemPrompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockLLMService) ModelName() string { return "mock-llm" }

func (m *mockLLMService) Close() error { return nil }
