package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/helix-labs/helix-hr/internal/core/domain"
	"github.com/helix-labs/helix-hr/internal/core/ports/driven"
	"github.com/helix-labs/helix-hr/internal/core/ports/driving"
	"github.com/helix-labs/helix-hr/internal/logger"
)

// Ensure ContextService implements the interfaces.
var (
	_ driving.ContextService = (*ContextService)(nil)
	_ driving.SearchService  = (*ContextService)(nil)
)

// ContextService orchestrates the hybrid retrieval pipeline for one
// query: intent classification, structured lookups, semantic policy
// search, rule dispatch, and assembly into an ordered, cited context.
//
// The injected store and index are loaded once at startup and shared
// read-only across queries; the service holds no per-query state.
type ContextService struct {
	store    driven.StructuredStore
	index    driven.PolicyIndex
	embedder driven.EmbeddingService
	router   *IntentRouter
	rules    *RuleDispatcher
	opts     domain.ContextOptions
}

// NewContextService creates a context service. Store and index are
// required; opts zero values fall back to the defaults.
func NewContextService(
	store driven.StructuredStore,
	index driven.PolicyIndex,
	embedder driven.EmbeddingService,
	opts domain.ContextOptions,
) *ContextService {
	return &ContextService{
		store:    store,
		index:    index,
		embedder: embedder,
		router:   NewIntentRouter(),
		rules:    NewRuleDispatcher(),
		opts:     opts.Normalised(),
	}
}

// Build assembles the grounding context for one query. The orchestration
// order is fixed: intent, structured fetch, policy search, rule dispatch,
// assembly. Per-query lookup failures degrade the context instead of
// aborting it; only an entirely empty assembly is terminal.
func (s *ContextService) Build(
	ctx context.Context, query, employeeID string,
) (*domain.ContextResult, error) {
	logger.Section("Context Assembly")

	query = strings.TrimSpace(query)
	empID := domain.NormalizeEmployeeID(employeeID)
	logger.Debug("Query: %q, employee: %q", query, empID)

	// 1) Intent.
	intent := s.router.Classify(query)
	logger.Info("Intent: %s", intent)

	// 2) Structured entities. Absence degrades; it is not fatal here.
	var emp domain.EmployeeRecord
	var leaveRows []domain.LeaveRow
	var attendance []domain.AttendanceEvent

	if empID != "" {
		var err error
		emp, err = s.store.GetEmployee(ctx, empID)
		if err != nil {
			logger.Warn("Employee lookup degraded: %v", err)
			emp = nil
		}

		leaveRows, err = s.store.GetLeaveRows(ctx, empID)
		if err != nil {
			logger.Warn("Leave lookup degraded: %v", err)
			leaveRows = nil
		}

		attendance, err = s.store.GetAttendance(ctx, empID)
		if err != nil {
			logger.Warn("Attendance lookup degraded: %v", err)
			attendance = nil
		}
		logger.Debug("Structured: employee=%t, leave rows=%d, attendance events=%d",
			emp != nil, len(leaveRows), len(attendance))
	}

	// 3) Semantic policy search.
	hits, err := s.searchPolicies(ctx, query)
	if err != nil {
		return nil, err
	}
	logger.Debug("Policy hits above threshold: %d", len(hits))

	// 4) Deterministic rules.
	computed := s.rules.Apply(intent, emp, leaveRows, attendance)
	logger.Debug("Computed rule blocks: %d", len(computed))

	// 5) Assembly, in fixed order: employee record, policy excerpts,
	// computed blocks.
	var blocks []domain.ContextBlock
	var citations []domain.Citation

	if emp != nil {
		blocks = append(blocks, domain.ContextBlock{
			Title:  "Employee record",
			Text:   domain.FormatRecord(emp),
			Source: domain.SourceEmployeeTable,
		})
		citations = append(citations, domain.Citation{
			Source: domain.SourceEmployeeTable,
			Note:   "employee_id=" + empID,
		})
	}

	top := s.opts.TopExcerpts
	if top > len(hits) {
		top = len(hits)
	}
	for i := 0; i < top; i++ {
		blocks = append(blocks, domain.ContextBlock{
			Title:  fmt.Sprintf("Policy excerpt #%d (score=%.2f)", i+1, hits[i].Score),
			Text:   hits[i].Text,
			Source: hits[i].Source,
		})
	}
	if len(hits) > 0 {
		citations = append(citations, domain.Citation{
			Source: domain.SourcePolicyIndex,
			Note:   "sources hit: " + hitSources(hits),
		})
	}

	for _, b := range computed {
		blocks = append(blocks, b)
		citations = append(citations, domain.Citation{
			Source: b.Source,
			Note:   "computed business rule",
		})
	}

	// 6) Guardrail: all or nothing. An empty assembly is terminal.
	if len(blocks) == 0 {
		return nil, insufficientData(empID)
	}

	logger.Info("Assembled %d blocks, %d citations", len(blocks), len(citations))
	return &domain.ContextResult{
		QueryID:   uuid.New().String(),
		Intent:    intent,
		Blocks:    blocks,
		Citations: citations,
	}, nil
}

// SearchPolicies embeds the query and runs raw similarity search. Hits
// come back uncapped by the excerpt limit and unfiltered by the score
// threshold; callers that want the pipeline's view use Build.
func (s *ContextService) SearchPolicies(
	ctx context.Context, query string, k int,
) ([]domain.SearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if s.index == nil || s.embedder == nil {
		return nil, fmt.Errorf("index or embedder not configured: %w", domain.ErrMissingIndex)
	}
	if k <= 0 {
		k = s.opts.SearchK
	}

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	domain.NormalizeL2(embedding)

	hits, err := s.index.Search(ctx, embedding, k)
	if err != nil {
		return nil, fmt.Errorf("policy search: %w", err)
	}
	return hits, nil
}

// searchPolicies is the pipeline's view of search: hits below the score
// threshold are dropped, not clamped. An unconfigured index degrades to
// no hits here; Build still has the structured side to work with.
func (s *ContextService) searchPolicies(
	ctx context.Context, query string,
) ([]domain.SearchHit, error) {
	if query == "" {
		return nil, nil
	}
	if s.index == nil || s.embedder == nil {
		logger.Warn("Policy search unavailable: index or embedder not configured")
		return nil, nil
	}

	hits, err := s.SearchPolicies(ctx, query, s.opts.SearchK)
	if err != nil {
		return nil, err
	}

	kept := hits[:0]
	for _, h := range hits {
		if h.Score >= *s.opts.ScoreThreshold {
			kept = append(kept, h)
		}
	}
	return kept, nil
}

// hitSources renders the sorted unique source labels of the hits.
func hitSources(hits []domain.SearchHit) string {
	seen := make(map[string]bool, len(hits))
	var sources []string
	for _, h := range hits {
		if !seen[h.Source] {
			seen[h.Source] = true
			sources = append(sources, h.Source)
		}
	}
	sort.Strings(sources)
	return "[" + strings.Join(sources, " ") + "]"
}

// insufficientData builds the deterministic terminal failure for an
// empty assembly. The message always begins with the fixed marker.
func insufficientData(empID string) error {
	if empID == "" {
		return fmt.Errorf("%w: no relevant policy text found and no employee id provided",
			domain.ErrInsufficientData)
	}
	return fmt.Errorf("%w: no relevant policy text or structured records found for %s",
		domain.ErrInsufficientData, empID)
}
