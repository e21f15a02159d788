package driving

import (
	"context"

	"github.com/helix-labs/helix-hr/internal/core/domain"
)

// ContextService assembles grounded, citable context for one HR query.
type ContextService interface {
	// Build resolves the query intent, fetches structured records for the
	// optional employee id, searches the policy index and dispatches
	// business rules, merging everything into an ordered block list with
	// citations. When nothing at all can be assembled it fails with
	// domain.ErrInsufficientData; a result is never partially valid.
	Build(ctx context.Context, query, employeeID string) (*domain.ContextResult, error)
}
