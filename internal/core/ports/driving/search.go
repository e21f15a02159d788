package driving

import (
	"context"

	"github.com/helix-labs/helix-hr/internal/core/domain"
)

// SearchService exposes raw semantic search over the policy index,
// without the assembly, thresholding and capping the context pipeline
// applies.
type SearchService interface {
	// SearchPolicies embeds the query and returns up to k hits by
	// non-increasing score. k <= 0 selects the configured default.
	SearchPolicies(ctx context.Context, query string, k int) ([]domain.SearchHit, error)
}
