package driving

import (
	"context"

	"github.com/helix-labs/helix-hr/internal/core/domain"
)

// IndexService builds the policy index artifacts from a directory of
// policy documents. This runs out of band; the query pipeline only ever
// consumes the artifacts read-only.
type IndexService interface {
	// BuildIndex normalises, chunks and embeds every supported document
	// under docsDir and persists the index artifacts.
	BuildIndex(ctx context.Context, docsDir string) (*domain.IndexStats, error)
}
