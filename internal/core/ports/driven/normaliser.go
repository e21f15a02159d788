package driven

import (
	"github.com/helix-labs/helix-hr/internal/core/domain"
)

// Normaliser converts raw policy document bytes into a clean text
// Document ready for chunking and embedding.
type Normaliser interface {
	// Extensions returns the lowercase file extensions this normaliser
	// handles, including the leading dot.
	Extensions() []string

	// Normalise converts raw file content into a Document. The URI is
	// the file path the content was read from.
	Normalise(uri string, content []byte) (*domain.Document, error)
}
