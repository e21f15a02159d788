package plaintext

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/helix-labs/helix-hr/internal/core/domain"
	"github.com/helix-labs/helix-hr/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text policy documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Extensions returns the file extensions this normaliser handles.
func (n *Normaliser) Extensions() []string {
	return []string{".txt"}
}

// Normalise converts raw text content into a Document. The content is
// kept as-is; chunking happens downstream.
func (n *Normaliser) Normalise(uri string, content []byte) (*domain.Document, error) {
	return &domain.Document{
		ID:      uuid.New().String(),
		URI:     uri,
		Title:   extractTitle(uri),
		Content: strings.TrimSpace(string(content)),
	}, nil
}

// extractTitle extracts a human-readable title from a URI.
func extractTitle(uri string) string {
	filename := filepath.Base(uri)

	ext := filepath.Ext(filename)
	if ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}

	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")

	return filename
}
