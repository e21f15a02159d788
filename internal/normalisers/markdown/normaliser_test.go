package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestExtensions(t *testing.T) {
	normaliser := New()
	exts := normaliser.Extensions()

	require.NotEmpty(t, exts)
	assert.Contains(t, exts, ".md")
	assert.Contains(t, exts, ".markdown")
}

func TestNormalise_Success(t *testing.T) {
	normaliser := New()

	doc, err := normaliser.Normalise("/docs/leave-policy.md",
		[]byte("# Leave Policy\n\nEmployees accrue **15 days** per year."))
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "/docs/leave-policy.md", doc.URI)
	assert.Equal(t, "Leave Policy", doc.Title) // Title from first H1
	assert.Contains(t, doc.Content, "Employees accrue 15 days per year.")
	assert.NotContains(t, doc.Content, "**")
	assert.NotContains(t, doc.Content, "# ")
}

func TestNormalise_TitleFallsBackToFilename(t *testing.T) {
	normaliser := New()

	doc, err := normaliser.Normalise("/docs/remote_work-policy.md",
		[]byte("No heading here, just prose."))
	require.NoError(t, err)
	assert.Equal(t, "remote work policy", doc.Title)
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"code block removed", "before\n```go\ncode\n```\nafter", "before\n\nafter"},
		{"inline code removed", "use `helix-hr index` daily", "use  daily"},
		{"link text kept", "see [the handbook](https://example.com)", "see the handbook"},
		{"list markers removed", "- one\n- two", "one\ntwo"},
		{"blockquote removed", "> quoted text", "quoted text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripMarkdown(tt.input))
		})
	}
}
