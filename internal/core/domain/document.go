package domain

// Document is a policy document after normalisation to plain text,
// produced during index construction.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the original location (file path).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the full text content after normalisation.
	Content string
}

// Chunk is one unit of the policy index: a piece of document text paired
// with the label of its source document. Position i in the vector store
// must correspond to chunk i — the index is invalid otherwise.
type Chunk struct {
	// Text is the chunk content.
	Text string `json:"text"`

	// Source is the source document label, e.g. the file name.
	Source string `json:"source"`
}

// IndexStats summarises an index build.
type IndexStats struct {
	// Documents is the number of source documents indexed.
	Documents int

	// Chunks is the number of chunks embedded and stored.
	Chunks int
}
