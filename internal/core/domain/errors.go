package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous indicates an employee identifier matched more than one row.
	// Ambiguous matches are never resolved silently.
	ErrAmbiguous = errors.New("ambiguous employee id")

	// ErrSourceMissing indicates a required data source file is absent.
	// Raised at load time; the pipeline cannot run without it.
	ErrSourceMissing = errors.New("data source missing")

	// ErrSourceInvalid indicates a data source has the wrong shape,
	// e.g. an attendance file whose top level is not keyed by employee id.
	ErrSourceInvalid = errors.New("data source invalid")

	// ErrSchemaUnresolved indicates no employee identifier column could be
	// resolved in a table. Lookups against that table are disabled.
	ErrSchemaUnresolved = errors.New("employee id column unresolved")

	// ErrMissingIndex indicates a policy index artifact is absent on disk.
	ErrMissingIndex = errors.New("policy index artifacts missing")

	// ErrInvalidIndex indicates the policy index artifacts are structurally
	// inconsistent (empty, or chunk/vector counts disagree).
	ErrInvalidIndex = errors.New("policy index invalid")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Semantic retrieval is disabled without embeddings.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Answer generation is disabled.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrInsufficientData is the terminal signal that no grounding context
	// could be assembled for a query. Its message begins with the
	// InsufficientDataMarker so downstream consumers can rely on the prefix.
	ErrInsufficientData = errors.New(InsufficientDataMarker)
)

// InsufficientDataMarker is the fixed prefix carried by every
// insufficient-data failure, mirrored verbatim in generated answers.
const InsufficientDataMarker = "INSUFFICIENT_DATA"
