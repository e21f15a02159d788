package driving

import "context"

// AnswerService produces a grounded, cited answer for one HR query.
type AnswerService interface {
	// Answer assembles context for the query and prompts the configured
	// LLM under the never-invent-facts contract. When no context can be
	// assembled, or the model response carries no citations, the returned
	// text begins with the fixed insufficient-data marker.
	Answer(ctx context.Context, query, employeeID string) (string, error)
}
