package domain

// Fixed source labels for context provenance. Every block's source must
// resolve to a human-auditable origin name and is never empty.
const (
	// SourceEmployeeTable labels blocks grounded in the employee master table.
	SourceEmployeeTable = "employees.csv"

	// SourceLeaveTable labels blocks grounded in the leave transactions table.
	SourceLeaveTable = "leave_records.xlsx"

	// SourceAttendanceLog labels blocks grounded in the attendance log.
	SourceAttendanceLog = "attendance.json"

	// SourceBusinessRules labels blocks computed by deterministic HR rules.
	SourceBusinessRules = "business-rules"

	// SourcePolicyIndex labels the semantic policy index as a citation source.
	SourcePolicyIndex = "policy-index"
)

// ContextBlock is an atomic, independently citable unit of grounding
// context fed to downstream answer generation.
type ContextBlock struct {
	// Title is a short human-readable heading for the block.
	Title string `json:"title"`

	// Text is the grounding content itself.
	Text string `json:"text"`

	// Source names the document, table or rule the block came from.
	Source string `json:"source"`
}

// Citation describes the provenance of a block or class of blocks.
type Citation struct {
	// Source is the origin name (file label, index, or rule set).
	Source string `json:"source"`

	// Note carries provenance detail, e.g. the employee id or hit sources.
	Note string `json:"note"`
}

// ContextResult is the assembled output for one query: an ordered block
// list plus citations. It is created fresh per query and never persisted.
type ContextResult struct {
	// QueryID is a unique trace id for this assembly.
	QueryID string `json:"query_id"`

	// Intent is the classified intent the rule dispatch was driven by.
	Intent Intent `json:"intent"`

	// Blocks is the ordered grounding context.
	Blocks []ContextBlock `json:"blocks"`

	// Citations annotate the provenance of the blocks.
	Citations []Citation `json:"citations"`
}

// Default retrieval parameters.
const (
	// DefaultSearchK is how many candidates the similarity search returns.
	DefaultSearchK = 6

	// DefaultScoreThreshold drops hits whose cosine similarity falls below it.
	DefaultScoreThreshold = 0.25

	// DefaultTopExcerpts caps how many policy excerpts enter the context.
	DefaultTopExcerpts = 3
)

// ContextOptions configures context assembly.
type ContextOptions struct {
	// SearchK is the number of similarity-search candidates.
	SearchK int

	// ScoreThreshold is the minimum similarity for a hit to survive.
	// Hits below it are dropped, not clamped. Nil applies the default;
	// zero and negative thresholds are honoured, since cosine scores
	// span [-1, 1].
	ScoreThreshold *float64

	// TopExcerpts is the maximum number of policy excerpt blocks.
	TopExcerpts int
}

// DefaultContextOptions returns the standard retrieval parameters.
func DefaultContextOptions() ContextOptions {
	return ContextOptions{
		SearchK:        DefaultSearchK,
		ScoreThreshold: Float64(DefaultScoreThreshold),
		TopExcerpts:    DefaultTopExcerpts,
	}
}

// Float64 returns a pointer to v, for optional option fields.
func Float64(v float64) *float64 {
	return &v
}

// Normalised returns a copy of the options with unset values replaced
// by the defaults. For the threshold only nil counts as unset.
func (o ContextOptions) Normalised() ContextOptions {
	def := DefaultContextOptions()
	if o.SearchK <= 0 {
		o.SearchK = def.SearchK
	}
	if o.ScoreThreshold == nil {
		o.ScoreThreshold = def.ScoreThreshold
	}
	if o.TopExcerpts <= 0 {
		o.TopExcerpts = def.TopExcerpts
	}
	return o
}
