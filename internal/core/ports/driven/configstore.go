package driven

// ConfigStore provides persistent key-value configuration with
// dot-notation keys (e.g. "search.score_threshold").
type ConfigStore interface {
	// Get retrieves a raw configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, "" when absent or mistyped.
	GetString(key string) string

	// GetInt retrieves an integer value, 0 when absent or mistyped.
	GetInt(key string) int

	// GetFloat retrieves a float value, 0 when absent or mistyped.
	GetFloat(key string) float64

	// GetBool retrieves a boolean value, false when absent or mistyped.
	GetBool(key string) bool

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Path returns the location of the backing file, for display.
	Path() string
}
