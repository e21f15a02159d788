package domain

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateFieldTokens identifies date-like columns and fields by name.
// A field is date-like when its lower-cased name contains any token.
var dateFieldTokens = []string{
	"date", "dob", "doj", "join", "from", "to", "time", "timestamp",
}

// nullSentinels are string values that normalise to "no date".
var nullSentinels = map[string]bool{
	"":     true,
	"nan":  true,
	"none": true,
	"null": true,
}

// attendanceDateTokens is the restricted set for attendance events.
// Event payloads carry free-form metric names (total_hours, remote_ok)
// that substring-match the wider table token set, so only the explicit
// date/time tokens apply there.
var attendanceDateTokens = []string{
	"date", "time", "timestamp",
}

// IsDateField reports whether a column or field name is date-like and
// should have its values normalised by ParseDateSafe.
func IsDateField(name string) bool {
	return matchesToken(name, dateFieldTokens)
}

// IsAttendanceDateField reports whether an attendance event field is
// date-like under the restricted token set.
func IsAttendanceDateField(name string) bool {
	return matchesToken(name, attendanceDateTokens)
}

func matchesToken(name string, tokens []string) bool {
	lower := strings.ToLower(name)
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// ParseDateSafe parses a value with a permissive, day-first-preferring
// parser. Blank values, null sentinels and unparsable input all return
// (zero, false) — the explicit "no date" marker. It never panics and
// never surfaces a parse error to the caller.
func ParseDateSafe(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	case string:
		return parseDateString(t)
	default:
		return parseDateString(strings.TrimSpace(toString(v)))
	}
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if nullSentinels[strings.ToLower(s)] {
		return time.Time{}, false
	}

	// Day-first preference matches how the source tables are authored.
	parsed, err := dateparse.ParseAny(s, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
