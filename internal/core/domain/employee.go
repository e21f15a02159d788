package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// EmployeeRecord is one employee row, keyed by column name. Date-like
// fields hold time.Time after normalisation, or nil when no date could
// be parsed. At most one record exists per normalised employee id.
type EmployeeRecord map[string]any

// LeaveRow is one leave transaction row, keyed by column name.
type LeaveRow map[string]any

// AttendanceEvent is one attendance entry (e.g. date, status), keyed by
// field name.
type AttendanceEvent map[string]any

// Employee id column aliases, tried case-insensitively in order before
// falling back to the heuristic in ResolveIDColumn.
var idColumnAliases = []string{
	"emp_id", "employee_id", "employeeid", "empcode", "employee_code",
}

// NormalizeEmployeeID canonicalises an employee identifier for comparison:
// whitespace-trimmed and upper-cased. Identifiers differing only in case
// or surrounding whitespace refer to the same employee.
func NormalizeEmployeeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// ResolveIDColumn resolves the employee identifier column for a table.
// Known aliases are tried case-insensitively first; failing that, the
// first column whose name contains "emp" together with "id", "code" or
// "no" wins. An unresolvable schema is a typed failure, never a silent
// guess.
func ResolveIDColumn(columns []string) (string, error) {
	byLower := make(map[string]string, len(columns))
	for _, c := range columns {
		byLower[strings.ToLower(c)] = c
	}
	for _, alias := range idColumnAliases {
		if c, ok := byLower[alias]; ok {
			return c, nil
		}
	}

	for _, c := range columns {
		lower := strings.ToLower(c)
		if !strings.Contains(lower, "emp") {
			continue
		}
		if strings.Contains(lower, "id") ||
			strings.Contains(lower, "code") ||
			strings.Contains(lower, "no") {
			return c, nil
		}
	}

	return "", fmt.Errorf("no candidate among %v: %w", columns, ErrSchemaUnresolved)
}

// NormalizeAttendance converts a raw attendance entry into an ordered
// sequence of events. Three source shapes are handled:
//
//   - list-shaped: the elements are the events, in order
//   - map-shaped with object values: the values are the events
//     (values-as-events takes precedence)
//   - map-shaped otherwise: each key/value pair becomes a singleton event
//
// Map-shaped sources are ordered by key for determinism. Unknown shapes
// normalise to nil.
func NormalizeAttendance(raw any) []AttendanceEvent {
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		events := make([]AttendanceEvent, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				events = append(events, AttendanceEvent(m))
				continue
			}
			events = append(events, AttendanceEvent{"value": item})
		}
		return events
	case map[string]any:
		if len(v) == 0 {
			return nil
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		allObjects := true
		for _, k := range keys {
			if _, ok := v[k].(map[string]any); !ok {
				allObjects = false
				break
			}
		}

		events := make([]AttendanceEvent, 0, len(keys))
		if allObjects {
			for _, k := range keys {
				events = append(events, AttendanceEvent(v[k].(map[string]any)))
			}
			return events
		}
		for _, k := range keys {
			events = append(events, AttendanceEvent{k: v[k]})
		}
		return events
	default:
		return nil
	}
}

// NormalizeDateFields returns a copy of the record with every date-like
// field parsed via ParseDateSafe. Unparsable values become nil, the
// explicit "no date" marker.
func NormalizeDateFields(m map[string]any) map[string]any {
	return normaliseDates(m, IsDateField)
}

// NormalizeAttendanceDateFields normalises only the explicitly
// date-like fields of an attendance event, leaving metrics like
// total_hours untouched.
func NormalizeAttendanceDateFields(m map[string]any) map[string]any {
	return normaliseDates(m, IsAttendanceDateField)
}

func normaliseDates(m map[string]any, isDate func(string) bool) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if !isDate(k) {
			out[k] = v
			continue
		}
		if t, ok := ParseDateSafe(v); ok {
			out[k] = t
		} else {
			out[k] = nil
		}
	}
	return out
}

// FormatRecord renders a record as a deterministic single-line summary,
// fields sorted by name, dates in ISO form. Used as context block text.
func FormatRecord(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+toString(m[k]))
	}
	return strings.Join(parts, "; ")
}

// toString renders a field value for display.
func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case time.Time:
		return t.Format("2006-01-02")
	case string:
		return t
	default:
		return fmt.Sprint(v)
	}
}
