package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmployeeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"EMP1001", "EMP1001"},
		{"emp1001", "EMP1001"},
		{"  Emp1001 ", "EMP1001"},
		{"", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmployeeID(tt.in), "input %q", tt.in)
	}
}

func TestResolveIDColumn(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    string
		wantErr bool
	}{
		{
			name:    "exact alias",
			columns: []string{"name", "emp_id", "dept"},
			want:    "emp_id",
		},
		{
			name:    "alias is case-insensitive",
			columns: []string{"Name", "Employee_ID"},
			want:    "Employee_ID",
		},
		{
			name:    "heuristic emp+code",
			columns: []string{"name", "EmpCode2"},
			want:    "EmpCode2",
		},
		{
			name:    "heuristic emp+no",
			columns: []string{"emp_no_internal", "dept"},
			want:    "emp_no_internal",
		},
		{
			name:    "unresolvable",
			columns: []string{"name", "department", "salary"},
			wantErr: true,
		},
		{
			name:    "emp without id-ish token does not match",
			columns: []string{"employer", "dept"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, err := ResolveIDColumn(tt.columns)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrSchemaUnresolved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, col)
		})
	}
}

func TestNormalizeAttendance(t *testing.T) {
	t.Run("nil is empty", func(t *testing.T) {
		assert.Nil(t, NormalizeAttendance(nil))
	})

	t.Run("list of objects keeps order", func(t *testing.T) {
		raw := []any{
			map[string]any{"date": "2026-01-02", "status": "present"},
			map[string]any{"date": "2026-01-03", "status": "absent"},
		}
		events := NormalizeAttendance(raw)
		require.Len(t, events, 2)
		assert.Equal(t, "present", events[0]["status"])
		assert.Equal(t, "absent", events[1]["status"])
	})

	t.Run("list with scalar elements wraps them", func(t *testing.T) {
		events := NormalizeAttendance([]any{"present", "absent"})
		require.Len(t, events, 2)
		assert.Equal(t, "present", events[0]["value"])
	})

	t.Run("map with object values takes values as events", func(t *testing.T) {
		raw := map[string]any{
			"b": map[string]any{"status": "absent"},
			"a": map[string]any{"status": "present"},
		}
		events := NormalizeAttendance(raw)
		require.Len(t, events, 2)
		// Ordered by key for determinism.
		assert.Equal(t, "present", events[0]["status"])
		assert.Equal(t, "absent", events[1]["status"])
	})

	t.Run("map with scalar values wraps pairs", func(t *testing.T) {
		raw := map[string]any{
			"2026-01-02": "present",
			"2026-01-01": "absent",
		}
		events := NormalizeAttendance(raw)
		require.Len(t, events, 2)
		assert.Equal(t, "absent", events[0]["2026-01-01"])
		assert.Equal(t, "present", events[1]["2026-01-02"])
	})

	t.Run("mixed map values fall back to pair wrapping", func(t *testing.T) {
		raw := map[string]any{
			"a": map[string]any{"status": "present"},
			"b": "absent",
		}
		events := NormalizeAttendance(raw)
		require.Len(t, events, 2)
		_, hasA := events[0]["a"]
		assert.True(t, hasA)
	})

	t.Run("empty map is empty", func(t *testing.T) {
		assert.Nil(t, NormalizeAttendance(map[string]any{}))
	})

	t.Run("unknown shape is empty", func(t *testing.T) {
		assert.Nil(t, NormalizeAttendance(42))
	})
}

func TestNormalizeDateFields(t *testing.T) {
	in := map[string]any{
		"name":            "Asha",
		"date_of_joining": "15/03/2024",
		"last_review":     "nan",
	}
	out := NormalizeDateFields(in)

	assert.Equal(t, "Asha", out["name"])

	doj, ok := out["date_of_joining"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2024, doj.Year())
	assert.Equal(t, time.March, doj.Month())
	assert.Equal(t, 15, doj.Day())

	// Not a date-like name: untouched.
	assert.Equal(t, "nan", out["last_review"])
}

func TestFormatRecord(t *testing.T) {
	rec := map[string]any{
		"emp_id":          "EMP1001",
		"date_of_joining": time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		"dob":             nil,
	}
	got := FormatRecord(rec)
	assert.Equal(t, "date_of_joining=2024-03-15; dob=-; emp_id=EMP1001", got)
}
