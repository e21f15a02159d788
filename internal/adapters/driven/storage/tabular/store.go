// Package tabular implements the structured store over the three HR
// record files: employees.csv, leave_records.xlsx and attendance.json.
// All three are loaded once at construction and served read-only.
package tabular

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/helix-labs/helix-hr/internal/core/domain"
	"github.com/helix-labs/helix-hr/internal/core/ports/driven"
	"github.com/helix-labs/helix-hr/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.StructuredStore = (*Store)(nil)

// Fixed artifact names inside the data directory.
const (
	employeesFile  = "employees.csv"
	leaveFile      = "leave_records.xlsx"
	attendanceFile = "attendance.json"
)

// Store serves employee, leave and attendance lookups from tabular
// files. Date-like fields are normalised at load; identifier columns
// are resolved per lookup so a schema problem surfaces as a typed
// error on the operation that needs the column.
type Store struct {
	empColumns   []string
	employees    []domain.EmployeeRecord
	leaveColumns []string
	leaveRows    []domain.LeaveRow
	attendance   map[string]any
}

// NewStore loads the three record files from dataDir. A missing file is
// fatal; an HR deployment without its records cannot answer anything.
func NewStore(dataDir string) (*Store, error) {
	s := &Store{}

	if err := s.loadEmployees(filepath.Join(dataDir, employeesFile)); err != nil {
		return nil, err
	}
	if err := s.loadLeaveRows(filepath.Join(dataDir, leaveFile)); err != nil {
		return nil, err
	}
	if err := s.loadAttendance(filepath.Join(dataDir, attendanceFile)); err != nil {
		return nil, err
	}

	logger.Debug("Structured store loaded: %d employees, %d leave rows, %d attendance keys",
		len(s.employees), len(s.leaveRows), len(s.attendance))
	return s, nil
}

// GetEmployee returns the single employee record matching the id.
func (s *Store) GetEmployee(_ context.Context, id string) (domain.EmployeeRecord, error) {
	id = domain.NormalizeEmployeeID(id)

	col, err := domain.ResolveIDColumn(s.empColumns)
	if err != nil {
		return nil, fmt.Errorf("employees table: %w", err)
	}

	var matches []domain.EmployeeRecord
	for _, rec := range s.employees {
		if domain.NormalizeEmployeeID(cellString(rec[col])) == id {
			matches = append(matches, rec)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("employee %q: %w", id, domain.ErrNotFound)
	case 1:
		return domain.EmployeeRecord(copyRecord(matches[0])), nil
	default:
		return nil, fmt.Errorf("employee %q matches %d records: %w",
			id, len(matches), domain.ErrAmbiguous)
	}
}

// GetLeaveRows returns all leave rows for the id. No rows is a valid
// result, not an error.
func (s *Store) GetLeaveRows(_ context.Context, id string) ([]domain.LeaveRow, error) {
	id = domain.NormalizeEmployeeID(id)

	col, err := domain.ResolveIDColumn(s.leaveColumns)
	if err != nil {
		return nil, fmt.Errorf("leave table: %w", err)
	}

	var rows []domain.LeaveRow
	for _, row := range s.leaveRows {
		if domain.NormalizeEmployeeID(cellString(row[col])) == id {
			rows = append(rows, domain.LeaveRow(copyRecord(row)))
		}
	}
	return rows, nil
}

// GetAttendance returns the normalised attendance events for the id.
func (s *Store) GetAttendance(_ context.Context, id string) ([]domain.AttendanceEvent, error) {
	id = domain.NormalizeEmployeeID(id)

	for key, raw := range s.attendance {
		if domain.NormalizeEmployeeID(key) != id {
			continue
		}
		events := domain.NormalizeAttendance(raw)
		if len(events) == 0 {
			break
		}
		out := make([]domain.AttendanceEvent, 0, len(events))
		for _, ev := range events {
			out = append(out, domain.AttendanceEvent(domain.NormalizeAttendanceDateFields(ev)))
		}
		return out, nil
	}
	return nil, fmt.Errorf("attendance for %q: %w", id, domain.ErrNotFound)
}

// loadEmployees reads the CSV employee table. The first row is the
// header; every following row becomes one record.
func (s *Store) loadEmployees(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, domain.ErrSourceMissing)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("parse %s: %v: %w", path, err, domain.ErrSourceInvalid)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s has no header row: %w", path, domain.ErrSourceInvalid)
	}

	s.empColumns = rows[0]
	for _, row := range rows[1:] {
		rec := make(map[string]any, len(s.empColumns))
		for i, col := range s.empColumns {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		s.employees = append(s.employees, domain.NormalizeDateFields(rec))
	}
	return nil
}

// loadLeaveRows reads the first sheet of the XLSX leave table.
func (s *Store) loadLeaveRows(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("open %s: %w", path, domain.ErrSourceMissing)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("parse %s: %v: %w", path, err, domain.ErrSourceInvalid)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("%s has no sheets: %w", path, domain.ErrSourceInvalid)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("read %s: %v: %w", path, err, domain.ErrSourceInvalid)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s has no header row: %w", path, domain.ErrSourceInvalid)
	}

	s.leaveColumns = rows[0]
	for _, row := range rows[1:] {
		rec := make(map[string]any, len(s.leaveColumns))
		for i, col := range s.leaveColumns {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		s.leaveRows = append(s.leaveRows, domain.NormalizeDateFields(rec))
	}
	return nil
}

// loadAttendance reads the JSON attendance log. The top level must be
// an object keyed by employee id; each value keeps its raw shape and is
// normalised per lookup.
func (s *Store) loadAttendance(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, domain.ErrSourceMissing)
	}

	var byEmployee map[string]any
	if err := json.Unmarshal(data, &byEmployee); err != nil {
		return fmt.Errorf("parse %s: top level must be an object keyed by employee id: %w",
			path, domain.ErrSourceInvalid)
	}

	s.attendance = byEmployee
	return nil
}

// cellString renders a cell value for identifier comparison.
func cellString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// copyRecord returns a shallow copy so callers cannot mutate the
// loaded tables.
func copyRecord(rec map[string]any) map[string]any {
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
