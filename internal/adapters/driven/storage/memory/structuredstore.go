// Package memory provides in-memory adapter implementations, used as
// fixtures in tests and demos where the file-backed stores would be
// overkill.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/helix-labs/helix-hr/internal/core/domain"
	"github.com/helix-labs/helix-hr/internal/core/ports/driven"
)

// Ensure StructuredStore implements the interface.
var _ driven.StructuredStore = (*StructuredStore)(nil)

// StructuredStore is an in-memory implementation of
// driven.StructuredStore keyed by normalised employee id.
type StructuredStore struct {
	mu         sync.RWMutex
	employees  map[string]domain.EmployeeRecord
	leaveRows  map[string][]domain.LeaveRow
	attendance map[string][]domain.AttendanceEvent
}

// NewStructuredStore creates an empty in-memory structured store.
func NewStructuredStore() *StructuredStore {
	return &StructuredStore{
		employees:  make(map[string]domain.EmployeeRecord),
		leaveRows:  make(map[string][]domain.LeaveRow),
		attendance: make(map[string][]domain.AttendanceEvent),
	}
}

// PutEmployee stores an employee record under the given id.
func (s *StructuredStore) PutEmployee(id string, rec domain.EmployeeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees[domain.NormalizeEmployeeID(id)] = rec
}

// PutLeaveRows stores the leave rows for the given id.
func (s *StructuredStore) PutLeaveRows(id string, rows []domain.LeaveRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaveRows[domain.NormalizeEmployeeID(id)] = rows
}

// PutAttendance stores the attendance events for the given id.
func (s *StructuredStore) PutAttendance(id string, events []domain.AttendanceEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendance[domain.NormalizeEmployeeID(id)] = events
}

// GetEmployee retrieves the employee record for the id.
func (s *StructuredStore) GetEmployee(_ context.Context, id string) (domain.EmployeeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.employees[domain.NormalizeEmployeeID(id)]
	if !ok {
		return nil, fmt.Errorf("employee %q: %w", domain.NormalizeEmployeeID(id), domain.ErrNotFound)
	}
	return rec, nil
}

// GetLeaveRows retrieves the leave rows for the id. No rows is a valid
// result.
func (s *StructuredStore) GetLeaveRows(_ context.Context, id string) ([]domain.LeaveRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leaveRows[domain.NormalizeEmployeeID(id)], nil
}

// GetAttendance retrieves the attendance events for the id.
func (s *StructuredStore) GetAttendance(_ context.Context, id string) ([]domain.AttendanceEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events, ok := s.attendance[domain.NormalizeEmployeeID(id)]
	if !ok || len(events) == 0 {
		return nil, fmt.Errorf("attendance for %q: %w", domain.NormalizeEmployeeID(id), domain.ErrNotFound)
	}
	return events, nil
}
