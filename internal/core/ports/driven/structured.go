package driven

import (
	"context"

	"github.com/helix-labs/helix-hr/internal/core/domain"
)

// StructuredStore exposes lookups over the employee, leave and attendance
// records loaded at startup. Implementations are read-only after load and
// safe for concurrent queries.
//
// Identifiers are compared case-insensitively and whitespace-trimmed.
type StructuredStore interface {
	// GetEmployee returns the single record for an employee id.
	// Zero matches fail with domain.ErrNotFound, two or more with
	// domain.ErrAmbiguous; an arbitrary row is never returned.
	GetEmployee(ctx context.Context, id string) (domain.EmployeeRecord, error)

	// GetLeaveRows returns all leave transactions for an employee.
	// An empty result is not an error.
	GetLeaveRows(ctx context.Context, id string) ([]domain.LeaveRow, error)

	// GetAttendance returns the normalised attendance events for an
	// employee. A missing or empty entry fails with domain.ErrNotFound.
	GetAttendance(ctx context.Context, id string) ([]domain.AttendanceEvent, error)
}
