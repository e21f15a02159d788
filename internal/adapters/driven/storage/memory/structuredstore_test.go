package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helix-labs/helix-hr/internal/core/domain"
)

func TestStructuredStoreRoundTrip(t *testing.T) {
	store := NewStructuredStore()
	ctx := context.Background()

	store.PutEmployee("emp1001", domain.EmployeeRecord{"name": "Asha"})
	store.PutLeaveRows("emp1001", []domain.LeaveRow{{"leave_type": "sick"}})
	store.PutAttendance("emp1001", []domain.AttendanceEvent{{"status": "present"}})

	// Ids normalise on both write and read.
	emp, err := store.GetEmployee(ctx, " EMP1001 ")
	require.NoError(t, err)
	assert.Equal(t, "Asha", emp["name"])

	rows, err := store.GetLeaveRows(ctx, "EMP1001")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	events, err := store.GetAttendance(ctx, "EMP1001")
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestStructuredStoreMisses(t *testing.T) {
	store := NewStructuredStore()
	ctx := context.Background()

	_, err := store.GetEmployee(ctx, "EMP404")
	require.ErrorIs(t, err, domain.ErrNotFound)

	rows, err := store.GetLeaveRows(ctx, "EMP404")
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = store.GetAttendance(ctx, "EMP404")
	require.ErrorIs(t, err, domain.ErrNotFound)

	store.PutAttendance("EMP404", nil)
	_, err = store.GetAttendance(ctx, "EMP404")
	require.ErrorIs(t, err, domain.ErrNotFound, "empty attendance reads as absent")
}
