package services

import (
	"fmt"
	"time"

	"github.com/helix-labs/helix-hr/internal/core/domain"
)

// dojAliases are the employee record fields checked, in order, for a
// joining date when computing entitlement.
var dojAliases = []string{"date_of_joining", "doj", "joining_date"}

// RuleDispatcher maps an intent plus retrieved entities onto zero or more
// computed fact blocks. It is a pure function of its inputs, delegating
// the arithmetic to the domain leave rules.
type RuleDispatcher struct{}

// NewRuleDispatcher creates a rule dispatcher.
func NewRuleDispatcher() *RuleDispatcher {
	return &RuleDispatcher{}
}

// Apply produces the computed context blocks for an intent. Employee may
// be nil and the slices empty; when no rule's precondition holds the
// result is empty, never an error.
func (d *RuleDispatcher) Apply(
	intent domain.Intent,
	emp domain.EmployeeRecord,
	leaveRows []domain.LeaveRow,
	attendance []domain.AttendanceEvent,
) []domain.ContextBlock {
	var computed []domain.ContextBlock

	switch intent {
	case domain.IntentLeaveBalance:
		if emp == nil {
			break
		}
		taken := len(leaveRows)
		remaining := domain.LeaveBalance(domain.AnnualLeaveQuota, taken)
		computed = append(computed, domain.ContextBlock{
			Title: "Leave balance (computed)",
			Text: fmt.Sprintf(
				"Annual quota: %d days. Leaves taken: %d. Remaining balance: %d.",
				domain.AnnualLeaveQuota, taken, remaining),
			Source: domain.SourceBusinessRules,
		})

	case domain.IntentLeaveEntitlement:
		if emp == nil {
			break
		}
		doj, ok := joiningDate(emp)
		if !ok {
			break
		}
		days, meta, ok := domain.ProratedLeave(&doj, domain.ReferenceYear)
		if !ok {
			break
		}
		computed = append(computed, domain.ContextBlock{
			Title: "Leave entitlement (computed)",
			Text: fmt.Sprintf(
				"Joining date: %s. Months worked in %d: %d. Annual quota: %d days. Entitled leave: %g days.",
				doj.Format("2006-01-02"), domain.ReferenceYear,
				meta.MonthsWorked, meta.AnnualQuota, days),
			Source: domain.SourceBusinessRules,
		})

	case domain.IntentAttendanceSummary:
		if len(attendance) == 0 {
			break
		}
		computed = append(computed, domain.ContextBlock{
			Title:  "Attendance summary (computed)",
			Text:   fmt.Sprintf("Total attendance records found: %d.", len(attendance)),
			Source: domain.SourceAttendanceLog,
		})
	}

	return computed
}

// joiningDate finds the employee's joining date under the known field
// aliases. Fields hold time.Time after date normalisation.
func joiningDate(emp domain.EmployeeRecord) (time.Time, bool) {
	for _, alias := range dojAliases {
		if t, ok := emp[alias].(time.Time); ok {
			return t, true
		}
	}
	return time.Time{}, false
}
