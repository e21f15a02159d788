package domain

import (
	"math"
	"time"
)

// AnnualLeaveQuota is the fixed annual leave entitlement in days.
const AnnualLeaveQuota = 15

// ReferenceYear is the leave year all entitlement calculations refer to.
const ReferenceYear = 2026

// LeaveMeta reports the inputs behind a prorated entitlement for
// transparency in generated context.
type LeaveMeta struct {
	// MonthsWorked is the number of months counted in the leave year.
	// A partial month counts as one full month.
	MonthsWorked int

	// AnnualQuota is the full-year quota the proration is based on.
	AnnualQuota int
}

// ProratedLeave computes the leave entitlement for the given year from a
// date of joining. The months from max(doj, year start) through year end
// inclusive are counted (partial months count as full), and the annual
// quota is scaled by months/12, rounded to two decimals.
//
// ok is false when the joining date is missing; no entitlement can be
// computed without it. A joining date after year end yields zero months
// and zero entitlement.
func ProratedLeave(doj *time.Time, year int) (days float64, meta LeaveMeta, ok bool) {
	meta = LeaveMeta{AnnualQuota: AnnualLeaveQuota}
	if doj == nil {
		return 0, meta, false
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	if doj.After(yearEnd) {
		return 0, meta, true
	}

	effective := *doj
	if effective.Before(yearStart) {
		effective = yearStart
	}

	months := (yearEnd.Year()-effective.Year())*12 +
		int(yearEnd.Month()-effective.Month()) + 1

	days = round2(float64(AnnualLeaveQuota) / 12 * float64(months))
	meta.MonthsWorked = months
	return days, meta, true
}

// LeaveBalance computes the remaining leave days. The balance is never
// negative: taking more than the quota leaves a balance of zero.
func LeaveBalance(annualQuota, taken int) int {
	if remaining := annualQuota - taken; remaining > 0 {
		return remaining
	}
	return 0
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
