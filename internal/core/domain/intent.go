package domain

// Intent classifies a user query into one of a fixed, closed set of
// categories. The intent drives which computed fact blocks are relevant.
type Intent string

// The closed set of query intents.
const (
	IntentLeaveBalance      Intent = "LEAVE_BALANCE"
	IntentLeaveEntitlement  Intent = "LEAVE_ENTITLEMENT"
	IntentLeavePolicy       Intent = "LEAVE_POLICY"
	IntentEligibility       Intent = "ELIGIBILITY"
	IntentAttendanceSummary Intent = "ATTENDANCE_SUMMARY"
	IntentPolicyOnly        Intent = "POLICY_ONLY"
	IntentGeneral           Intent = "GENERAL"
)

// String returns the wire name of the intent.
func (i Intent) String() string {
	return string(i)
}
