package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helix-labs/helix-hr/internal/core/domain"
)

func TestIntentRouterClassify(t *testing.T) {
	router := NewIntentRouter()

	tests := []struct {
		query string
		want  domain.Intent
	}{
		{"How many leave days do I have left?", domain.IntentLeaveBalance},
		{"what is my LEAVE BALANCE", domain.IntentLeaveBalance},
		{"can i take leave next week", domain.IntentLeavePolicy},
		{"am I allowed to take leave during probation", domain.IntentLeavePolicy},
		{"am I eligible for gratuity", domain.IntentEligibility},
		{"show my attendance for January", domain.IntentAttendanceSummary},
		{"how often was I absent", domain.IntentAttendanceSummary},
		{"what is the remote work policy", domain.IntentPolicyOnly},
		{"is there a rule about overtime", domain.IntentPolicyOnly},
		{"hello there", domain.IntentGeneral},
		{"", domain.IntentGeneral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, router.Classify(tt.query), "query %q", tt.query)
	}
}

func TestIntentRouterPriorityOrder(t *testing.T) {
	router := NewIntentRouter()

	// Matches both the leave-balance rule and the attendance rule; the
	// earlier rule always wins.
	got := router.Classify("how many leave days left given my absent days")
	assert.Equal(t, domain.IntentLeaveBalance, got)

	// "policy" alone is POLICY_ONLY, but combined with an earlier rule's
	// keywords the earlier rule wins.
	got = router.Classify("leave balance policy")
	assert.Equal(t, domain.IntentLeaveBalance, got)

	// "eligible" outranks "policy".
	got = router.Classify("eligible per policy?")
	assert.Equal(t, domain.IntentEligibility, got)
}

func TestIntentRouterDeterministic(t *testing.T) {
	router := NewIntentRouter()
	for i := 0; i < 10; i++ {
		assert.Equal(t, domain.IntentAttendanceSummary,
			router.Classify("attendance report please"))
	}
}
