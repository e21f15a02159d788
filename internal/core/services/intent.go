package services

import (
	"strings"

	"github.com/helix-labs/helix-hr/internal/core/domain"
)

// IntentRouter classifies natural-language queries into the fixed intent
// set. Classification is deterministic and stateless: case-insensitive
// substring rules evaluated in a fixed priority order, first match wins.
type IntentRouter struct{}

// NewIntentRouter creates an intent router.
func NewIntentRouter() *IntentRouter {
	return &IntentRouter{}
}

// Classify maps a query to an intent. Every input maps to some intent;
// anything unmatched, including the empty string, is IntentGeneral.
func (r *IntentRouter) Classify(query string) domain.Intent {
	q := strings.ToLower(query)

	contains := func(s string) bool { return strings.Contains(q, s) }

	switch {
	case contains("leave") && (contains("how many") || contains("left") || contains("balance")):
		return domain.IntentLeaveBalance
	case contains("can i take leave") || contains("allowed to take leave"):
		return domain.IntentLeavePolicy
	case contains("eligible"):
		return domain.IntentEligibility
	case contains("attendance") || contains("absent"):
		return domain.IntentAttendanceSummary
	case contains("policy") || contains("rule"):
		return domain.IntentPolicyOnly
	default:
		return domain.IntentGeneral
	}
}
