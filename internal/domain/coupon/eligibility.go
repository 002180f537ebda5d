package coupon

import (
	"time"

	"github.com/google/uuid"
)

type CriterionKind string

const (
	// CriterionNone is a sentinel: a criteria set containing only "none" is
	// open to all users, same as an empty set.
	CriterionNone          CriterionKind = "none"
	CriterionNewUser       CriterionKind = "new_user"
	CriterionFirstOrder    CriterionKind = "first_order"
	CriterionReferral      CriterionKind = "referral"
	CriterionSpecificGroup CriterionKind = "specific_group"
)

// NewUserMaxAccountAge is the account-age cutoff for the "new user" criterion.
const NewUserMaxAccountAge = 30 * 24 * time.Hour

// Criterion is a single eligibility predicate. Groups is only consulted for
// the specific-group kind.
type Criterion struct {
	Kind   CriterionKind
	Groups []string
}

// EligibilityProfile is everything the evaluator may ask about a user.
// Population of ReferredBy and Group lives outside this service.
type EligibilityProfile struct {
	UserID          uuid.UUID
	AccountCreated  time.Time
	CompletedOrders int64
	ReferredBy      *uuid.UUID
	Group           string
}

// CheckEligibility evaluates criteria in list order and returns the first
// failure's reason. An empty list or a lone "none" criterion accepts everyone.
func CheckEligibility(criteria []Criterion, profile EligibilityProfile, now time.Time) (string, bool) {
	for _, c := range criteria {
		switch c.Kind {
		case CriterionNone:
			continue
		case CriterionNewUser:
			if now.Sub(profile.AccountCreated) >= NewUserMaxAccountAge {
				return "new customers only", false
			}
		case CriterionFirstOrder:
			if profile.CompletedOrders > 0 {
				return "first-time buyers only", false
			}
		case CriterionReferral:
			if profile.ReferredBy == nil {
				return "referred customers only", false
			}
		case CriterionSpecificGroup:
			if !containsGroup(c.Groups, profile.Group) {
				return "not available for your customer group", false
			}
		default:
			// Unknown criteria reject rather than silently pass; a campaign
			// authored with a tag this version does not know must not widen
			// its own audience.
			return "unrecognized eligibility requirement", false
		}
	}
	return "", true
}

func containsGroup(groups []string, group string) bool {
	for _, g := range groups {
		if g == group {
			return true
		}
	}
	return false
}
