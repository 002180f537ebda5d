package coupon

import (
	"time"

	"github.com/google/uuid"
)

// UserCoupon binds a coupon code to exactly one user and one campaign.
// Redemption, once recorded, is permanent.
type UserCoupon struct {
	id         uuid.UUID
	code       string
	userID     uuid.UUID
	campaignID uuid.UUID
	active     bool
	redeemed   bool
	redeemedAt *time.Time
	expiresAt  time.Time
	issuedAt   time.Time
}

func NewUserCoupon(
	id uuid.UUID,
	code string,
	userID, campaignID uuid.UUID,
	active, redeemed bool,
	redeemedAt *time.Time,
	expiresAt, issuedAt time.Time,
) *UserCoupon {
	return &UserCoupon{
		id:         id,
		code:       code,
		userID:     userID,
		campaignID: campaignID,
		active:     active,
		redeemed:   redeemed,
		redeemedAt: redeemedAt,
		expiresAt:  expiresAt,
		issuedAt:   issuedAt,
	}
}

// UsabilityReason reports why the binding cannot be used at t, or ok=true.
func (u *UserCoupon) UsabilityReason(t time.Time) (string, bool) {
	if !u.active {
		return "coupon is no longer active", false
	}
	if u.redeemed {
		return "coupon has already been redeemed", false
	}
	if !t.Before(u.expiresAt) {
		return "coupon has expired", false
	}
	return "", true
}

func (u *UserCoupon) ID() uuid.UUID          { return u.id }
func (u *UserCoupon) Code() string           { return u.code }
func (u *UserCoupon) UserID() uuid.UUID      { return u.userID }
func (u *UserCoupon) CampaignID() uuid.UUID  { return u.campaignID }
func (u *UserCoupon) Active() bool           { return u.active }
func (u *UserCoupon) Redeemed() bool         { return u.redeemed }
func (u *UserCoupon) RedeemedAt() *time.Time { return u.redeemedAt }
func (u *UserCoupon) ExpiresAt() time.Time   { return u.expiresAt }
func (u *UserCoupon) IssuedAt() time.Time    { return u.issuedAt }
