package response

import (
	"time"

	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CouponPreviewResponse struct {
	Valid               bool   `json:"valid"`
	RejectCode          string `json:"reject_code,omitempty"`
	Reason              string `json:"reason,omitempty"`
	CampaignName        string `json:"campaign_name,omitempty"`
	DiscountDescription string `json:"discount_description,omitempty"`
	DiscountCents       int64  `json:"discount_cents"`
	ApplicableItemCount int    `json:"applicable_item_count"`
	ApplicableCents     int64  `json:"applicable_cents"`
	CartTotalCents      int64  `json:"cart_total_cents"`
}

type CouponRedeemResponse struct {
	BindingID     uuid.UUID `json:"binding_id"`
	CampaignName  string    `json:"campaign_name"`
	DiscountCents int64     `json:"discount_cents"`
}

type CouponBindingResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Code                string     `json:"code"`
	CampaignName        string     `json:"campaign_name"`
	DiscountDescription string     `json:"discount_description"`
	Active              bool       `json:"active"`
	Redeemed            bool       `json:"redeemed"`
	RedeemedAt          *time.Time `json:"redeemed_at,omitempty"`
	ExpiresAt           time.Time  `json:"expires_at"`
	IssuedAt            time.Time  `json:"issued_at"`
}

func FromPreviewResult(result *commands.PreviewResult) *CouponPreviewResponse {
	return &CouponPreviewResponse{
		Valid:               result.Valid,
		RejectCode:          result.RejectCode,
		Reason:              result.Reason,
		CampaignName:        result.CampaignName,
		DiscountDescription: result.DiscountDescription,
		DiscountCents:       result.DiscountCents,
		ApplicableItemCount: result.ApplicableItemCount,
		ApplicableCents:     result.ApplicableCents,
		CartTotalCents:      result.CartTotalCents,
	}
}

func FromRedeemResult(result *commands.RedeemResult) *CouponRedeemResponse {
	return &CouponRedeemResponse{
		BindingID:     result.BindingID,
		CampaignName:  result.CampaignName,
		DiscountCents: result.DiscountCents,
	}
}

func FromCouponBindingViews(views []*queries.CouponBindingView) ([]*CouponBindingResponse, error) {
	responses := make([]*CouponBindingResponse, 0, len(views))
	for _, view := range views {
		var resp CouponBindingResponse
		if err := copier.Copy(&resp, view); err != nil {
			return nil, err
		}
		responses = append(responses, &resp)
	}
	return responses, nil
}
