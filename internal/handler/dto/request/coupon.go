package request

import "strings"

type PreviewCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r PreviewCouponRequest) NormalizedCode() string {
	return strings.TrimSpace(r.Code)
}

type RedeemCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r RedeemCouponRequest) NormalizedCode() string {
	return strings.TrimSpace(r.Code)
}
