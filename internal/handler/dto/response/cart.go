package response

import (
	"storefront-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartItemResponse struct {
	VariantID      uuid.UUID `json:"variant_id"`
	SKU            string    `json:"sku"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int32     `json:"quantity"`
	SubtotalCents  int64     `json:"subtotal_cents"`
}

type CartResponse struct {
	UserID     uuid.UUID          `json:"user_id"`
	Items      []CartItemResponse `json:"items"`
	TotalCents int64              `json:"total_cents"`
}

func FromCartView(view *queries.CartView) *CartResponse {
	items := make([]CartItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, CartItemResponse{
			VariantID:      item.VariantID,
			SKU:            item.SKU,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
			SubtotalCents:  item.SubtotalCents,
		})
	}
	return &CartResponse{
		UserID:     view.UserID,
		Items:      items,
		TotalCents: view.TotalCents,
	}
}
