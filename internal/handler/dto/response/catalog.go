package response

import (
	"storefront-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type VariantResponse struct {
	ID             uuid.UUID         `json:"id"`
	ProductID      uuid.UUID         `json:"product_id"`
	CategoryID     uuid.UUID         `json:"category_id"`
	SKU            string            `json:"sku"`
	PriceCents     int64             `json:"price_cents"`
	Options        map[string]string `json:"options"`
	IsBaseUnit     bool              `json:"is_base_unit"`
	PackMultiplier int               `json:"pack_multiplier"`
}

func FromVariantView(view *queries.VariantView) *VariantResponse {
	return &VariantResponse{
		ID:             view.ID,
		ProductID:      view.ProductID,
		CategoryID:     view.CategoryID,
		SKU:            view.SKU,
		PriceCents:     view.PriceCents,
		Options:        view.Options,
		IsBaseUnit:     view.IsBaseUnit,
		PackMultiplier: view.Multiplier,
	}
}

func FromVariantViews(views []*queries.VariantView) []*VariantResponse {
	responses := make([]*VariantResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, FromVariantView(view))
	}
	return responses
}
