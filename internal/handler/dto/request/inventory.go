package request

import (
	"github.com/google/uuid"
)

type CreateInventoryRequest struct {
	VariantID    uuid.UUID `json:"variant_id" binding:"required"`
	InitialStock int64     `json:"initial_stock" binding:"gte=0"`
	MinimumStock int64     `json:"minimum_stock" binding:"gte=0"`
}

// AdjustStockRequest carries a signed delta; Delta is a pointer so that a
// missing field is distinguishable from an explicit zero.
type AdjustStockRequest struct {
	Delta *int64 `json:"delta" binding:"required"`
}
