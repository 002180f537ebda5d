package response

import (
	"time"

	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StockResponse struct {
	VariantID         uuid.UUID  `json:"variant_id"`
	IsBaseUnit        bool       `json:"is_base_unit"`
	PackMultiplier    int        `json:"pack_multiplier"`
	BaseUnitVariantID *uuid.UUID `json:"base_unit_variant_id,omitempty"`
	ComputedStock     int64      `json:"computed_stock"`
}

type InventoryResponse struct {
	ID           uuid.UUID `json:"id"`
	VariantID    uuid.UUID `json:"variant_id"`
	SKU          string    `json:"sku"`
	Quantity     int64     `json:"quantity"`
	MinimumStock int64     `json:"minimum_stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateInventoryResponse struct {
	RecordID  uuid.UUID `json:"record_id"`
	VariantID uuid.UUID `json:"variant_id"`
	Quantity  int64     `json:"quantity"`
}

type AdjustStockResponse struct {
	VariantID uuid.UUID `json:"variant_id"`
	Quantity  int64     `json:"quantity"`
}

func FromStockView(view *queries.StockView) *StockResponse {
	return &StockResponse{
		VariantID:         view.VariantID,
		IsBaseUnit:        view.IsBaseUnit,
		PackMultiplier:    view.PackMultiplier,
		BaseUnitVariantID: view.BaseUnitVariantID,
		ComputedStock:     view.ComputedStock,
	}
}

func FromInventoryViews(views []*queries.InventoryView) ([]*InventoryResponse, error) {
	responses := make([]*InventoryResponse, 0, len(views))
	for _, view := range views {
		var resp InventoryResponse
		if err := copier.Copy(&resp, view); err != nil {
			return nil, err
		}
		responses = append(responses, &resp)
	}
	return responses, nil
}

func FromCreateInventoryResult(result *commands.CreateInventoryResult) *CreateInventoryResponse {
	return &CreateInventoryResponse{
		RecordID:  result.RecordID,
		VariantID: result.VariantID,
		Quantity:  result.Quantity,
	}
}

func FromAdjustStockResult(result *commands.AdjustStockResult) *AdjustStockResponse {
	return &AdjustStockResponse{
		VariantID: result.VariantID,
		Quantity:  result.Quantity,
	}
}
