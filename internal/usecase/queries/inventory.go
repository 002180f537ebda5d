package queries

import (
	"context"
	"log/slog"

	"storefront-api/internal/domain/catalog"
	"storefront-api/internal/domain/inventory"
	"storefront-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// InventoryReader is the read contract onto the physical stock store.
// Records exist for base units only.
type InventoryReader interface {
	FindByVariant(ctx context.Context, variantID uuid.UUID) (*inventory.Record, error)
	ListBelowMinimum(ctx context.Context, limit int32) ([]*InventoryView, error)
}

type InventoryQueries interface {
	// ComputedStock resolves pack variants to their base unit and floors the
	// derived quantity; base units report their record directly.
	ComputedStock(ctx context.Context, variantID uuid.UUID) (*StockView, error)
	ListLowStock(ctx context.Context, limit int) ([]*InventoryView, error)
}

type inventoryQueriesImpl struct {
	variants  VariantReader
	inventory InventoryReader
}

func NewInventoryQueries(variants VariantReader, inv InventoryReader) InventoryQueries {
	return &inventoryQueriesImpl{variants: variants, inventory: inv}
}

func (q *inventoryQueriesImpl) ComputedStock(ctx context.Context, variantID uuid.UUID) (*StockView, error) {
	variant, err := q.variants.FindByID(ctx, variantID)
	if err != nil {
		return nil, err
	}

	spec, err := variant.Classify()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPackValue)
	}

	if spec.IsBaseUnit {
		record, err := q.inventory.FindByVariant(ctx, variantID)
		if err != nil {
			return nil, err
		}
		return &StockView{
			VariantID:      variantID,
			IsBaseUnit:     true,
			PackMultiplier: 1,
			ComputedStock:  record.Quantity(),
		}, nil
	}

	siblings, err := q.variants.ListSiblings(ctx, variant.ProductID(), variant.ID())
	if err != nil {
		return nil, err
	}

	baseUnit, err := catalog.ResolveBaseUnit(variant, siblings)
	if err != nil {
		// A pack with no base unit is a catalog authoring error, not a user
		// mistake. Surface it distinctly and loudly; never default to zero.
		slog.Error("pack variant has no matching base unit",
			"variant_id", variantID,
			"product_id", variant.ProductID(),
			"error", err)
		return nil, errs.Mark(err, errs.ErrBaseUnitNotFound)
	}

	record, err := q.inventory.FindByVariant(ctx, baseUnit.ID())
	if err != nil {
		return nil, err
	}

	baseID := baseUnit.ID()
	return &StockView{
		VariantID:         variantID,
		IsBaseUnit:        false,
		PackMultiplier:    spec.Multiplier,
		BaseUnitVariantID: &baseID,
		ComputedStock:     catalog.ComputePackStock(record.Quantity(), spec.Multiplier),
	}, nil
}

func (q *inventoryQueriesImpl) ListLowStock(ctx context.Context, limit int) ([]*InventoryView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return q.inventory.ListBelowMinimum(ctx, int32(limit))
}
