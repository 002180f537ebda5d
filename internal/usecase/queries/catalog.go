package queries

import (
	"context"

	"storefront-api/internal/domain/catalog"
	"storefront-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// VariantReader is the catalog lookup contract shared by the read side and
// the stock computation.
type VariantReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Variant, error)
	// ListSiblings returns every variant of the product except excludeID,
	// in stable (creation) order.
	ListSiblings(ctx context.Context, productID, excludeID uuid.UUID) ([]*catalog.Variant, error)
}

type CatalogQueries interface {
	GetVariant(ctx context.Context, id uuid.UUID) (*VariantView, error)
	ListProductVariants(ctx context.Context, productID uuid.UUID) ([]*VariantView, error)
}

type catalogQueriesImpl struct {
	variants VariantReader
}

func NewCatalogQueries(variants VariantReader) CatalogQueries {
	return &catalogQueriesImpl{variants: variants}
}

func (q *catalogQueriesImpl) GetVariant(ctx context.Context, id uuid.UUID) (*VariantView, error) {
	variant, err := q.variants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toVariantView(variant)
}

func (q *catalogQueriesImpl) ListProductVariants(ctx context.Context, productID uuid.UUID) ([]*VariantView, error) {
	variants, err := q.variants.ListSiblings(ctx, productID, uuid.Nil)
	if err != nil {
		return nil, err
	}

	views := make([]*VariantView, 0, len(variants))
	for _, v := range variants {
		view, err := toVariantView(v)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func toVariantView(v *catalog.Variant) (*VariantView, error) {
	spec, err := v.Classify()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPackValue)
	}

	options := make(map[string]string, len(v.Options()))
	for k, val := range v.Options() {
		options[k] = val
	}

	return &VariantView{
		ID:         v.ID(),
		ProductID:  v.ProductID(),
		CategoryID: v.CategoryID(),
		SKU:        v.SKU(),
		PriceCents: v.PriceCents(),
		Options:    options,
		IsBaseUnit: spec.IsBaseUnit,
		Multiplier: spec.Multiplier,
	}, nil
}
