package queries

import (
	"context"

	"storefront-api/internal/domain/cart"

	"github.com/google/uuid"
)

type CartReader interface {
	Snapshot(ctx context.Context, userID uuid.UUID) (cart.Snapshot, error)
}

type CartQueries interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	carts CartReader
}

func NewCartQueries(carts CartReader) CartQueries {
	return &cartQueriesImpl{carts: carts}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	snapshot, err := q.carts.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]CartItemView, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, CartItemView{
			VariantID:      item.VariantID,
			CategoryID:     item.CategoryID,
			SKU:            item.SKU,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
			SubtotalCents:  item.SubtotalCents(),
		})
	}

	return &CartView{
		UserID:     userID,
		Items:      items,
		TotalCents: snapshot.TotalCents(),
	}, nil
}
