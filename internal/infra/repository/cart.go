package repository

import (
	"context"

	"storefront-api/internal/domain/cart"
	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const snapshotCartQuery = `
SELECT ci.variant_id, ci.category_id, ci.sku, ci.unit_price_cents, ci.quantity
FROM cart_items ci
WHERE ci.user_id = $1
ORDER BY ci.created_at, ci.variant_id`

// upsertCartItemQuery replaces the quantity rather than accumulating it; the
// command layer has already decided the final quantity.
const upsertCartItemQuery = `
INSERT INTO cart_items (user_id, variant_id, category_id, sku, unit_price_cents, quantity)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, variant_id)
DO UPDATE SET quantity = EXCLUDED.quantity,
              unit_price_cents = EXCLUDED.unit_price_cents,
              updated_at = now()`

const removeCartItemQuery = `
DELETE FROM cart_items
WHERE user_id = $1 AND variant_id = $2`

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(conn db.DBTX) *CartRepository {
	return &CartRepository{db: conn}
}

func (r *CartRepository) Snapshot(ctx context.Context, userID uuid.UUID) (cart.Snapshot, error) {
	rows, err := r.db.Query(ctx, snapshotCartQuery, userID)
	if err != nil {
		return cart.Snapshot{}, infra.WrapRepoErr("failed to load cart", err)
	}
	defer rows.Close()

	snapshot := cart.Snapshot{UserID: userID}
	for rows.Next() {
		var item cart.Item
		if err := rows.Scan(&item.VariantID, &item.CategoryID, &item.SKU,
			&item.UnitPriceCents, &item.Quantity); err != nil {
			return cart.Snapshot{}, infra.WrapRepoErr("failed to scan cart item", err)
		}
		snapshot.Items = append(snapshot.Items, item)
	}
	if err := rows.Err(); err != nil {
		return cart.Snapshot{}, infra.WrapRepoErr("failed to read cart items", err)
	}
	return snapshot, nil
}

func (r *CartRepository) UpsertItem(ctx context.Context, userID uuid.UUID, item cart.Item) error {
	_, err := r.db.Exec(ctx, upsertCartItemQuery,
		userID, item.VariantID, item.CategoryID, item.SKU, item.UnitPriceCents, item.Quantity)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("variant does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to upsert cart item", err)
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, variantID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, removeCartItemQuery, userID, variantID)
	if err != nil {
		return infra.WrapRepoErr("failed to remove cart item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart item not found", nil, infra.KindNotFound)
	}
	return nil
}
