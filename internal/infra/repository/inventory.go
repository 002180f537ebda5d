package repository

import (
	"context"
	"time"

	"storefront-api/internal/domain/inventory"
	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/pkg/pgconv"
	"storefront-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const findInventoryByVariantQuery = `
SELECT id, variant_id, quantity, minimum_stock, created_at, updated_at
FROM inventory_records
WHERE variant_id = $1`

const insertInventoryQuery = `
INSERT INTO inventory_records (id, variant_id, quantity, minimum_stock)
VALUES ($1, $2, $3, $4)`

const updateInventoryQuantityQuery = `
UPDATE inventory_records
SET quantity = $2, updated_at = now()
WHERE id = $1`

const listBelowMinimumQuery = `
SELECT r.id, r.variant_id, v.sku, r.quantity, r.minimum_stock, r.created_at, r.updated_at
FROM inventory_records r
JOIN variants v ON v.id = r.variant_id
WHERE r.quantity < r.minimum_stock
ORDER BY r.quantity ASC, v.sku
LIMIT $1`

type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(conn db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: conn}
}

func (r *InventoryRepository) FindByVariant(ctx context.Context, variantID uuid.UUID) (*inventory.Record, error) {
	var (
		id, vid                uuid.UUID
		quantity, minimumStock int64
		createdAt, updatedAt   time.Time
	)
	err := r.db.QueryRow(ctx, findInventoryByVariantQuery, variantID).
		Scan(&id, &vid, &quantity, &minimumStock, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inventory record", err)
	}
	return inventory.Rehydrate(id, vid, quantity, minimumStock, createdAt, updatedAt), nil
}

func (r *InventoryRepository) Create(ctx context.Context, record *inventory.Record) error {
	_, err := r.db.Exec(ctx, insertInventoryQuery,
		record.ID(), record.VariantID(), record.Quantity(), record.MinimumStock())
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("inventory record already exists for variant", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("variant does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create inventory record", err)
	}
	return nil
}

func (r *InventoryRepository) UpdateQuantity(ctx context.Context, recordID uuid.UUID, quantity int64) error {
	tag, err := r.db.Exec(ctx, updateInventoryQuantityQuery, recordID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to update inventory quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("inventory record not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *InventoryRepository) ListBelowMinimum(ctx context.Context, limit int32) ([]*queries.InventoryView, error) {
	rows, err := r.db.Query(ctx, listBelowMinimumQuery, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list low stock records", err)
	}
	defer rows.Close()

	var views []*queries.InventoryView
	for rows.Next() {
		var view queries.InventoryView
		if err := rows.Scan(&view.ID, &view.VariantID, &view.SKU,
			&view.Quantity, &view.MinimumStock, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read inventory rows", err)
	}
	return views, nil
}
