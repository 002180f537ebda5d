package repository

import (
	"context"

	"storefront-api/internal/domain/catalog"
	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// variantColumns aggregates the option rows into a jsonb object so one scan
// yields the whole variant.
const variantColumns = `
	v.id, v.product_id, v.category_id, v.sku, v.price_cents,
	COALESCE(
		jsonb_object_agg(o.option_type, o.option_value)
			FILTER (WHERE o.option_type IS NOT NULL),
		'{}'::jsonb
	) AS options`

const findVariantByIDQuery = `
SELECT` + variantColumns + `
FROM variants v
LEFT JOIN variant_options o ON o.variant_id = v.id
WHERE v.id = $1
GROUP BY v.id`

// Sibling order is creation order; callers rely on it being stable so that
// base-unit resolution is deterministic.
const listSiblingVariantsQuery = `
SELECT` + variantColumns + `
FROM variants v
LEFT JOIN variant_options o ON o.variant_id = v.id
WHERE v.product_id = $1 AND v.id <> $2
GROUP BY v.id
ORDER BY v.created_at, v.id`

type VariantRepository struct {
	db db.DBTX
}

func NewVariantRepository(conn db.DBTX) *VariantRepository {
	return &VariantRepository{db: conn}
}

func (r *VariantRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Variant, error) {
	row := r.db.QueryRow(ctx, findVariantByIDQuery, id)
	variant, err := scanVariant(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("variant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find variant", err)
	}
	return variant, nil
}

func (r *VariantRepository) ListSiblings(ctx context.Context, productID, excludeID uuid.UUID) ([]*catalog.Variant, error) {
	rows, err := r.db.Query(ctx, listSiblingVariantsQuery, productID, excludeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product variants", err)
	}
	defer rows.Close()

	var variants []*catalog.Variant
	for rows.Next() {
		variant, err := scanVariant(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan variant row", err)
		}
		variants = append(variants, variant)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read variant rows", err)
	}
	return variants, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVariant(row rowScanner) (*catalog.Variant, error) {
	var (
		id, productID, categoryID uuid.UUID
		sku                       string
		priceCents                int64
		optionMap                 map[string]string
	)
	if err := row.Scan(&id, &productID, &categoryID, &sku, &priceCents, &optionMap); err != nil {
		return nil, err
	}

	options := make([]catalog.Option, 0, len(optionMap))
	for optionType, value := range optionMap {
		options = append(options, catalog.Option{Type: optionType, Value: value})
	}
	return catalog.NewVariant(id, productID, categoryID, sku, priceCents, options), nil
}
