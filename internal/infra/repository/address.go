package repository

import (
	"context"

	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/pkg/pgconv"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertAddressQuery = `
INSERT INTO addresses (id, user_id, label, recipient, line1, line2, city, postal_code, country_code, is_default)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const updateAddressQuery = `
UPDATE addresses
SET label = $3, recipient = $4, line1 = $5, line2 = $6, city = $7,
    postal_code = $8, country_code = $9, is_default = $10, updated_at = now()
WHERE id = $2 AND user_id = $1`

const deleteAddressQuery = `
DELETE FROM addresses
WHERE id = $2 AND user_id = $1`

const clearDefaultAddressQuery = `
UPDATE addresses
SET is_default = FALSE, updated_at = now()
WHERE user_id = $1 AND is_default = TRUE AND id <> $2`

const findAddressQuery = `
SELECT id, label, recipient, line1, line2, city, postal_code, country_code, is_default, created_at, updated_at
FROM addresses
WHERE id = $2 AND user_id = $1`

const listAddressesQuery = `
SELECT id, label, recipient, line1, line2, city, postal_code, country_code, is_default, created_at, updated_at
FROM addresses
WHERE user_id = $1
ORDER BY is_default DESC, created_at`

// AddressRepository needs the pool rather than a bare DBTX: setting a new
// default clears the old one in the same transaction.
type AddressRepository struct {
	pool *pgxpool.Pool
}

func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool}
}

func (r *AddressRepository) Create(ctx context.Context, userID uuid.UUID, addr commands.NewAddress) (uuid.UUID, error) {
	id := uuid.New()
	return db.RunInTx(ctx, r.pool, func(tx db.DBTX) (uuid.UUID, error) {
		if addr.IsDefault {
			if _, err := tx.Exec(ctx, clearDefaultAddressQuery, userID, id); err != nil {
				return uuid.Nil, infra.WrapRepoErr("failed to clear default address", err)
			}
		}
		_, err := tx.Exec(ctx, insertAddressQuery,
			id, userID, addr.Label, addr.Recipient, addr.Line1, addr.Line2,
			addr.City, addr.PostalCode, addr.CountryCode, addr.IsDefault)
		if err != nil {
			if pgconv.IsForeignKeyViolation(err) {
				return uuid.Nil, infra.WrapRepoErr("user does not exist", err, infra.KindForeignKeyViolated)
			}
			return uuid.Nil, infra.WrapRepoErr("failed to create address", err)
		}
		return id, nil
	})
}

func (r *AddressRepository) Update(ctx context.Context, userID, addressID uuid.UUID, addr commands.NewAddress) error {
	_, err := db.RunInTx(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		if addr.IsDefault {
			if _, err := tx.Exec(ctx, clearDefaultAddressQuery, userID, addressID); err != nil {
				return struct{}{}, infra.WrapRepoErr("failed to clear default address", err)
			}
		}
		tag, err := tx.Exec(ctx, updateAddressQuery,
			userID, addressID, addr.Label, addr.Recipient, addr.Line1, addr.Line2,
			addr.City, addr.PostalCode, addr.CountryCode, addr.IsDefault)
		if err != nil {
			return struct{}{}, infra.WrapRepoErr("failed to update address", err)
		}
		if tag.RowsAffected() == 0 {
			return struct{}{}, infra.WrapRepoErr("address not found", nil, infra.KindNotFound)
		}
		return struct{}{}, nil
	})
	return err
}

func (r *AddressRepository) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteAddressQuery, userID, addressID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete address", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("address not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AddressRepository) FindByID(ctx context.Context, userID, addressID uuid.UUID) (*queries.AddressView, error) {
	var view queries.AddressView
	err := r.pool.QueryRow(ctx, findAddressQuery, userID, addressID).
		Scan(&view.ID, &view.Label, &view.Recipient, &view.Line1, &view.Line2,
			&view.City, &view.PostalCode, &view.CountryCode, &view.IsDefault,
			&view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("address not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find address", err)
	}
	return &view, nil
}

func (r *AddressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.AddressView, error) {
	rows, err := r.pool.Query(ctx, listAddressesQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list addresses", err)
	}
	defer rows.Close()

	var views []*queries.AddressView
	for rows.Next() {
		var view queries.AddressView
		if err := rows.Scan(&view.ID, &view.Label, &view.Recipient, &view.Line1, &view.Line2,
			&view.City, &view.PostalCode, &view.CountryCode, &view.IsDefault,
			&view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan address row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read address rows", err)
	}
	return views, nil
}
