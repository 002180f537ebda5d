package repository

import (
	"context"

	"storefront-api/internal/domain/user"
	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/pkg/pgconv"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const findUserByEmailQuery = `
SELECT id, email, password_hash, role, user_group, is_active
FROM users
WHERE email = $1`

const findUserByIDQuery = `
SELECT id, email, role, user_group, is_active
FROM users
WHERE id = $1`

const findUserSnapshotQuery = `
SELECT id, email, role, user_group, referred_by, is_active, created_at
FROM users
WHERE id = $1`

const updateLastLoginQuery = `
UPDATE users
SET last_login_at = now()
WHERE id = $1`

const countCompletedOrdersQuery = `
SELECT count(*)
FROM orders
WHERE user_id = $1 AND status = 'completed'`

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(conn db.DBTX) *UserRepository {
	return &UserRepository{db: conn}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, findUserByEmailQuery, email.Value()).
		Scan(&view.ID, &view.Email, &hash, &view.Role, &view.Group, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, findUserByIDQuery, id).
		Scan(&view.ID, &view.Email, &view.Role, &view.Group, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}

func (r *UserRepository) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	var snap commands.UserSnapshot
	err := r.db.QueryRow(ctx, findUserSnapshotQuery, id).
		Scan(&snap.ID, &snap.Email, &snap.Role, &snap.Group,
			&snap.ReferredBy, &snap.IsActive, &snap.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load user snapshot", err)
	}
	return &snap, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, updateLastLoginQuery, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) CountCompletedOrders(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countCompletedOrdersQuery, userID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count completed orders", err)
	}
	return count, nil
}
