//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is the slice of the pgx pool surface the fixtures need, so they
// work against a pool or an open transaction alike.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCategory(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO categories (id, name) VALUES ($1, $2)", categoryID, name)
	require.NoError(t, err)

	return categoryID
}

func CreateTestProduct(t *testing.T, db DBLike, categoryID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO products (id, category_id, name) VALUES ($1, $2, $3)",
		productID, categoryID, name)
	require.NoError(t, err)

	return productID
}

// CreateTestVariant inserts a variant with the given options. A "pack" option
// makes it a pack variant; no "pack" option (or "1") makes it a base unit.
func CreateTestVariant(t *testing.T, db DBLike, productID, categoryID uuid.UUID, sku string, priceCents int64, options map[string]string) uuid.UUID {
	t.Helper()

	variantID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO variants (id, product_id, category_id, sku, price_cents) VALUES ($1, $2, $3, $4, $5)",
		variantID, productID, categoryID, sku, priceCents)
	require.NoError(t, err)

	for optType, optValue := range options {
		_, err := db.Exec(ctx, "INSERT INTO variant_options (variant_id, option_type, option_value) VALUES ($1, $2, $3)",
			variantID, optType, optValue)
		require.NoError(t, err)
	}

	return variantID
}

func CreateTestInventory(t *testing.T, db DBLike, variantID uuid.UUID, quantity, minimumStock int64) uuid.UUID {
	t.Helper()

	recordID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO inventory_records (id, variant_id, quantity, minimum_stock) VALUES ($1, $2, $3, $4)",
		recordID, variantID, quantity, minimumStock)
	require.NoError(t, err)

	return recordID
}

func CreateTestCampaign(t *testing.T, db DBLike, name, discountType string, percent float64, amountCents int64) uuid.UUID {
	t.Helper()

	campaignID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO campaigns (id, name, discount_type, discount_percent, discount_amount_cents)
		VALUES ($1, $2, $3, $4, $5)`,
		campaignID, name, discountType, percent, amountCents)
	require.NoError(t, err)

	return campaignID
}

func CreateTestCoupon(t *testing.T, db DBLike, userID, campaignID uuid.UUID, code string, expiresAt time.Time) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO user_coupons (id, code, user_id, campaign_id, expires_at)
		VALUES ($1, $2, $3, $4, $5)`,
		couponID, code, userID, campaignID, expiresAt)
	require.NoError(t, err)

	return couponID
}

func CreateTestOrder(t *testing.T, db DBLike, userID uuid.UUID, status string, totalCents int64) uuid.UUID {
	t.Helper()

	orderID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO orders (id, user_id, status, total_cents) VALUES ($1, $2, $3, $4)",
		orderID, userID, status, totalCents)
	require.NoError(t, err)

	return orderID
}

func AddTestCartItem(t *testing.T, db DBLike, userID, variantID, categoryID uuid.UUID, sku string, unitPriceCents int64, quantity int32) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `INSERT INTO cart_items (user_id, variant_id, category_id, sku, unit_price_cents, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, variant_id) DO UPDATE SET quantity = EXCLUDED.quantity`,
		userID, variantID, categoryID, sku, unitPriceCents, quantity)
	require.NoError(t, err)
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (id, name) VALUES
		    (gen_random_uuid(), 'beverages'),
		    (gen_random_uuid(), 'snacks')
		ON CONFLICT DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
