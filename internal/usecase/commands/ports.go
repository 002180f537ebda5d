package commands

import (
	"context"
	"time"

	"storefront-api/internal/domain/cart"
	"storefront-api/internal/domain/catalog"
	"storefront-api/internal/domain/coupon"
	"storefront-api/internal/domain/inventory"

	"github.com/google/uuid"
)

// Write-side repository contracts. Implementations own their transactions;
// commands never see a raw connection.

type VariantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Variant, error)
	ListSiblings(ctx context.Context, productID, excludeID uuid.UUID) ([]*catalog.Variant, error)
}

type InventoryRepository interface {
	FindByVariant(ctx context.Context, variantID uuid.UUID) (*inventory.Record, error)
	Create(ctx context.Context, record *inventory.Record) error
	UpdateQuantity(ctx context.Context, recordID uuid.UUID, quantity int64) error
}

type CouponRepository interface {
	// FindBindingWithCampaign loads the user-coupon binding by code+user with
	// its campaign populated.
	FindBindingWithCampaign(ctx context.Context, code string, userID uuid.UUID) (*coupon.UserCoupon, *coupon.Campaign, error)
	// MarkRedeemed flips the redeemed flag only if it is currently unset and
	// reports whether this call performed the flip.
	MarkRedeemed(ctx context.Context, bindingID uuid.UUID, redeemedAt time.Time) (bool, error)
}

// UserSnapshot is the minimal profile the coupon evaluator needs.
type UserSnapshot struct {
	ID         uuid.UUID
	Email      string
	Role       string
	Group      string
	ReferredBy *uuid.UUID
	IsActive   bool
	CreatedAt  time.Time
}

type UserRepository interface {
	FindSnapshotByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	CountCompletedOrders(ctx context.Context, userID uuid.UUID) (int64, error)
}

type CartRepository interface {
	Snapshot(ctx context.Context, userID uuid.UUID) (cart.Snapshot, error)
	UpsertItem(ctx context.Context, userID uuid.UUID, item cart.Item) error
	RemoveItem(ctx context.Context, userID, variantID uuid.UUID) error
}

// NewAddress carries the write-side address fields; the repository assigns
// id and timestamps.
type NewAddress struct {
	Label       string
	Recipient   string
	Line1       string
	Line2       *string
	City        string
	PostalCode  string
	CountryCode string
	IsDefault   bool
}

type AddressRepository interface {
	Create(ctx context.Context, userID uuid.UUID, addr NewAddress) (uuid.UUID, error)
	Update(ctx context.Context, userID, addressID uuid.UUID, addr NewAddress) error
	Delete(ctx context.Context, userID, addressID uuid.UUID) error
}

// AuditEntry records an admin-relevant action. Recording is best effort:
// commands log and continue when the audit write fails.
type AuditEntry struct {
	ActorID uuid.UUID
	Action  string
	Subject string
	Detail  string
}

type AuditRepository interface {
	Record(ctx context.Context, entry AuditEntry) error
}
