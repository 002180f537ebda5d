package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type VariantView struct {
	ID         uuid.UUID         `json:"id"`
	ProductID  uuid.UUID         `json:"product_id"`
	CategoryID uuid.UUID         `json:"category_id"`
	SKU        string            `json:"sku"`
	PriceCents int64             `json:"price_cents"`
	Options    map[string]string `json:"options"`
	IsBaseUnit bool              `json:"is_base_unit"`
	Multiplier int               `json:"pack_multiplier"`
}

type StockView struct {
	VariantID         uuid.UUID  `json:"variant_id"`
	IsBaseUnit        bool       `json:"is_base_unit"`
	PackMultiplier    int        `json:"pack_multiplier"`
	BaseUnitVariantID *uuid.UUID `json:"base_unit_variant_id,omitempty"`
	ComputedStock     int64      `json:"computed_stock"`
}

type InventoryView struct {
	ID           uuid.UUID `json:"id"`
	VariantID    uuid.UUID `json:"variant_id"`
	SKU          string    `json:"sku"`
	Quantity     int64     `json:"quantity"`
	MinimumStock int64     `json:"minimum_stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CouponBindingView struct {
	ID                  uuid.UUID  `json:"id"`
	Code                string     `json:"code"`
	CampaignName        string     `json:"campaign_name"`
	DiscountDescription string     `json:"discount_description"`
	Active              bool       `json:"active"`
	Redeemed            bool       `json:"redeemed"`
	RedeemedAt          *time.Time `json:"redeemed_at,omitempty"`
	ExpiresAt           time.Time  `json:"expires_at"`
	IssuedAt            time.Time  `json:"issued_at"`
}

type CartItemView struct {
	VariantID      uuid.UUID `json:"variant_id"`
	CategoryID     uuid.UUID `json:"category_id"`
	SKU            string    `json:"sku"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int32     `json:"quantity"`
	SubtotalCents  int64     `json:"subtotal_cents"`
}

type CartView struct {
	UserID     uuid.UUID      `json:"user_id"`
	Items      []CartItemView `json:"items"`
	TotalCents int64          `json:"total_cents"`
}

type AddressView struct {
	ID          uuid.UUID `json:"id"`
	Label       string    `json:"label"`
	Recipient   string    `json:"recipient"`
	Line1       string    `json:"line1"`
	Line2       *string   `json:"line2,omitempty"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postal_code"`
	CountryCode string    `json:"country_code"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AuditEntryView struct {
	ID        uuid.UUID `json:"id"`
	ActorID   uuid.UUID `json:"actor_id"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Group    string    `json:"group"`
	IsActive bool      `json:"is_active"`
}
