package coupon

import (
	"errors"
	"time"

	"storefront-api/internal/domain/cart"

	"github.com/google/uuid"
)

var ErrMissingDiscount = errors.New("campaign requires a discount rule")

// Campaign is a coupon promotion definition: discount rule, scoping
// allow-lists, eligibility criteria, and validity window. An empty pair of
// allow-lists means the whole cart is applicable.
type Campaign struct {
	id                    uuid.UUID
	name                  string
	active                bool
	discount              Discount
	minPurchaseCents      int64
	applicableCategoryIDs []uuid.UUID
	applicableVariantIDs  []uuid.UUID
	criteria              []Criterion
	validFrom             *time.Time
	validTo               *time.Time
}

func NewCampaign(
	id uuid.UUID,
	name string,
	active bool,
	discount Discount,
	minPurchaseCents int64,
	applicableCategoryIDs, applicableVariantIDs []uuid.UUID,
	criteria []Criterion,
	validFrom, validTo *time.Time,
) (*Campaign, error) {
	if discount == nil {
		return nil, ErrMissingDiscount
	}
	return &Campaign{
		id:                    id,
		name:                  name,
		active:                active,
		discount:              discount,
		minPurchaseCents:      minPurchaseCents,
		applicableCategoryIDs: applicableCategoryIDs,
		applicableVariantIDs:  applicableVariantIDs,
		criteria:              criteria,
		validFrom:             validFrom,
		validTo:               validTo,
	}, nil
}

func (c *Campaign) ValidAt(t time.Time) bool {
	if !c.active {
		return false
	}
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return false
	}
	if c.validTo != nil && t.After(*c.validTo) {
		return false
	}
	return true
}

// AppliesToEntireCart reports whether the campaign carries no scoping at all.
func (c *Campaign) AppliesToEntireCart() bool {
	return len(c.applicableCategoryIDs) == 0 && len(c.applicableVariantIDs) == 0
}

// ApplicableItems filters the cart down to the line items the campaign's
// allow-lists cover. An item qualifies if its variant is listed or its
// category is listed; variant match is checked first per item.
func (c *Campaign) ApplicableItems(snapshot cart.Snapshot) []cart.Item {
	if c.AppliesToEntireCart() {
		return snapshot.Items
	}

	variantSet := make(map[uuid.UUID]struct{}, len(c.applicableVariantIDs))
	for _, id := range c.applicableVariantIDs {
		variantSet[id] = struct{}{}
	}
	categorySet := make(map[uuid.UUID]struct{}, len(c.applicableCategoryIDs))
	for _, id := range c.applicableCategoryIDs {
		categorySet[id] = struct{}{}
	}

	var applicable []cart.Item
	for _, item := range snapshot.Items {
		if _, ok := variantSet[item.VariantID]; ok {
			applicable = append(applicable, item)
			continue
		}
		if _, ok := categorySet[item.CategoryID]; ok {
			applicable = append(applicable, item)
		}
	}
	return applicable
}

func (c *Campaign) ID() uuid.UUID           { return c.id }
func (c *Campaign) Name() string            { return c.name }
func (c *Campaign) Active() bool            { return c.active }
func (c *Campaign) Discount() Discount      { return c.discount }
func (c *Campaign) MinPurchaseCents() int64 { return c.minPurchaseCents }
func (c *Campaign) Criteria() []Criterion   { return c.criteria }
func (c *Campaign) ValidFrom() *time.Time   { return c.validFrom }
func (c *Campaign) ValidTo() *time.Time     { return c.validTo }

func (c *Campaign) ApplicableCategoryIDs() []uuid.UUID { return c.applicableCategoryIDs }
func (c *Campaign) ApplicableVariantIDs() []uuid.UUID  { return c.applicableVariantIDs }
