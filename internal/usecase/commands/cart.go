package commands

import (
	"context"

	"storefront-api/internal/domain/cart"
	"storefront-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type CartCommands interface {
	// AddItem puts qty of a variant in the user's cart, capturing the current
	// catalog price. Adding an existing variant replaces its quantity.
	AddItem(ctx context.Context, userID, variantID uuid.UUID, quantity int32) error
	RemoveItem(ctx context.Context, userID, variantID uuid.UUID) error
}

type cartCommandsImpl struct {
	carts    CartRepository
	variants VariantRepository
}

func NewCartCommands(carts CartRepository, variants VariantRepository) CartCommands {
	return &cartCommandsImpl{carts: carts, variants: variants}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, userID, variantID uuid.UUID, quantity int32) error {
	if quantity <= 0 {
		return errs.Mark(errs.New("quantity must be positive"), errs.ErrDomainValidation)
	}

	variant, err := c.variants.FindByID(ctx, variantID)
	if err != nil {
		return err
	}

	item := cart.Item{
		VariantID:      variant.ID(),
		CategoryID:     variant.CategoryID(),
		SKU:            variant.SKU(),
		UnitPriceCents: variant.PriceCents(),
		Quantity:       quantity,
	}
	return c.carts.UpsertItem(ctx, userID, item)
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, userID, variantID uuid.UUID) error {
	return c.carts.RemoveItem(ctx, userID, variantID)
}
