package errs

import "errors"

// Domain-specific sentinel errors shared between usecase layers and handlers
var (
	// Catalog errors
	ErrVariantNotFound  = errors.New("variant not found")
	ErrInvalidPackValue = errors.New("invalid pack value")
	ErrBaseUnitNotFound = errors.New("base unit not found for pack variant")

	// Inventory errors
	ErrNoInventoryRecord  = errors.New("no inventory record for variant")
	ErrInvalidVariantType = errors.New("variant does not own inventory")
	ErrDuplicateInventory = errors.New("inventory record already exists")
	ErrNegativeStock      = errors.New("stock quantity cannot go below zero")

	// Coupon errors
	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponRejected = errors.New("coupon rejected")

	// Cart errors
	ErrCartItemNotFound = errors.New("cart item not found")

	// Address errors
	ErrAddressNotFound = errors.New("address not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
