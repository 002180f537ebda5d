package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeQuantity = errors.New("stock quantity cannot be negative")
	ErrNegativeMinimum  = errors.New("minimum stock cannot be negative")
)

// Record holds the physical stock for a single base-unit variant. Packs never
// own a record; their stock is derived at read time.
type Record struct {
	id           uuid.UUID
	variantID    uuid.UUID
	quantity     int64
	minimumStock int64
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRecord(variantID uuid.UUID, quantity, minimumStock int64) (*Record, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if minimumStock < 0 {
		return nil, ErrNegativeMinimum
	}
	return &Record{
		id:           uuid.New(),
		variantID:    variantID,
		quantity:     quantity,
		minimumStock: minimumStock,
	}, nil
}

// Rehydrate rebuilds a record from storage without re-validating invariants
// the database already enforces.
func Rehydrate(id, variantID uuid.UUID, quantity, minimumStock int64, createdAt, updatedAt time.Time) *Record {
	return &Record{
		id:           id,
		variantID:    variantID,
		quantity:     quantity,
		minimumStock: minimumStock,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Adjust applies a signed delta to the physical quantity. The result may not
// go below zero.
func (r *Record) Adjust(delta int64) error {
	next := r.quantity + delta
	if next < 0 {
		return ErrNegativeQuantity
	}
	r.quantity = next
	return nil
}

func (r *Record) BelowMinimum() bool {
	return r.quantity < r.minimumStock
}

func (r *Record) ID() uuid.UUID        { return r.id }
func (r *Record) VariantID() uuid.UUID { return r.variantID }
func (r *Record) Quantity() int64      { return r.quantity }
func (r *Record) MinimumStock() int64  { return r.minimumStock }
func (r *Record) CreatedAt() time.Time { return r.createdAt }
func (r *Record) UpdatedAt() time.Time { return r.updatedAt }
