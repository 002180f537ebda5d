package cart

import (
	"github.com/google/uuid"
)

// Item is one line of a cart snapshot. UnitPriceCents is the price captured
// when the item was added, not a live catalog lookup.
type Item struct {
	VariantID      uuid.UUID
	CategoryID     uuid.UUID
	SKU            string
	UnitPriceCents int64
	Quantity       int32
}

func (i Item) SubtotalCents() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}

// Snapshot is the read-only cart state coupon evaluation and checkout run
// against.
type Snapshot struct {
	UserID uuid.UUID
	Items  []Item
}

func (s Snapshot) TotalCents() int64 {
	var total int64
	for _, item := range s.Items {
		total += item.SubtotalCents()
	}
	return total
}

func (s Snapshot) IsEmpty() bool {
	return len(s.Items) == 0
}
