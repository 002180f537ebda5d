package catalog

import (
	"github.com/google/uuid"
)

// Option is a single key/value pair on a variant as the catalog stores it,
// e.g. {type: "color", value: "red"} or {type: "pack", value: "6"}.
type Option struct {
	Type  string
	Value string
}

// OptionSet is the per-variant mapping from option type to option value,
// built once per lookup instead of scanning the option list repeatedly.
type OptionSet map[string]string

func NewOptionSet(options []Option) OptionSet {
	set := make(OptionSet, len(options))
	for _, o := range options {
		set[o.Type] = o.Value
	}
	return set
}

// WithoutPack returns a copy of the set with the pack option removed.
func (s OptionSet) WithoutPack() OptionSet {
	out := make(OptionSet, len(s))
	for k, v := range s {
		if k == OptionTypePack {
			continue
		}
		out[k] = v
	}
	return out
}

// Equal reports order-independent equality of option type/value pairs.
func (s OptionSet) Equal(other OptionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Variant is a read-only view of a catalog entry. Variants belong to a
// product; sibling variants share the product id.
type Variant struct {
	id         uuid.UUID
	productID  uuid.UUID
	categoryID uuid.UUID
	sku        string
	priceCents int64
	options    OptionSet
}

func NewVariant(id, productID, categoryID uuid.UUID, sku string, priceCents int64, options []Option) *Variant {
	return &Variant{
		id:         id,
		productID:  productID,
		categoryID: categoryID,
		sku:        sku,
		priceCents: priceCents,
		options:    NewOptionSet(options),
	}
}

func (v *Variant) ID() uuid.UUID         { return v.id }
func (v *Variant) ProductID() uuid.UUID  { return v.productID }
func (v *Variant) CategoryID() uuid.UUID { return v.categoryID }
func (v *Variant) SKU() string           { return v.sku }
func (v *Variant) PriceCents() int64     { return v.priceCents }
func (v *Variant) Options() OptionSet    { return v.options }
