package catalog

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidPackValue = errors.New("pack option value must be a positive integer")
	ErrBaseUnitNotFound = errors.New("no base unit variant matches this pack")
	ErrNotAPack         = errors.New("variant is not a pack")
)

// OptionTypePack marks the option that turns a variant into a bundle of N
// base units.
const OptionTypePack = "pack"

// PackSpec is the result of classifying a variant. A base unit always has
// multiplier 1; a pack has multiplier N > 1 and derives its stock from the
// matching base unit.
type PackSpec struct {
	IsBaseUnit bool
	Multiplier int
}

// Classify inspects the variant's options. No pack option, or a pack value of
// exactly 1, means base unit. Anything that does not parse to a positive
// integer is rejected rather than silently treated as 1.
func (v *Variant) Classify() (PackSpec, error) {
	raw, ok := v.options[OptionTypePack]
	if !ok {
		return PackSpec{IsBaseUnit: true, Multiplier: 1}, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return PackSpec{}, ErrInvalidPackValue
	}
	if n == 1 {
		return PackSpec{IsBaseUnit: true, Multiplier: 1}, nil
	}
	return PackSpec{IsBaseUnit: false, Multiplier: n}, nil
}

// IsBaseUnit is a convenience wrapper around Classify for callers that only
// need the boolean and already validated the variant.
func (v *Variant) IsBaseUnit() bool {
	spec, err := v.Classify()
	return err == nil && spec.IsBaseUnit
}

// ResolveBaseUnit finds the base-unit sibling whose option set matches the
// pack variant's options with the pack option removed from both sides.
// Siblings must already exclude the pack variant itself. The first match in
// sibling order wins, so the result is deterministic for a given sibling set.
func ResolveBaseUnit(pack *Variant, siblings []*Variant) (*Variant, error) {
	spec, err := pack.Classify()
	if err != nil {
		return nil, err
	}
	if spec.IsBaseUnit {
		return nil, ErrNotAPack
	}

	want := pack.Options().WithoutPack()
	for _, candidate := range siblings {
		candidateSpec, err := candidate.Classify()
		if err != nil || !candidateSpec.IsBaseUnit {
			continue
		}
		if candidate.Options().WithoutPack().Equal(want) {
			return candidate, nil
		}
	}
	return nil, ErrBaseUnitNotFound
}

// ComputePackStock derives the sellable pack quantity from the base unit's
// physical stock. Integer division floors the result so partial packs are
// never reported as available.
func ComputePackStock(baseUnitStock int64, multiplier int) int64 {
	if multiplier <= 0 || baseUnitStock <= 0 {
		return 0
	}
	return baseUnitStock / int64(multiplier)
}
