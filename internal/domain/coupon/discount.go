package coupon

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDiscountAmount  = errors.New("discount amount must be positive")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

// Discount is the campaign's discount rule. Exactly two shapes exist:
// a percentage with an optional cap, and a fixed amount. Both compute against
// the applicable portion of the cart, never the raw cart total.
type Discount interface {
	// AmountFor returns the discount in cents for the given applicable amount.
	AmountFor(applicableCents int64) int64
	Describe() string
}

type PercentageDiscount struct {
	percent          float64
	maxDiscountCents int64 // 0 means uncapped
}

func NewPercentageDiscount(percent float64, maxDiscountCents int64) (PercentageDiscount, error) {
	if percent <= 0 || percent > 100 {
		return PercentageDiscount{}, ErrInvalidDiscountPercent
	}
	if maxDiscountCents < 0 {
		return PercentageDiscount{}, ErrInvalidDiscountAmount
	}
	return PercentageDiscount{percent: percent, maxDiscountCents: maxDiscountCents}, nil
}

func (d PercentageDiscount) AmountFor(applicableCents int64) int64 {
	amount := int64(float64(applicableCents) * d.percent / 100.0)
	if d.maxDiscountCents > 0 && amount > d.maxDiscountCents {
		return d.maxDiscountCents
	}
	return amount
}

func (d PercentageDiscount) Describe() string {
	if d.maxDiscountCents > 0 {
		return fmt.Sprintf("%.0f%% off (up to %d)", d.percent, d.maxDiscountCents)
	}
	return fmt.Sprintf("%.0f%% off", d.percent)
}

func (d PercentageDiscount) Percent() float64        { return d.percent }
func (d PercentageDiscount) MaxDiscountCents() int64 { return d.maxDiscountCents }

type FixedDiscount struct {
	amountCents int64
}

func NewFixedDiscount(amountCents int64) (FixedDiscount, error) {
	if amountCents <= 0 {
		return FixedDiscount{}, ErrInvalidDiscountAmount
	}
	return FixedDiscount{amountCents: amountCents}, nil
}

func (d FixedDiscount) AmountFor(applicableCents int64) int64 {
	if d.amountCents > applicableCents {
		return applicableCents
	}
	return d.amountCents
}

func (d FixedDiscount) Describe() string {
	return fmt.Sprintf("%d off", d.amountCents)
}

func (d FixedDiscount) AmountCents() int64 { return d.amountCents }
