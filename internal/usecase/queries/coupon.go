package queries

import (
	"context"

	"github.com/google/uuid"
)

type CouponBindingReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*CouponBindingView, error)
}

type CouponQueries interface {
	ListUserCoupons(ctx context.Context, userID uuid.UUID) ([]*CouponBindingView, error)
}

type couponQueriesImpl struct {
	bindings CouponBindingReader
}

func NewCouponQueries(bindings CouponBindingReader) CouponQueries {
	return &couponQueriesImpl{bindings: bindings}
}

func (q *couponQueriesImpl) ListUserCoupons(ctx context.Context, userID uuid.UUID) ([]*CouponBindingView, error) {
	return q.bindings.ListByUser(ctx, userID)
}
