package queries

import (
	"context"

	"github.com/google/uuid"
)

type AddressReader interface {
	FindByID(ctx context.Context, userID, addressID uuid.UUID) (*AddressView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*AddressView, error)
}

type AddressQueries interface {
	GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*AddressView, error)
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*AddressView, error)
}

type addressQueriesImpl struct {
	addresses AddressReader
}

func NewAddressQueries(addresses AddressReader) AddressQueries {
	return &addressQueriesImpl{addresses: addresses}
}

func (q *addressQueriesImpl) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*AddressView, error) {
	return q.addresses.FindByID(ctx, userID, addressID)
}

func (q *addressQueriesImpl) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*AddressView, error) {
	return q.addresses.ListByUser(ctx, userID)
}
