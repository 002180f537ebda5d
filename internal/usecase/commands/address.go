package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type AddressCommands interface {
	Create(ctx context.Context, userID uuid.UUID, addr NewAddress) (uuid.UUID, error)
	Update(ctx context.Context, userID, addressID uuid.UUID, addr NewAddress) error
	Delete(ctx context.Context, userID, addressID uuid.UUID) error
}

type addressCommandsImpl struct {
	addresses AddressRepository
	audit     AuditRepository
}

func NewAddressCommands(addresses AddressRepository, audit AuditRepository) AddressCommands {
	return &addressCommandsImpl{addresses: addresses, audit: audit}
}

func (c *addressCommandsImpl) Create(ctx context.Context, userID uuid.UUID, addr NewAddress) (uuid.UUID, error) {
	id, err := c.addresses.Create(ctx, userID, addr)
	if err != nil {
		return uuid.Nil, err
	}
	c.recordAudit(ctx, AuditEntry{ActorID: userID, Action: "address.create", Subject: id.String()})
	return id, nil
}

func (c *addressCommandsImpl) Update(ctx context.Context, userID, addressID uuid.UUID, addr NewAddress) error {
	if err := c.addresses.Update(ctx, userID, addressID, addr); err != nil {
		return err
	}
	c.recordAudit(ctx, AuditEntry{ActorID: userID, Action: "address.update", Subject: addressID.String()})
	return nil
}

func (c *addressCommandsImpl) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	if err := c.addresses.Delete(ctx, userID, addressID); err != nil {
		return err
	}
	c.recordAudit(ctx, AuditEntry{ActorID: userID, Action: "address.delete", Subject: addressID.String()})
	return nil
}

func (c *addressCommandsImpl) recordAudit(ctx context.Context, entry AuditEntry) {
	if err := c.audit.Record(ctx, entry); err != nil {
		slog.Warn("failed to record audit entry",
			"action", entry.Action,
			"subject", entry.Subject,
			"error", err)
	}
}
