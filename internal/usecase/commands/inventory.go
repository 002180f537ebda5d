package commands

import (
	"context"
	"fmt"
	"log/slog"

	"storefront-api/internal/domain/inventory"
	"storefront-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateInventoryResult struct {
	RecordID  uuid.UUID
	VariantID uuid.UUID
	Quantity  int64
}

type AdjustStockResult struct {
	VariantID uuid.UUID
	Quantity  int64
}

type InventoryCommands interface {
	// CreateInventory opens a stock record for a base-unit variant. Packs are
	// rejected; their stock is always derived.
	CreateInventory(ctx context.Context, actorID, variantID uuid.UUID, initialStock, minimumStock int64) (*CreateInventoryResult, error)
	AdjustStock(ctx context.Context, actorID, variantID uuid.UUID, delta int64) (*AdjustStockResult, error)
}

type inventoryCommandsImpl struct {
	variants  VariantRepository
	inventory InventoryRepository
	audit     AuditRepository
}

func NewInventoryCommands(
	variants VariantRepository,
	inv InventoryRepository,
	audit AuditRepository,
) InventoryCommands {
	return &inventoryCommandsImpl{
		variants:  variants,
		inventory: inv,
		audit:     audit,
	}
}

func (c *inventoryCommandsImpl) CreateInventory(
	ctx context.Context,
	actorID, variantID uuid.UUID,
	initialStock, minimumStock int64,
) (*CreateInventoryResult, error) {
	variant, err := c.variants.FindByID(ctx, variantID)
	if err != nil {
		return nil, err
	}

	spec, err := variant.Classify()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPackValue)
	}
	if !spec.IsBaseUnit {
		return nil, errs.Mark(
			errs.Newf("variant %s is a pack of %d", variantID, spec.Multiplier),
			errs.ErrInvalidVariantType,
		)
	}

	record, err := inventory.NewRecord(variantID, initialStock, minimumStock)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.inventory.Create(ctx, record); err != nil {
		return nil, err
	}

	c.recordAudit(ctx, AuditEntry{
		ActorID: actorID,
		Action:  "inventory.create",
		Subject: variantID.String(),
		Detail:  fmt.Sprintf("initial_stock=%d minimum=%d", initialStock, minimumStock),
	})

	return &CreateInventoryResult{
		RecordID:  record.ID(),
		VariantID: variantID,
		Quantity:  record.Quantity(),
	}, nil
}

func (c *inventoryCommandsImpl) AdjustStock(
	ctx context.Context,
	actorID, variantID uuid.UUID,
	delta int64,
) (*AdjustStockResult, error) {
	record, err := c.inventory.FindByVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}

	if err := record.Adjust(delta); err != nil {
		return nil, errs.Mark(err, errs.ErrNegativeStock)
	}

	if err := c.inventory.UpdateQuantity(ctx, record.ID(), record.Quantity()); err != nil {
		return nil, err
	}

	c.recordAudit(ctx, AuditEntry{
		ActorID: actorID,
		Action:  "inventory.adjust",
		Subject: variantID.String(),
		Detail:  fmt.Sprintf("delta=%d quantity=%d", delta, record.Quantity()),
	})

	return &AdjustStockResult{
		VariantID: variantID,
		Quantity:  record.Quantity(),
	}, nil
}

func (c *inventoryCommandsImpl) recordAudit(ctx context.Context, entry AuditEntry) {
	if err := c.audit.Record(ctx, entry); err != nil {
		slog.Warn("failed to record audit entry",
			"action", entry.Action,
			"subject", entry.Subject,
			"error", err)
	}
}
