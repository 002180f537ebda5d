package repository

import (
	"context"

	"storefront-api/internal/infra"
	"storefront-api/internal/infra/db"
	"storefront-api/internal/usecase/commands"
	"storefront-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const insertAuditEntryQuery = `
INSERT INTO audit_log (id, actor_id, action, subject, detail)
VALUES ($1, $2, $3, $4, $5)`

const listAuditEntriesQuery = `
SELECT id, actor_id, action, subject, detail, created_at
FROM audit_log
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

type AuditRepository struct {
	db db.DBTX
}

func NewAuditRepository(conn db.DBTX) *AuditRepository {
	return &AuditRepository{db: conn}
}

func (r *AuditRepository) Record(ctx context.Context, entry commands.AuditEntry) error {
	_, err := r.db.Exec(ctx, insertAuditEntryQuery,
		uuid.New(), entry.ActorID, entry.Action, entry.Subject, entry.Detail)
	if err != nil {
		return infra.WrapRepoErr("failed to record audit entry", err)
	}
	return nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit, offset int32) ([]*queries.AuditEntryView, error) {
	rows, err := r.db.Query(ctx, listAuditEntriesQuery, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit entries", err)
	}
	defer rows.Close()

	var views []*queries.AuditEntryView
	for rows.Next() {
		var view queries.AuditEntryView
		if err := rows.Scan(&view.ID, &view.ActorID, &view.Action,
			&view.Subject, &view.Detail, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan audit row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read audit rows", err)
	}
	return views, nil
}
