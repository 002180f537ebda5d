package queries

import (
	"context"
)

type AuditReader interface {
	ListRecent(ctx context.Context, limit, offset int32) ([]*AuditEntryView, error)
}

type AuditQueries interface {
	ListEntries(ctx context.Context, limit, offset int) ([]*AuditEntryView, error)
}

type auditQueriesImpl struct {
	audit AuditReader
}

func NewAuditQueries(audit AuditReader) AuditQueries {
	return &auditQueriesImpl{audit: audit}
}

func (q *auditQueriesImpl) ListEntries(ctx context.Context, limit, offset int) ([]*AuditEntryView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return q.audit.ListRecent(ctx, int32(limit), int32(offset))
}
