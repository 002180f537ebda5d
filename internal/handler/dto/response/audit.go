package response

import (
	"time"

	"storefront-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AuditEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	ActorID   uuid.UUID `json:"actor_id"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAuditEntryViews(views []*queries.AuditEntryView) ([]*AuditEntryResponse, error) {
	responses := make([]*AuditEntryResponse, 0, len(views))
	for _, view := range views {
		var resp AuditEntryResponse
		if err := copier.Copy(&resp, view); err != nil {
			return nil, err
		}
		responses = append(responses, &resp)
	}
	return responses, nil
}
