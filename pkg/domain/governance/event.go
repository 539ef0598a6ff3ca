package governance

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypePromptPreview = "prompt_preview"
	EventTypeBlocked       = "blocked"
	EventTypeAllowed       = "allowed"
)

// GovernanceEvent is an immutable audit record of one governance decision
// or an externally submitted occurrence. Freeform event types are accepted
// through the generic ingestion path.
type GovernanceEvent struct {
	ID        uuid.UUID      `json:"id"`
	TenantID  string         `json:"tenant_id"`
	Region    string         `json:"region"`
	Language  string         `json:"language"`
	EventType string         `json:"event_type"`
	CreatedAt time.Time      `json:"created_at"`
	Payload   map[string]any `json:"payload"`
}

// NewGovernanceEvent builds an event with a fresh ID and creation timestamp.
func NewGovernanceEvent(tenantID, region, language, eventType string, payload map[string]any) *GovernanceEvent {
	if payload == nil {
		payload = map[string]any{}
	}
	return &GovernanceEvent{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Region:    region,
		Language:  language,
		EventType: eventType,
		CreatedAt: time.Now().UTC(),
		Payload:   payload,
	}
}
