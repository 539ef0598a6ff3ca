package request

type CreateEventRequest struct {
	TenantID  string         `json:"tenant_id" binding:"required"`
	Region    string         `json:"region"`
	Language  string         `json:"language"`
	EventType string         `json:"event_type" binding:"required"`
	Payload   map[string]any `json:"payload"`
}
