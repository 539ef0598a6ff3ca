package request

type PolicyEvaluationRequest struct {
	TenantID string `json:"tenant_id" binding:"required"`
	Region   string `json:"region"`
	Language string `json:"language"`
	Content  string `json:"content" binding:"required"`
}
