package request

type PromptPreviewRequest struct {
	TenantID  string `json:"tenant_id" binding:"required"`
	Region    string `json:"region"`
	Language  string `json:"language"`
	RawPrompt string `json:"raw_prompt" binding:"required"`
	TaskType  string `json:"task_type"`
}
