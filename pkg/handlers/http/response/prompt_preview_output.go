package response

type PromptPreviewOutput struct {
	RewrittenPrompt string   `json:"rewritten_prompt"`
	TargetLanguage  string   `json:"target_language"`
	AppliedPolicies []string `json:"applied_policies"`
	Warnings        []string `json:"warnings"`
}
