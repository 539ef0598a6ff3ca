package response

type PolicyEvaluationOutput struct {
	Allowed      bool     `json:"allowed"`
	Reasons      []string `json:"reasons"`
	MatchedRules []string `json:"matched_rules"`
}
