package tenant

// RegionConfig holds the governance settings of a single tenant. It is
// loaded once at startup and never mutated afterwards.
type RegionConfig struct {
	RegionCode          string   `json:"region_code" mapstructure:"region_code"`
	DefaultLanguage     string   `json:"default_language" mapstructure:"default_language"`
	AllowedLanguages    []string `json:"allowed_languages" mapstructure:"allowed_languages"`
	BlockedKeywords     []string `json:"blocked_keywords" mapstructure:"blocked_keywords"`
	HallucinationNotice bool     `json:"hallucination_notice" mapstructure:"hallucination_notice"`
	PIIStrict           bool     `json:"pii_strict" mapstructure:"pii_strict"`
}

// AllowsLanguage reports whether lang is an exact member of the tenant's
// allowed language list. No normalization: "zh" does not match "zh-CN".
func (c *RegionConfig) AllowsLanguage(lang string) bool {
	for _, allowed := range c.AllowedLanguages {
		if allowed == lang {
			return true
		}
	}
	return false
}
