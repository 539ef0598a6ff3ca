package config

import (
	"github.com/DoisLONG/GenAIStudio/pkg/domain/tenant"
)

type TenantsConfig struct {
	Tenants map[string]TenantConfig `mapstructure:"tenants"`
}

type TenantConfig struct {
	RegionCode          string   `mapstructure:"region_code"`
	DefaultLanguage     string   `mapstructure:"default_language"`
	AllowedLanguages    []string `mapstructure:"allowed_languages"`
	BlockedKeywords     []string `mapstructure:"blocked_keywords"`
	HallucinationNotice bool     `mapstructure:"hallucination_notice"`
	PIIStrict           bool     `mapstructure:"pii_strict"`
}

// RegionConfigs converts the raw tenant configuration into the domain
// registry shape consumed by the tenant repository.
func (c TenantsConfig) RegionConfigs() map[string]*tenant.RegionConfig {
	configs := make(map[string]*tenant.RegionConfig, len(c.Tenants))
	for id, tc := range c.Tenants {
		configs[id] = &tenant.RegionConfig{
			RegionCode:          tc.RegionCode,
			DefaultLanguage:     tc.DefaultLanguage,
			AllowedLanguages:    tc.AllowedLanguages,
			BlockedKeywords:     tc.BlockedKeywords,
			HallucinationNotice: tc.HallucinationNotice,
			PIIStrict:           tc.PIIStrict,
		}
	}
	return configs
}

// DefaultTenants returns the built-in demo registry used when no tenants
// file is provided.
func DefaultTenants() TenantsConfig {
	return TenantsConfig{
		Tenants: map[string]TenantConfig{
			"demo-tenant-cn": {
				RegionCode:          "cn",
				DefaultLanguage:     "zh-CN",
				AllowedLanguages:    []string{"zh-CN", "en-US", "th-TH"},
				BlockedKeywords:     []string{"政治敏感", "违法犯罪"},
				HallucinationNotice: true,
				PIIStrict:           true,
			},
			"demo-tenant-eu": {
				RegionCode:          "eu",
				DefaultLanguage:     "en-US",
				AllowedLanguages:    []string{"en-US", "de-DE", "fr-FR"},
				BlockedKeywords:     []string{"hate speech", "terrorism"},
				HallucinationNotice: true,
				PIIStrict:           true,
			},
		},
	}
}
