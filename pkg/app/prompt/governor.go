package prompt

import (
	"fmt"
	"strings"

	"github.com/DoisLONG/GenAIStudio/pkg/domain/tenant"
)

const (
	PolicyLanguageHint        = "language_hint"
	PolicyHallucinationNotice = "hallucination_notice"
	PolicyPIIStrict           = "pii_strict"
)

// languageDirectives is evaluated in order; the first prefix match wins.
var languageDirectives = []struct {
	prefix    string
	directive string
}{
	{"zh", "请使用简体中文回答用户问题。"},
	{"en", "Please answer the user in English."},
	{"th", "กรุณาตอบเป็นภาษาไทย"},
}

// hallucinationWarnings has no "th" entry: Thai gets its own language
// directive but shares the generic warning.
var hallucinationWarnings = []struct {
	prefix  string
	warning string
}{
	{"zh", "本回答由大模型生成，可能存在不准确或过期信息，请结合实际业务进行判断。"},
	{"en", "This answer is generated by a large language model and may contain inaccuracies. " +
		"Please verify before applying to production."},
}

const genericWarning = "This answer is generated by an AI model and may be inaccurate. " +
	"Please verify before using it in critical scenarios."

// Result carries the rewritten prompt together with the policy tags that
// were applied and any user-visible warnings.
type Result struct {
	RewrittenPrompt string
	AppliedPolicies []string
	Warnings        []string
}

//go:generate mockery --name=Governor --dir=. --output=./mocks --filename=prompt_governor_mock.go --case=underscore --with-expecter
type Governor interface {
	Wrap(rawPrompt string, targetLanguage string, cfg *tenant.RegionConfig) Result
}

type governor struct{}

func NewGovernor() Governor {
	return &governor{}
}

// Wrap prepends the language directive for targetLanguage to the raw prompt
// and records the governance tags mandated by the tenant config. The raw
// prompt is carried verbatim, never truncated or escaped.
func (g *governor) Wrap(rawPrompt string, targetLanguage string, cfg *tenant.RegionConfig) Result {
	res := Result{
		AppliedPolicies: []string{PolicyLanguageHint},
		Warnings:        []string{},
	}

	directive := fmt.Sprintf("Please answer in language: %s.", targetLanguage)
	for _, d := range languageDirectives {
		if strings.HasPrefix(targetLanguage, d.prefix) {
			directive = d.directive
			break
		}
	}

	if cfg.HallucinationNotice {
		warning := genericWarning
		for _, w := range hallucinationWarnings {
			if strings.HasPrefix(targetLanguage, w.prefix) {
				warning = w.warning
				break
			}
		}
		res.Warnings = append(res.Warnings, warning)
		res.AppliedPolicies = append(res.AppliedPolicies, PolicyHallucinationNotice)
	}

	if cfg.PIIStrict {
		res.AppliedPolicies = append(res.AppliedPolicies, PolicyPIIStrict)
	}

	res.RewrittenPrompt = fmt.Sprintf("%s\n\n%s", directive, rawPrompt)
	return res
}
