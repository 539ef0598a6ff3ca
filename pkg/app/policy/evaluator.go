package policy

import (
	"fmt"
	"strings"

	"github.com/DoisLONG/GenAIStudio/pkg/domain/tenant"
)

// Verdict is the outcome of a keyword policy check.
type Verdict struct {
	Allowed      bool
	Reasons      []string
	MatchedRules []string
}

//go:generate mockery --name=Evaluator --dir=. --output=./mocks --filename=policy_evaluator_mock.go --case=underscore --with-expecter
type Evaluator interface {
	Evaluate(content string, cfg *tenant.RegionConfig) Verdict
}

type evaluator struct{}

func NewEvaluator() Evaluator {
	return &evaluator{}
}

// Evaluate runs a literal, case-insensitive substring scan of content
// against the tenant's blocked keywords, in list order. Duplicate keywords
// in the config produce duplicate matches. There is no scoring, weighting
// or word-boundary logic.
func (e *evaluator) Evaluate(content string, cfg *tenant.RegionConfig) Verdict {
	lower := strings.ToLower(content)

	var matched []string
	for _, kw := range cfg.BlockedKeywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}

	if len(matched) > 0 {
		return Verdict{
			Allowed:      false,
			Reasons:      []string{fmt.Sprintf("blocked keywords matched: %s", strings.Join(matched, ", "))},
			MatchedRules: matched,
		}
	}

	return Verdict{
		Allowed:      true,
		Reasons:      []string{},
		MatchedRules: []string{},
	}
}
