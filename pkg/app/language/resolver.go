package language

import (
	"github.com/DoisLONG/GenAIStudio/pkg/domain/tenant"
)

//go:generate mockery --name=Resolver --dir=. --output=./mocks --filename=language_resolver_mock.go --case=underscore --with-expecter
type Resolver interface {
	Resolve(requested string, cfg *tenant.RegionConfig) string
}

type resolver struct{}

func NewResolver() Resolver {
	return &resolver{}
}

// Resolve picks the effective response language. A requested language is
// honored only when it is an exact member of the tenant's allow-list;
// anything else, including an empty request, falls back to the tenant
// default. Automatic language detection is a future concern and is
// deliberately not attempted here.
func (r *resolver) Resolve(requested string, cfg *tenant.RegionConfig) string {
	if requested != "" && cfg.AllowsLanguage(requested) {
		return requested
	}
	return cfg.DefaultLanguage
}
