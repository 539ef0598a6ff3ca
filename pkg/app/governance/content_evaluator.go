package governance

import (
	"context"

	"github.com/DoisLONG/GenAIStudio/pkg/app/language"
	"github.com/DoisLONG/GenAIStudio/pkg/app/policy"
	domainGovernance "github.com/DoisLONG/GenAIStudio/pkg/domain/governance"
	"github.com/DoisLONG/GenAIStudio/pkg/domain/tenant"
	"github.com/DoisLONG/GenAIStudio/pkg/handlers/http/request"
	"github.com/DoisLONG/GenAIStudio/pkg/handlers/http/response"
	"github.com/DoisLONG/GenAIStudio/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=ContentEvaluator --dir=. --output=./mocks --filename=content_evaluator_mock.go --case=underscore --with-expecter
type ContentEvaluator interface {
	Evaluate(ctx context.Context, req *request.PolicyEvaluationRequest) (*response.PolicyEvaluationOutput, error)
}

type contentEvaluator struct {
	logger     *logrus.Logger
	tenantRepo tenant.Repository
	resolver   language.Resolver
	evaluator  policy.Evaluator
	eventLog   domainGovernance.EventLog
}

func NewContentEvaluator(
	logger *logrus.Logger,
	tenantRepo tenant.Repository,
	resolver language.Resolver,
	evaluator policy.Evaluator,
	eventLog domainGovernance.EventLog,
) ContentEvaluator {
	return &contentEvaluator{
		logger:     logger,
		tenantRepo: tenantRepo,
		resolver:   resolver,
		evaluator:  evaluator,
		eventLog:   eventLog,
	}
}

// Evaluate runs the tenant's keyword policy over the content and records a
// blocked or allowed event. An unknown tenant aborts before any event is
// appended.
func (s *contentEvaluator) Evaluate(
	ctx context.Context,
	req *request.PolicyEvaluationRequest,
) (*response.PolicyEvaluationOutput, error) {
	cfg, err := s.tenantRepo.Get(ctx, req.TenantID)
	if err != nil {
		s.logger.WithError(err).WithField("tenant_id", req.TenantID).Warn("tenant lookup failed")
		return nil, err
	}

	lang := s.resolver.Resolve(req.Language, cfg)
	verdict := s.evaluator.Evaluate(req.Content, cfg)

	eventType := domainGovernance.EventTypeAllowed
	if !verdict.Allowed {
		eventType = domainGovernance.EventTypeBlocked
	}

	region := req.Region
	if region == "" {
		region = cfg.RegionCode
	}

	event := domainGovernance.NewGovernanceEvent(
		req.TenantID,
		region,
		lang,
		eventType,
		map[string]any{"matched_rules": verdict.MatchedRules},
	)
	s.eventLog.Append(event)
	prometheus.GovernanceEventsTotal.WithLabelValues(req.TenantID, eventType).Inc()

	if !verdict.Allowed {
		prometheus.PolicyBlockedTotal.WithLabelValues(req.TenantID).Inc()
		s.logger.WithFields(logrus.Fields{
			"tenant_id":     req.TenantID,
			"matched_rules": verdict.MatchedRules,
		}).Warn("content blocked by keyword policy")
	}

	return &response.PolicyEvaluationOutput{
		Allowed:      verdict.Allowed,
		Reasons:      verdict.Reasons,
		MatchedRules: verdict.MatchedRules,
	}, nil
}
