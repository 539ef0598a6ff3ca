package governance

import (
	"context"

	"github.com/DoisLONG/GenAIStudio/pkg/app/language"
	"github.com/DoisLONG/GenAIStudio/pkg/app/prompt"
	domainGovernance "github.com/DoisLONG/GenAIStudio/pkg/domain/governance"
	"github.com/DoisLONG/GenAIStudio/pkg/domain/tenant"
	"github.com/DoisLONG/GenAIStudio/pkg/handlers/http/request"
	"github.com/DoisLONG/GenAIStudio/pkg/handlers/http/response"
	"github.com/DoisLONG/GenAIStudio/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=PromptPreviewer --dir=. --output=./mocks --filename=prompt_previewer_mock.go --case=underscore --with-expecter
type PromptPreviewer interface {
	Preview(ctx context.Context, req *request.PromptPreviewRequest) (*response.PromptPreviewOutput, error)
}

type promptPreviewer struct {
	logger     *logrus.Logger
	tenantRepo tenant.Repository
	resolver   language.Resolver
	governor   prompt.Governor
	eventLog   domainGovernance.EventLog
}

func NewPromptPreviewer(
	logger *logrus.Logger,
	tenantRepo tenant.Repository,
	resolver language.Resolver,
	governor prompt.Governor,
	eventLog domainGovernance.EventLog,
) PromptPreviewer {
	return &promptPreviewer{
		logger:     logger,
		tenantRepo: tenantRepo,
		resolver:   resolver,
		governor:   governor,
		eventLog:   eventLog,
	}
}

// Preview rewrites the raw prompt for the tenant's governance rules and
// records a prompt_preview event. An unknown tenant aborts the operation
// before any event is appended.
func (s *promptPreviewer) Preview(
	ctx context.Context,
	req *request.PromptPreviewRequest,
) (*response.PromptPreviewOutput, error) {
	cfg, err := s.tenantRepo.Get(ctx, req.TenantID)
	if err != nil {
		s.logger.WithError(err).WithField("tenant_id", req.TenantID).Warn("tenant lookup failed")
		return nil, err
	}

	targetLanguage := s.resolver.Resolve(req.Language, cfg)
	result := s.governor.Wrap(req.RawPrompt, targetLanguage, cfg)

	region := req.Region
	if region == "" {
		region = cfg.RegionCode
	}

	event := domainGovernance.NewGovernanceEvent(
		req.TenantID,
		region,
		targetLanguage,
		domainGovernance.EventTypePromptPreview,
		map[string]any{"task_type": req.TaskType},
	)
	s.eventLog.Append(event)
	prometheus.GovernanceEventsTotal.WithLabelValues(req.TenantID, event.EventType).Inc()

	s.logger.WithFields(logrus.Fields{
		"tenant_id":        req.TenantID,
		"target_language":  targetLanguage,
		"applied_policies": result.AppliedPolicies,
	}).Info("prompt preview generated")

	return &response.PromptPreviewOutput{
		RewrittenPrompt: result.RewrittenPrompt,
		TargetLanguage:  targetLanguage,
		AppliedPolicies: result.AppliedPolicies,
		Warnings:        result.Warnings,
	}, nil
}
