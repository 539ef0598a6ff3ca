package governance_test

import (
	"context"
	"testing"

	appGovernance "github.com/DoisLONG/GenAIStudio/pkg/app/governance"
	"github.com/DoisLONG/GenAIStudio/pkg/app/language"
	"github.com/DoisLONG/GenAIStudio/pkg/app/policy"
	"github.com/DoisLONG/GenAIStudio/pkg/domain"
	domainGovernance "github.com/DoisLONG/GenAIStudio/pkg/domain/governance"
	governanceMocks "github.com/DoisLONG/GenAIStudio/pkg/domain/governance/mocks"
	"github.com/DoisLONG/GenAIStudio/pkg/domain/tenant"
	tenantMocks "github.com/DoisLONG/GenAIStudio/pkg/domain/tenant/mocks"
	"github.com/DoisLONG/GenAIStudio/pkg/handlers/http/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func euTenantConfig() *tenant.RegionConfig {
	return &tenant.RegionConfig{
		RegionCode:          "eu",
		DefaultLanguage:     "en-US",
		AllowedLanguages:    []string{"en-US", "de-DE", "fr-FR"},
		BlockedKeywords:     []string{"hate speech", "terrorism"},
		HallucinationNotice: true,
		PIIStrict:           true,
	}
}

func TestContentEvaluator_Evaluate(t *testing.T) {
	t.Run("blocked content records a blocked event", func(t *testing.T) {
		tenantRepo := new(tenantMocks.Repository)
		eventLog := new(governanceMocks.EventLog)
		tenantRepo.On("Get", mock.Anything, "demo-tenant-eu").Return(euTenantConfig(), nil)

		var appended *domainGovernance.GovernanceEvent
		eventLog.On("Append", mock.Anything).Run(func(args mock.Arguments) {
			appended = args.Get(0).(*domainGovernance.GovernanceEvent)
		}).Return()

		svc := appGovernance.NewContentEvaluator(
			testLogger(), tenantRepo, language.NewResolver(), policy.NewEvaluator(), eventLog,
		)

		output, err := svc.Evaluate(context.Background(), &request.PolicyEvaluationRequest{
			TenantID: "demo-tenant-eu",
			Content:  "this is hate speech content",
		})
		require.NoError(t, err)

		assert.False(t, output.Allowed)
		assert.Equal(t, []string{"hate speech"}, output.MatchedRules)
		require.Len(t, output.Reasons, 1)
		assert.Contains(t, output.Reasons[0], "hate speech")

		require.NotNil(t, appended)
		assert.Equal(t, domainGovernance.EventTypeBlocked, appended.EventType)
		assert.Equal(t, map[string]any{"matched_rules": []string{"hate speech"}}, appended.Payload)
	})

	t.Run("clean content records an allowed event", func(t *testing.T) {
		tenantRepo := new(tenantMocks.Repository)
		eventLog := new(governanceMocks.EventLog)
		tenantRepo.On("Get", mock.Anything, "demo-tenant-eu").Return(euTenantConfig(), nil)

		var appended *domainGovernance.GovernanceEvent
		eventLog.On("Append", mock.Anything).Run(func(args mock.Arguments) {
			appended = args.Get(0).(*domainGovernance.GovernanceEvent)
		}).Return()

		svc := appGovernance.NewContentEvaluator(
			testLogger(), tenantRepo, language.NewResolver(), policy.NewEvaluator(), eventLog,
		)

		output, err := svc.Evaluate(context.Background(), &request.PolicyEvaluationRequest{
			TenantID: "demo-tenant-eu",
			Content:  "please summarize the quarterly report",
			Language: "de-DE",
		})
		require.NoError(t, err)

		assert.True(t, output.Allowed)
		assert.Empty(t, output.Reasons)
		assert.Empty(t, output.MatchedRules)

		require.NotNil(t, appended)
		assert.Equal(t, domainGovernance.EventTypeAllowed, appended.EventType)
		assert.Equal(t, "de-DE", appended.Language)
	})

	t.Run("unknown tenant appends nothing", func(t *testing.T) {
		tenantRepo := new(tenantMocks.Repository)
		eventLog := new(governanceMocks.EventLog)
		tenantRepo.On("Get", mock.Anything, "ghost").
			Return(nil, domain.NewNotFoundError("tenant", "ghost"))

		svc := appGovernance.NewContentEvaluator(
			testLogger(), tenantRepo, language.NewResolver(), policy.NewEvaluator(), eventLog,
		)

		output, err := svc.Evaluate(context.Background(), &request.PolicyEvaluationRequest{
			TenantID: "ghost",
			Content:  "anything",
		})
		require.Error(t, err)
		assert.Nil(t, output)
		eventLog.AssertNotCalled(t, "Append", mock.Anything)
	})
}
