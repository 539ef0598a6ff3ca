package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DoisLONG/GenAIStudio/pkg/app/governance/mocks"
	domainGovernance "github.com/DoisLONG/GenAIStudio/pkg/domain/governance"
	handlers "github.com/DoisLONG/GenAIStudio/pkg/handlers/http"
	"github.com/DoisLONG/GenAIStudio/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler_Handle(t *testing.T) {
	setup := func(recorder *mocks.EventRecorder) *fiber.App {
		app := fiber.New()
		handler := handlers.NewCreateEventHandler(testLogger(), recorder)
		app.Post("/v1/globalization/events", handler.Handle)
		return app
	}

	t.Run("stores and echoes the event", func(t *testing.T) {
		recorder := new(mocks.EventRecorder)
		stored := domainGovernance.NewGovernanceEvent(
			"demo-tenant-cn", "cn", "zh-CN", "custom_audit",
			map[string]any{"source": "batch-import"},
		)
		recorder.On("Record", mock.MatchedBy(func(req *request.CreateEventRequest) bool {
			return req.TenantID == "demo-tenant-cn" && req.EventType == "custom_audit"
		})).Return(stored)
		app := setup(recorder)

		body, _ := json.Marshal(fiber.Map{
			"tenant_id":  "demo-tenant-cn",
			"event_type": "custom_audit",
			"payload":    fiber.Map{"source": "batch-import"},
		})
		req := httptest.NewRequest("POST", "/v1/globalization/events", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var echoed domainGovernance.GovernanceEvent
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&echoed))
		assert.Equal(t, stored.ID, echoed.ID)
		assert.Equal(t, "custom_audit", echoed.EventType)
		recorder.AssertExpectations(t)
	})

	t.Run("freeform payloads on known event types are still stored", func(t *testing.T) {
		recorder := new(mocks.EventRecorder)
		stored := domainGovernance.NewGovernanceEvent(
			"demo-tenant-eu", "eu", "en-US", domainGovernance.EventTypeBlocked,
			map[string]any{"matched_rules": "not-a-list"},
		)
		recorder.On("Record", mock.Anything).Return(stored)
		app := setup(recorder)

		body, _ := json.Marshal(fiber.Map{
			"tenant_id":  "demo-tenant-eu",
			"event_type": domainGovernance.EventTypeBlocked,
			"payload":    fiber.Map{"matched_rules": "not-a-list"},
		})
		req := httptest.NewRequest("POST", "/v1/globalization/events", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing event_type is rejected", func(t *testing.T) {
		recorder := new(mocks.EventRecorder)
		app := setup(recorder)

		body, _ := json.Marshal(fiber.Map{"tenant_id": "demo-tenant-cn"})
		req := httptest.NewRequest("POST", "/v1/globalization/events", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		recorder.AssertNotCalled(t, "Record", mock.Anything)
	})
}
