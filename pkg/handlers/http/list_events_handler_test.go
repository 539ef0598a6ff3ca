package http_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DoisLONG/GenAIStudio/pkg/app/governance/mocks"
	domainGovernance "github.com/DoisLONG/GenAIStudio/pkg/domain/governance"
	handlers "github.com/DoisLONG/GenAIStudio/pkg/handlers/http"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListEventsHandler_Handle(t *testing.T) {
	setup := func(finder *mocks.EventsFinder) *fiber.App {
		app := fiber.New()
		handler := handlers.NewListEventsHandler(testLogger(), finder)
		app.Get("/v1/globalization/events", handler.Handle)
		return app
	}

	t.Run("defaults to a limit of 100", func(t *testing.T) {
		finder := new(mocks.EventsFinder)
		finder.On("Find", 100).Return([]*domainGovernance.GovernanceEvent{
			domainGovernance.NewGovernanceEvent("demo-tenant-eu", "eu", "en-US", domainGovernance.EventTypeAllowed, nil),
		})
		app := setup(finder)

		resp, err := app.Test(httptest.NewRequest("GET", "/v1/globalization/events", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var events []*domainGovernance.GovernanceEvent
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&events))
		assert.Len(t, events, 1)
		finder.AssertExpectations(t)
	})

	t.Run("limit zero returns an empty list", func(t *testing.T) {
		finder := new(mocks.EventsFinder)
		finder.On("Find", 0).Return([]*domainGovernance.GovernanceEvent{})
		app := setup(finder)

		resp, err := app.Test(httptest.NewRequest("GET", "/v1/globalization/events?limit=0", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var events []*domainGovernance.GovernanceEvent
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&events))
		assert.Empty(t, events)
	})

	t.Run("negative limit is rejected", func(t *testing.T) {
		finder := new(mocks.EventsFinder)
		app := setup(finder)

		resp, err := app.Test(httptest.NewRequest("GET", "/v1/globalization/events?limit=-5", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		finder.AssertNotCalled(t, "Find", mock.Anything)
	})
}
