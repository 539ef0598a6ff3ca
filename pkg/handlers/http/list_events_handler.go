package http

import (
	appGovernance "github.com/DoisLONG/GenAIStudio/pkg/app/governance"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const defaultEventsLimit = 100

type listEventsHandler struct {
	logger *logrus.Logger
	finder appGovernance.EventsFinder
}

func NewListEventsHandler(logger *logrus.Logger, finder appGovernance.EventsFinder) Handler {
	return &listEventsHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary List recent governance events
// @Description Returns the newest events in append order; data source of the operational dashboard
// @Tags Events
// @Produce json
// @Param limit query int false "Maximum number of events" default(100)
// @Success 200 {array} governance.GovernanceEvent "Events"
// @Router /v1/globalization/events [get]
func (h *listEventsHandler) Handle(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultEventsLimit)
	if limit < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must not be negative"})
	}

	events := h.finder.Find(limit)
	return c.Status(fiber.StatusOK).JSON(events)
}
