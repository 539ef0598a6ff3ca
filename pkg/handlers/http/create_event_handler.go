package http

import (
	appGovernance "github.com/DoisLONG/GenAIStudio/pkg/app/governance"
	domainGovernance "github.com/DoisLONG/GenAIStudio/pkg/domain/governance"
	"github.com/DoisLONG/GenAIStudio/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createEventHandler struct {
	logger   *logrus.Logger
	recorder appGovernance.EventRecorder
}

func NewCreateEventHandler(logger *logrus.Logger, recorder appGovernance.EventRecorder) Handler {
	return &createEventHandler{
		logger:   logger,
		recorder: recorder,
	}
}

// Handle @Summary Record a governance event
// @Description Generic ingestion endpoint for dashboard and service instrumentation
// @Tags Events
// @Accept json
// @Produce json
// @Success 200 {object} governance.GovernanceEvent "Stored event"
// @Router /v1/globalization/events [post]
func (h *createEventHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.TenantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "tenant_id is required"})
	}
	if req.EventType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "event_type is required"})
	}

	event := h.recorder.Record(&req)

	h.inspectKnownPayload(event)

	return c.Status(fiber.StatusOK).JSON(event)
}

// inspectKnownPayload decodes the payload of well-known event types into
// their typed schema. Payloads stay schema-less in the log; a mismatch is
// only logged, the event is stored either way.
func (h *createEventHandler) inspectKnownPayload(event *domainGovernance.GovernanceEvent) {
	switch event.EventType {
	case domainGovernance.EventTypePromptPreview:
		var payload domainGovernance.PromptPreviewPayload
		if err := domainGovernance.DecodePayload(event, &payload); err != nil {
			h.logger.WithError(err).WithField("event_id", event.ID).Warn("malformed prompt_preview payload")
		}
	case domainGovernance.EventTypeBlocked, domainGovernance.EventTypeAllowed:
		var payload domainGovernance.EvaluationPayload
		if err := domainGovernance.DecodePayload(event, &payload); err != nil {
			h.logger.WithError(err).WithField("event_id", event.ID).Warn("malformed evaluation payload")
		}
	}
}
