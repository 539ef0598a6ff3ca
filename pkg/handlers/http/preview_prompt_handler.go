package http

import (
	appGovernance "github.com/DoisLONG/GenAIStudio/pkg/app/governance"
	"github.com/DoisLONG/GenAIStudio/pkg/domain"
	"github.com/DoisLONG/GenAIStudio/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type previewPromptHandler struct {
	logger    *logrus.Logger
	previewer appGovernance.PromptPreviewer
}

func NewPreviewPromptHandler(logger *logrus.Logger, previewer appGovernance.PromptPreviewer) Handler {
	return &previewPromptHandler{
		logger:    logger,
		previewer: previewer,
	}
}

// Handle @Summary Preview a governed prompt
// @Description Rewrites the raw prompt with the tenant's language and compliance instructions
// @Tags Governance
// @Accept json
// @Produce json
// @Success 200 {object} response.PromptPreviewOutput "Preview"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Router /v1/globalization/prompt/preview [post]
func (h *previewPromptHandler) Handle(c *fiber.Ctx) error {
	var req request.PromptPreviewRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.TenantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "tenant_id is required"})
	}
	if req.RawPrompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "raw_prompt is required"})
	}
	if req.TaskType == "" {
		req.TaskType = "chat"
	}

	output, err := h.previewer.Preview(c.Context(), &req)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to preview prompt")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(output)
}
