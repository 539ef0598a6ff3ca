package http

import (
	appGovernance "github.com/DoisLONG/GenAIStudio/pkg/app/governance"
	"github.com/DoisLONG/GenAIStudio/pkg/domain"
	"github.com/DoisLONG/GenAIStudio/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type evaluatePolicyHandler struct {
	logger    *logrus.Logger
	evaluator appGovernance.ContentEvaluator
}

func NewEvaluatePolicyHandler(logger *logrus.Logger, evaluator appGovernance.ContentEvaluator) Handler {
	return &evaluatePolicyHandler{
		logger:    logger,
		evaluator: evaluator,
	}
}

// Handle @Summary Evaluate content against the tenant's keyword policy
// @Description Returns an allow/deny verdict with the matched blocked keywords
// @Tags Governance
// @Accept json
// @Produce json
// @Success 200 {object} response.PolicyEvaluationOutput "Verdict"
// @Failure 404 {object} map[string]interface{} "Tenant not found"
// @Router /v1/globalization/policy/evaluate [post]
func (h *evaluatePolicyHandler) Handle(c *fiber.Ctx) error {
	var req request.PolicyEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.TenantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "tenant_id is required"})
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "content is required"})
	}

	output, err := h.evaluator.Evaluate(c.Context(), &req)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to evaluate content")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(output)
}
