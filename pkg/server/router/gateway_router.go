package router

import (
	"os"
	"path/filepath"

	handlers "github.com/DoisLONG/GenAIStudio/pkg/handlers/http"
	"github.com/DoisLONG/GenAIStudio/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

type gatewayRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
	staticDir           string
}

func NewGatewayRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	staticDir string,
) ServerRouter {
	return &gatewayRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		staticDir:           staticDir,
	}
}

func (r *gatewayRouter) BuildRoutes(router *fiber.App) error {
	router.Use(r.middlewareTransport.PanicRecoverMiddleware.Middleware())
	router.Use(r.middlewareTransport.MetricsMiddleware.Middleware())

	router.Static("/static", r.staticDir)
	router.Get("/", r.dashboardPage)
	router.Get("/dashboard", r.dashboardPage)

	v1 := router.Group("/v1/globalization")
	{
		v1.Get("/version", r.handlerTransport.GetVersionHandler.Handle)

		prompt := v1.Group("/prompt")
		{
			prompt.Post("/preview", r.handlerTransport.PreviewPromptHandler.Handle)
		}

		policy := v1.Group("/policy")
		{
			policy.Post("/evaluate", r.handlerTransport.EvaluatePolicyHandler.Handle)
		}

		events := v1.Group("/events")
		{
			events.Post("", r.handlerTransport.CreateEventHandler.Handle)
			events.Get("", r.handlerTransport.ListEventsHandler.Handle)
		}
	}

	return nil
}

// dashboardPage serves the operational dashboard. The page itself is a
// static asset; only its delivery belongs to the gateway.
func (r *gatewayRouter) dashboardPage(c *fiber.Ctx) error {
	page := filepath.Join(r.staticDir, "dashboard.html")
	if _, err := os.Stat(page); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "dashboard.html not found"})
	}
	return c.SendFile(page)
}
