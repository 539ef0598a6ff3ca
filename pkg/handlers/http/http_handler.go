package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Governance
	PreviewPromptHandler  Handler
	EvaluatePolicyHandler Handler

	// Events
	CreateEventHandler Handler
	ListEventsHandler  Handler

	// Misc
	GetVersionHandler Handler
}
