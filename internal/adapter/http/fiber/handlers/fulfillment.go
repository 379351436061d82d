package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/concierge-bot/internal/domain"
	"github.com/seu-repo/concierge-bot/internal/ports"
)

type FulfillmentHandler struct {
	service ports.FulfillmentService
	log     *zap.Logger
}

func NewFulfillmentHandler(service ports.FulfillmentService, log *zap.Logger) *FulfillmentHandler {
	return &FulfillmentHandler{
		service: service,
		log:     log,
	}
}

// Handle answers one code hook invocation. Unsupported intents surface as a
// 500 through the app's ErrorHandler.
func (h *FulfillmentHandler) Handle(c *fiber.Ctx) error {
	var req domain.IntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	resp, err := h.service.Fulfill(c.UserContext(), &req)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(resp)
}
