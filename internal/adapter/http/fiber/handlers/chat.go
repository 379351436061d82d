package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/concierge-bot/internal/domain"
	"github.com/seu-repo/concierge-bot/internal/ports"
	"github.com/seu-repo/concierge-bot/internal/service/chat"
)

const HeaderUserID = "X-User-ID"

type ChatHandler struct {
	service ports.ChatService
	log     *zap.Logger
}

func NewChatHandler(service ports.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log,
	}
}

func (h *ChatHandler) Post(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")

	var req domain.ChatEnvelope
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	userID := c.Get(HeaderUserID)
	if userID == "" {
		userID = uuid.NewString()
	}

	reply, err := h.service.Relay(c.UserContext(), userID, &req)
	switch {
	case err == nil:
		return c.JSON(reply)
	case errors.Is(err, chat.ErrEmptyMessage):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, chat.ErrDialogUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		h.log.Warn("Chat relay failed", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "dialog service error"})
	}
}
