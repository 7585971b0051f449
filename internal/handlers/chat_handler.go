package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lekithkishore/MINDLY/internal/services"
)

type chatResponder interface {
	Handle(ctx context.Context, userID, sessionID, message string) (*services.ChatOutcome, error)
}

type ChatHandler struct {
	service chatResponder
	log     zerolog.Logger
}

func NewChatHandler(service *services.ChatService, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{service: service, log: log}
}

type chatRequest struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	outcome, err := h.service.Handle(c.Context(), req.UserID, req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required"})
		}
		h.log.Error().Err(err).Msg("chat request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(fiber.Map{
		"response":         outcome.Reply.Response,
		"sentiment":        outcome.Reply.Sentiment,
		"escalation_level": outcome.Reply.EscalationLevel,
		"session_id":       outcome.SessionID,
	})
}
