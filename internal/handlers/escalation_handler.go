package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lekithkishore/MINDLY/internal/models"
)

type escalationWriter interface {
	Insert(ctx context.Context, escalation models.Escalation) error
}

type EscalationHandler struct {
	escalations escalationWriter
	log         zerolog.Logger
}

func NewEscalationHandler(escalations escalationWriter, log zerolog.Logger) *EscalationHandler {
	return &EscalationHandler{escalations: escalations, log: log}
}

type escalationRequest struct {
	UserID          string `json:"user_id"`
	EscalationLevel string `json:"escalation_level"`
	Message         string `json:"message"`
}

var crisisResources = fiber.Map{
	"emergency_contacts": []fiber.Map{
		{"name": "National Suicide Prevention Lifeline", "number": "988"},
		{"name": "Crisis Text Line", "number": "Text HOME to 741741"},
		{"name": "Emergency Services", "number": "911"},
	},
	"immediate_actions": []string{
		"Contact emergency services if in immediate danger",
		"Reach out to a trusted friend or family member",
		"Go to the nearest emergency room",
		"Use crisis text line for immediate support",
	},
}

func (h *EscalationHandler) Create(c *fiber.Ctx) error {
	var req escalationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.EscalationLevel == "" {
		req.EscalationLevel = "high"
	}

	// Crisis resources are returned even when the record can't be stored.
	if req.UserID != "" {
		escalation := models.Escalation{
			UserID:          req.UserID,
			EscalationLevel: req.EscalationLevel,
			Message:         req.Message,
			Status:          "pending",
			OccurredAt:      time.Now().UTC(),
		}
		if err := h.escalations.Insert(c.Context(), escalation); err != nil {
			h.log.Warn().Err(err).Msg("failed to save escalation")
		}
	}

	return c.JSON(fiber.Map{
		"escalation_logged": true,
		"crisis_resources":  crisisResources,
	})
}
