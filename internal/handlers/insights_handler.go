package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lekithkishore/MINDLY/internal/models"
	"github.com/lekithkishore/MINDLY/internal/services"
)

type insightsProvider interface {
	Get(ctx context.Context, appointmentID, counsellorID string, days int, fallback bool) (*models.AppointmentInsights, error)
}

type InsightsHandler struct {
	service insightsProvider
	log     zerolog.Logger
}

func NewInsightsHandler(service *services.InsightsService, log zerolog.Logger) *InsightsHandler {
	return &InsightsHandler{service: service, log: log}
}

func (h *InsightsHandler) Get(c *fiber.Ctx) error {
	counsellorID := strings.TrimSpace(c.Query("counsellorId"))
	if counsellorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "counsellorId is required"})
	}

	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil {
		days = 30
	}
	fallback := parseBool(c.Query("fallback", "false"))

	insights, err := h.service.Get(c.Context(), c.Params("id"), counsellorID, days, fallback)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Appointment missing studentId"})
		case errors.Is(err, services.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
		default:
			h.log.Error().Err(err).Str("path", c.Path()).Msg("insights request failed")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		}
	}
	return c.JSON(insights)
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
