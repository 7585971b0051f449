package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lekithkishore/MINDLY/internal/models"
	"github.com/lekithkishore/MINDLY/internal/services"
)

type availabilityManager interface {
	UpsertSlot(ctx context.Context, counsellorID, dateKey, timeStr string) error
	ToggleActive(ctx context.Context, counsellorID, dateKey, timeStr string, active bool) error
	ListAvailability(ctx context.Context, counsellorID, dateKey string) ([]models.AvailabilitySlot, error)
}

type AvailabilityHandler struct {
	service availabilityManager
	log     zerolog.Logger
}

func NewAvailabilityHandler(service *services.AvailabilityService, log zerolog.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{service: service, log: log}
}

type slotRequest struct {
	CounsellorID string `json:"counsellorId"`
	DateKey      string `json:"dateKey"`
	Time         string `json:"time"`
	Active       *bool  `json:"active"`
}

func (h *AvailabilityHandler) UpsertSlot(c *fiber.Ctx) error {
	var req slotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	err := h.service.UpsertSlot(c.Context(), strings.TrimSpace(req.CounsellorID), strings.TrimSpace(req.DateKey), strings.TrimSpace(req.Time))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AvailabilityHandler) ToggleActive(c *fiber.Ctx) error {
	var req slotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	active := req.Active != nil && *req.Active

	err := h.service.ToggleActive(c.Context(), strings.TrimSpace(req.CounsellorID), strings.TrimSpace(req.DateKey), strings.TrimSpace(req.Time), active)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AvailabilityHandler) List(c *fiber.Ctx) error {
	counsellorID := strings.TrimSpace(c.Query("counsellorId"))
	dateKey := strings.TrimSpace(c.Query("dateKey"))
	if counsellorID == "" || dateKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "counsellorId and dateKey are required"})
	}

	slots, err := h.service.ListAvailability(c.Context(), counsellorID, dateKey)
	if err != nil {
		return h.mapError(c, err)
	}
	if slots == nil {
		slots = []models.AvailabilitySlot{}
	}
	return c.JSON(fiber.Map{"slots": slots})
}

func (h *AvailabilityHandler) mapError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "counsellorId, dateKey and time are required"})
	}
	h.log.Error().Err(err).Str("path", c.Path()).Msg("availability request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
