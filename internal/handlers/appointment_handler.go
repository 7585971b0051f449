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

type appointmentLifecycle interface {
	List(ctx context.Context, counsellorID string, limit int) ([]models.Appointment, error)
	Start(ctx context.Context, id, counsellorID string) error
	Complete(ctx context.Context, id, counsellorID string) error
	UpdateStatus(ctx context.Context, id, counsellorID, status string) error
	Reschedule(ctx context.Context, id, counsellorID, newDate, newTime string) error
	Delete(ctx context.Context, id, counsellorID string) error
}

type AppointmentHandler struct {
	service appointmentLifecycle
	log     zerolog.Logger
}

func NewAppointmentHandler(service *services.AppointmentService, log zerolog.Logger) *AppointmentHandler {
	return &AppointmentHandler{service: service, log: log}
}

type counsellorActionRequest struct {
	CounsellorID string `json:"counsellorId"`
}

type updateStatusRequest struct {
	Status       string `json:"status"`
	CounsellorID string `json:"counsellorId"`
}

type rescheduleRequest struct {
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	CounsellorID    string `json:"counsellorId"`
}

func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	counsellorID := strings.TrimSpace(c.Query("counsellorId"))
	if counsellorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "counsellorId is required"})
	}
	limit, err := strconv.Atoi(c.Query("limit", "100"))
	if err != nil {
		limit = 100
	}

	appointments, err := h.service.List(c.Context(), counsellorID, limit)
	if err != nil {
		return h.mapError(c, err)
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return c.JSON(fiber.Map{"appointments": appointments})
}

func (h *AppointmentHandler) Start(c *fiber.Ctx) error {
	counsellorID, err := parseCounsellorID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "counsellorId is required"})
	}

	if err := h.service.Start(c.Context(), c.Params("id"), counsellorID); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AppointmentHandler) Complete(c *fiber.Ctx) error {
	counsellorID, err := parseCounsellorID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "counsellorId is required"})
	}

	if err := h.service.Complete(c.Context(), c.Params("id"), counsellorID); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AppointmentHandler) UpdateStatus(c *fiber.Ctx) error {
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.CounsellorID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "counsellorId is required"})
	}

	err := h.service.UpdateStatus(c.Context(), c.Params("id"), strings.TrimSpace(req.CounsellorID), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		}
		return h.mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AppointmentHandler) Reschedule(c *fiber.Ctx) error {
	var req rescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.AppointmentDate == "" || req.AppointmentTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "appointmentDate and appointmentTime required"})
	}
	if strings.TrimSpace(req.CounsellorID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "counsellorId is required"})
	}

	err := h.service.Reschedule(c.Context(), c.Params("id"), strings.TrimSpace(req.CounsellorID), req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	counsellorID, err := parseCounsellorID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "counsellorId is required"})
	}

	if err := h.service.Delete(c.Context(), c.Params("id"), counsellorID); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func parseCounsellorID(c *fiber.Ctx) (string, error) {
	var req counsellorActionRequest
	if err := c.BodyParser(&req); err != nil {
		return "", err
	}
	counsellorID := strings.TrimSpace(req.CounsellorID)
	if counsellorID == "" {
		return "", services.ErrInvalidInput
	}
	return counsellorID, nil
}

func (h *AppointmentHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "counsellorId is required"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your appointment"})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("appointment request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
