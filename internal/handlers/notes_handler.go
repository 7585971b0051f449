package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lekithkishore/MINDLY/internal/models"
	"github.com/lekithkishore/MINDLY/internal/repository"
)

type noteStore interface {
	Get(ctx context.Context, appointmentID, counsellorID string) (*models.AppointmentNote, error)
	Put(ctx context.Context, appointmentID, counsellorID, text string, at time.Time) error
}

// NotesHandler reads and writes a counsellor's private session notes. It
// talks to the repository directly; there is no business logic in between.
type NotesHandler struct {
	notes noteStore
	log   zerolog.Logger
}

func NewNotesHandler(notes *repository.NoteRepository, log zerolog.Logger) *NotesHandler {
	return &NotesHandler{notes: notes, log: log}
}

type putNoteRequest struct {
	Text string `json:"text"`
}

func (h *NotesHandler) Get(c *fiber.Ctx) error {
	note, err := h.notes.Get(c.Context(), c.Params("id"), c.Params("counsellorId"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.JSON(fiber.Map{"note": nil})
		}
		h.log.Error().Err(err).Str("path", c.Path()).Msg("get note failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.JSON(fiber.Map{"note": note})
}

func (h *NotesHandler) Put(c *fiber.Ctx) error {
	var req putNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	err := h.notes.Put(c.Context(), c.Params("id"), c.Params("counsellorId"), req.Text, time.Now().UTC())
	if err != nil {
		h.log.Error().Err(err).Str("path", c.Path()).Msg("put note failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.JSON(fiber.Map{"success": true})
}
