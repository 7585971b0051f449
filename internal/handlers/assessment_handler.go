package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lekithkishore/MINDLY/internal/assessment"
	"github.com/lekithkishore/MINDLY/internal/models"
)

type assessmentWriter interface {
	Insert(ctx context.Context, record models.AssessmentRecord) error
}

type AssessmentHandler struct {
	scorer      assessment.Scorer
	assessments assessmentWriter
	log         zerolog.Logger
}

func NewAssessmentHandler(scorer assessment.Scorer, assessments assessmentWriter, log zerolog.Logger) *AssessmentHandler {
	return &AssessmentHandler{scorer: scorer, assessments: assessments, log: log}
}

type assessmentRequest struct {
	Responses []int  `json:"responses"`
	UserID    string `json:"user_id"`
}

func (h *AssessmentHandler) PHQ9(c *fiber.Ctx) error {
	return h.handle(c, models.AssessmentTypePHQ9, assessment.PHQ9Questions, h.scorer.ScorePHQ9)
}

func (h *AssessmentHandler) GAD7(c *fiber.Ctx) error {
	return h.handle(c, models.AssessmentTypeGAD7, assessment.GAD7Questions, h.scorer.ScoreGAD7)
}

func (h *AssessmentHandler) handle(c *fiber.Ctx, assessmentType string, wantResponses int, score func([]int) (*models.AssessmentResult, error)) error {
	var req assessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Responses) != wantResponses {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("%s requires exactly %d responses", assessmentType, wantResponses),
		})
	}

	result, err := score(req.Responses)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Persist only for identified users; a write failure never blocks the
	// scored result.
	if req.UserID != "" {
		now := time.Now().UTC()
		scoreValue := float64(result.Score)
		record := models.AssessmentRecord{
			UserID:          req.UserID,
			Type:            assessmentType,
			Responses:       req.Responses,
			Score:           &scoreValue,
			Severity:        result.Severity,
			Recommendations: result.Recommendations,
			OccurredAt:      &now,
		}
		if err := h.assessments.Insert(c.Context(), record); err != nil {
			h.log.Warn().Err(err).Str("type", assessmentType).Msg("failed to save assessment")
		}
	}

	return c.JSON(result)
}
