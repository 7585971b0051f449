package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lekithkishore/MINDLY/internal/models"
)

type conversationHistory interface {
	ListRecentByUser(ctx context.Context, userID string, limit int64) ([]models.ChatConversation, error)
}

type AnalyticsHandler struct {
	conversations conversationHistory
	log           zerolog.Logger
}

func NewAnalyticsHandler(conversations conversationHistory, log zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{conversations: conversations, log: log}
}

func (h *AnalyticsHandler) SentimentTrends(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	conversations, err := h.conversations.ListRecentByUser(c.Context(), userID, 50)
	if err != nil {
		h.log.Error().Err(err).Msg("sentiment trends query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	trends := make([]fiber.Map, 0, len(conversations))
	for i := range conversations {
		ts := conversations[i].Timestamp()
		if ts == nil {
			continue
		}
		label := "neutral"
		score := 0.0
		if conversations[i].Sentiment != nil {
			if conversations[i].Sentiment.Label != "" {
				label = conversations[i].Sentiment.Label
			}
			if conversations[i].Sentiment.Score != nil {
				score = *conversations[i].Sentiment.Score
			}
		}
		trends = append(trends, fiber.Map{
			"timestamp": ts.UTC().Format(time.RFC3339),
			"sentiment": label,
			"score":     score,
		})
	}

	return c.JSON(fiber.Map{"sentiment_trends": trends})
}
