package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

type storePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store storePinger
}

func NewHealthHandler(store storePinger) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	databaseUp := false
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		databaseUp = h.store.Ping(ctx) == nil
	}

	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services": fiber.Map{
			"database": databaseUp,
			"chatbot":  true,
		},
	})
}
