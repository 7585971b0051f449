package handlers

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/lekithkishore/MINDLY/internal/ws"
)

// WSHandler upgrades notification-stream connections and attaches them to
// the hub. Clients identify themselves with ?userId=; pushes for that user
// are delivered as JSON text frames.
type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *WSHandler) Stream(conn *websocket.Conn) {
	userID := conn.Query("userId")
	if userID == "" {
		_ = conn.Close()
		return
	}

	client := ws.NewClient(h.hub, conn, userID)
	h.hub.Register(client)
	client.Serve()
}
