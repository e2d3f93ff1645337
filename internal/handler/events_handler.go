package handler

import (
	"ai-notetaking-be/internal/pkg/logger"
	"ai-notetaking-be/internal/pkg/serverutils"
	internalWS "ai-notetaking-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// EventsHandler upgrades authenticated requests to the session's push channel.
type EventsHandler struct {
	resolver serverutils.SessionResolver
	hub      *internalWS.Hub
	logger   logger.ILogger
}

func NewEventsHandler(resolver serverutils.SessionResolver, hub *internalWS.Hub, log logger.ILogger) *EventsHandler {
	return &EventsHandler{
		resolver: resolver,
		hub:      hub,
		logger:   log,
	}
}

func (h *EventsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/events", h.ServeWs)
}

// ServeWs accepts the token from the query string, the Authorization header or
// the session cookie; browsers cannot set headers on a websocket handshake.
func (h *EventsHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := serverutils.TokenFromRequest(c)
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
	}

	session, err := h.resolver.CurrentSession(c.UserContext(), tokenStr)
	if err != nil {
		h.logger.Warn("EventsHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	sessionID := session.Id
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("EventsHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
		internalWS.Serve(h.hub, conn, sessionID)
		h.logger.Info("EventsHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
	})(c)
}
