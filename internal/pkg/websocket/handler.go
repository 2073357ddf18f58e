package websocket

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// InitialEventFunc produces the event pushed to a client right after it
// connects, before it receives broadcast traffic.
type InitialEventFunc func(ctx context.Context) (Event, error)

// Handler upgrades HTTP connections onto the push channel.
type Handler struct {
	hub          *Hub
	initialEvent InitialEventFunc
	logger       zerolog.Logger
}

// NewHandler creates a new WebSocket handler. initialEvent may be nil
// when no per-connection warm-up push is wanted.
func NewHandler(hub *Hub, initialEvent InitialEventFunc, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:          hub,
		initialEvent: initialEvent,
		logger:       logger,
	}
}

// HandleConnection godoc
// @Summary Subscribe to realtime updates
// @Description Upgrades the HTTP connection to a WebSocket that receives analytics-update and per-collection change events
// @Tags realtime
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 500 {object} dto.ErrorResponse "Upgrade failed"
// @Router /realtime [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		id:     uuid.NewString(),
		logger: h.logger,
	}
	// One solo snapshot push, queued before the client joins the hub so
	// no broadcast can slip ahead of it. A failed computation means the
	// client just starts from the next broadcast.
	if h.initialEvent != nil {
		if event, err := h.initialEvent(c.Request.Context()); err != nil {
			h.logger.Error().Err(err).Str("clientID", client.id).Msg("Failed to push initial snapshot")
		} else if err := client.sendEvent(event); err != nil {
			h.logger.Error().Err(err).Str("clientID", client.id).Msg("Failed to queue initial snapshot")
		}
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("clientID", client.id).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
