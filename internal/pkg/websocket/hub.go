// Package websocket implements the realtime push channel: a hub
// fanning analytics updates and mutation notices out to subscribed
// dashboard clients. Clients are push-only; nothing they send is
// interpreted.
package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// Event is one named message pushed to clients, mirroring the
// event-name/payload shape the dashboard expects.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub maintains the set of active clients and broadcasts events to them.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Outbound events to fan out
	broadcast chan Event

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to the clients map
	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Event, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run handles client registrations and broadcasts until ctx is
// cancelled, then disconnects every remaining client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)

		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

// Broadcast queues an event for fan-out to every subscribed client.
// Fan-out is best effort; there is no per-client backpressure.
func (h *Hub) Broadcast(event Event) {
	h.broadcast <- event
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info().
		Str("clientID", client.id).
		Msg("Realtime client connected")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		h.logger.Info().
			Str("clientID", client.id).
			Msg("Realtime client disconnected")
	}
}

func (h *Hub) broadcastEvent(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("event", event.Event).Msg("Failed to marshal event for broadcast")
		return
	}

	h.mu.RLock()
	var stalled []*Client
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Send buffer full; the client is slow or gone. Drop it.
			stalled = append(stalled, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stalled {
		h.unregisterClient(client)
	}

	h.logger.Debug().
		Str("event", event.Event).
		Int("clientCount", h.ClientCount()).
		Msg("Event broadcast to realtime clients")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
}
