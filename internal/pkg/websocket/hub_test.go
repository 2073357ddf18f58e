package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, id string, buffer int) *Client {
	return &Client{
		hub:    hub,
		send:   make(chan []byte, buffer),
		id:     id,
		logger: zerolog.Nop(),
	}
}

func receiveEvent(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case data := <-c.send:
		var event Event
		require.NoError(t, json.Unmarshal(data, &event))
		return event
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	first := newTestClient(hub, "first", 4)
	second := newTestClient(hub, "second", 4)
	hub.register <- first
	hub.register <- second

	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.Broadcast(Event{Event: "analytics-update", Data: map[string]interface{}{"insights": "steady"}})

	for _, client := range []*Client{first, second} {
		event := receiveEvent(t, client)
		assert.Equal(t, "analytics-update", event.Event)
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := newTestClient(hub, "leaver", 4)
	hub.register <- client
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.unregister <- client
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)

	_, open := <-client.send
	assert.False(t, open)
}

func TestHubDropsStalledClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	// Zero buffer: the first broadcast already finds the client stalled.
	stalled := newTestClient(hub, "stalled", 0)
	healthy := newTestClient(hub, "healthy", 4)
	hub.register <- stalled
	hub.register <- healthy
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.Broadcast(Event{Event: "students-change"})

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	event := receiveEvent(t, healthy)
	assert.Equal(t, "students-change", event.Event)
}

func TestHubShutdownDisconnectsClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	client := newTestClient(hub, "shutdown", 4)
	hub.register <- client
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	cancel()

	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-client.send
	assert.False(t, open)
}

func TestClientSendEvent(t *testing.T) {
	client := newTestClient(NewHub(zerolog.Nop()), "solo", 1)

	require.NoError(t, client.sendEvent(Event{Event: "analytics-update", Data: "payload"}))

	event := receiveEvent(t, client)
	assert.Equal(t, "analytics-update", event.Event)
	assert.Equal(t, "payload", event.Data)

	// A full buffer drops silently rather than blocking the upgrade path.
	require.NoError(t, client.sendEvent(Event{Event: "first"}))
	require.NoError(t, client.sendEvent(Event{Event: "dropped"}))
}
