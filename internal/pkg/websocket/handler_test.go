package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestServer(t *testing.T, h *Handler) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/realtime", h.HandleConnection)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/realtime"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	return event
}

func TestHandlerInitialSnapshotPrecedesBroadcasts(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	initial := func(context.Context) (Event, error) {
		return Event{Event: "analytics-update", Data: "warm-up"}, nil
	}
	handler := NewHandler(hub, initial, zerolog.Nop())

	// Keep broadcast traffic flowing for the whole connection window so
	// any broadcast racing the registration would show up first.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				hub.Broadcast(Event{Event: "students-change"})
				time.Sleep(time.Millisecond)
			}
		}
	}()

	conn := dialTestServer(t, handler)

	event := readFrame(t, conn)
	assert.Equal(t, "analytics-update", event.Event)
	assert.Equal(t, "warm-up", event.Data)
}

func TestHandlerWithoutInitialEvent(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	handler := NewHandler(hub, nil, zerolog.Nop())
	conn := dialTestServer(t, handler)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	hub.Broadcast(Event{Event: "modules-change"})

	event := readFrame(t, conn)
	assert.Equal(t, "modules-change", event.Event)
}
