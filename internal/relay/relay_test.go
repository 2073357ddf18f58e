package relay

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mokoena/studenthub/internal/app/models"
	"github.com/mokoena/studenthub/internal/db"
	"github.com/mokoena/studenthub/internal/pkg/websocket"
)

type captureSink struct {
	mu     sync.Mutex
	events []websocket.Event
}

func (c *captureSink) Broadcast(event websocket.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureSink) snapshot() []websocket.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]websocket.Event(nil), c.events...)
}

func (c *captureSink) countByName(name string) int {
	n := 0
	for _, e := range c.snapshot() {
		if e.Event == name {
			n++
		}
	}
	return n
}

type countingAnalytics struct {
	mu    sync.Mutex
	calls int
}

func (a *countingAnalytics) GenerateAnalytics(context.Context) *models.Analytics {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	return &models.Analytics{
		Snapshot: models.EmptySnapshot(time.Now().UTC()),
		Insights: "test insights",
	}
}

func TestRelayBroadcastsInitialSnapshot(t *testing.T) {
	sink := &captureSink{}
	events := make(chan db.ChangeEvent)
	r := New(&countingAnalytics{}, events, sink, time.Hour, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	require.Eventually(t, func() bool {
		return sink.countByName(EventAnalyticsUpdate) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestRelayRepublishesChangeEvents(t *testing.T) {
	sink := &captureSink{}
	events := make(chan db.ChangeEvent, 1)
	r := New(&countingAnalytics{}, events, sink, time.Hour, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	events <- db.ChangeEvent{
		Collection: "students",
		Type:       "insert",
		Data:       json.RawMessage(`{"id":1}`),
	}

	require.Eventually(t, func() bool {
		return sink.countByName("students-change") == 1
	}, time.Second, 5*time.Millisecond)

	var change websocket.Event
	for _, e := range sink.snapshot() {
		if e.Event == "students-change" {
			change = e
		}
	}
	payload, ok := change.Data.(changePayload)
	require.True(t, ok)
	assert.Equal(t, "insert", payload.Type)
	assert.JSONEq(t, `{"id":1}`, string(payload.Data))
	assert.False(t, payload.Timestamp.IsZero())
}

func TestRelayDebouncesSnapshotAfterChanges(t *testing.T) {
	sink := &captureSink{}
	events := make(chan db.ChangeEvent, 8)
	analytics := &countingAnalytics{}
	r := New(analytics, events, sink, time.Hour, 30*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	// Wait out the startup broadcast first.
	require.Eventually(t, func() bool {
		return sink.countByName(EventAnalyticsUpdate) == 1
	}, time.Second, 5*time.Millisecond)

	// A burst of mutations collapses into one refresh.
	for i := 0; i < 5; i++ {
		events <- db.ChangeEvent{Collection: "enrolments", Type: "update", Data: json.RawMessage(`{}`)}
	}

	require.Eventually(t, func() bool {
		return sink.countByName(EventAnalyticsUpdate) == 2
	}, time.Second, 5*time.Millisecond)

	// No further refresh without further changes.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 2, sink.countByName(EventAnalyticsUpdate))
	assert.Equal(t, 5, sink.countByName("enrolments-change"))
}

func TestRelaySurvivesClosedEventStream(t *testing.T) {
	sink := &captureSink{}
	events := make(chan db.ChangeEvent)
	r := New(&countingAnalytics{}, events, sink, 25*time.Millisecond, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	close(events)

	// Periodic broadcasts keep flowing after the listener goes away.
	require.Eventually(t, func() bool {
		return sink.countByName(EventAnalyticsUpdate) >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestRelayStopsOnContextCancel(t *testing.T) {
	sink := &captureSink{}
	events := make(chan db.ChangeEvent)
	r := New(&countingAnalytics{}, events, sink, time.Hour, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop after context cancellation")
	}
}
