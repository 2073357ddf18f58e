// Package relay fans database mutation notices and periodic analytics
// snapshots out to connected WebSocket clients.
package relay

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/mokoena/studenthub/internal/app/models"
	"github.com/mokoena/studenthub/internal/db"
	"github.com/mokoena/studenthub/internal/pkg/websocket"
)

// EventAnalyticsUpdate carries a full analytics payload.
const EventAnalyticsUpdate = "analytics-update"

// AnalyticsSource produces the payload broadcast on analytics updates.
// It must not fail; services.AnalyticsService satisfies it.
type AnalyticsSource interface {
	GenerateAnalytics(ctx context.Context) *models.Analytics
}

// Broadcaster is the outbound side of the relay. *websocket.Hub
// satisfies it.
type Broadcaster interface {
	Broadcast(event websocket.Event)
}

// changePayload is the body of a per-collection change event.
type changePayload struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Relay republishes change notices as they arrive and keeps clients'
// analytics fresh two ways: a fixed-interval broadcast, and a debounced
// rebroadcast shortly after any mutation so dashboards converge fast.
type Relay struct {
	analytics AnalyticsSource
	events    <-chan db.ChangeEvent
	sink      Broadcaster
	interval  time.Duration
	debounce  time.Duration
	logger    zerolog.Logger
}

// New creates a relay. interval is the steady analytics cadence,
// debounce the quiet period after a mutation before the extra refresh.
func New(analytics AnalyticsSource, events <-chan db.ChangeEvent, sink Broadcaster, interval, debounce time.Duration, logger zerolog.Logger) *Relay {
	return &Relay{
		analytics: analytics,
		events:    events,
		sink:      sink,
		interval:  interval,
		debounce:  debounce,
		logger:    logger,
	}
}

// Run pumps events until ctx is cancelled. It broadcasts one snapshot
// immediately so clients connected before the first tick are not stale.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	// Debounce timer starts stopped; it is armed by change events.
	debounce := time.NewTimer(r.debounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	r.publishAnalytics(ctx)

	events := r.events
	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			r.publishAnalytics(ctx)

		case <-debounce.C:
			r.publishAnalytics(ctx)

		case event, ok := <-events:
			if !ok {
				// Listener gone. Periodic broadcasts continue.
				r.logger.Warn().Msg("Change event stream closed, continuing with periodic analytics only")
				events = nil
				continue
			}
			r.publishChange(event)

			// Each mutation in a burst pushes the refresh out again, so
			// one snapshot covers the whole burst.
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(r.debounce)
		}
	}
}

func (r *Relay) publishAnalytics(ctx context.Context) {
	r.sink.Broadcast(websocket.Event{
		Event: EventAnalyticsUpdate,
		Data:  r.analytics.GenerateAnalytics(ctx),
	})
}

func (r *Relay) publishChange(event db.ChangeEvent) {
	r.logger.Debug().
		Str("collection", event.Collection).
		Str("type", event.Type).
		Msg("Relaying record change")

	r.sink.Broadcast(websocket.Event{
		Event: event.Collection + "-change",
		Data: changePayload{
			Type:      event.Type,
			Data:      event.Data,
			Timestamp: time.Now().UTC(),
		},
	})
}
