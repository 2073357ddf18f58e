package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ChangeChannel is the NOTIFY channel the row triggers publish on.
// See migrations/001_init.sql.
const ChangeChannel = "record_changes"

// ChangeEvent is one mutation notice emitted by a row trigger on a
// monitored table. Type carries the trigger's operation vocabulary
// (insert/update/delete) and is not interpreted further here.
type ChangeEvent struct {
	Collection string          `json:"collection"`
	Type       string          `json:"type"`
	Data       json.RawMessage `json:"data"`
}

// ChangeListener holds a dedicated connection in LISTEN mode and turns
// notifications into ChangeEvents on its output channel.
type ChangeListener struct {
	connString string
	events     chan ChangeEvent
	logger     zerolog.Logger
}

// NewChangeListener creates a listener for the record change channel.
func NewChangeListener(connString string, logger zerolog.Logger) *ChangeListener {
	return &ChangeListener{
		connString: connString,
		events:     make(chan ChangeEvent, 64),
		logger:     logger,
	}
}

// Events returns the channel mutation notices are delivered on.
// The channel is closed when Run returns.
func (l *ChangeListener) Events() <-chan ChangeEvent {
	return l.events
}

// Run connects, LISTENs and pumps notifications until ctx is cancelled.
// Connection loss is retried with a flat backoff; notifications raised
// while disconnected are lost, which the relay tolerates (the periodic
// snapshot broadcast catches clients up).
func (l *ChangeListener) Run(ctx context.Context) {
	defer close(l.events)

	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			l.logger.Error().Err(err).Msg("Change listener disconnected, retrying")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(3 * time.Second):
		}
	}
}

func (l *ChangeListener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+ChangeChannel); err != nil {
		return err
	}
	l.logger.Info().Str("channel", ChangeChannel).Msg("Listening for record changes")

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var event ChangeEvent
		if err := json.Unmarshal([]byte(notification.Payload), &event); err != nil {
			l.logger.Error().Err(err).Str("payload", notification.Payload).Msg("Failed to decode change notification")
			continue
		}

		select {
		case l.events <- event:
		default:
			// A full buffer means the relay is far behind; dropping the
			// notice is acceptable, the next snapshot broadcast covers it.
			l.logger.Warn().Str("collection", event.Collection).Msg("Change event buffer full, dropping notice")
		}
	}
}
