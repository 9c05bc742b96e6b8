package events

import (
	"context"

	"github.com/rs/zerolog"
)

// LogPublisher records events in the application log. It is used when no
// broker is configured.
type LogPublisher struct {
	logger *zerolog.Logger
}

func NewLogPublisher(logger *zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, evt Event) error {
	p.logger.Info().
		Str("event_id", evt.ID).
		Str("type", evt.Type).
		Str("key", evt.Key).
		RawJSON("data", evt.Data).
		Msg("event")
	return nil
}

func (p *LogPublisher) Close() error { return nil }
