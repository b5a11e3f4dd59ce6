// Package eventlog publishes domain events to the structured log. It stands
// in for a message broker in deployments that have none; consumers tail the
// log stream.
package eventlog

import (
	"context"
	"log/slog"

	"cargoflow/internal/core/domain/events"
)

// Publisher writes each event as one structured log record.
type Publisher struct {
	logger *slog.Logger
}

// NewPublisher creates a log-backed event publisher.
func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{
		logger: logger.With("component", "event_publisher"),
	}
}

// Publish logs every event. It never fails; a lost log line is acceptable
// where a lost state change is not.
func (p *Publisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	for _, evt := range evts {
		p.logger.InfoContext(ctx, "Domain event published",
			"event", evt.EventName(),
			"occurred_at", evt.OccurredAt(),
			"payload", evt,
		)
	}

	return nil
}
