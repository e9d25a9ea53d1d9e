package service

import (
	"context"

	"github.com/dgarciab/formspace/internal/domain"
	"github.com/rs/zerolog/log"
)

// FanoutPublisher delivers each event to every sink in order. A sink failure
// is logged and swallowed so a broken broker never rolls back a committed
// mutation; the first sink is treated as authoritative and its error is
// returned.
type FanoutPublisher struct {
	sinks []domain.EventPublisher
}

// NewFanoutPublisher creates a publisher over the given sinks.
func NewFanoutPublisher(sinks ...domain.EventPublisher) *FanoutPublisher {
	return &FanoutPublisher{sinks: sinks}
}

// Publish sends the event to all sinks.
func (p *FanoutPublisher) Publish(ctx context.Context, event domain.Event) error {
	for i, sink := range p.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			if i == 0 {
				return err
			}
			log.Warn().Err(err).Str("kind", string(event.Kind())).Msg("secondary event sink failed")
		}
	}
	return nil
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

// Publish implements domain.EventPublisher.
func (NopPublisher) Publish(ctx context.Context, event domain.Event) error {
	return nil
}
