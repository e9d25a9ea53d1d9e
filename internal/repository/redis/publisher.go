package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgarciab/formspace/internal/domain"
	"github.com/google/uuid"
)

// envelope is the wire format every published event travels in. Payload is
// the variant-specific body; consumers dispatch on kind.
type envelope struct {
	EventID     string           `json:"event_id"`
	Kind        domain.EventKind `json:"kind"`
	AggregateID int64            `json:"aggregate_id"`
	OccurredAt  time.Time        `json:"occurred_at"`
	Payload     any              `json:"payload"`
}

// EventPublisher broadcasts domain events on a Redis channel.
type EventPublisher struct {
	client  *Client
	channel string
}

// NewEventPublisher creates a publisher bound to a channel name.
func NewEventPublisher(client *Client, channel string) *EventPublisher {
	return &EventPublisher{client: client, channel: channel}
}

// Publish wraps the event in an envelope and fires it on the channel.
func (p *EventPublisher) Publish(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(envelope{
		EventID:     uuid.New().String(),
		Kind:        event.Kind(),
		AggregateID: event.AggregateID(),
		OccurredAt:  time.Now().UTC(),
		Payload:     event,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.client.rdb.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}
