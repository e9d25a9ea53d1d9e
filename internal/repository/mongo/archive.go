package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/dgarciab/formspace/internal/config"
	"github.com/dgarciab/formspace/internal/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventArchive appends every domain event to a capped-growth audit
// collection. It sits behind the same publisher port as the Redis broadcast,
// so the service layer stays unaware of where events end up.
type EventArchive struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewEventArchive connects to MongoDB and binds the audit collection.
func NewEventArchive(ctx context.Context, cfg config.MongoConfig) (*EventArchive, error) {
	clientOpts := options.Client().ApplyURI(cfg.URI).SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)
	return &EventArchive{client: client, collection: collection}, nil
}

// Publish appends the event as one audit document.
func (a *EventArchive) Publish(ctx context.Context, event domain.Event) error {
	doc := bson.M{
		"event_id":     uuid.New().String(),
		"kind":         string(event.Kind()),
		"aggregate_id": event.AggregateID(),
		"occurred_at":  time.Now().UTC(),
		"payload":      event,
	}

	if _, err := a.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to archive event: %w", err)
	}
	return nil
}

// FindByAggregateID returns the audit trail of one aggregate, oldest first.
func (a *EventArchive) FindByAggregateID(ctx context.Context, aggregateID int64) ([]bson.M, error) {
	opts := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: 1}})

	cursor, err := a.collection.Find(ctx, bson.M{"aggregate_id": aggregateID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query event archive: %w", err)
	}
	defer cursor.Close(ctx)

	var events []bson.M
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode event archive: %w", err)
	}
	return events, nil
}

// Close disconnects the underlying client.
func (a *EventArchive) Close(ctx context.Context) error {
	return a.client.Disconnect(ctx)
}
