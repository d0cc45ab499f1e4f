package repository

import (
	"context"

	"github.com/flathunt/commute-service/internal/domain"
)

// StreamRepository wraps the message stream used by the enrichment worker.
type StreamRepository interface {
	// CreateConsumerGroup creates the consumer group for a stream,
	// creating the stream itself when missing. Idempotent.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to count pending messages for the consumer.
	// It does not block when the stream is empty.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// Publish appends a JSON payload to a stream.
	Publish(ctx context.Context, stream string, payload any) error
}
