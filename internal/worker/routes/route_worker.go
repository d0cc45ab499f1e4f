package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/flathunt/commute-service/internal/domain"
	"github.com/flathunt/commute-service/internal/domain/repository"
	"github.com/flathunt/commute-service/internal/usecase"
	"github.com/flathunt/commute-service/internal/worker"
	"go.uber.org/zap"
)

const (
	emptyQueueSleep = 100 * time.Millisecond
	errorSleep      = time.Second
)

// RouteEnrichmentWorker consumes property events, resolves commute routes
// for each property, validates it and publishes the verdict. Failures are
// isolated per property: a listing that cannot be processed is reported in
// its done event and never aborts the batch.
type RouteEnrichmentWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	routesUC     *usecase.PropertyRoutesUseCase
	validator    *usecase.PropertyValidator
	criteria     *domain.ValidationCriteria
	consumerName string
	batchSize    int
}

// NewRouteEnrichmentWorker creates a RouteEnrichmentWorker.
func NewRouteEnrichmentWorker(
	streamRepo repository.StreamRepository,
	routesUC *usecase.PropertyRoutesUseCase,
	validator *usecase.PropertyValidator,
	criteria *domain.ValidationCriteria,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *RouteEnrichmentWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &RouteEnrichmentWorker{
		BaseWorker:   worker.NewBaseWorker("route-enrichment", consumerGroup, logger),
		streamRepo:   streamRepo,
		routesUC:     routesUC,
		validator:    validator,
		criteria:     criteria,
		consumerName: consumerName,
		batchSize:    batchSize,
	}
}

// Start runs the consume loop until stopped.
func (w *RouteEnrichmentWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RouteEnrichmentWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamRoutesEnrich, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(errorSleep)
				continue
			}
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch reads and handles one batch of messages. It returns how
// many messages were processed.
func (w *RouteEnrichmentWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamRoutesEnrich,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		done := w.processMessage(ctx, msg)

		if done != nil {
			if err := w.streamRepo.Publish(ctx, domain.StreamRoutesDone, done); err != nil {
				logger.Error("Failed to publish done event",
					zap.String("property_id", done.PropertyID.String()),
					zap.Error(err))
			}
		}

		// Always ack: a property that failed is reported via its done
		// event rather than redelivered forever.
		if err := w.streamRepo.AckMessage(ctx, domain.StreamRoutesEnrich, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}

// processMessage handles a single enrich event end to end. It never
// returns an error; failures are folded into the done event.
func (w *RouteEnrichmentWorker) processMessage(ctx context.Context, msg domain.StreamMessage) *domain.RouteDoneEvent {
	logger := w.Logger()

	var event domain.RouteEnrichEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return nil
	}

	done := &domain.RouteDoneEvent{PropertyID: event.PropertyID}

	property, err := w.routesUC.RefreshPropertyRoutes(ctx, event.PropertyID, w.criteria)
	if err != nil {
		logger.Warn("Failed to refresh property routes",
			zap.String("property_id", event.PropertyID.String()),
			zap.Error(err))
		done.Error = fmt.Sprintf("failed to refresh routes: %v", err)
		return done
	}

	reasons := w.validator.Validate(property, w.criteria)
	done.Routes = property.Routes
	done.Reasons = reasons
	done.Valid = len(reasons) == 0

	logger.Info("Property enriched",
		zap.String("property_id", event.PropertyID.String()),
		zap.Int("routes", len(property.Routes)),
		zap.Bool("valid", done.Valid))

	return done
}
