package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/flathunt/commute-service/internal/domain"
	"github.com/flathunt/commute-service/internal/domain/repository"
	"github.com/flathunt/commute-service/internal/pkg/errors"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	propertyKeyPrefix = "property:"
	propertyIDsKey    = "properties:ids"
	nextIndexKey      = "properties:next_index"
)

type propertyRepository struct {
	client *redis.Client
	logger *zap.Logger

	// Serializes local index reservations; the INCR itself is atomic on
	// the Redis side.
	indexMu sync.Mutex
}

// NewPropertyRepository creates the Redis-backed property store.
// Properties are stored as JSON values keyed by ID with a companion set
// for listing.
func NewPropertyRepository(r *Redis) repository.PropertyRepository {
	return &propertyRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

func propertyKey(id uuid.UUID) string {
	return propertyKeyPrefix + id.String()
}

func (r *propertyRepository) Save(ctx context.Context, property *domain.Property) error {
	data, err := json.Marshal(property)
	if err != nil {
		return fmt.Errorf("failed to marshal property: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, propertyKey(property.ID), data, 0)
	pipe.SAdd(ctx, propertyIDsKey, property.ID.String())
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to save property",
			zap.String("property_id", property.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to save property: %w", err)
	}

	return nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	data, err := r.client.Get(ctx, propertyKey(id)).Bytes()
	if err == redis.Nil {
		return nil, errors.ErrPropertyNotFound
	}
	if err != nil {
		r.logger.Error("Failed to load property",
			zap.String("property_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to load property: %w", err)
	}

	var property domain.Property
	if err := json.Unmarshal(data, &property); err != nil {
		return nil, fmt.Errorf("failed to unmarshal property: %w", err)
	}
	return &property, nil
}

func (r *propertyRepository) List(ctx context.Context) ([]*domain.Property, error) {
	ids, err := r.client.SMembers(ctx, propertyIDsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list property ids: %w", err)
	}

	properties := make([]*domain.Property, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			r.logger.Warn("Skipping malformed property id", zap.String("id", raw))
			continue
		}

		property, err := r.GetByID(ctx, id)
		if err == errors.ErrPropertyNotFound {
			// The set can lag behind deleted values.
			continue
		}
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}

	return properties, nil
}

func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, propertyKey(id))
	pipe.SRem(ctx, propertyIDsKey, id.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	return nil
}

// NextIndex reserves the next persisted-property index.
func (r *propertyRepository) NextIndex(ctx context.Context) (int, error) {
	r.indexMu.Lock()
	defer r.indexMu.Unlock()

	index, err := r.client.Incr(ctx, nextIndexKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to reserve property index: %w", err)
	}
	return int(index), nil
}
