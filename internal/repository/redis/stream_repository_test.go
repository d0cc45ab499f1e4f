package redis_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flathunt/commute-service/internal/domain"
	redisRepo "github.com/flathunt/commute-service/internal/repository/redis"
)

const (
	testStream = "test:stream:routes:enrich"
	testGroup  = "test-group"
)

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	r := getTestRedis(t)
	repo := redisRepo.NewStreamRepository(r)
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	groups, err := r.Client().XInfoGroups(ctx, testStream).Result()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, testGroup, groups[0].Name)

	// Creating again must not error (BUSYGROUP handled).
	assert.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))
}

func TestStreamRepository_PublishConsumeAck(t *testing.T) {
	r := getTestRedis(t)
	repo := redisRepo.NewStreamRepository(r)
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	event := domain.RouteEnrichEvent{PropertyID: uuid.New()}
	require.NoError(t, repo.Publish(ctx, testStream, event))

	messages, err := repo.ConsumeBatch(ctx, testStream, testGroup, "test-consumer", 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	var decoded domain.RouteEnrichEvent
	require.NoError(t, json.Unmarshal([]byte(messages[0].Data), &decoded))
	assert.Equal(t, event.PropertyID, decoded.PropertyID)

	require.NoError(t, repo.AckMessage(ctx, testStream, testGroup, messages[0].ID))

	pending, err := r.Client().XPending(ctx, testStream, testGroup).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}

func TestStreamRepository_ConsumeEmptyStream(t *testing.T) {
	r := getTestRedis(t)
	repo := redisRepo.NewStreamRepository(r)
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testStream, testGroup))

	messages, err := repo.ConsumeBatch(ctx, testStream, testGroup, "test-consumer", 10)
	assert.NoError(t, err)
	assert.Empty(t, messages)
}
