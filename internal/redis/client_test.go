package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-rooms/internal/errors"
	"github.com/KirkDiggler/rpg-rooms/internal/redis"
)

func TestNewClient(t *testing.T) {
	_, err := redis.NewClient("  ", nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = redis.NewClient(" , ,", nil)
	assert.True(t, errors.IsInvalidArgument(err))

	client, err := redis.NewClient("localhost:6379,localhost:6380", nil)
	require.NoError(t, err)
	assert.NotNil(t, client)
	_ = client.Close()
}

func TestPing(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	require.NoError(t, redis.Ping(context.Background(), client, time.Second))

	mr.Close()
	err = redis.Ping(context.Background(), client, 200*time.Millisecond)
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}
