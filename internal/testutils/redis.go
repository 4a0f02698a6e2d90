// Package testutils provides shared fixtures and Redis helpers for tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-rooms/internal/redis"
)

// CreateTestRedisClient creates a client backed by an in-memory Redis that
// is torn down when the test ends.
func CreateTestRedisClient(t *testing.T) redis.Client {
	client, _ := CreateTestRedisClientWithServer(t)
	return client
}

// CreateTestRedisClientWithServer also returns the miniredis server so
// tests can seed data or fast-forward TTLs.
func CreateTestRedisClientWithServer(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}
