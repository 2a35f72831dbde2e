// Package testutils provides shared fixtures and Redis helpers for tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/idlemon-api/internal/redis"
)

// CreateTestRedisClient starts an in-memory Redis and returns a client for
// it. Both are torn down when the test finishes; the miniredis handle lets
// the test inspect keys or fast-forward TTLs.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
