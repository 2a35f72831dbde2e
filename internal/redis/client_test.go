package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/idlemon-api/internal/redis"
)

func TestConnectSingleNode(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.Connect([]string{mr.Addr()}, &redis.Options{MaxRetries: 1})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestConnectValidation(t *testing.T) {
	_, err := redis.Connect(nil, nil)
	assert.Error(t, err)

	_, err = redis.NewClient("", nil)
	assert.Error(t, err)

	_, err = redis.NewClusterClient(nil, nil)
	assert.Error(t, err)
}

func TestConnectManyAddressesIsCluster(t *testing.T) {
	client, err := redis.Connect([]string{"127.0.0.1:7000", "127.0.0.1:7001"}, nil)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	cluster, ok := client.(*goredis.ClusterClient)
	require.True(t, ok, "expected a cluster client, got %T", client)
	assert.Equal(t, []string{"127.0.0.1:7000", "127.0.0.1:7001"}, cluster.Options().Addrs)
}
