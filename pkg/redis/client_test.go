package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"campus-hub.backend/pkg/redis"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { redis.SetClient(nil) })
	return mr
}

func TestInit_BadURL(t *testing.T) {
	err := redis.Init("not-a-url", "")
	assert.Error(t, err)
}

func TestInit_Unreachable(t *testing.T) {
	err := redis.Init("redis://127.0.0.1:1", "")
	assert.Error(t, err)
	assert.Nil(t, redis.GetClient())
}

func TestSetGetDel(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, redis.Set(ctx, "k", "v", time.Minute))

	val, err := redis.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	require.NoError(t, redis.Del(ctx, "k"))
	_, err = redis.Get(ctx, "k")
	assert.Error(t, err)
}

func TestExpiration(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, redis.Set(ctx, "k", "v", time.Second))
	mr.FastForward(2 * time.Second)

	_, err := redis.Get(ctx, "k")
	assert.Error(t, err)
}
