package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"userdir/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
	})

	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupTestRedis(t)
	ctx := context.Background()

	stored := models.User{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com"}
	require.NoError(t, SetJSON(ctx, UserKey(1), stored, UserTTL))

	var loaded models.User
	found, err := GetJSON(ctx, UserKey(1), &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, stored.Name, loaded.Name)
	assert.Equal(t, stored.Email, loaded.Email)
}

func TestGetJSON_Miss(t *testing.T) {
	setupTestRedis(t)

	var loaded models.User
	found, err := GetJSON(context.Background(), UserKey(404), &loaded)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetJSON_NilClientIsAlwaysAMiss(t *testing.T) {
	SetClient(nil)

	var loaded models.User
	found, err := GetJSON(context.Background(), UserKey(1), &loaded)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestAside(t *testing.T) {
	mr := setupTestRedis(t)
	ctx := context.Background()

	t.Run("miss calls fetch and populates the cache", func(t *testing.T) {
		fetched := 0
		var user models.User
		err := Aside(ctx, UserKey(2), &user, UserTTL, func() error {
			fetched++
			user = models.User{ID: 2, Name: "Grace Hopper"}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, fetched)
		assert.Equal(t, "Grace Hopper", user.Name)
		assert.True(t, mr.Exists(UserKey(2)))
	})

	t.Run("hit skips fetch", func(t *testing.T) {
		var user models.User
		err := Aside(ctx, UserKey(2), &user, UserTTL, func() error {
			t.Error("fetch should not run on a cache hit")
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", user.Name)
	})

	t.Run("fetch error is returned and nothing is cached", func(t *testing.T) {
		sentinel := errors.New("record gone")
		var user models.User
		err := Aside(ctx, UserKey(3), &user, UserTTL, func() error {
			return sentinel
		})
		assert.ErrorIs(t, err, sentinel)
		assert.False(t, mr.Exists(UserKey(3)))
	})
}

func TestInvalidateUser(t *testing.T) {
	mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(5), models.User{ID: 5}, UserTTL))
	require.True(t, mr.Exists(UserKey(5)))

	InvalidateUser(ctx, 5)
	assert.False(t, mr.Exists(UserKey(5)))
}

func TestSetJSON_AppliesTTL(t *testing.T) {
	mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(6), models.User{ID: 6}, time.Minute))

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists(UserKey(6)))
}
