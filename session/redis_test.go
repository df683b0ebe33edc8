package session

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, options ...RedisOption) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(server.Close)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "session:test", options...), server
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newRedisStore(t)

	require.NoError(t, store.SetAuth(Auth{
		Token:        "abc",
		Role:         "instructor",
		Username:     "alice",
		InstructorID: "7",
	}))

	assert.True(t, store.Authenticated())
	assert.Equal(t, "abc", store.Token())
	assert.Equal(t, "instructor", store.Role())
	assert.Equal(t, "alice", store.Username())
	assert.Equal(t, "7", store.InstructorID())
	assert.Equal(t, "alice", store.FullName())
}

func TestRedisStoreClearAuth(t *testing.T) {
	store, server := newRedisStore(t)
	require.NoError(t, store.SetAuth(Auth{Token: "abc", Role: "student", Username: "bob"}))
	require.NoError(t, store.ClearAuth())
	require.NoError(t, store.ClearAuth())

	assert.False(t, store.Authenticated())
	assert.False(t, server.Exists("session:test"))
}

func TestRedisStoreTTL(t *testing.T) {
	store, server := newRedisStore(t, WithTTL(time.Minute))
	require.NoError(t, store.SetAuth(Auth{Token: "abc", Role: "student", Username: "bob"}))
	assert.Equal(t, time.Minute, server.TTL("session:test"))

	server.FastForward(2 * time.Minute)
	assert.False(t, store.Authenticated())
}
