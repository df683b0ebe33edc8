package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the session fields in a Redis hash so co-operating
// processes can share one login. It stores exactly the six session keys and
// never refreshes or invalidates the credential on its own.
//
// Read failures degrade to an empty value, which the request layer treats as
// "not authenticated"; an unreachable Redis therefore looks like a logged-out
// session rather than an error.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// RedisOption customizes a RedisStore.
type RedisOption func(*RedisStore)

// WithTTL expires the session hash after the given duration, refreshed on
// every SetAuth.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *RedisStore) {
		r.ttl = ttl
	}
}

// NewRedisStore creates a Store backed by the hash stored at key.
func NewRedisStore(client *redis.Client, key string, options ...RedisOption) *RedisStore {
	ret := &RedisStore{client: client, key: key}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (r *RedisStore) field(name string) string {
	value, err := r.client.HGet(context.Background(), r.key, name).Result()
	if err != nil {
		return ""
	}
	return value
}

func (r *RedisStore) Token() string        { return r.field(keyToken) }
func (r *RedisStore) Role() string         { return r.field(keyRole) }
func (r *RedisStore) Username() string     { return r.field(keyUsername) }
func (r *RedisStore) InstructorID() string { return r.field(keyInstructorID) }
func (r *RedisStore) UserID() string       { return r.field(keyUserID) }

func (r *RedisStore) FullName() string {
	if name := r.field(keyFullName); name != "" {
		return name
	}
	return r.field(keyUsername)
}

func (r *RedisStore) Authenticated() bool {
	return r.Token() != ""
}

func (r *RedisStore) SetAuth(auth Auth) error {
	fields := map[string]interface{}{
		keyToken:    auth.Token,
		keyRole:     auth.Role,
		keyUsername: auth.Username,
	}
	if auth.FullName != "" {
		fields[keyFullName] = auth.FullName
	} else {
		fields[keyFullName] = auth.Username
	}
	if auth.InstructorID != "" {
		fields[keyInstructorID] = auth.InstructorID
	}
	if auth.UserID != "" {
		fields[keyUserID] = auth.UserID
	}
	ctx := context.Background()
	if err := r.client.HSet(ctx, r.key, fields).Err(); err != nil {
		return err
	}
	if r.ttl > 0 {
		return r.client.Expire(ctx, r.key, r.ttl).Err()
	}
	return nil
}

func (r *RedisStore) ClearAuth() error {
	return r.client.Del(context.Background(), r.key).Err()
}
