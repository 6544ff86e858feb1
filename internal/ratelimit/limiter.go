// Package ratelimit implements a sliding-window request counter backed by an
// external expiring key-value store.
// #IMPLEMENTATION_DECISION: Redis-backed so the window survives restarts and
// is shared across replicas, unlike an in-memory limiter
package ratelimit

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "maltacheck:rate:"

// Store is the expiring key-value store behind the limiter
// #INTEGRATION_POINT: RedisStore in production, memory store in tests
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
}

// RedisStore implements Store over a Redis client
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the stored value, or nil if the key is absent or expired.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// Set stores the value with the given expiry.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Ping checks store availability.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Limiter admits at most `max` requests per rolling window per client.
// Expired timestamps are pruned lazily, when the next request for that key
// arrives. The load-filter-store sequence is deliberately not atomic: two
// concurrent requests from one client can both be admitted on a stale count,
// briefly allowing up to 2*max-1 requests. Accepted approximation; an atomic
// INCR-with-expiry would tighten it at the cost of the sliding window.
type Limiter struct {
	store  Store
	max    int
	window time.Duration
	now    func() time.Time
}

// NewLimiter creates a sliding-window limiter.
func NewLimiter(store Store, max int, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		max:    max,
		window: window,
		now:    time.Now,
	}
}

// CheckAndRecord reports whether the client may proceed, recording the request
// if admitted. Rejected requests are not recorded, so a throttled client does
// not extend its own lockout.
func (l *Limiter) CheckAndRecord(ctx context.Context, clientID string) (bool, error) {
	key := l.key(clientID)

	data, err := l.store.Get(ctx, key)
	if err != nil {
		return false, err
	}

	var timestamps []int64
	if len(data) > 0 {
		if err := json.Unmarshal(data, &timestamps); err != nil {
			// Corrupt window data: start a fresh window rather than lock the client out
			timestamps = nil
		}
	}

	now := l.now().Unix()
	cutoff := now - int64(l.window.Seconds())
	recent := timestamps[:0]
	for _, ts := range timestamps {
		if ts > cutoff {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.max {
		return false, nil
	}

	recent = append(recent, now)
	updated, err := json.Marshal(recent)
	if err != nil {
		return false, err
	}
	if err := l.store.Set(ctx, key, updated, l.window); err != nil {
		return false, err
	}

	return true, nil
}

// key hashes the client identifier into the store keyspace.
func (l *Limiter) key(clientID string) string {
	sum := md5.Sum([]byte(clientID))
	return keyPrefix + hex.EncodeToString(sum[:])
}
