package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const releaseScript = `
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`

// Lock is a single-holder lock stored under a namespaced key. It expires after its TTL.
type Lock struct {
	client *Client
	key    string
	value  string
	ttl    time.Duration
}

// NewLock creates a lock on key. Every Lock gets its own owner token.
func NewLock(client *Client, key string, ttl time.Duration) *Lock {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Lock{
		client: client,
		key:    client.Key("lock:" + key),
		value:  uuid.NewString(),
		ttl:    ttl,
	}
}

// TryLock acquires the lock once, without waiting. It reports false when another owner holds it.
func (l *Lock) TryLock(ctx context.Context) (bool, error) {
	acquired, err := l.client.rdb.SetNX(ctx, l.key, l.value, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	return acquired, nil
}

// Unlock releases the lock if this owner still holds it
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.rdb.Eval(ctx, releaseScript, []string{l.key}, l.value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return fmt.Errorf("lock %s was not held by this owner", l.key)
	}
	return nil
}
