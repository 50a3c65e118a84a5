// File: utils/slotlock.go
package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const slotLockPrefix = "slotlock:"

// SlotLocker provides short-lived exclusive locks scoped to a (date, time slot)
// key, held across the booking check-then-write sequence.
type SlotLocker interface {
	Acquire(ctx context.Context, date, timeSlot string) (release func(), ok bool, err error)
}

// RedisSlotLocker implements SlotLocker with SET NX PX. The TTL bounds how long
// a crashed holder can keep a slot key reserved.
type RedisSlotLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSlotLocker creates a slot locker backed by the given Redis client.
func NewRedisSlotLocker(client *redis.Client, ttl time.Duration) *RedisSlotLocker {
	return &RedisSlotLocker{client: client, ttl: ttl}
}

// releaseScript deletes the lock key only if it still holds our token, so an
// expired lock re-acquired by another request is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Acquire attempts to take the lock for the given date and slot. When ok is
// true the caller must invoke release once the write has completed.
func (l *RedisSlotLocker) Acquire(ctx context.Context, date, timeSlot string) (func(), bool, error) {
	key := slotLockPrefix + date + ":" + timeSlot
	token := uuid.New().String()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		_ = releaseScript.Run(context.Background(), l.client, []string{key}, token).Err()
	}
	return release, true, nil
}
