// Package locking provides owner-scoped locks for the quote collection
// read-modify-write cycle.
package locking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"focusquote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockTimeout is returned when the wait budget runs out before the lock is
// acquired.
var ErrLockTimeout = errors.New("owner lock: timed out waiting for lock")

// MemoryLocker serializes mutations inside a single process.
type MemoryLocker struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

var _ interfaces.IOwnerLocker = (*MemoryLocker)(nil)

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{slots: make(map[string]*slot)}
}

func (l *MemoryLocker) Lock(ctx context.Context, ownerID string) (func(), error) {
	l.mu.Lock()
	s, ok := l.slots[ownerID]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[ownerID] = s
	}
	s.refs++
	l.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(ownerID, s)
		return nil, fmt.Errorf("%w: %v", ErrLockTimeout, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.unref(ownerID, s)
		})
	}, nil
}

func (l *MemoryLocker) unref(ownerID string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, ownerID)
	}
}

// NoopLocker never blocks. Concurrent writers race and the last write wins.
type NoopLocker struct{}

var _ interfaces.IOwnerLocker = NoopLocker{}

func (NoopLocker) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}

const (
	defaultLease     = 10 * time.Second
	defaultWait      = 5 * time.Second
	defaultRetryStep = 50 * time.Millisecond
	lockKeyPrefix    = "focusquote:lock:"
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lease taken over by another instance is never released by us.
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`

type redisLockStore interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
}

// RedisLocker is a lease lock shared by every instance pointed at the same
// Redis. A crashed holder loses the lock when the lease expires.
type RedisLocker struct {
	store     redisLockStore
	lease     time.Duration
	wait      time.Duration
	retryStep time.Duration
}

var _ interfaces.IOwnerLocker = (*RedisLocker)(nil)

func NewRedisLocker(store redisLockStore, lease, wait time.Duration) (*RedisLocker, error) {
	if store == nil {
		return nil, errors.New("redis client required for lock")
	}
	if lease <= 0 {
		lease = defaultLease
	}
	if wait <= 0 {
		wait = defaultWait
	}
	return &RedisLocker{store: store, lease: lease, wait: wait, retryStep: defaultRetryStep}, nil
}

func LockKey(ownerID string) string {
	return lockKeyPrefix + ownerID
}

func (l *RedisLocker) Lock(ctx context.Context, ownerID string) (func(), error) {
	key := LockKey(ownerID)
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	ticker := time.NewTicker(l.retryStep)
	defer ticker.Stop()

	for {
		ok, err := l.store.SetNX(waitCtx, key, token, l.lease).Result()
		if err != nil && waitCtx.Err() == nil {
			return nil, fmt.Errorf("setnx %s: %w", key, err)
		}
		if ok {
			break
		}
		select {
		case <-waitCtx.Done():
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, ownerID)
		case <-ticker.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.lease)
			defer cancel()
			_ = l.store.Eval(releaseCtx, releaseScript, []string{key}, token).Err()
		})
	}, nil
}
