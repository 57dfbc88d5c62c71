package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"focusquote/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultRedisNamespace = "focusquote"

type redisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisStore keeps values under <namespace>:<key> without expiry.
type RedisStore struct {
	store     redisCmdable
	namespace string
}

var _ interfaces.IKeyValueStore = (*RedisStore)(nil)

func NewRedisStore(client redisCmdable, namespace string) *RedisStore {
	if namespace == "" {
		namespace = defaultRedisNamespace
	}
	return &RedisStore{store: client, namespace: namespace}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.store == nil {
		return nil, errors.New("redis client not initialized")
	}
	b, err := s.store.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if s.store == nil {
		return errors.New("redis client not initialized")
	}
	if err := s.store.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) key(k string) string {
	return s.namespace + ":" + k
}
