package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talentgraph/talentgraph/core"
)

const defaultKeyPrefix = "session:"

// RedisOptions configure a RedisStore.
type RedisOptions struct {
	// TTL applied on every save and refreshed on load. Zero means no expiry.
	TTL time.Duration
	// KeyPrefix prepended to session ids. Defaults to "session:".
	KeyPrefix string
}

// RedisStore is the durable SummaryStore implementation. Summaries are
// JSON-marshalled turn sequences keyed by session id; writes are
// last-writer-wins per key, which matches the one-writer-per-session
// processing model.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

var _ core.SummaryStore = (*RedisStore)(nil)

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, optFns ...func(o *RedisOptions)) *RedisStore {
	opts := RedisOptions{KeyPrefix: defaultKeyPrefix}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &RedisStore{client: client, ttl: opts.TTL, prefix: opts.KeyPrefix}
}

// NewRedisStoreFromURL parses a redis URL, connects and pings the server.
func NewRedisStoreFromURL(ctx context.Context, url string, optFns ...func(o *RedisOptions)) (*RedisStore, error) {
	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return NewRedisStore(client, optFns...), nil
}

// Load returns the persisted summary for the session, or (nil, nil) when
// none exists. A configured TTL is refreshed on every load.
func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]core.Turn, error) {
	key := s.prefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("load summary %q: %w", sessionID, err)
	}

	var turns []core.Turn
	if err := json.Unmarshal([]byte(data), &turns); err != nil {
		return nil, fmt.Errorf("decode summary %q: %w", sessionID, err)
	}

	if s.ttl > 0 {
		s.client.Expire(ctx, key, s.ttl)
	}
	return turns, nil
}

// Save upserts the summary for the session. Idempotent per key.
func (s *RedisStore) Save(ctx context.Context, sessionID string, turns []core.Turn) error {
	data, err := json.Marshal(turns)
	if err != nil {
		return fmt.Errorf("encode summary %q: %w", sessionID, err)
	}
	if err := s.client.Set(ctx, s.prefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save summary %q: %w", sessionID, err)
	}
	return nil
}

// Clear removes the summary for the session.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.prefix+sessionID).Err(); err != nil {
		return fmt.Errorf("clear summary %q: %w", sessionID, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error { return s.client.Close() }
