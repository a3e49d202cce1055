package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultConversationTTL is how long an idle conversation survives in redis.
const defaultConversationTTL = 24 * time.Hour

// RedisStore persists conversations in redis so history survives restarts
// and is shared across replicas. Turns live in a list trimmed to the history
// cap; preferences live in a hash. Both expire together after the TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig carries the connection settings for the redis memory backend.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func NewRedisStore(ctx context.Context, cfg RedisConfig, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}

	if ttl <= 0 {
		ttl = defaultConversationTTL
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func historyKey(id string) string { return "chat:history:" + id }
func prefsKey(id string) string   { return "chat:prefs:" + id }

func (r *RedisStore) History(ctx context.Context, conversationID string) ([]Turn, error) {
	raw, err := r.client.LRange(ctx, historyKey(conversationID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	turns := make([]Turn, 0, len(raw))
	for _, item := range raw {
		var turn Turn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			// Skip entries written by an incompatible version.
			continue
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (r *RedisStore) Append(ctx context.Context, conversationID string, turns ...Turn) error {
	key := historyKey(conversationID)

	pipe := r.client.TxPipeline()
	for _, turn := range turns {
		encoded, err := json.Marshal(turn)
		if err != nil {
			return fmt.Errorf("encode turn: %w", err)
		}
		pipe.RPush(ctx, key, encoded)
	}
	pipe.LTrim(ctx, key, -maxHistoryTurns, -1)
	pipe.Expire(ctx, key, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (r *RedisStore) Preferences(ctx context.Context, conversationID string) (map[string]string, error) {
	prefs, err := r.client.HGetAll(ctx, prefsKey(conversationID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	return prefs, nil
}

func (r *RedisStore) UpdatePreferences(ctx context.Context, conversationID string, prefs map[string]string) error {
	if len(prefs) == 0 {
		return nil
	}
	key := prefsKey(conversationID)

	pipe := r.client.TxPipeline()
	values := make([]any, 0, len(prefs)*2)
	for k, v := range prefs {
		values = append(values, k, v)
	}
	pipe.HSet(ctx, key, values...)
	pipe.Expire(ctx, key, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error { return r.client.Close() }
