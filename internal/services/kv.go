package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// KV is the key-value store every list-valued resource lives in. Get reports
// absent keys via found=false, never as an error. Set replaces the whole value
// unconditionally; there is no compare-and-set, so concurrent writers to the
// same key race and the last write wins.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
}

// RedisKV implements KV on a Redis string per key, holding JSON.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (s *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

func (s *RedisKV) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// fetchList reads the JSON list stored at key. An absent key is an empty list.
func fetchList[T any](ctx context.Context, kv KV, key string) ([]T, error) {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []T{}, nil
	}
	var list []T
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decode list at %s: %w", key, err)
	}
	return list, nil
}

// storeList writes the whole list back under key, replacing the previous value.
func storeList[T any](ctx context.Context, kv KV, key string, list []T) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode list for %s: %w", key, err)
	}
	return kv.Set(ctx, key, string(raw))
}

// fetchRecord reads a single JSON record. found=false when the key is absent.
func fetchRecord[T any](ctx context.Context, kv KV, key string, dest *T) (bool, error) {
	raw, found, err := kv.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode record at %s: %w", key, err)
	}
	return true, nil
}

// storeRecord writes a single JSON record under key.
func storeRecord[T any](ctx context.Context, kv KV, key string, rec T) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record for %s: %w", key, err)
	}
	return kv.Set(ctx, key, string(raw))
}
