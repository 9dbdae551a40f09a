package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/cardlink/internal/application/service"
	"github.com/khoahotran/cardlink/internal/domain/account"
)

type redisProfileCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisProfileCache(rdb *redis.Client, ttl time.Duration) service.ProfileCache {
	return &redisProfileCache{rdb: rdb, ttl: ttl}
}

func (c *redisProfileCache) Get(ctx context.Context, key string) (*account.Profile, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	p := &account.Profile{}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("decode cached profile %s: %w", key, err)
	}
	return p, nil
}

func (c *redisProfileCache) Set(ctx context.Context, key string, p *account.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", key, err)
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

func (c *redisProfileCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
