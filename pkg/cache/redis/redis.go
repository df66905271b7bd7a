// Package redis implements cache.Cache on top of go-redis, for deployments
// that want the record index shared across restarts.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/craftbar/mixology/pkg/cache"
)

// Config holds the redis connection settings.
type Config struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

type redisCache struct {
	client *goredis.Client
}

// NewCache connects to redis and verifies the connection with a ping.
func NewCache(ctx context.Context, cfg *Config) (cache.Cache, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return &redisCache{client: client}, nil
}

func (c *redisCache) Get(ctx context.Context, key string) (interface{}, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, cache.ErrKeyNotFound
		}
		return nil, err
	}
	return val, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if expiration == cache.NoExpiration {
		expiration = 0
	}
	return c.client.Set(ctx, key, value, expiration).Err()
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *redisCache) GetByPattern(ctx context.Context, pattern string) (map[string]interface{}, error) {
	results := make(map[string]interface{})
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		val, err := c.client.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, goredis.Nil) {
				continue
			}
			return nil, err
		}
		results[key] = val
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
