// Package cache 提供进程级的 Redis JSON 缓存。
// Redis 未启用时所有读写都静默退化为未命中/空操作，调用方无需判空。
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Karthikeyanbk4067/FitX/internal/config"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "fitx"

var (
	client    *redis.Client
	keyPrefix string
)

// InitRedis 初始化 Redis 客户端
func InitRedis(cfg *config.RedisConfig) error {
	if cfg == nil || !cfg.Enabled {
		client = nil
		return nil
	}

	addr := strings.TrimSpace(cfg.Host)
	if addr == "" {
		addr = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	keyPrefix = strings.TrimSpace(cfg.Prefix)
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", addr, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return nil
}

// Enabled 判断缓存是否启用
func Enabled() bool {
	return client != nil
}

// Client 获取 Redis 客户端（限流等需要原生命令的场景）
func Client() *redis.Client {
	return client
}

// GetJSON 读取 JSON 缓存，返回是否命中
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}
	val, err := client.Get(ctx, buildKey(key)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 写入 JSON 缓存
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, buildKey(key), payload, ttl).Err()
}

func buildKey(key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return keyPrefix
	}
	return keyPrefix + ":" + trimmed
}
