package state

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"menu-coach/internal/infrastructure/config"
	"menu-coach/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore Redis 後端的狀態儲存
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisStore 建立 Redis 狀態儲存並測試連線
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client:    client,
		keyPrefix: cfg.State.KeyPrefix,
		ttl:       cfg.State.TTL,
	}, nil
}

// Load 讀取狀態；任何失敗（缺鍵、連線、解析）都靜默回退預設狀態
func (s *RedisStore) Load(ctx context.Context, id string) *State {
	key := s.key(id)

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			common.LogWarn("狀態讀取失敗，回退預設狀態",
				zap.Error(err),
			)
		}
		common.LogStateMiss("redis", key)
		return DefaultState()
	}

	var st State
	if err := common.ParseJSONBytes(data, &st); err != nil {
		common.LogWarn("狀態解析失敗，回退預設狀態",
			zap.Error(err),
		)
		return DefaultState()
	}

	common.LogStateHit("redis", key)
	return &st
}

// Save 寫入狀態
func (s *RedisStore) Save(ctx context.Context, id string, st *State) error {
	st.UpdatedAt = time.Now()

	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := s.client.Set(ctx, s.key(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set state: %w", err)
	}
	return nil
}

// Close 關閉連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// key 組合儲存鍵
func (s *RedisStore) key(id string) string {
	return s.keyPrefix + id
}
