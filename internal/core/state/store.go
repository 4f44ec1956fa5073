package state

import (
	"menu-coach/internal/infrastructure/config"
	"menu-coach/internal/pkg/common"

	"go.uber.org/zap"
)

// NewStore 依設定選擇後端：Redis 啟用且連得上用 Redis，否則用記憶體儲存
func NewStore(cfg *config.Config) Store {
	if cfg.Redis.Enabled {
		store, err := NewRedisStore(cfg)
		if err == nil {
			common.LogInfo("狀態儲存使用 Redis",
				zap.String("addr", cfg.Redis.Addr),
			)
			return store
		}
		common.LogWarn("Redis 連線失敗，改用記憶體狀態儲存",
			zap.Error(err),
		)
	}
	return NewMemoryStore(cfg)
}
