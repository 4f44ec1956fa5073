package state

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"menu-coach/internal/infrastructure/config"
	"menu-coach/internal/pkg/common"

	"go.uber.org/zap"
)

// MemoryStore 行程內的狀態儲存，Redis 未啟用時使用
type MemoryStore struct {
	mu      sync.RWMutex
	store   map[string]memoryEntry
	maxSize int
	ttl     time.Duration
	done    chan struct{}
	once    sync.Once
}

// memoryEntry 儲存條目
type memoryEntry struct {
	data       []byte
	expiresAt  time.Time
	lastAccess time.Time
}

// NewMemoryStore 建立記憶體狀態儲存並啟動過期清理協程
func NewMemoryStore(cfg *config.Config) *MemoryStore {
	m := &MemoryStore{
		store:   make(map[string]memoryEntry),
		maxSize: cfg.State.MaxSize,
		ttl:     cfg.State.TTL,
		done:    make(chan struct{}),
	}

	go m.startCleanup(cfg.State.CleanupInterval)

	common.LogInfo("記憶體狀態儲存已初始化",
		zap.Int("最大容量", cfg.State.MaxSize),
		zap.Duration("存活時間", cfg.State.TTL),
	)
	return m
}

// Load 讀取狀態；缺鍵、過期或解析失敗都回退預設狀態
func (m *MemoryStore) Load(ctx context.Context, id string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.store[id]
	if !exists || time.Now().After(entry.expiresAt) {
		if exists {
			delete(m.store, id)
		}
		common.LogStateMiss("memory", id)
		return DefaultState()
	}

	var st State
	if err := common.ParseJSONBytes(entry.data, &st); err != nil {
		common.LogWarn("狀態解析失敗，回退預設狀態",
			zap.Error(err),
		)
		return DefaultState()
	}

	entry.lastAccess = time.Now()
	m.store[id] = entry

	common.LogStateHit("memory", id)
	return &st
}

// Save 寫入狀態，容量滿時先逐出最久未訪問的條目
func (m *MemoryStore) Save(ctx context.Context, id string, st *State) error {
	st.UpdatedAt = time.Now()

	data, err := json.Marshal(st)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.store) >= m.maxSize {
		m.evictOldest()
	}

	now := time.Now()
	m.store[id] = memoryEntry{
		data:       data,
		expiresAt:  now.Add(m.ttl),
		lastAccess: now,
	}
	return nil
}

// Close 停止清理協程
func (m *MemoryStore) Close() error {
	m.once.Do(func() {
		close(m.done)
	})
	return nil
}

// startCleanup 週期性清除過期條目
func (m *MemoryStore) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.done:
			return
		}
	}
}

// cleanup 清除過期條目
func (m *MemoryStore) cleanup() {
	now := time.Now()
	count := 0

	m.mu.Lock()
	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			count++
		}
	}
	m.mu.Unlock()

	if count > 0 {
		common.LogInfo("已清除過期狀態",
			zap.Int("count", count),
		)
	}
}

// evictOldest 逐出最久未訪問的條目
func (m *MemoryStore) evictOldest() {
	var oldestKey string
	var oldestAccess time.Time

	for key, entry := range m.store {
		if oldestKey == "" || entry.lastAccess.Before(oldestAccess) {
			oldestKey = key
			oldestAccess = entry.lastAccess
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
	}
}
