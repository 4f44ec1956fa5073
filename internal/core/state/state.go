package state

import (
	"context"
	"time"

	"menu-coach/internal/core/menu"
)

// State 使用者偏好與歷史紀錄，整包原樣存取，單一寫入者，無版本欄位也無遷移邏輯
type State struct {
	Cuisine   string       `json:"cuisine,omitempty"`
	Prefs     menu.Context `json:"prefs"`
	Favorites []string     `json:"favorites,omitempty"`
	Recents   []string     `json:"recents,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// DefaultState 硬編碼的預設狀態，讀取失敗時一律回退到這裡
func DefaultState() *State {
	return &State{
		Prefs: menu.Context{
			RemainingKcal:    800,
			RemainingProtein: 40,
		},
	}
}

// Store 狀態儲存介面。
// Load 永遠成功：讀不到或解不開就回傳預設狀態。
type Store interface {
	Load(ctx context.Context, id string) *State
	Save(ctx context.Context, id string, st *State) error
	Close() error
}
