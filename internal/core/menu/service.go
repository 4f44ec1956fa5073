package menu

import (
	"fmt"
	"strings"
	"time"

	"menu-coach/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 推薦服務：解析、估計、評分、排名的進入點
type Service struct {
	catalog *Catalog
}

// NewService 創建推薦服務
func NewService(catalog *Catalog) *Service {
	return &Service{catalog: catalog}
}

// Result 一次推薦的完整輸出
type Result struct {
	Picks   []RankedPick `json:"picks"`
	Summary string       `json:"summary,omitempty"`
	Source  string       `json:"source"`            // "menu" 或 "template"
	Cuisine string       `json:"cuisine,omitempty"` // 命中的模板 key
	Message string       `json:"message,omitempty"` // 例如 no menu items detected
}

// Recommend 執行完整推薦管線。
// 有菜單文字時逐行解析為候選；否則用菜系模板；兩者皆空時回傳空結果與提示訊息。
func (s *Service) Recommend(menuText, cuisine string, ctx Context) Result {
	start := time.Now()

	var (
		candidates []Dish
		fallbacks  [2]string
		source     = "menu"
		cuisineKey string
	)

	if tpl, ok := s.catalog.Lookup(cuisine); ok {
		cuisineKey = tpl.Key
		fallbacks = tpl.Fallbacks
		if strings.TrimSpace(menuText) == "" {
			candidates = tpl.Dishes
			source = "template"
		}
	}

	if strings.TrimSpace(menuText) != "" {
		candidates = ParseMenu(menuText)
	}

	if len(candidates) == 0 {
		common.LogWarn("沒有可用候選菜色",
			zap.String("cuisine", cuisine),
		)
		return Result{
			Picks:   []RankedPick{},
			Source:  source,
			Cuisine: cuisineKey,
			Message: common.ErrEmptyMenu.Message,
		}
	}

	picks := Rank(candidates, ctx, fallbacks)

	result := Result{
		Picks:   picks,
		Summary: buildSummary(picks, cuisineKey),
		Source:  source,
		Cuisine: cuisineKey,
	}

	common.LogPipeline(cuisineKey, len(candidates), len(picks), time.Since(start))
	return result
}

// Cuisines 模板目錄
func (s *Service) Cuisines() []CuisineTemplate {
	return s.catalog.List()
}

// buildSummary 產生一次性的分享摘要字串
func buildSummary(picks []RankedPick, cuisine string) string {
	if len(picks) == 0 {
		return ""
	}

	var sb strings.Builder
	if cuisine != "" {
		fmt.Fprintf(&sb, "Top picks (%s):\n", cuisine)
	} else {
		sb.WriteString("Top picks:\n")
	}
	for _, p := range picks {
		fmt.Fprintf(&sb, "%d. %s - ~%.0f kcal, ~%.0f g protein\n   Say: %s\n",
			p.Rank, p.Dish.Name, p.Macros.Kcal.Mid(), p.Macros.Protein.Mid(), p.Script)
	}
	return sb.String()
}
