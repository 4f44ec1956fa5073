package menu

import (
	"sort"
	"strings"
)

// topPicks 排名結果最多保留前幾名
const topPicks = 3

// 通用備案建議，菜系模板可提供自己的版本
var genericFallbacks = [2]string{
	"If this is out, ask for the simplest grilled protein on the menu.",
	"A side salad with dressing on the side is always a safe add-on.",
}

// Rank 對所有候選菜色計分、穩定排序後取前三名，
// 並為每個結果附上點餐腳本、徽章與兩句備案建議。
func Rank(dishes []Dish, ctx Context, fallbacks [2]string) []RankedPick {
	if fallbacks[0] == "" && fallbacks[1] == "" {
		fallbacks = genericFallbacks
	}

	picks := make([]RankedPick, 0, len(dishes))
	for _, dish := range dishes {
		macros := EstimateMacros(dish)
		picks = append(picks, RankedPick{
			Dish:      dish,
			Macros:    macros,
			Score:     ScoreDish(dish, macros, ctx),
			Fallbacks: fallbacks,
		})
	}

	// 穩定排序：同分維持原始順序
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].Score > picks[j].Score
	})

	if len(picks) > topPicks {
		picks = picks[:topPicks]
	}

	for i := range picks {
		picks[i].Rank = i + 1
		picks[i].Script = BuildScript(picks[i].Dish, ctx)
		picks[i].Badges = buildBadges(picks[i].Dish, picks[i].Macros, ctx)
	}

	return picks
}

// BuildScript 產生點餐腳本：固定順序的建議片段，依菜色屬性與偏好取捨後以分號串接
func BuildScript(dish Dish, ctx Context) string {
	fragments := []string{
		"ask for it grilled if possible",
		"no butter",
	}

	if len(dish.SauceTags) > 0 {
		fragments = append(fragments, "sauce on the side")
	}
	if hasStarchySide(dish) {
		fragments = append(fragments, "half the starch, double the vegetables")
	}
	if ctx.LowSodium && isSodiumHeavy(dish) {
		fragments = append(fragments, "no added soy or marinade, lemon instead")
	}
	if ctx.LowCarb && !ctx.TrainingDay && hasStarchySide(dish) {
		fragments = append(fragments, "swap the starch for a green salad")
	}

	return strings.Join(fragments, "; ")
}

// buildBadges 徽章：每個都是簡單的門檻或旗標檢查
func buildBadges(dish Dish, macros MacroRange, ctx Context) []string {
	var badges []string

	midProtein := macros.Protein.Mid()
	midKcal := macros.Kcal.Mid()
	midCarbs := macros.Carbs.Mid()

	if midProtein >= 30 && midKcal > 0 && midProtein*4/midKcal >= 0.3 {
		badges = append(badges, "protein-dense")
	}
	if midCarbs <= 20 {
		badges = append(badges, "low-carb")
	}
	if !isSodiumHeavy(dish) {
		badges = append(badges, "low-sodium")
	}
	if ctx.Budget && dish.Price > 0 && dish.Price <= defaultWeights.BudgetThreshold {
		badges = append(badges, "budget-friendly")
	}
	if ctx.TrainingDay && midCarbs >= 40 {
		badges = append(badges, "training-day carbs")
	}

	return badges
}

// hasStarchySide 是否帶有澱粉類配菜
func hasStarchySide(dish Dish) bool {
	for _, tag := range dish.SideTags {
		if starchySides[tag] {
			return true
		}
	}
	return false
}
