package menu

import "math"

// Weights 評分權重，全部為固定常數，同一上下文內分數只有相對意義
type Weights struct {
	ProteinHit       float64 // 有效蛋白質每克加分
	ProteinGap       float64 // 蛋白質缺口每克扣分
	KcalCloseness    float64 // 與剩餘熱量距離每 kcal 扣分
	CarbPenalty      float64 // 非訓練日且要求低碳時每克碳水扣分
	CarbBonus        float64 // 訓練日每克碳水加分
	FiberBonus       float64 // 要求高纖時每克纖維加分
	SodiumPenalty    float64 // 要求低鈉且菜色高鈉時的固定扣分
	HiddenFatPenalty float64 // 每個隱性脂肪烹調標籤的固定扣分
	BudgetPenalty    float64 // 超出門檻每元扣分
	BudgetThreshold  float64 // 預算門檻
}

// defaultWeights 手調權重表
var defaultWeights = Weights{
	ProteinHit:       2.0,
	ProteinGap:       0.8,
	KcalCloseness:    0.05,
	CarbPenalty:      0.5,
	CarbBonus:        0.3,
	FiberBonus:       1.5,
	SodiumPenalty:    25,
	HiddenFatPenalty: 12,
	BudgetPenalty:    0.6,
	BudgetThreshold:  25,
}

// ScoreDish 以巨集中點與使用者上下文計算單一排序分數。
// 分數不做跨菜正規化，只保證同一上下文下的相對順序有意義。
func ScoreDish(dish Dish, macros MacroRange, ctx Context) float64 {
	w := defaultWeights

	midProtein := macros.Protein.Mid()
	midKcal := macros.Kcal.Mid()
	midCarbs := macros.Carbs.Mid()
	midFiber := macros.Fiber.Mid()

	// 蛋白質命中：吃得進剩餘目標的部分加分，缺口扣分
	useful := math.Min(midProtein, ctx.RemainingProtein)
	score := w.ProteinHit * useful
	if gap := ctx.RemainingProtein - midProtein; gap > 0 {
		score -= w.ProteinGap * gap
	}

	// 熱量貼近度：與剩餘熱量的絕對距離
	score -= w.KcalCloseness * math.Abs(ctx.RemainingKcal-midKcal)

	// 碳水：非訓練日的低碳扣分，訓練日加分
	if ctx.LowCarb && !ctx.TrainingDay {
		score -= w.CarbPenalty * midCarbs
	}
	if ctx.TrainingDay {
		score += w.CarbBonus * midCarbs
	}

	// 纖維
	if ctx.HighFiber {
		score += w.FiberBonus * midFiber
	}

	// 鈉：旗標或高鈉烹調方式任一成立就扣
	if ctx.LowSodium && isSodiumHeavy(dish) {
		score -= w.SodiumPenalty
	}

	// 隱性脂肪：每個命中的烹調標籤各扣一次
	for _, tag := range dish.CookingTags {
		if hiddenFatTags[tag] {
			score -= w.HiddenFatPenalty
		}
	}

	// 預算：超出門檻的部分按比例扣分
	if ctx.Budget && dish.Price > w.BudgetThreshold {
		score -= w.BudgetPenalty * (dish.Price - w.BudgetThreshold)
	}

	return score
}

// isSodiumHeavy 高鈉旗標或使用高鈉烹調方式
func isSodiumHeavy(dish Dish) bool {
	if dish.HighSodium {
		return true
	}
	for _, tag := range dish.CookingTags {
		if sodiumCookingTags[tag] {
			return true
		}
	}
	return false
}
