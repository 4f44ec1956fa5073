package menu

import "math"

// accumulator 估計過程的浮點累加器，輸出前才四捨五入
type accumulator struct {
	Kcal, Protein, Fat, Carbs, Fiber, Sodium span
}

// EstimateMacros 由菜色內容估計六項營養素區間。
// 基準值依蛋白質類型選取，未知類型用通用佔位值；
// 每個烹調、醬料、配菜標籤各自加上固定 [min,max] 調整量。
// 純函數，只依賴菜色內容與靜態表。
func EstimateMacros(dish Dish) MacroRange {
	base, ok := baseMacroTable[dish.Protein]
	if !ok {
		base = genericBase
	}

	acc := accumulator{
		Kcal:    span{base.Kcal, base.Kcal},
		Protein: span{base.Protein, base.Protein},
		Fat:     span{base.Fat, base.Fat},
		Carbs:   span{base.Carbs, base.Carbs},
		Fiber:   span{base.Fiber, base.Fiber},
		Sodium:  base.Sodium,
	}

	for _, tag := range dish.CookingTags {
		if adj, ok := cookingAdjustments[tag]; ok {
			acc.apply(adj)
		}
	}
	for _, tag := range dish.SauceTags {
		if adj, ok := sauceAdjustments[tag]; ok {
			acc.apply(adj)
		}
	}
	for _, tag := range dish.SideTags {
		if adj, ok := sideAdjustments[tag]; ok {
			acc.apply(adj)
		}
	}

	// 鈉估計：旗標與高鈉烹調方式各自加成
	if dish.HighSodium {
		acc.Sodium.Min += sodiumFlagSpan.Min
		acc.Sodium.Max += sodiumFlagSpan.Max
	}
	for _, tag := range dish.CookingTags {
		if sodiumCookingTags[tag] {
			acc.Sodium.Min += sodiumTagSpan.Min
			acc.Sodium.Max += sodiumTagSpan.Max
		}
	}

	return MacroRange{
		Kcal:    roundRange(acc.Kcal),
		Protein: roundRange(acc.Protein),
		Fat:     roundRange(acc.Fat),
		Carbs:   roundRange(acc.Carbs),
		Fiber:   roundRange(acc.Fiber),
		Sodium:  roundRange(acc.Sodium),
	}
}

// apply 將調整量加進累加器，蛋白質增量只有配菜表會提供
func (a *accumulator) apply(adj adjustment) {
	a.Kcal.Min += adj.Kcal.Min
	a.Kcal.Max += adj.Kcal.Max
	a.Fat.Min += adj.Fat.Min
	a.Fat.Max += adj.Fat.Max
	a.Carbs.Min += adj.Carbs.Min
	a.Carbs.Max += adj.Carbs.Max
	a.Fiber.Min += adj.Fiber.Min
	a.Fiber.Max += adj.Fiber.Max
	a.Protein.Min += adj.Protein.Min
	a.Protein.Max += adj.Protein.Max
}

// roundRange 四捨五入為整數並保證非負、min <= max
func roundRange(s span) Range {
	lo := int(math.Round(s.Min))
	hi := int(math.Round(s.Max))
	if lo < 0 {
		lo = 0
	}
	if hi < 0 {
		hi = 0
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return Range{Min: lo, Max: hi}
}
