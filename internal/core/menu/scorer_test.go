package menu

import "testing"

func TestScoreLowSodiumStrictlyDecreases(t *testing.T) {
	dish := Dish{Name: "Chicken teriyaki", Protein: ProteinChicken, HighSodium: true}
	macros := EstimateMacros(dish)

	base := Context{RemainingKcal: 700, RemainingProtein: 40}
	withPref := base
	withPref.LowSodium = true

	without := ScoreDish(dish, macros, base)
	with := ScoreDish(dish, macros, withPref)

	if with >= without {
		t.Errorf("low-sodium preference must strictly decrease the score of a flagged dish: %v >= %v", with, without)
	}
}

func TestScoreLowSodiumHitsSodiumHeavyCooking(t *testing.T) {
	// 未設旗標，但油炸屬於高鈉烹調方式
	dish := Dish{Name: "Chicken katsu", Protein: ProteinChicken, CookingTags: []string{CookFried}}
	macros := EstimateMacros(dish)

	base := Context{RemainingKcal: 700, RemainingProtein: 40}
	withPref := base
	withPref.LowSodium = true

	if ScoreDish(dish, macros, withPref) >= ScoreDish(dish, macros, base) {
		t.Error("sodium-heavy cooking tag must trigger the sodium penalty")
	}
}

func TestScoreTrainingDayCarbBonus(t *testing.T) {
	dish := Dish{Name: "Beef with rice", Protein: ProteinBeef, SideTags: []string{SideRice}}
	macros := EstimateMacros(dish)

	rest := Context{RemainingKcal: 800, RemainingProtein: 40}
	training := rest
	training.TrainingDay = true

	if ScoreDish(dish, macros, training) <= ScoreDish(dish, macros, rest) {
		t.Error("training day must reward carbs")
	}
}

func TestScoreLowCarbPenaltyOnlyOnRestDays(t *testing.T) {
	dish := Dish{Name: "Pasta with chicken", Protein: ProteinChicken, SideTags: []string{SidePasta}}
	macros := EstimateMacros(dish)

	base := Context{RemainingKcal: 800, RemainingProtein: 40}
	lowCarbRest := base
	lowCarbRest.LowCarb = true

	if ScoreDish(dish, macros, lowCarbRest) >= ScoreDish(dish, macros, base) {
		t.Error("low-carb on a rest day must penalize carbs")
	}

	// 訓練日同時開啟低碳：扣分不套用，加分照常
	lowCarbTraining := lowCarbRest
	lowCarbTraining.TrainingDay = true
	if ScoreDish(dish, macros, lowCarbTraining) <= ScoreDish(dish, macros, lowCarbRest) {
		t.Error("training day must suspend the low-carb penalty")
	}
}

func TestScoreHighFiberBonus(t *testing.T) {
	dish := Dish{Name: "Chicken with beans", Protein: ProteinChicken, SideTags: []string{SideBeans}}
	macros := EstimateMacros(dish)

	base := Context{RemainingKcal: 700, RemainingProtein: 40}
	fiber := base
	fiber.HighFiber = true

	if ScoreDish(dish, macros, fiber) <= ScoreDish(dish, macros, base) {
		t.Error("high-fiber preference must reward fiber")
	}
}

func TestScoreHiddenFatPenalty(t *testing.T) {
	plain := Dish{Name: "Chicken", Protein: ProteinChicken}
	creamy := Dish{Name: "Chicken alfredo", Protein: ProteinChicken, CookingTags: []string{CookCreamy}}

	// 用同一份巨集排除熱量差異，只比較隱性脂肪扣分
	macros := EstimateMacros(plain)
	ctx := Context{RemainingKcal: 700, RemainingProtein: 40}

	if ScoreDish(creamy, macros, ctx) >= ScoreDish(plain, macros, ctx) {
		t.Error("creamy cooking tag must cost a hidden-fat penalty")
	}
}

func TestScoreBudgetPenalty(t *testing.T) {
	dish := Dish{Name: "Wagyu ribeye", Protein: ProteinBeef, Price: 60}
	macros := EstimateMacros(dish)

	base := Context{RemainingKcal: 700, RemainingProtein: 40}
	budget := base
	budget.Budget = true

	if ScoreDish(dish, macros, budget) >= ScoreDish(dish, macros, base) {
		t.Error("budget flag must penalize dishes above the price threshold")
	}

	// 門檻以下不扣分
	cheap := Dish{Name: "Chicken plate", Protein: ProteinChicken, Price: 12}
	cheapMacros := EstimateMacros(cheap)
	if ScoreDish(cheap, cheapMacros, budget) != ScoreDish(cheap, cheapMacros, base) {
		t.Error("dishes under the threshold must not be penalized")
	}
}

func TestScoreProteinHitIsCapped(t *testing.T) {
	// 剩餘蛋白質目標低時，超出的蛋白質不再加分
	dish := Dish{Name: "Double steak", Protein: ProteinBeef}
	macros := EstimateMacros(dish)

	small := Context{RemainingKcal: 480, RemainingProtein: 10}
	large := Context{RemainingKcal: 480, RemainingProtein: 42}

	// 兩個上下文都吃得滿蛋白質命中，大目標命中更多
	if ScoreDish(dish, macros, large) <= ScoreDish(dish, macros, small) {
		t.Error("a larger remaining-protein target must let the same dish score higher")
	}
}
