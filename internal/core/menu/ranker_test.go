package menu

import (
	"strings"
	"testing"
)

func testContext() Context {
	return Context{RemainingKcal: 700, RemainingProtein: 45}
}

func TestRankReturnsAtMostThreeDescending(t *testing.T) {
	dishes := ParseMenu(strings.Join([]string{
		"Filet mignon with asparagus",
		"Chicken teriyaki with rice",
		"Shrimp tempura udon",
		"Grilled salmon with broccoli",
		"Agedashi tofu",
	}, "\n"))

	picks := Rank(dishes, testContext(), [2]string{})

	if len(picks) > 3 {
		t.Fatalf("expected at most 3 picks, got %d", len(picks))
	}
	for i := 1; i < len(picks); i++ {
		if picks[i].Score > picks[i-1].Score {
			t.Errorf("picks must be sorted by descending score: %v then %v", picks[i-1].Score, picks[i].Score)
		}
	}
	for i, p := range picks {
		if p.Rank != i+1 {
			t.Errorf("expected rank %d, got %d", i+1, p.Rank)
		}
	}
}

func TestRankFewerCandidatesThanLimit(t *testing.T) {
	picks := Rank([]Dish{{Name: "Only dish", Protein: ProteinChicken}}, testContext(), [2]string{})
	if len(picks) != 1 {
		t.Fatalf("expected 1 pick, got %d", len(picks))
	}
	if picks[0].Rank != 1 {
		t.Errorf("expected rank 1, got %d", picks[0].Rank)
	}
}

func TestRankStableTies(t *testing.T) {
	// 完全相同的菜色同分，必須維持原始順序
	dishes := []Dish{
		{Name: "First grilled chicken", Protein: ProteinChicken, CookingTags: []string{CookGrilled}},
		{Name: "Second grilled chicken", Protein: ProteinChicken, CookingTags: []string{CookGrilled}},
	}
	picks := Rank(dishes, testContext(), [2]string{})

	if picks[0].Dish.Name != "First grilled chicken" {
		t.Errorf("ties must preserve original order, got %q first", picks[0].Dish.Name)
	}
}

func TestRankAnnotations(t *testing.T) {
	dishes := []Dish{{
		Name:       "Chicken teriyaki with rice",
		Protein:    ProteinChicken,
		SauceTags:  []string{"teriyaki"},
		SideTags:   []string{SideRice},
		HighSodium: true,
	}}
	ctx := testContext()
	ctx.LowSodium = true

	picks := Rank(dishes, ctx, [2]string{"fallback one", "fallback two"})
	pick := picks[0]

	if !strings.HasPrefix(pick.Script, "ask for it grilled if possible; no butter") {
		t.Errorf("script must always lead with the grilled and no-butter fragments, got %q", pick.Script)
	}
	if !strings.Contains(pick.Script, "sauce on the side") {
		t.Errorf("sauced dish must get the sauce-on-the-side fragment, got %q", pick.Script)
	}
	if !strings.Contains(pick.Script, "half the starch") {
		t.Errorf("starchy side must get the half-starch fragment, got %q", pick.Script)
	}
	if !strings.Contains(pick.Script, "no added soy") {
		t.Errorf("low-sodium context must get the substitution fragment, got %q", pick.Script)
	}
	if pick.Fallbacks[0] != "fallback one" || pick.Fallbacks[1] != "fallback two" {
		t.Errorf("unexpected fallbacks %v", pick.Fallbacks)
	}
}

func TestRankEmptyFallbacksUseGeneric(t *testing.T) {
	picks := Rank([]Dish{{Name: "Dish", Protein: ProteinChicken}}, testContext(), [2]string{})
	if picks[0].Fallbacks[0] == "" || picks[0].Fallbacks[1] == "" {
		t.Error("empty fallbacks must fall back to the generic suggestions")
	}
}

func TestBuildScriptLowCarbSwap(t *testing.T) {
	dish := Dish{Name: "Steak frites", Protein: ProteinBeef, SideTags: []string{SideFries}}

	ctx := testContext()
	ctx.LowCarb = true
	if !strings.Contains(BuildScript(dish, ctx), "swap the starch") {
		t.Error("low-carb rest day with a starchy side must suggest the swap")
	}

	// 訓練日不做低碳替換
	ctx.TrainingDay = true
	if strings.Contains(BuildScript(dish, ctx), "swap the starch") {
		t.Error("training day must not suggest the low-carb swap")
	}
}

func TestBadges(t *testing.T) {
	sashimi := Dish{Name: "Sashimi platter", Protein: ProteinSashimi}
	macros := EstimateMacros(sashimi)
	badges := buildBadges(sashimi, macros, testContext())

	if !hasTag(badges, "protein-dense") {
		t.Errorf("sashimi should be protein-dense, got %v", badges)
	}
	if !hasTag(badges, "low-carb") {
		t.Errorf("sashimi should be low-carb, got %v", badges)
	}
	if !hasTag(badges, "low-sodium") {
		t.Errorf("unflagged sashimi should be low-sodium, got %v", badges)
	}

	flagged := Dish{Name: "Teriyaki bowl", Protein: ProteinChicken, HighSodium: true}
	badges = buildBadges(flagged, EstimateMacros(flagged), testContext())
	if hasTag(badges, "low-sodium") {
		t.Errorf("flagged dish must not get the low-sodium badge, got %v", badges)
	}
}
