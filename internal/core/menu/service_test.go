package menu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"menu-coach/internal/pkg/common"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	catalog, err := NewCatalog("")
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return NewService(catalog)
}

func TestRecommendFromMenuText(t *testing.T) {
	svc := newTestService(t)

	result := svc.Recommend("Grilled chicken with broccoli\nSteak frites 28\nShrimp tempura", "", testContext())

	if result.Source != "menu" {
		t.Errorf("expected source menu, got %q", result.Source)
	}
	if len(result.Picks) != 3 {
		t.Fatalf("expected 3 picks, got %d", len(result.Picks))
	}
	if result.Summary == "" {
		t.Error("expected a shareable summary")
	}
	if result.Message != "" {
		t.Errorf("unexpected message %q", result.Message)
	}
}

func TestRecommendJapaneseTemplateDefaults(t *testing.T) {
	svc := newTestService(t)

	result := svc.Recommend("", "Sushi/Japanese", testContext())

	if result.Source != "template" {
		t.Errorf("expected template source, got %q", result.Source)
	}
	if result.Cuisine != "japanese" {
		t.Errorf("expected cuisine key japanese, got %q", result.Cuisine)
	}

	found := false
	for _, pick := range result.Picks {
		if pick.Dish.Protein == ProteinSashimi &&
			hasTag(pick.Dish.SideTags, SideEdamame) &&
			hasTag(pick.Dish.SideTags, SideCucumberSalad) {
			found = true
		}
	}
	if !found {
		t.Error("default japanese picks must include a sashimi dish with edamame and cucumber-salad sides")
	}
}

func TestRecommendMenuTextOverridesTemplate(t *testing.T) {
	svc := newTestService(t)

	result := svc.Recommend("Grilled chicken plate", "japanese", testContext())

	if result.Source != "menu" {
		t.Errorf("menu text must take precedence over the template, got source %q", result.Source)
	}
	if len(result.Picks) != 1 || result.Picks[0].Dish.Protein != ProteinChicken {
		t.Errorf("unexpected picks %+v", result.Picks)
	}
	// 菜系命中時沿用模板的備案建議
	if !strings.Contains(result.Picks[0].Fallbacks[0], "Sashimi") {
		t.Errorf("expected japanese fallbacks, got %v", result.Picks[0].Fallbacks)
	}
}

func TestRecommendNothingDetected(t *testing.T) {
	svc := newTestService(t)

	result := svc.Recommend("", "no such cuisine", testContext())

	if len(result.Picks) != 0 {
		t.Fatalf("expected no picks, got %d", len(result.Picks))
	}
	if result.Message != "no menu items detected" {
		t.Errorf("expected the no-menu message, got %q", result.Message)
	}
}

func TestCatalogAliases(t *testing.T) {
	catalog, err := NewCatalog("")
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"japanese", "sushi", "Sushi/Japanese", "SUSHI"} {
		if _, ok := catalog.Lookup(name); !ok {
			t.Errorf("expected %q to resolve to the japanese template", name)
		}
	}
	if _, ok := catalog.Lookup("klingon"); ok {
		t.Error("unexpected template for unknown cuisine")
	}
}

func TestCatalogYAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cuisines.yaml")
	data := `cuisines:
  - key: diner
    display_name: Roadside Diner
    dishes:
      - name: Grilled cheese
        protein: unknown
    fallbacks:
      - first suggestion
      - second suggestion
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	catalog, err := NewCatalog(path)
	if err != nil {
		t.Fatalf("failed to load override: %v", err)
	}

	if len(catalog.List()) != 1 {
		t.Fatalf("override must replace builtins, got %d templates", len(catalog.List()))
	}
	tpl, ok := catalog.Lookup("diner")
	if !ok {
		t.Fatal("expected diner template")
	}
	if tpl.Fallbacks[0] != "first suggestion" {
		t.Errorf("unexpected fallbacks %v", tpl.Fallbacks)
	}
}

func TestCatalogMissingFileFallsBack(t *testing.T) {
	catalog, err := NewCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if len(catalog.List()) == 0 {
		t.Error("expected builtin templates")
	}
}
