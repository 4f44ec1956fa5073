package menu

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog 菜系模板目錄，載入後唯讀
type Catalog struct {
	templates []CuisineTemplate
	index     map[string]int // 正規化名稱與別名 -> templates 下標
}

// NewCatalog 建立模板目錄。path 為空時只用內建模板；
// 檔案不存在同樣回退內建模板，已存在但格式錯誤才回傳錯誤。
func NewCatalog(path string) (*Catalog, error) {
	templates := builtinTemplates()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read templates file: %w", err)
			}
		} else {
			var override struct {
				Cuisines []CuisineTemplate `yaml:"cuisines"`
			}
			if err := yaml.Unmarshal(data, &override); err != nil {
				return nil, fmt.Errorf("failed to parse templates file: %w", err)
			}
			if len(override.Cuisines) > 0 {
				templates = override.Cuisines
			}
		}
	}

	c := &Catalog{
		templates: templates,
		index:     make(map[string]int),
	}
	for i, t := range templates {
		c.index[normalizeCuisine(t.Key)] = i
		c.index[normalizeCuisine(t.DisplayName)] = i
		for _, alias := range t.Aliases {
			c.index[normalizeCuisine(alias)] = i
		}
	}
	return c, nil
}

// Lookup 依名稱或別名查模板
func (c *Catalog) Lookup(name string) (CuisineTemplate, bool) {
	i, ok := c.index[normalizeCuisine(name)]
	if !ok {
		return CuisineTemplate{}, false
	}
	return c.templates[i], true
}

// List 回傳全部模板
func (c *Catalog) List() []CuisineTemplate {
	out := make([]CuisineTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// normalizeCuisine 名稱正規化：小寫、去空白
func normalizeCuisine(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// builtinTemplates 內建模板
func builtinTemplates() []CuisineTemplate {
	return []CuisineTemplate{
		{
			Key:         "steakhouse",
			DisplayName: "Steakhouse/American",
			Aliases:     []string{"american", "steak"},
			Dishes: []Dish{
				{Name: "Filet mignon with asparagus", Protein: ProteinBeef, CookingTags: []string{CookGrilled}, SideTags: []string{SideVegetable}},
				{Name: "Grilled chicken breast with broccoli", Protein: ProteinChicken, CookingTags: []string{CookGrilled}, SideTags: []string{SideVegetable}},
				{Name: "Seared salmon with mashed potatoes", Protein: ProteinFish, CookingTags: []string{CookSauteed}, SideTags: []string{SideMashedPotato}},
				{Name: "Ribeye with fries", Protein: ProteinBeef, CookingTags: []string{CookGrilled}, SideTags: []string{SideFries}},
				{Name: "Shrimp cocktail", Protein: ProteinShrimp, Allergens: []string{AllergenShellfish}},
			},
			Fallbacks: [2]string{
				"If the filet is out, any lean steak cut trimmed of visible fat works.",
				"Ask whether a plain grilled chicken breast is available off-menu.",
			},
		},
		{
			Key:         "japanese",
			DisplayName: "Sushi/Japanese",
			Aliases:     []string{"sushi", "sushi/japanese"},
			Dishes: []Dish{
				{Name: "Sashimi platter with edamame and cucumber salad", Protein: ProteinSashimi, SideTags: []string{SideEdamame, SideCucumberSalad, SideVegetable}},
				{Name: "Salmon teriyaki with rice", Protein: ProteinFish, SauceTags: []string{"teriyaki"}, SideTags: []string{SideRice}, HighSodium: true},
				{Name: "Chicken katsu with rice", Protein: ProteinChicken, CookingTags: []string{CookFried}, SideTags: []string{SideRice}, HighSodium: true, Allergens: []string{AllergenGluten}},
				{Name: "Shrimp tempura udon", Protein: ProteinShrimp, CookingTags: []string{CookFried}, SideTags: []string{SidePasta}, Allergens: []string{AllergenGluten, AllergenShellfish}},
				{Name: "Agedashi tofu", Protein: ProteinTofu, CookingTags: []string{CookFried}, HighSodium: true},
			},
			Fallbacks: [2]string{
				"Sashimi a la carte plus a side of edamame covers protein without the rice.",
				"Ask for low-sodium soy sauce or use ponzu sparingly.",
			},
		},
		{
			Key:         "italian",
			DisplayName: "Italian",
			Aliases:     []string{"trattoria"},
			Dishes: []Dish{
				{Name: "Grilled branzino with greens", Protein: ProteinFish, CookingTags: []string{CookGrilled}, SideTags: []string{SideVegetable}},
				{Name: "Chicken piccata with pasta", Protein: ProteinChicken, CookingTags: []string{CookSauteed, CookCreamy}, SideTags: []string{SidePasta}, Allergens: []string{AllergenDairy, AllergenGluten}},
				{Name: "Shrimp marinara over linguine", Protein: ProteinShrimp, SauceTags: []string{"marinara"}, SideTags: []string{SidePasta}, Allergens: []string{AllergenGluten, AllergenShellfish}},
				{Name: "Bistecca with roasted vegetables", Protein: ProteinBeef, CookingTags: []string{CookGrilled, CookRoasted}, SideTags: []string{SideVegetable}},
			},
			Fallbacks: [2]string{
				"Most kitchens will do any protein 'alla griglia' with a vegetable side.",
				"Ask for half the pasta portion with extra vegetables instead.",
			},
		},
		{
			Key:         "mexican",
			DisplayName: "Mexican",
			Aliases:     []string{"taqueria"},
			Dishes: []Dish{
				{Name: "Grilled chicken fajitas with beans", Protein: ProteinChicken, CookingTags: []string{CookGrilled}, SideTags: []string{SideBeans, SideVegetable}},
				{Name: "Carne asada with rice and beans", Protein: ProteinBeef, CookingTags: []string{CookGrilled}, SideTags: []string{SideRice, SideBeans}},
				{Name: "Shrimp ceviche", Protein: ProteinShrimp, Allergens: []string{AllergenShellfish}},
				{Name: "Fish tacos with cabbage slaw", Protein: ProteinFish, CookingTags: []string{CookGrilled}, SideTags: []string{SideVegetable, SideBread}},
			},
			Fallbacks: [2]string{
				"Fajitas without the tortillas are the easiest low-carb order here.",
				"Ask for corn tortillas over flour if you want the wrap anyway.",
			},
		},
		{
			Key:         "mediterranean",
			DisplayName: "Mediterranean",
			Aliases:     []string{"greek"},
			Dishes: []Dish{
				{Name: "Chicken souvlaki with greek salad", Protein: ProteinChicken, CookingTags: []string{CookGrilled}, SideTags: []string{SideVegetable}},
				{Name: "Grilled salmon with lentils", Protein: ProteinFish, CookingTags: []string{CookGrilled}, SideTags: []string{SideBeans}},
				{Name: "Lamb kofta with rice pilaf", Protein: ProteinBeef, CookingTags: []string{CookGrilled}, SideTags: []string{SideRice}},
				{Name: "Falafel plate with hummus", Protein: ProteinTofu, CookingTags: []string{CookFried}, SideTags: []string{SideBeans, SideBread}, Allergens: []string{AllergenGluten}},
			},
			Fallbacks: [2]string{
				"Any skewered grilled protein with salad is a reliable pick.",
				"Tzatziki on the side beats creamy dressings on the plate.",
			},
		},
		{
			Key:         "chinese",
			DisplayName: "Chinese",
			Aliases:     []string{"szechuan", "cantonese"},
			Dishes: []Dish{
				{Name: "Steamed fish with ginger and scallion", Protein: ProteinFish, CookingTags: []string{CookSteamed}},
				{Name: "Kung pao chicken with peanuts", Protein: ProteinChicken, CookingTags: []string{CookSauteed}, HighSodium: true, Allergens: []string{AllergenNuts}},
				{Name: "Beef and broccoli with rice", Protein: ProteinBeef, CookingTags: []string{CookSauteed}, SideTags: []string{SideVegetable, SideRice}, HighSodium: true},
				{Name: "Mapo tofu", Protein: ProteinTofu, CookingTags: []string{CookBraised}, HighSodium: true},
				{Name: "Salt and pepper shrimp", Protein: ProteinShrimp, CookingTags: []string{CookFried}, HighSodium: true, Allergens: []string{AllergenShellfish}},
			},
			Fallbacks: [2]string{
				"Steamed dishes with sauce on the side keep the sodium manageable.",
				"Ask for brown rice or half rice if you want to trim the carbs.",
			},
		},
	}
}
