package menu

// ProteinType 蛋白質來源類型
type ProteinType string

const (
	ProteinBeef    ProteinType = "beef"
	ProteinFish    ProteinType = "fish"
	ProteinChicken ProteinType = "chicken"
	ProteinShrimp  ProteinType = "shrimp"
	ProteinTofu    ProteinType = "tofu"
	ProteinSashimi ProteinType = "sashimi"
	ProteinUnknown ProteinType = "unknown"
)

// Dish 一道菜的結構化紀錄，來自菜單解析或菜系模板，產生後不再修改
type Dish struct {
	Name        string      `json:"name" yaml:"name"`
	Notes       string      `json:"notes,omitempty" yaml:"notes"`
	Price       float64     `json:"price,omitempty" yaml:"price"` // 0 表示未標價
	Protein     ProteinType `json:"protein" yaml:"protein"`
	CookingTags []string    `json:"cooking_tags,omitempty" yaml:"cooking_tags"`
	SauceTags   []string    `json:"sauce_tags,omitempty" yaml:"sauce_tags"`
	SideTags    []string    `json:"side_tags,omitempty" yaml:"side_tags"`
	HighSodium  bool        `json:"high_sodium" yaml:"high_sodium"`
	Allergens   []string    `json:"allergens,omitempty" yaml:"allergens"`
}

// Range 單一營養素的閉區間估計，上下界皆為非負整數
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Mid 區間中點
func (r Range) Mid() float64 {
	return float64(r.Min+r.Max) / 2
}

// MacroRange 六項營養素的估計區間，每次重新計算，不做快取
type MacroRange struct {
	Kcal    Range `json:"kcal"`
	Protein Range `json:"protein"`
	Fat     Range `json:"fat"`
	Carbs   Range `json:"carbs"`
	Fiber   Range `json:"fiber"`
	Sodium  Range `json:"sodium"` // mg
}

// Context 評分上下文：使用者剩餘預算與飲食偏好
type Context struct {
	RemainingKcal    float64 `json:"remaining_kcal"`
	RemainingProtein float64 `json:"remaining_protein"`
	TrainingDay      bool    `json:"training_day"`
	LowSodium        bool    `json:"low_sodium"`
	LowCarb          bool    `json:"low_carb"`
	HighFiber        bool    `json:"high_fiber"`
	Budget           bool    `json:"budget"`
}

// RankedPick 排名後的推薦結果，輸入改變時整批重算
type RankedPick struct {
	Dish      Dish       `json:"dish"`
	Macros    MacroRange `json:"macros"`
	Score     float64    `json:"score"`
	Rank      int        `json:"rank"`
	Script    string     `json:"script"`
	Badges    []string   `json:"badges,omitempty"`
	Fallbacks [2]string  `json:"fallbacks"`
}

// CuisineTemplate 菜系模板：沒有菜單文字時的候選來源，唯讀
type CuisineTemplate struct {
	Key         string    `json:"key" yaml:"key"`
	DisplayName string    `json:"display_name" yaml:"display_name"`
	Aliases     []string  `json:"aliases,omitempty" yaml:"aliases"`
	Dishes      []Dish    `json:"dishes" yaml:"dishes"`
	Fallbacks   [2]string `json:"fallbacks" yaml:"fallbacks"`
}
