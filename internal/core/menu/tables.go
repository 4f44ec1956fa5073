package menu

// span 調整量的浮點閉區間，四捨五入前的中間表示
type span struct {
	Min, Max float64
}

// baseMacros 各蛋白質來源的基準營養值（kcal、蛋白質、脂肪、碳水、纖維、鈉 mg）
type baseMacros struct {
	Kcal    float64
	Protein float64
	Fat     float64
	Carbs   float64
	Fiber   float64
	Sodium  span
}

// adjustment 單一標籤對營養估計的加法調整，蛋白質只有配菜標籤會用到
type adjustment struct {
	Kcal    span
	Fat     span
	Carbs   span
	Fiber   span
	Protein span
}

// proteinMatcher 蛋白質類型判定規則，依固定優先序先命中先贏
type proteinMatcher struct {
	Type     ProteinType
	Keywords []string
}

// 蛋白質判定優先序：beef > fish > chicken > shrimp > tofu > sashimi
var proteinMatchers = []proteinMatcher{
	{ProteinBeef, []string{"filet", "steak", "ribeye", "rib eye", "sirloin", "beef", "mignon", "short rib", "wagyu", "brisket"}},
	{ProteinFish, []string{"salmon", "tuna", "cod", "halibut", "branzino", "sea bass", "trout", "mahi", "snapper", "fish"}},
	{ProteinChicken, []string{"chicken", "pollo", "poulet"}},
	{ProteinShrimp, []string{"shrimp", "prawn", "gambas", "scampi"}},
	{ProteinTofu, []string{"tofu", "tempeh"}},
	{ProteinSashimi, []string{"sashimi", "poke", "crudo"}},
}

// baseMacroTable 基準營養值表，未命中時使用 genericBase
var baseMacroTable = map[ProteinType]baseMacros{
	ProteinBeef:    {Kcal: 480, Protein: 42, Fat: 30, Carbs: 4, Fiber: 0, Sodium: span{200, 600}},
	ProteinFish:    {Kcal: 320, Protein: 34, Fat: 14, Carbs: 3, Fiber: 0, Sodium: span{150, 500}},
	ProteinChicken: {Kcal: 340, Protein: 38, Fat: 12, Carbs: 4, Fiber: 0, Sodium: span{200, 600}},
	ProteinShrimp:  {Kcal: 220, Protein: 28, Fat: 6, Carbs: 4, Fiber: 0, Sodium: span{300, 700}},
	ProteinTofu:    {Kcal: 260, Protein: 20, Fat: 14, Carbs: 10, Fiber: 2, Sodium: span{150, 500}},
	ProteinSashimi: {Kcal: 200, Protein: 30, Fat: 6, Carbs: 2, Fiber: 0, Sodium: span{100, 400}},
}

// genericBase 無法判定蛋白質來源時的通用佔位基準值
var genericBase = baseMacros{Kcal: 400, Protein: 25, Fat: 18, Carbs: 25, Fiber: 2, Sodium: span{300, 800}}

// 烹調方式標籤
const (
	CookGrilled = "grilled"
	CookFried   = "fried"
	CookCreamy  = "creamy"
	CookBraised = "braised"
	CookSteamed = "steamed"
	CookRoasted = "roasted"
	CookSauteed = "sauteed"
)

// cookingKeywords 烹調方式關鍵字，所有命中都追加，允許重複
var cookingKeywords = map[string][]string{
	CookGrilled: {"grilled", "grill", "charbroiled", "a la parrilla"},
	CookFried:   {"fried", "tempura", "katsu", "crispy", "breaded"},
	CookCreamy:  {"cream", "creamy", "alfredo", "béarnaise", "bearnaise", "hollandaise", "butter", "beurre"},
	CookBraised: {"braised", "stewed", "slow-cooked"},
	CookSteamed: {"steamed"},
	CookRoasted: {"roasted", "baked", "wood-fired"},
	CookSauteed: {"sautéed", "sauteed", "pan-seared", "seared"},
}

// cookingOrder 固定掃描順序，保證同一輸入產生相同標籤序
var cookingOrder = []string{CookGrilled, CookFried, CookCreamy, CookBraised, CookSteamed, CookRoasted, CookSauteed}

// sauceKeywords 醬料關鍵字
var sauceKeywords = map[string][]string{
	"béarnaise":   {"béarnaise", "bearnaise"},
	"hollandaise": {"hollandaise"},
	"teriyaki":    {"teriyaki"},
	"soy-glaze":   {"soy glaze", "soy-glazed", "soy glazed"},
	"marinara":    {"marinara", "pomodoro", "tomato sauce"},
	"pesto":       {"pesto"},
	"ponzu":       {"ponzu"},
	"chimichurri": {"chimichurri"},
	"peanut":      {"peanut sauce", "satay"},
	"vinaigrette": {"vinaigrette"},
	"aioli":       {"aioli", "garlic mayo"},
}

var sauceOrder = []string{"béarnaise", "hollandaise", "teriyaki", "soy-glaze", "marinara", "pesto", "ponzu", "chimichurri", "peanut", "vinaigrette", "aioli"}

// 配菜標籤
const (
	SideFries         = "fries"
	SideMashedPotato  = "mashed-potato"
	SideRice          = "rice"
	SidePasta         = "pasta-side"
	SideVegetable     = "vegetable"
	SideCucumberSalad = "cucumber-salad"
	SideEdamame       = "edamame"
	SideBread         = "bread"
	SideBeans         = "beans"
)

// sideKeywords 配菜關鍵字。cucumber 與 spinach 在解析器內另有特例處理
var sideKeywords = map[string][]string{
	SideFries:        {"fries", "frites", "chips"},
	SideMashedPotato: {"mashed", "potato purée", "potato puree"},
	SideRice:         {"rice", "pilaf"},
	SidePasta:        {"pasta", "noodle", "linguine", "spaghetti", "udon", "soba"},
	SideVegetable:    {"asparagus", "broccoli", "greens", "vegetable", "veggies", "salad", "spinach", "cucumber", "zucchini", "brussels"},
	SideEdamame:      {"edamame"},
	SideBread:        {"bread", "naan", "baguette"},
	SideBeans:        {"beans", "lentil"},
}

var sideOrder = []string{SideFries, SideMashedPotato, SideRice, SidePasta, SideVegetable, SideEdamame, SideBread, SideBeans}

// starchySides 視為澱粉類的配菜標籤，點餐腳本與低碳替換會用到
var starchySides = map[string]bool{
	SideFries:        true,
	SideMashedPotato: true,
	SideRice:         true,
	SidePasta:        true,
	SideBread:        true,
}

// sodiumKeywords 高鈉旗標關鍵字（固定集合，béarnaise 不在其中）
var sodiumKeywords = []string{
	"teriyaki", "soy", "miso", "ponzu", "pickled", "brined", "cured",
	"katsu", "kimchi", "fish sauce", "oyster sauce",
}

// sodiumCookingTags 鈉含量偏高的烹調方式
var sodiumCookingTags = map[string]bool{
	CookFried:   true,
	CookBraised: true,
}

// hiddenFatTags 隱性脂肪烹調方式，評分時每個命中扣固定分
var hiddenFatTags = map[string]bool{
	CookFried:  true,
	CookCreamy: true,
}

// 過敏原標籤
const (
	AllergenNuts      = "nuts"
	AllergenDairy     = "dairy"
	AllergenGluten    = "gluten"
	AllergenShellfish = "shellfish"
)

// allergenKeywords 過敏原關鍵字
var allergenKeywords = map[string][]string{
	AllergenNuts:      {"peanut", "almond", "cashew", "walnut", "pecan", "pistachio", "satay"},
	AllergenDairy:     {"cream", "cheese", "butter", "yogurt", "alfredo", "béarnaise", "bearnaise"},
	AllergenGluten:    {"breaded", "tempura", "pasta", "noodle", "bread", "katsu", "dumpling", "gyoza", "panko", "udon"},
	AllergenShellfish: {"shrimp", "prawn", "scampi", "lobster", "crab", "clam", "mussel", "oyster", "scallop"},
}

var allergenOrder = []string{AllergenNuts, AllergenDairy, AllergenGluten, AllergenShellfish}

// cookingAdjustments 烹調方式調整表
var cookingAdjustments = map[string]adjustment{
	CookGrilled: {Kcal: span{-20, 20}, Fat: span{0, 2}},
	CookFried:   {Kcal: span{150, 300}, Fat: span{12, 25}, Carbs: span{10, 20}},
	CookCreamy:  {Kcal: span{120, 250}, Fat: span{12, 28}},
	CookBraised: {Kcal: span{60, 150}, Fat: span{4, 12}, Carbs: span{2, 8}},
	CookSteamed: {Kcal: span{-30, 0}, Fat: span{-2, 0}},
	CookRoasted: {Kcal: span{20, 80}, Fat: span{2, 8}},
	CookSauteed: {Kcal: span{40, 120}, Fat: span{5, 14}},
}

// sauceAdjustments 醬料調整表
var sauceAdjustments = map[string]adjustment{
	"béarnaise":   {Kcal: span{120, 220}, Fat: span{13, 24}},
	"hollandaise": {Kcal: span{120, 220}, Fat: span{13, 24}},
	"teriyaki":    {Kcal: span{60, 120}, Carbs: span{14, 28}},
	"soy-glaze":   {Kcal: span{40, 90}, Carbs: span{8, 18}},
	"marinara":    {Kcal: span{40, 90}, Carbs: span{6, 14}, Fiber: span{1, 3}},
	"pesto":       {Kcal: span{90, 180}, Fat: span{9, 18}},
	"ponzu":       {Kcal: span{10, 30}, Carbs: span{2, 6}},
	"chimichurri": {Kcal: span{60, 120}, Fat: span{6, 13}},
	"peanut":      {Kcal: span{110, 200}, Fat: span{9, 17}, Carbs: span{6, 12}},
	"vinaigrette": {Kcal: span{40, 110}, Fat: span{4, 12}},
	"aioli":       {Kcal: span{90, 180}, Fat: span{10, 20}},
}

// sideAdjustments 配菜調整表，唯一會貢獻蛋白質增量的類別
var sideAdjustments = map[string]adjustment{
	SideFries:         {Kcal: span{300, 450}, Fat: span{14, 22}, Carbs: span{40, 60}, Fiber: span{3, 5}},
	SideMashedPotato:  {Kcal: span{200, 320}, Fat: span{8, 14}, Carbs: span{30, 45}, Fiber: span{2, 4}},
	SideRice:          {Kcal: span{180, 300}, Carbs: span{40, 65}, Fiber: span{1, 2}, Protein: span{3, 5}},
	SidePasta:         {Kcal: span{200, 350}, Fat: span{2, 8}, Carbs: span{40, 65}, Fiber: span{2, 4}, Protein: span{6, 10}},
	SideVegetable:     {Kcal: span{40, 100}, Carbs: span{6, 14}, Fiber: span{3, 6}, Protein: span{2, 4}},
	SideCucumberSalad: {Kcal: span{20, 60}, Carbs: span{3, 8}, Fiber: span{1, 2}},
	SideEdamame:       {Kcal: span{100, 160}, Fat: span{4, 7}, Carbs: span{8, 12}, Fiber: span{4, 6}, Protein: span{9, 12}},
	SideBread:         {Kcal: span{150, 280}, Fat: span{2, 6}, Carbs: span{28, 50}, Fiber: span{1, 3}, Protein: span{4, 8}},
	SideBeans:         {Kcal: span{120, 220}, Fat: span{1, 4}, Carbs: span{20, 36}, Fiber: span{6, 10}, Protein: span{7, 12}},
}

// 鈉估計調整：旗標與高鈉烹調方式的加成（mg）
var (
	sodiumFlagSpan = span{600, 1400}
	sodiumTagSpan  = span{150, 400}
)
