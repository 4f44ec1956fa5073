package menu

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// 行尾價格，例如 "Filet mignon 8 oz  32" 或 "$18.50"
	pricePattern = regexp.MustCompile(`(?:\$\s*)?(\d+(?:\.\d{1,2})?)\s*$`)
	// 括號備註，例如 "(gluten free)"
	notesPattern = regexp.MustCompile(`\(([^)]*)\)`)
)

// ParseMenu 將多行菜單文字逐行解析為結構化菜色。
// 每個非空白行產生一道菜；無法判讀的文字不是錯誤，只會得到僅有名稱的菜色。
func ParseMenu(raw string) []Dish {
	var dishes []Dish
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		dishes = append(dishes, ParseLine(line))
	}
	return dishes
}

// ParseLine 解析單行菜單文字
func ParseLine(line string) Dish {
	dish := Dish{Protein: ProteinUnknown}
	lower := strings.ToLower(line)

	// 行尾價格
	name := line
	if m := pricePattern.FindStringSubmatch(line); m != nil {
		if price, err := strconv.ParseFloat(m[1], 64); err == nil && price > 0 {
			dish.Price = price
			name = strings.TrimSpace(strings.TrimSuffix(line, m[0]))
		}
	}

	// 括號內容視為備註，從名稱移除
	if m := notesPattern.FindStringSubmatch(name); m != nil {
		dish.Notes = strings.TrimSpace(m[1])
		name = strings.TrimSpace(notesPattern.ReplaceAllString(name, ""))
	}
	dish.Name = name

	// 蛋白質類型：固定優先序，先命中先贏
	for _, pm := range proteinMatchers {
		if containsAny(lower, pm.Keywords) {
			dish.Protein = pm.Type
			break
		}
	}

	// 烹調方式：所有命中都追加
	for _, tag := range cookingOrder {
		for _, kw := range cookingKeywords[tag] {
			if strings.Contains(lower, kw) {
				dish.CookingTags = append(dish.CookingTags, tag)
				break
			}
		}
	}

	// 醬料
	for _, tag := range sauceOrder {
		if containsAny(lower, sauceKeywords[tag]) {
			dish.SauceTags = append(dish.SauceTags, tag)
		}
	}

	// 配菜
	for _, tag := range sideOrder {
		if containsAny(lower, sideKeywords[tag]) {
			dish.SideTags = append(dish.SideTags, tag)
		}
	}
	// 特例：cucumber 除了一般蔬菜標籤外再加小黃瓜沙拉標籤
	if strings.Contains(lower, "cucumber") {
		dish.SideTags = append(dish.SideTags, SideCucumberSalad)
	}
	// 特例：spinach 以澱粉類標籤近似 creamed spinach 的份量
	if strings.Contains(lower, "spinach") {
		dish.SideTags = append(dish.SideTags, SidePasta)
	}

	// 高鈉旗標
	dish.HighSodium = containsAny(lower, sodiumKeywords)

	// 過敏原
	for _, tag := range allergenOrder {
		if containsAny(lower, allergenKeywords[tag]) {
			dish.Allergens = append(dish.Allergens, tag)
		}
	}

	return dish
}

// containsAny 任一關鍵字子串命中即為真
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
