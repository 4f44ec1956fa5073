package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"menu-coach/internal/api/handlers/menuapi"
	"menu-coach/internal/core/menu"
	"menu-coach/internal/pkg/client"
)

func main() {
	var (
		addr      = flag.String("addr", "http://localhost:8080", "menu-coach server address")
		cuisine   = flag.String("cuisine", "", "cuisine template to use when no menu is given")
		menuPath  = flag.String("menu", "", "path to a menu text file, or '-' for stdin")
		kcal      = flag.Float64("kcal", 800, "remaining calorie budget")
		protein   = flag.Float64("protein", 40, "remaining protein target in grams")
		training  = flag.Bool("training", false, "training day")
		lowSodium = flag.Bool("low-sodium", false, "prefer low sodium")
		lowCarb   = flag.Bool("low-carb", false, "prefer low carb")
		highFiber = flag.Bool("high-fiber", false, "prefer high fiber")
		budget    = flag.Bool("budget", false, "penalize expensive dishes")
		list      = flag.Bool("cuisines", false, "list available cuisine templates and exit")
	)
	flag.Parse()

	api := client.New(*addr)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if *list {
		cuisines, err := api.Cuisines(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		for _, c := range cuisines {
			fmt.Printf("%-16s %s (%d dishes)\n", c.Key, c.DisplayName, c.DishCount)
		}
		return
	}

	menuText, err := readMenu(*menuPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if menuText == "" && *cuisine == "" {
		fmt.Fprintln(os.Stderr, "error: provide -menu or -cuisine")
		os.Exit(1)
	}

	result, err := api.Recommend(ctx, menuapi.RecommendRequest{
		MenuText: menuText,
		Cuisine:  *cuisine,
		Preferences: menu.Context{
			RemainingKcal:    *kcal,
			RemainingProtein: *protein,
			TrainingDay:      *training,
			LowSodium:        *lowSodium,
			LowCarb:          *lowCarb,
			HighFiber:        *highFiber,
			Budget:           *budget,
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if result.Message != "" {
		fmt.Println(result.Message)
		return
	}

	for _, pick := range result.Picks {
		fmt.Printf("#%d %s  (score %.1f)\n", pick.Rank, pick.Dish.Name, pick.Score)
		fmt.Printf("    ~%d-%d kcal, %d-%d g protein, %d-%d g carbs\n",
			pick.Macros.Kcal.Min, pick.Macros.Kcal.Max,
			pick.Macros.Protein.Min, pick.Macros.Protein.Max,
			pick.Macros.Carbs.Min, pick.Macros.Carbs.Max)
		if len(pick.Badges) > 0 {
			fmt.Printf("    [%s]\n", strings.Join(pick.Badges, "] ["))
		}
		fmt.Printf("    Say: %s\n", pick.Script)
	}
	if result.Summary != "" {
		fmt.Println("---")
		fmt.Print(result.Summary)
	}
}

// readMenu 讀取菜單文字，路徑為 '-' 時讀 stdin
func readMenu(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read menu file: %w", err)
	}
	return string(data), nil
}
