package menuapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"menu-coach/internal/core/menu"
	"menu-coach/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := menu.NewCatalog("")
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	handler := NewHandler(menu.NewService(catalog))

	r := gin.New()
	r.GET("/api/v1/cuisines", handler.HandleCuisines)
	r.POST("/api/v1/menu/parse", handler.HandleParse)
	r.POST("/api/v1/menu/recommend", handler.HandleRecommend)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleRecommend(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(t, r, "/api/v1/menu/recommend", RecommendRequest{
		MenuText: "Filet mignon 8 oz with béarnaise 32\nGrilled salmon with broccoli 24",
		Preferences: menu.Context{
			RemainingKcal:    700,
			RemainingProtein: 45,
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result menu.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(result.Picks) != 2 {
		t.Fatalf("expected 2 picks, got %d", len(result.Picks))
	}
	if result.Source != "menu" {
		t.Errorf("expected source menu, got %q", result.Source)
	}
	if result.Summary == "" {
		t.Error("expected a summary in the response")
	}
}

func TestHandleRecommendTemplateFallback(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(t, r, "/api/v1/menu/recommend", RecommendRequest{
		Cuisine: "Sushi/Japanese",
		Preferences: menu.Context{
			RemainingKcal:    700,
			RemainingProtein: 45,
			LowSodium:        true,
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var result menu.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Source != "template" {
		t.Errorf("expected template source, got %q", result.Source)
	}
	if len(result.Picks) == 0 {
		t.Fatal("expected template picks")
	}
}

func TestHandleRecommendInvalidJSON(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/menu/recommend", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestHandleParse(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(t, r, "/api/v1/menu/parse", ParseRequest{MenuText: "Shrimp tempura udon"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var result ParseResponse
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Count != 1 {
		t.Fatalf("expected 1 dish, got %d", result.Count)
	}
	if result.Dishes[0].Protein != menu.ProteinShrimp {
		t.Errorf("expected shrimp, got %s", result.Dishes[0].Protein)
	}
}

func TestHandleParseMissingMenuText(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(t, r, "/api/v1/menu/parse", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("menu_text is required, expected 400, got %d", w.Code)
	}
}

func TestHandleCuisines(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cuisines", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var result struct {
		Cuisines []CuisineInfo `json:"cuisines"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if len(result.Cuisines) == 0 {
		t.Fatal("expected builtin cuisines")
	}

	found := false
	for _, c := range result.Cuisines {
		if c.Key == "japanese" && c.DishCount > 0 {
			found = true
		}
	}
	if !found {
		t.Error("expected the japanese template in the catalog")
	}
}
