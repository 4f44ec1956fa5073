package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"menu-coach/internal/core/state"
	"menu-coach/internal/infrastructure/config"
	"menu-coach/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func testRouterConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Env:     "test",
			Debug:   false,
			Version: "test",
		},
		State: config.StateConfig{
			KeyPrefix:       "menucoach:state:",
			TTL:             time.Hour,
			MaxSize:         100,
			CleanupInterval: time.Minute,
		},
	}
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testRouterConfig()
	store := state.NewMemoryStore(cfg)
	t.Cleanup(func() { store.Close() })

	router, err := SetupRouter(cfg, store)
	if err != nil {
		t.Fatalf("failed to setup router: %v", err)
	}
	return router
}

func TestHealthEndpoints(t *testing.T) {
	router := setupRouter(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, w.Code)
		}
	}
}

func TestRecommendThroughFullStack(t *testing.T) {
	router := setupRouter(t)

	body, _ := json.Marshal(map[string]interface{}{
		"cuisine": "steakhouse",
		"preferences": map[string]interface{}{
			"remaining_kcal":    700,
			"remaining_protein": 45,
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/menu/recommend", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result struct {
		Picks []json.RawMessage `json:"picks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if len(result.Picks) == 0 || len(result.Picks) > 3 {
		t.Errorf("expected between 1 and 3 picks, got %d", len(result.Picks))
	}
}

func TestBodySizeLimitThroughRouter(t *testing.T) {
	router := setupRouter(t)

	big := bytes.Repeat([]byte("a"), maxBodySize+1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/menu/parse", bytes.NewBuffer(big))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status 413, got %d", w.Code)
	}
}
