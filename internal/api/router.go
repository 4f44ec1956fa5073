package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"menu-coach/internal/api/handlers/health"
	"menu-coach/internal/api/handlers/menuapi"
	"menu-coach/internal/api/handlers/stateapi"
	"menu-coach/internal/api/middleware"
	"menu-coach/internal/core/menu"
	"menu-coach/internal/core/state"
	"menu-coach/internal/infrastructure/config"
	"menu-coach/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 請求超時，整條管線都是同步純計算，不需要長時限
	timeoutDuration = 10 * time.Second
	// 請求體大小限制 (1MB)，菜單文字用不到更多
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, stateStore state.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 請求去重與限流
	router.Use(middleware.Deduplication(cfg))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 初始化模板目錄與推薦服務
	catalog, err := menu.NewCatalog(cfg.Templates.Path)
	if err != nil {
		common.LogError("Failed to load cuisine templates", zap.Error(err))
		return nil, fmt.Errorf("failed to load cuisine templates: %w", err)
	}
	menuSvc := menu.NewService(catalog)

	common.LogInfo("Services initialized",
		zap.Int("cuisines", len(catalog.List())),
		zap.String("templates_path", cfg.Templates.Path),
	)

	// 全局中間件：設置超時和配置
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)

		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeGatewayTimeout,
			})
			c.Abort()
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		menuHandler := menuapi.NewHandler(menuSvc)
		stateHandler := stateapi.NewHandler(stateStore)

		api.GET("/cuisines", menuHandler.HandleCuisines)

		menuGroup := api.Group("/menu")
		{
			// 菜單解析
			menuGroup.POST("/parse", menuHandler.HandleParse)

			// 完整推薦管線
			menuGroup.POST("/recommend", menuHandler.HandleRecommend)
		}

		stateGroup := api.Group("/state")
		{
			stateGroup.GET("/:id", stateHandler.HandleGet)
			stateGroup.PUT("/:id", stateHandler.HandlePut)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
