package menuapi

import (
	"net/http"

	"menu-coach/internal/core/menu"
	"menu-coach/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecommendRequest 推薦請求：菜單文字或菜系擇一即可，偏好必填
type RecommendRequest struct {
	MenuText    string       `json:"menu_text,omitempty"`
	Cuisine     string       `json:"cuisine,omitempty"`
	Preferences menu.Context `json:"preferences"`
}

// ParseRequest 僅做菜單解析的請求
type ParseRequest struct {
	MenuText string `json:"menu_text" binding:"required"`
}

// ParseResponse 解析結果
type ParseResponse struct {
	Dishes []menu.Dish `json:"dishes"`
	Count  int         `json:"count"`
}

// CuisineInfo 模板目錄條目
type CuisineInfo struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"display_name"`
	Aliases     []string `json:"aliases,omitempty"`
	DishCount   int      `json:"dish_count"`
}

// Handler 菜單處理程序
type Handler struct {
	svc *menu.Service
}

// NewHandler 創建菜單處理程序
func NewHandler(svc *menu.Service) *Handler {
	return &Handler{svc: svc}
}

// HandleRecommend 執行完整推薦管線
func (h *Handler) HandleRecommend(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	common.LogInfo("開始處理推薦請求",
		zap.String("request_id", requestID),
		zap.String("cuisine", req.Cuisine),
		zap.Bool("has_menu_text", req.MenuText != ""),
	)

	result := h.svc.Recommend(req.MenuText, req.Cuisine, req.Preferences)
	c.JSON(http.StatusOK, result)
}

// HandleParse 只執行菜單解析
func (h *Handler) HandleParse(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	dishes := menu.ParseMenu(req.MenuText)
	if dishes == nil {
		dishes = []menu.Dish{}
	}

	c.JSON(http.StatusOK, ParseResponse{
		Dishes: dishes,
		Count:  len(dishes),
	})
}

// HandleCuisines 模板目錄
func (h *Handler) HandleCuisines(c *gin.Context) {
	templates := h.svc.Cuisines()
	out := make([]CuisineInfo, 0, len(templates))
	for _, t := range templates {
		out = append(out, CuisineInfo{
			Key:         t.Key,
			DisplayName: t.DisplayName,
			Aliases:     t.Aliases,
			DishCount:   len(t.Dishes),
		})
	}
	c.JSON(http.StatusOK, gin.H{"cuisines": out})
}

// ensureRequestID 確保請求有 X-Request-ID
func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}
