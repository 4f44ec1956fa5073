package stateapi

import (
	"net/http"

	"menu-coach/internal/core/state"
	"menu-coach/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 使用者狀態處理程序
type Handler struct {
	store state.Store
}

// NewHandler 創建狀態處理程序
func NewHandler(store state.Store) *Handler {
	return &Handler{store: store}
}

// HandleGet 讀取狀態；讀取失敗不回錯誤，照規格回傳預設狀態
func (h *Handler) HandleGet(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "state id is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	st := h.store.Load(c.Request.Context(), id)
	c.JSON(http.StatusOK, st)
}

// HandlePut 整包覆寫狀態
func (h *Handler) HandlePut(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "state id is required",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	var st state.State
	if err := c.ShouldBindJSON(&st); err != nil {
		common.LogError("狀態格式無效",
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid state format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	if err := h.store.Save(c.Request.Context(), id, &st); err != nil {
		common.LogError("狀態寫入失敗",
			zap.Error(err),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Failed to save state",
			"code":  common.ErrCodeServiceUnavailable,
		})
		return
	}

	c.JSON(http.StatusOK, st)
}
