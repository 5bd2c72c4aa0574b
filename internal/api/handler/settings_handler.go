package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/service"
	"github.com/maplol/adaptix-mvp/pkg/response"
)

// SettingsHandler 设置模块 HTTP 处理器
type SettingsHandler struct {
	settingsSvc service.SettingsService
}

// NewSettingsHandler 创建 SettingsHandler
func NewSettingsHandler(settingsSvc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

// Get 租户与个人设置
// GET /api/v1/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsSvc.Get(c.Request.Context())
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}

	response.OK(c, settings)
}

// Update 保存设置
// PUT /api/v1/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	settings, err := h.settingsSvc.Update(c.Request.Context(), sid, &req)
	if err != nil {
		h.handleSettingsError(c, err)
		return
	}

	response.OK(c, settings)
}

func (h *SettingsHandler) handleSettingsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTimezone):
		response.BadRequest(c, 50501, "Неизвестный часовой пояс")
	case errors.Is(err, service.ErrInvalidBreak):
		response.BadRequest(c, 50502, "Минимальный перерыв должен быть от 0 до 24 часов")
	default:
		response.InternalError(c)
	}
}
