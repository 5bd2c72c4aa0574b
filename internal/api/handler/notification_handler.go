package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/internal/service"
	"github.com/maplol/adaptix-mvp/pkg/response"
)

// NotificationHandler 提示模块 HTTP 处理器
type NotificationHandler struct {
	notifySvc service.NotificationService
}

// NewNotificationHandler 创建 NotificationHandler
func NewNotificationHandler(notifySvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifySvc: notifySvc}
}

// List 当前会话未过期的提示
// GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	list := h.notifySvc.List(sid)
	response.OKList(c, list, len(list))
}

// Dismiss 手动关闭提示；已关闭或已过期时返回 dismissed=false
// DELETE /api/v1/notifications/:id
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "Неверный идентификатор уведомления")
		return
	}

	response.OK(c, gin.H{"dismissed": h.notifySvc.Dismiss(sid, id)})
}
