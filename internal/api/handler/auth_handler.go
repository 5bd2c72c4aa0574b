package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/service"
	"github.com/maplol/adaptix-mvp/pkg/response"
)

const msgInvalidParams = "Неверные параметры запроса"

// AuthHandler 会话模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 选择角色进入演示
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// Me 当前会话
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	me, err := h.authSvc.Me(c.Request.Context(), sid, role, employeeID)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, me)
}

// Logout 退出演示，清理会话状态
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	h.authSvc.Logout(c.Request.Context(), sid)
	response.OK(c, nil)
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRole):
		response.BadRequest(c, 50101, "Неизвестная роль")
	case errors.Is(err, service.ErrIdentityNotFound):
		response.NotFound(c, 50102, "Сотрудник для входа не найден")
	case errors.Is(err, service.ErrSessionNotFound):
		response.Unauthorized(c, 50103, "Сессия недействительна")
	default:
		response.InternalError(c)
	}
}
