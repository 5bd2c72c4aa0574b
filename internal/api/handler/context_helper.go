package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/pkg/response"
)

const msgUnauthenticated = "Требуется вход в систему"

// mustGetString 从 Gin 上下文中提取非空字符串，缺失时写入 401 响应
func mustGetString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		response.Unauthorized(c, 10002, msgUnauthenticated)
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, msgUnauthenticated)
		return "", false
	}
	return s, true
}

// MustGetSessionID 从 Gin 上下文中安全提取会话 sid。
// 如果 JWT 中间件未正确注入 sid，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetSessionID(c *gin.Context) (string, bool) {
	return mustGetString(c, "sid")
}

// MustGetRole 从 Gin 上下文中安全提取 role。
func MustGetRole(c *gin.Context) (string, bool) {
	return mustGetString(c, "role")
}

// MustGetEmployeeID 从 Gin 上下文中安全提取 employee_id。
func MustGetEmployeeID(c *gin.Context) (string, bool) {
	return mustGetString(c, "employee_id")
}

// optionalRole 可选会话：未登录时返回空串
func optionalRole(c *gin.Context) string {
	return c.GetString("role")
}
