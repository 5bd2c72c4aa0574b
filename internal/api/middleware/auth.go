package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/pkg/jwt"
	"github.com/maplol/adaptix-mvp/pkg/response"
)

// bearerToken 从 Authorization: Bearer <token> 中提取 token
func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setSession(c *gin.Context, claims *jwt.Claims) {
	c.Set("sid", claims.SessionID)
	c.Set("role", claims.Role)
	c.Set("employee_id", claims.EmployeeID)
}

// JWTAuth 会话认证中间件
// 验证演示会话 token 并将 sid / role / employee_id 注入上下文
func JWTAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			response.Unauthorized(c, 10002, "Отсутствует заголовок авторизации")
			c.Abort()
			return
		}

		token, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, 10002, "Неверный формат заголовка авторизации")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(token)
		if err != nil {
			response.Unauthorized(c, 10002, "Сессия недействительна или истекла")
			c.Abort()
			return
		}

		setSession(c, claims)
		c.Next()
	}
}

// OptionalJWTAuth 可选认证：token 有效时注入会话，否则按未登录继续
func OptionalJWTAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := jwtMgr.ParseToken(token); err == nil {
				setSession(c, claims)
			}
		}
		c.Next()
	}
}

// RoleAuth 角色权限中间件
// 检查当前会话是否具有指定角色之一
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "Требуется вход в систему")
			c.Abort()
			return
		}

		userRole, _ := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "Недостаточно прав")
		c.Abort()
	}
}
