package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/internal/service"
	"github.com/maplol/adaptix-mvp/pkg/response"
)

// NavigationHandler 导航模块 HTTP 处理器
type NavigationHandler struct {
	navSvc service.NavigationService
}

// NewNavigationHandler 创建 NavigationHandler
func NewNavigationHandler(navSvc service.NavigationService) *NavigationHandler {
	return &NavigationHandler{navSvc: navSvc}
}

// Routes 路由表
// GET /api/v1/navigation/routes
func (h *NavigationHandler) Routes(c *gin.Context) {
	routes := h.navSvc.Routes()
	response.OKList(c, routes, len(routes))
}

// Resolve 解析目标路径（会话可选）
// GET /api/v1/navigation/resolve?path=
func (h *NavigationHandler) Resolve(c *gin.Context) {
	response.OK(c, h.navSvc.Resolve(optionalRole(c), c.Query("path")))
}

// Menu 侧边栏菜单（会话可选，未登录时为空）
// GET /api/v1/navigation/menu
func (h *NavigationHandler) Menu(c *gin.Context) {
	menu := h.navSvc.Menu(optionalRole(c))
	response.OKList(c, menu, len(menu))
}
