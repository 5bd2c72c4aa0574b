package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/internal/service"
	"github.com/maplol/adaptix-mvp/pkg/response"
)

// DashboardHandler 仪表盘 HTTP 处理器
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Get 仪表盘数据
// GET /api/v1/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.dashboardSvc.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dashboard)
}
