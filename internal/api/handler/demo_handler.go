package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/internal/service"
	"github.com/maplol/adaptix-mvp/pkg/response"
)

// DemoHandler 演示数据 HTTP 处理器
type DemoHandler struct {
	demoSvc service.DemoService
}

// NewDemoHandler 创建 DemoHandler
func NewDemoHandler(demoSvc service.DemoService) *DemoHandler {
	return &DemoHandler{demoSvc: demoSvc}
}

// Reset 重新装载演示数据
// POST /api/v1/demo/reset
func (h *DemoHandler) Reset(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	if err := h.demoSvc.Reset(c.Request.Context(), sid); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
