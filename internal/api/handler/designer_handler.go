package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/service"
	"github.com/maplol/adaptix-mvp/pkg/response"
)

// DesignerHandler 表单设计器 HTTP 处理器
type DesignerHandler struct {
	designerSvc service.DesignerService
}

// NewDesignerHandler 创建 DesignerHandler
func NewDesignerHandler(designerSvc service.DesignerService) *DesignerHandler {
	return &DesignerHandler{designerSvc: designerSvc}
}

// Palette 组件面板
// GET /api/v1/designer/palette
func (h *DesignerHandler) Palette(c *gin.Context) {
	response.OK(c, h.designerSvc.Palette())
}

// Canvas 当前画布
// GET /api/v1/designer/canvas
func (h *DesignerHandler) Canvas(c *gin.Context) {
	widgets, err := h.designerSvc.Canvas(c.Request.Context())
	if err != nil {
		h.handleDesignerError(c, err)
		return
	}

	response.OKList(c, widgets, len(widgets))
}

// ClearCanvas 清空画布
// DELETE /api/v1/designer/canvas
func (h *DesignerHandler) ClearCanvas(c *gin.Context) {
	if err := h.designerSvc.ClearCanvas(c.Request.Context()); err != nil {
		h.handleDesignerError(c, err)
		return
	}

	response.OK(c, nil)
}

// AddWidget 追加组件到画布末尾
// POST /api/v1/designer/widgets
func (h *DesignerHandler) AddWidget(c *gin.Context) {
	var req dto.AddWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	widget, err := h.designerSvc.AddWidget(c.Request.Context(), req.Type)
	if err != nil {
		h.handleDesignerError(c, err)
		return
	}

	response.Created(c, widget)
}

// UpdateWidget 部分更新组件属性
// PUT /api/v1/designer/widgets/:id
func (h *DesignerHandler) UpdateWidget(c *gin.Context) {
	var req dto.UpdateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	widget, err := h.designerSvc.UpdateWidget(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleDesignerError(c, err)
		return
	}

	response.OK(c, widget)
}

// RemoveWidget 移除组件（幂等）
// DELETE /api/v1/designer/widgets/:id
func (h *DesignerHandler) RemoveWidget(c *gin.Context) {
	removed, err := h.designerSvc.RemoveWidget(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleDesignerError(c, err)
		return
	}

	response.OK(c, gin.H{"removed": removed})
}

// MoveWidget 上移 / 下移一位，边界处不变
// POST /api/v1/designer/widgets/:id/move
func (h *DesignerHandler) MoveWidget(c *gin.Context) {
	var req dto.MoveWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	result, err := h.designerSvc.MoveWidget(c.Request.Context(), c.Param("id"), req.Direction)
	if err != nil {
		h.handleDesignerError(c, err)
		return
	}

	response.OK(c, result)
}

// Schema 导出 JSON schema
// GET /api/v1/designer/schema
func (h *DesignerHandler) Schema(c *gin.Context) {
	fields, err := h.designerSvc.Schema(c.Request.Context())
	if err != nil {
		h.handleDesignerError(c, err)
		return
	}

	response.OK(c, fields)
}

// Preview 预览渲染描述
// GET /api/v1/designer/preview
func (h *DesignerHandler) Preview(c *gin.Context) {
	items, err := h.designerSvc.Preview(c.Request.Context())
	if err != nil {
		h.handleDesignerError(c, err)
		return
	}

	response.OK(c, items)
}

// ImportSchema 校验并导入 schema 文档，替换画布
// POST /api/v1/designer/import
func (h *DesignerHandler) ImportSchema(c *gin.Context) {
	doc, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.Error(c, http.StatusRequestEntityTooLarge, 10005, "Слишком большой запрос")
			return
		}
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	widgets, err := h.designerSvc.ImportSchema(c.Request.Context(), doc)
	if err != nil {
		h.handleDesignerError(c, err)
		return
	}

	response.OKList(c, widgets, len(widgets))
}

// SaveForm 保存表单
// POST /api/v1/designer/save
func (h *DesignerHandler) SaveForm(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	fields, err := h.designerSvc.SaveForm(c.Request.Context(), sid)
	if err != nil {
		h.handleDesignerError(c, err)
		return
	}

	response.OK(c, fields)
}

// handleDesignerError 统一处理设计器业务错误
func (h *DesignerHandler) handleDesignerError(c *gin.Context, err error) {
	var schemaErr *service.SchemaValidationError
	switch {
	case errors.As(err, &schemaErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, 40103, "Схема формы не прошла проверку", schemaErr.Errors)
	case errors.Is(err, service.ErrUnknownWidgetType):
		response.BadRequest(c, 40101, "Неизвестный тип компонента")
	case errors.Is(err, service.ErrWidgetNotFound):
		response.NotFound(c, 40102, "Компонент не найден")
	case errors.Is(err, service.ErrInvalidFormSchema):
		response.BadRequest(c, 40103, "Схема формы не прошла проверку")
	default:
		response.InternalError(c)
	}
}
