package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/service"
	"github.com/maplol/adaptix-mvp/pkg/response"
)

// RuleHandler 规则构建器 HTTP 处理器
type RuleHandler struct {
	ruleSvc service.RuleService
}

// NewRuleHandler 创建 RuleHandler
func NewRuleHandler(ruleSvc service.RuleService) *RuleHandler {
	return &RuleHandler{ruleSvc: ruleSvc}
}

// Vocabulary 条件字段、运算符、动作与分组
// GET /api/v1/rules/vocabulary
func (h *RuleHandler) Vocabulary(c *gin.Context) {
	response.OK(c, h.ruleSvc.Vocabulary())
}

// Groups 分组及规则数
// GET /api/v1/rules/groups?kind=
func (h *RuleHandler) Groups(c *gin.Context) {
	groups, err := h.ruleSvc.Groups(c.Request.Context(), c.Query("kind"))
	if err != nil {
		h.handleRuleError(c, err)
		return
	}

	response.OKList(c, groups, len(groups))
}

// GetGroup 分组详情（含规则列表）
// GET /api/v1/rules/groups/:kind/:key
func (h *RuleHandler) GetGroup(c *gin.Context) {
	group, err := h.ruleSvc.GetGroup(c.Request.Context(), c.Param("kind"), c.Param("key"))
	if err != nil {
		h.handleRuleError(c, err)
		return
	}

	response.OK(c, group)
}

// GetRule 规则详情
// GET /api/v1/rules/:id
func (h *RuleHandler) GetRule(c *gin.Context) {
	rule, err := h.ruleSvc.GetRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleRuleError(c, err)
		return
	}

	response.OK(c, rule)
}

// CreateRule 在分组内新建规则
// POST /api/v1/rules/groups/:kind/:key
func (h *RuleHandler) CreateRule(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	var req dto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	rule, err := h.ruleSvc.CreateRule(c.Request.Context(), sid, c.Param("kind"), c.Param("key"), &req)
	if err != nil {
		h.handleRuleError(c, err)
		return
	}

	response.Created(c, rule)
}

// UpdateRule 编辑规则，分组不变
// PUT /api/v1/rules/:id
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	var req dto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	rule, err := h.ruleSvc.UpdateRule(c.Request.Context(), sid, c.Param("id"), &req)
	if err != nil {
		h.handleRuleError(c, err)
		return
	}

	response.OK(c, rule)
}

// ToggleRule 启用 / 停用
// POST /api/v1/rules/:id/toggle
func (h *RuleHandler) ToggleRule(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	rule, err := h.ruleSvc.ToggleRule(c.Request.Context(), sid, c.Param("id"))
	if err != nil {
		h.handleRuleError(c, err)
		return
	}

	response.OK(c, rule)
}

// DeleteRule 删除规则
// DELETE /api/v1/rules/:id
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	if err := h.ruleSvc.DeleteRule(c.Request.Context(), sid, c.Param("id")); err != nil {
		h.handleRuleError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleRuleError 统一处理规则模块业务错误
func (h *RuleHandler) handleRuleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRuleNotFound):
		response.NotFound(c, 30101, "Правило не найдено")
	case errors.Is(err, service.ErrInvalidGroupKind):
		response.BadRequest(c, 30102, "Неизвестный способ группировки")
	case errors.Is(err, service.ErrRuleGroupNotFound):
		response.NotFound(c, 30103, "Группа правил не найдена")
	case errors.Is(err, service.ErrRuleNameRequired):
		response.BadRequest(c, 30104, "Укажите название правила")
	case errors.Is(err, service.ErrInvalidRuleAction):
		response.BadRequest(c, 30105, "Неизвестное действие")
	case errors.Is(err, service.ErrInvalidConditionSpec):
		response.BadRequest(c, 30106, "Неверное условие правила")
	default:
		response.InternalError(c)
	}
}
