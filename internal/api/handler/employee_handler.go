package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/service"
	"github.com/maplol/adaptix-mvp/pkg/response"
)

// EmployeeHandler 员工目录 HTTP 处理器
type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

// List 员工列表（搜索 + 筛选）
// GET /api/v1/employees?search=&job_role=&location=
func (h *EmployeeHandler) List(c *gin.Context) {
	var q dto.EmployeeListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	list, err := h.employeeSvc.List(c.Request.Context(), &q)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OKList(c, list, len(list))
}

// Get 员工详情
// GET /api/v1/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	emp, err := h.employeeSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, emp)
}

// Update 部分更新员工资料
// PUT /api/v1/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	sid, ok := MustGetSessionID(c)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	emp, err := h.employeeSvc.Update(c.Request.Context(), sid, c.Param("id"), &req)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, emp)
}

// JobRoles 工种筛选项
// GET /api/v1/employees/job-roles
func (h *EmployeeHandler) JobRoles(c *gin.Context) {
	roles, err := h.employeeSvc.JobRoles(c.Request.Context())
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OKList(c, roles, len(roles))
}

// Locations 地点筛选项
// GET /api/v1/employees/locations
func (h *EmployeeHandler) Locations(c *gin.Context) {
	locs, err := h.employeeSvc.Locations(c.Request.Context())
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OKList(c, locs, len(locs))
}

func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 50301, "Сотрудник не найден")
	default:
		response.InternalError(c)
	}
}
