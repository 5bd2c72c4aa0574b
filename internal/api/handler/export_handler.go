package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/model"
	"github.com/maplol/adaptix-mvp/internal/service"
	"github.com/maplol/adaptix-mvp/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSchedule 导出当前视图窗口的排班表
// GET /api/v1/export/schedule.xlsx?anchor=&mode=&location=
func (h *ExportHandler) ExportSchedule(c *gin.Context) {
	var q dto.ScheduleExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	buf, filename, err := h.exportSvc.ExportSchedule(c.Request.Context(), &q)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	response.Attachment(c, filename, service.ContentTypeXLSX, buf.Bytes())
}

// ExportShiftCalendar 导出员工班次日历；普通员工只能导出本人
// GET /api/v1/export/shifts.ics?employee_id=
func (h *ExportHandler) ExportShiftCalendar(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}
	self, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}
	var q dto.ShiftCalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, msgInvalidParams)
		return
	}

	employeeID := q.EmployeeID
	if employeeID == "" {
		employeeID = self
	}
	if role == model.RoleEmployee && employeeID != self {
		response.Forbidden(c, 10003, "Недостаточно прав")
		return
	}

	buf, filename, err := h.exportSvc.ExportShiftCalendar(c.Request.Context(), employeeID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	response.Attachment(c, filename, service.ContentTypeICS, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidViewMode):
		response.BadRequest(c, 20107, "Неизвестный режим просмотра")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 20108, "Неверный формат даты")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 50301, "Сотрудник не найден")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
